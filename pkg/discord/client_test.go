package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"stock-alert-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendAlertGainEmbed(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewClient(server.URL, logger.NewNop())

	err := notifier.SendAlert(context.Background(), Alert{
		CompanyName:   "Tata Steel Ltd",
		Kind:          "GAIN",
		CurrentPrice:  165.50,
		BaselinePrice: 150.00,
		PercentChange: 10.33,
		UserEmail:     "user@example.com",
	})
	require.NoError(t, err)

	var payload webhookPayload
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Embeds, 1)

	embed := payload.Embeds[0]
	assert.Equal(t, "📈 Stock Alert: Tata Steel Ltd", embed.Title)
	assert.Equal(t, colorGain, embed.Color)
	require.Len(t, embed.Fields, 3)
	assert.Equal(t, "₹165.5", embed.Fields[0].Value)
	assert.Equal(t, "₹150", embed.Fields[1].Value)
	assert.Equal(t, "+10.33%", embed.Fields[2].Value)
	assert.Equal(t, "Alert for user@example.com", embed.Footer.Text)
}

func TestSendAlertLossEmbed(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewClient(server.URL, logger.NewNop())

	err := notifier.SendAlert(context.Background(), Alert{
		CompanyName:   "Infosys Ltd",
		Kind:          "LOSS",
		CurrentPrice:  140.00,
		BaselinePrice: 150.00,
		PercentChange: -6.67,
	})
	require.NoError(t, err)

	var payload webhookPayload
	require.NoError(t, json.Unmarshal(body, &payload))
	embed := payload.Embeds[0]
	assert.Equal(t, "📉 Stock Alert: Infosys Ltd", embed.Title)
	assert.Equal(t, colorLoss, embed.Color)
	assert.Equal(t, "-6.67%", embed.Fields[2].Value)
}

func TestSendBatchAlertsCountsSuccesses(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewClient(server.URL, logger.NewNop())

	succeeded := notifier.SendBatchAlerts(context.Background(), []Alert{
		{CompanyName: "A", Kind: "GAIN"},
		{CompanyName: "B", Kind: "LOSS"},
		{CompanyName: "C", Kind: "GAIN"},
	})

	assert.Equal(t, 2, succeeded)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSendSummary(t *testing.T) {
	var body []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	notifier := NewClient(server.URL, logger.NewNop())

	require.NoError(t, notifier.SendSummary(context.Background(), 12, 3))

	var payload webhookPayload
	require.NoError(t, json.Unmarshal(body, &payload))
	require.Len(t, payload.Embeds, 1)
	assert.Equal(t, "12", payload.Embeds[0].Fields[0].Value)
	assert.Equal(t, "3", payload.Embeds[0].Fields[1].Value)
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₹1,234.56", FormatPrice(1234.56))
	assert.Equal(t, "₹150", FormatPrice(150.00))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "+10.33%", FormatPercent(10.33))
	assert.Equal(t, "-6.67%", FormatPercent(-6.67))
	assert.Equal(t, "+0.00%", FormatPercent(0))
}
