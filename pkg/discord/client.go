package discord

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stock-alert-engine/pkg/logger"
)

const (
	colorGain    = 0x00FF00
	colorLoss    = 0xFF0000
	colorSummary = 0x3498DB
)

// Alert is the notification payload for one fired alert.
type Alert struct {
	CompanyName   string
	Kind          string
	CurrentPrice  float64
	BaselinePrice float64
	PercentChange float64
	UserEmail     string
}

// Notifier sends alert notifications to a Discord channel.
type Notifier interface {
	SendAlert(ctx context.Context, alert Alert) error
	SendBatchAlerts(ctx context.Context, alerts []Alert) int
	SendSummary(ctx context.Context, totalChecked, triggered int) error
}

type client struct {
	webhookURL string
	httpClient *http.Client
	logger     *logger.Logger
}

// NewClient creates a webhook-backed Notifier.
func NewClient(webhookURL string, log *logger.Logger) Notifier {
	return &client{
		webhookURL: webhookURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     log,
	}
}

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields"`
	Footer      *embedFooter `json:"footer,omitempty"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// SendAlert posts one rich embed for a fired alert.
func (c *client) SendAlert(ctx context.Context, alert Alert) error {
	payload := webhookPayload{Embeds: []embed{buildAlertEmbed(alert)}}

	if err := c.post(ctx, payload); err != nil {
		c.logger.Error("Failed to send Discord notification", logger.ErrorField(err), logger.StringField("company", alert.CompanyName))
		return err
	}

	c.logger.Info("Sent Discord notification", logger.StringField("company", alert.CompanyName), logger.StringField("kind", alert.Kind))
	return nil
}

// SendBatchAlerts sends every alert and returns how many succeeded.
func (c *client) SendBatchAlerts(ctx context.Context, alerts []Alert) int {
	succeeded := 0
	for _, alert := range alerts {
		if err := c.SendAlert(ctx, alert); err == nil {
			succeeded++
		}
	}
	return succeeded
}

// SendSummary posts a run summary after each evaluation cycle.
func (c *client) SendSummary(ctx context.Context, totalChecked, triggered int) error {
	payload := webhookPayload{Embeds: []embed{{
		Title:       "📊 Stock Alert Summary",
		Description: "Alert check completed",
		Color:       colorSummary,
		Fields: []embedField{
			{Name: "Total Alerts Checked", Value: fmt.Sprintf("%d", totalChecked), Inline: true},
			{Name: "Alerts Triggered", Value: fmt.Sprintf("%d", triggered), Inline: true},
		},
	}}}

	if err := c.post(ctx, payload); err != nil {
		c.logger.Error("Failed to send Discord summary", logger.ErrorField(err))
		return err
	}
	return nil
}

func (c *client) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
