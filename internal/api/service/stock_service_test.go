package service

import (
	"context"
	"testing"
	"time"

	"stock-alert-engine/internal/scraper"
	"stock-alert-engine/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSnapshotter struct {
	snapshot *scraper.Snapshot
	err      error
}

func (f *fakeSnapshotter) Snapshot(_ context.Context, _ string) (*scraper.Snapshot, error) {
	return f.snapshot, f.err
}

func floatPtr(v float64) *float64 { return &v }

func TestSearchSuccess(t *testing.T) {
	snapshots := &fakeSnapshotter{snapshot: &scraper.Snapshot{
		CompanyName: "Tata Steel Ltd",
		Price:       floatPtr(165.50),
		ExtractedAt: time.Now(),
	}}
	svc := NewStockService(snapshots, logger.NewNop())

	response := svc.Search(context.Background(), "tata steel")

	assert.True(t, response.Success)
	assert.Equal(t, "Tata Steel Ltd", response.CompanyName)
	require.NotNil(t, response.Price)
	assert.Equal(t, 165.50, *response.Price)
	assert.Empty(t, response.Error)
}

func TestSearchFoldsScraperErrorIntoResponse(t *testing.T) {
	snapshots := &fakeSnapshotter{err: &scraper.NotFoundError{Query: "ghost corp"}}
	svc := NewStockService(snapshots, logger.NewNop())

	response := svc.Search(context.Background(), "ghost corp")

	assert.False(t, response.Success)
	assert.Equal(t, "ghost corp", response.CompanyName)
	assert.Nil(t, response.Price)
	assert.NotEmpty(t, response.Error)
}

func TestSearchMissingPriceIsFailure(t *testing.T) {
	snapshots := &fakeSnapshotter{snapshot: &scraper.Snapshot{
		CompanyName: "Opaque Ltd",
		Description: "A company whose page carries no parseable price.",
	}}
	svc := NewStockService(snapshots, logger.NewNop())

	response := svc.Search(context.Background(), "opaque")

	assert.False(t, response.Success)
	assert.Equal(t, "price not found", response.Error)
}

func TestGetDetailsCarriesFullSnapshot(t *testing.T) {
	snapshots := &fakeSnapshotter{snapshot: &scraper.Snapshot{
		CompanyName: "Tata Steel Ltd",
		Price:       floatPtr(165.50),
		High:        floatPtr(184.60),
		Low:         floatPtr(122.60),
		MarketCap:   "2,06,744 Cr.",
		ROE:         "8.45 %",
		ROCE:        "10.2 %",
		Description: "Tata Steel is among the largest steel producers in India.",
	}}
	svc := NewStockService(snapshots, logger.NewNop())

	response := svc.GetDetails(context.Background(), "tata steel")

	assert.True(t, response.Success)
	require.NotNil(t, response.High)
	assert.Equal(t, 184.60, *response.High)
	require.NotNil(t, response.Low)
	assert.Equal(t, 122.60, *response.Low)
	assert.Equal(t, "2,06,744 Cr.", response.MarketCap)
	assert.Equal(t, "8.45 %", response.ROE)
	assert.Equal(t, "10.2 %", response.ROCE)
	assert.NotEmpty(t, response.Description)
}

func TestGetDetailsPartialSnapshotStillFails(t *testing.T) {
	// High/low without a price: details come through but the lookup is
	// still not a success.
	snapshots := &fakeSnapshotter{snapshot: &scraper.Snapshot{
		CompanyName: "Opaque Ltd",
		High:        floatPtr(184.60),
		Low:         floatPtr(122.60),
	}}
	svc := NewStockService(snapshots, logger.NewNop())

	response := svc.GetDetails(context.Background(), "opaque")

	assert.False(t, response.Success)
	assert.NotNil(t, response.High)
	assert.Equal(t, "price not found", response.Error)
}
