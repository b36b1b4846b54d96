package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stock-alert-engine/internal/alerter/dto"
	"stock-alert-engine/internal/alerter/repository"
	"stock-alert-engine/internal/entity"
	"stock-alert-engine/internal/scraper"
	"stock-alert-engine/pkg/logger"
)

// StockSnapshotter is the slice of the scraper the orchestrator needs.
type StockSnapshotter interface {
	Snapshot(ctx context.Context, companyName string) (*scraper.Snapshot, error)
}

// Orchestrator walks the active alert rules sequentially, scrapes a
// fresh snapshot per rule and collects the fired events. One rule's
// failure never aborts the batch.
type Orchestrator struct {
	logger       *logger.Logger
	snapshots    StockSnapshotter
	priceHistory repository.PriceHistoryRepository
	alertLogs    repository.AlertLogsRepository
	ruleDelay    time.Duration
}

// NewOrchestrator creates a new Orchestrator. ruleDelay is the politeness
// pause inserted between successive company lookups.
func NewOrchestrator(log *logger.Logger, snapshots StockSnapshotter, priceHistory repository.PriceHistoryRepository, alertLogs repository.AlertLogsRepository, ruleDelay time.Duration) *Orchestrator {
	return &Orchestrator{
		logger:       log,
		snapshots:    snapshots,
		priceHistory: priceHistory,
		alertLogs:    alertLogs,
		ruleDelay:    ruleDelay,
	}
}

// Run evaluates every rule and returns the fired events in rule order.
func (o *Orchestrator) Run(ctx context.Context, alerts []entity.UserAlert) []dto.TriggeredAlert {
	o.logger.Info("Starting alert processing", logger.IntField("active_alerts", len(alerts)))

	var triggered []dto.TriggeredAlert

	for i, alert := range alerts {
		if i > 0 && o.ruleDelay > 0 {
			select {
			case <-ctx.Done():
				o.logger.Warn("Alert processing cancelled", logger.IntField("processed", i))
				return triggered
			case <-time.After(o.ruleDelay):
			}
		}

		event, ok := o.processAlert(ctx, &alert)
		if ok {
			triggered = append(triggered, *event)
		}
	}

	o.logger.Info("Alert processing complete",
		logger.IntField("active_alerts", len(alerts)),
		logger.IntField("triggered", len(triggered)),
	)
	return triggered
}

// processAlert runs one rule through resolve → fetch → extract →
// evaluate. Failures are logged and converted into a skipped rule.
func (o *Orchestrator) processAlert(ctx context.Context, alert *entity.UserAlert) (*dto.TriggeredAlert, bool) {
	companyName := alert.Stock.CompanyName

	o.logger.DebugContext(ctx, "Checking price",
		logger.StringField("company", companyName),
		logger.IntField("alert_id", int(alert.ID)),
	)

	snapshot, err := o.snapshots.Snapshot(ctx, companyName)
	if err != nil {
		var notFound *scraper.NotFoundError
		var transport *scraper.TransportError
		switch {
		case errors.As(err, &notFound):
			o.logger.Error("Company not found", logger.StringField("company", companyName), logger.IntField("alert_id", int(alert.ID)))
		case errors.As(err, &transport):
			o.logger.Error("Transport failure while scraping",
				logger.ErrorField(err),
				logger.StringField("company", companyName),
				logger.StringField("kind", string(transport.Kind)),
			)
		default:
			o.logger.Error("Failed to scrape company", logger.ErrorField(err), logger.StringField("company", companyName))
		}
		return nil, false
	}

	if !snapshot.Success() {
		o.logger.Error("Extraction yielded no price", logger.StringField("company", companyName), logger.IntField("alert_id", int(alert.ID)))
		return nil, false
	}

	currentPrice := *snapshot.Price

	// History accumulates whether or not the alert fires. A sink failure
	// is logged and never blocks evaluation.
	if err := o.priceHistory.Append(ctx, alert.StockID, currentPrice, snapshot.ExtractedAt); err != nil {
		o.logger.Error("Failed to append price history", logger.ErrorField(err), logger.IntField("stock_id", int(alert.StockID)))
	}

	if alert.BaselinePrice <= 0 {
		o.logger.Error("Invalid baseline price, skipping rule",
			logger.Float64Field("baseline_price", alert.BaselinePrice),
			logger.IntField("alert_id", int(alert.ID)),
		)
		return nil, false
	}

	evaluation := Evaluate(currentPrice, alert.BaselinePrice, alert.GainThresholdPercent, alert.LossThresholdPercent)
	if !evaluation.Triggered {
		return nil, false
	}

	message := fmt.Sprintf("%s %s: %+.2f%% change", companyName, evaluation.Kind, evaluation.PercentChange)

	if err := o.alertLogs.Append(ctx, &entity.AlertLog{
		AlertID:       alert.ID,
		UserID:        alert.UserID,
		StockID:       alert.StockID,
		TriggerPrice:  currentPrice,
		BaselinePrice: alert.BaselinePrice,
		PercentChange: evaluation.PercentChange,
		AlertType:     string(evaluation.Kind),
		Message:       message,
	}); err != nil {
		o.logger.Error("Failed to append alert log", logger.ErrorField(err), logger.IntField("alert_id", int(alert.ID)))
	}

	o.logger.Info("Alert triggered", logger.StringField("message", message), logger.IntField("alert_id", int(alert.ID)))

	return &dto.TriggeredAlert{
		AlertID:       alert.ID,
		UserID:        alert.UserID,
		StockID:       alert.StockID,
		CompanyName:   companyName,
		Kind:          evaluation.Kind,
		CurrentPrice:  currentPrice,
		BaselinePrice: alert.BaselinePrice,
		PercentChange: evaluation.PercentChange,
		UserEmail:     alert.User.Email,
	}, true
}
