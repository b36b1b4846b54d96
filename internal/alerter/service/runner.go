package service

import (
	"context"
	"fmt"
	"time"

	"stock-alert-engine/internal/alerter/config"
	"stock-alert-engine/internal/alerter/dto"
	"stock-alert-engine/internal/alerter/repository"
	"stock-alert-engine/pkg/discord"
	"stock-alert-engine/pkg/logger"
	"stock-alert-engine/pkg/markethours"
	redisPkg "stock-alert-engine/pkg/redis"
	"stock-alert-engine/pkg/telegram"

	"github.com/patrickmn/go-cache"
	"github.com/robfig/cron/v3"
)

const runLockKey = "stock_alert:run_lock"

// Runner drives periodic evaluation cycles: cron schedule, market-hours
// gate, single-run lock, orchestrator, notifications.
type Runner struct {
	cfg              *config.Config
	logger           *logger.Logger
	userAlerts       repository.UserAlertsRepository
	orchestrator     *Orchestrator
	discordNotifier  discord.Notifier
	telegramNotifier telegram.Notifier
	redisClient      *redisPkg.Client
	window           *markethours.Window
	resendCache      *cache.Cache
	cron             *cron.Cron

	lockDuration   time.Duration
	resendDuration time.Duration
}

// NewRunner creates a Runner. telegramNotifier may be nil when the
// secondary channel is disabled.
func NewRunner(cfg *config.Config, log *logger.Logger, userAlerts repository.UserAlertsRepository, orchestrator *Orchestrator, discordNotifier discord.Notifier, telegramNotifier telegram.Notifier, redisClient *redisPkg.Client) (*Runner, error) {
	window, err := markethours.NewWindow(cfg.Market)
	if err != nil {
		return nil, err
	}

	lockDuration := 10 * time.Minute
	if cfg.Alert.RunLockDuration != "" {
		if lockDuration, err = time.ParseDuration(cfg.Alert.RunLockDuration); err != nil {
			return nil, fmt.Errorf("invalid run_lock_duration: %w", err)
		}
	}

	resendDuration := time.Hour
	if cfg.Alert.ResendCacheDuration != "" {
		if resendDuration, err = time.ParseDuration(cfg.Alert.ResendCacheDuration); err != nil {
			return nil, fmt.Errorf("invalid resend_cache_duration: %w", err)
		}
	}

	return &Runner{
		cfg:              cfg,
		logger:           log,
		userAlerts:       userAlerts,
		orchestrator:     orchestrator,
		discordNotifier:  discordNotifier,
		telegramNotifier: telegramNotifier,
		redisClient:      redisClient,
		window:           window,
		resendCache:      cache.New(resendDuration, 2*resendDuration),
		cron:             cron.New(),
		lockDuration:     lockDuration,
		resendDuration:   resendDuration,
	}, nil
}

// Start registers the cron schedule and begins running cycles.
func (r *Runner) Start(ctx context.Context) error {
	_, err := r.cron.AddFunc(r.cfg.Alert.Schedule, func() {
		if err := r.RunCycle(ctx, false); err != nil {
			r.logger.Error("Alert cycle failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid alert schedule %q: %w", r.cfg.Alert.Schedule, err)
	}

	r.cron.Start()
	r.logger.Info("Alert runner started", logger.StringField("schedule", r.cfg.Alert.Schedule))
	return nil
}

// Stop halts the cron scheduler and waits for a running cycle to finish.
func (r *Runner) Stop() {
	stopCtx := r.cron.Stop()
	<-stopCtx.Done()
	r.logger.Info("Alert runner stopped")
}

// RunCycle executes one evaluation cycle. force skips the market-hours
// gate, used by the run-once command.
func (r *Runner) RunCycle(ctx context.Context, force bool) error {
	if !force && !r.window.IsOpen(time.Now()) {
		r.logger.Info("Skipping alert cycle, market is closed")
		return nil
	}

	release, acquired, err := r.acquireRunLock(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire run lock: %w", err)
	}
	if !acquired {
		r.logger.Warn("Another alert cycle is already running, skipping")
		return nil
	}
	defer release()

	// Only a failure to read the rule list is fatal to a run; everything
	// downstream degrades per rule.
	alerts, err := r.userAlerts.GetActiveAlerts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load active alerts: %w", err)
	}

	triggered := r.orchestrator.Run(ctx, alerts)
	r.notify(ctx, len(alerts), triggered)
	return nil
}

// acquireRunLock takes the redis lease guaranteeing at most one cycle at
// a time across processes. Without redis configured, the lock degrades to
// a no-op; the cron scheduler itself never overlaps runs in-process.
func (r *Runner) acquireRunLock(ctx context.Context) (func(), bool, error) {
	if r.redisClient == nil {
		return func() {}, true, nil
	}

	acquired, err := r.redisClient.SetNX(ctx, runLockKey, time.Now().Unix(), r.lockDuration).Result()
	if err != nil {
		return nil, false, err
	}
	if !acquired {
		return nil, false, nil
	}

	release := func() {
		if err := r.redisClient.Del(context.Background(), runLockKey).Err(); err != nil {
			r.logger.Error("Failed to release run lock", logger.ErrorField(err))
		}
	}
	return release, true, nil
}

// notify pushes the fired events through the configured channels,
// suppressing repeats of an alert that already notified within the
// resend window.
func (r *Runner) notify(ctx context.Context, totalChecked int, triggered []dto.TriggeredAlert) {
	var toSend []dto.TriggeredAlert
	for _, event := range triggered {
		key := fmt.Sprintf("%d:%s", event.AlertID, event.Kind)
		if _, suppressed := r.resendCache.Get(key); suppressed {
			r.logger.Debug("Suppressing repeat notification",
				logger.IntField("alert_id", int(event.AlertID)),
				logger.StringField("kind", string(event.Kind)),
			)
			continue
		}
		r.resendCache.Set(key, event.CurrentPrice, cache.DefaultExpiration)
		toSend = append(toSend, event)
	}

	if len(toSend) > 0 {
		alerts := make([]discord.Alert, 0, len(toSend))
		for _, event := range toSend {
			alerts = append(alerts, discord.Alert{
				CompanyName:   event.CompanyName,
				Kind:          string(event.Kind),
				CurrentPrice:  event.CurrentPrice,
				BaselinePrice: event.BaselinePrice,
				PercentChange: event.PercentChange,
				UserEmail:     event.UserEmail,
			})
		}

		succeeded := r.discordNotifier.SendBatchAlerts(ctx, alerts)
		r.logger.Info("Sent Discord notifications",
			logger.IntField("succeeded", succeeded),
			logger.IntField("total", len(alerts)),
		)

		if r.telegramNotifier != nil {
			for _, event := range toSend {
				message := telegram.FormatPriceAlert(string(event.Kind), event.CompanyName, event.CurrentPrice, event.BaselinePrice, event.PercentChange)
				if err := r.telegramNotifier.SendMessage(message); err != nil {
					r.logger.Error("Failed to send Telegram notification", logger.ErrorField(err), logger.StringField("company", event.CompanyName))
				}
			}
		}
	}

	if err := r.discordNotifier.SendSummary(ctx, totalChecked, len(triggered)); err != nil {
		r.logger.Error("Failed to send run summary", logger.ErrorField(err))
	}
}
