package markethours

import (
	"fmt"
	"time"

	"stock-alert-engine/pkg/config"
)

// Window is a weekday trading window in a fixed time zone. Outside the
// window, alert cycles are skipped entirely.
type Window struct {
	location    *time.Location
	openHour    int
	openMinute  int
	closeHour   int
	closeMinute int
}

// NewWindow builds a Window from market configuration. Defaults match the
// NSE session: Mon-Fri 09:30-15:30 Asia/Kolkata.
func NewWindow(cfg config.Market) (*Window, error) {
	tz := cfg.TimeZone
	if tz == "" {
		tz = "Asia/Kolkata"
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid market time zone %q: %w", tz, err)
	}

	w := &Window{
		location:    location,
		openHour:    cfg.OpenHour,
		openMinute:  cfg.OpenMinute,
		closeHour:   cfg.CloseHour,
		closeMinute: cfg.CloseMinute,
	}
	if w.openHour == 0 && w.openMinute == 0 && w.closeHour == 0 && w.closeMinute == 0 {
		w.openHour, w.openMinute = 9, 30
		w.closeHour, w.closeMinute = 15, 30
	}
	return w, nil
}

// IsOpen reports whether t falls inside the trading window.
func (w *Window) IsOpen(t time.Time) bool {
	local := t.In(w.location)

	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}

	open := time.Date(local.Year(), local.Month(), local.Day(), w.openHour, w.openMinute, 0, 0, w.location)
	close := time.Date(local.Year(), local.Month(), local.Day(), w.closeHour, w.closeMinute, 0, 0, w.location)

	return !local.Before(open) && !local.After(close)
}
