package service

import (
	"stock-alert-engine/internal/alerter/dto"
)

// Evaluate checks a current price against a baseline and the configured
// thresholds. Pure and deterministic; no I/O. The caller guarantees a
// non-zero baseline.
//
// Gain is checked before loss and both boundaries are inclusive, so in
// the pathological case where a caller passes thresholds that make both
// conditions true for one change, GAIN wins.
func Evaluate(currentPrice, baselinePrice, gainThresholdPercent, lossThresholdPercent float64) dto.Evaluation {
	percentChange := ((currentPrice - baselinePrice) / baselinePrice) * 100

	evaluation := dto.Evaluation{
		PercentChange: percentChange,
		CurrentPrice:  currentPrice,
		BaselinePrice: baselinePrice,
	}

	switch {
	case percentChange >= gainThresholdPercent:
		evaluation.Triggered = true
		evaluation.Kind = dto.AlertKindGain
	case percentChange <= -lossThresholdPercent:
		evaluation.Triggered = true
		evaluation.Kind = dto.AlertKindLoss
	}

	return evaluation
}
