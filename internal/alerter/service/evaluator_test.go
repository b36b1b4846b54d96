package service

import (
	"testing"

	"stock-alert-engine/internal/alerter/dto"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateGain(t *testing.T) {
	evaluation := Evaluate(165.50, 150.00, 10.0, 5.0)

	assert.True(t, evaluation.Triggered)
	assert.Equal(t, dto.AlertKindGain, evaluation.Kind)
	assert.InDelta(t, 10.33, evaluation.PercentChange, 0.01)
	assert.Equal(t, 165.50, evaluation.CurrentPrice)
	assert.Equal(t, 150.00, evaluation.BaselinePrice)
}

func TestEvaluateLoss(t *testing.T) {
	evaluation := Evaluate(140.00, 150.00, 10.0, 5.0)

	assert.True(t, evaluation.Triggered)
	assert.Equal(t, dto.AlertKindLoss, evaluation.Kind)
	assert.InDelta(t, -6.67, evaluation.PercentChange, 0.01)
}

func TestEvaluateNoTrigger(t *testing.T) {
	evaluation := Evaluate(152.00, 150.00, 10.0, 5.0)

	assert.False(t, evaluation.Triggered)
	assert.Empty(t, evaluation.Kind)
	assert.InDelta(t, 1.33, evaluation.PercentChange, 0.01)
}

func TestEvaluateInclusiveBoundaries(t *testing.T) {
	// Exactly on the gain threshold fires GAIN.
	evaluation := Evaluate(165.00, 150.00, 10.0, 5.0)
	assert.True(t, evaluation.Triggered)
	assert.Equal(t, dto.AlertKindGain, evaluation.Kind)
	assert.InDelta(t, 10.0, evaluation.PercentChange, 0.0001)

	// Exactly on the loss threshold fires LOSS.
	evaluation = Evaluate(142.50, 150.00, 10.0, 5.0)
	assert.True(t, evaluation.Triggered)
	assert.Equal(t, dto.AlertKindLoss, evaluation.Kind)
	assert.InDelta(t, -5.0, evaluation.PercentChange, 0.0001)
}

func TestEvaluateGainWinsWhenBothConditionsMatch(t *testing.T) {
	// A negative gain threshold makes both branches satisfiable for the
	// same change; the gain check runs first and wins.
	evaluation := Evaluate(140.00, 150.00, -10.0, 5.0)

	assert.True(t, evaluation.Triggered)
	assert.Equal(t, dto.AlertKindGain, evaluation.Kind)
}

func TestEvaluateIsDeterministic(t *testing.T) {
	first := Evaluate(165.50, 150.00, 10.0, 5.0)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Evaluate(165.50, 150.00, 10.0, 5.0))
	}
}
