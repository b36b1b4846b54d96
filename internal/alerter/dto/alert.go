package dto

// AlertKind names the direction of a fired alert.
type AlertKind string

const (
	AlertKindGain AlertKind = "GAIN"
	AlertKindLoss AlertKind = "LOSS"
)

// Evaluation is the outcome of checking one price against one rule.
// Pure function output: no identity, nothing persisted.
type Evaluation struct {
	Triggered     bool
	Kind          AlertKind
	PercentChange float64
	CurrentPrice  float64
	BaselinePrice float64
}

// TriggeredAlert is the event handed to notification channels when a
// rule fires. The engine's responsibility ends once it is emitted.
type TriggeredAlert struct {
	AlertID       uint
	UserID        uint
	StockID       uint
	CompanyName   string
	Kind          AlertKind
	CurrentPrice  float64
	BaselinePrice float64
	PercentChange float64
	UserEmail     string
}
