package entity

import "time"

// AlertLog records a fired alert for audit and resend suppression.
type AlertLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	AlertID       uint      `gorm:"not null" json:"alert_id"`
	UserID        uint      `gorm:"not null" json:"user_id"`
	StockID       uint      `gorm:"not null" json:"stock_id"`
	TriggerPrice  float64   `gorm:"not null" json:"trigger_price"`
	BaselinePrice float64   `gorm:"not null" json:"baseline_price"`
	PercentChange float64   `gorm:"not null" json:"percent_change"`
	AlertType     string    `gorm:"not null" json:"alert_type"`
	Message       string    `gorm:"not null" json:"message"`
	TriggeredAt   time.Time `gorm:"autoCreateTime" json:"triggered_at"`
}

func (AlertLog) TableName() string {
	return "alert_logs"
}
