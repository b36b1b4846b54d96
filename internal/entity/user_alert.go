package entity

import (
	"time"
)

// UserAlert is one alert rule: a baseline price plus gain/loss thresholds
// for a single tracked company. The engine only reads these rows.
type UserAlert struct {
	ID                   uint        `gorm:"primaryKey" json:"id"`
	UserID               uint        `gorm:"not null" json:"user_id"`
	StockID              uint        `gorm:"not null" json:"stock_id"`
	BaselinePrice        float64     `gorm:"not null" json:"baseline_price"`
	GainThresholdPercent float64     `gorm:"not null" json:"gain_threshold_percent"`
	LossThresholdPercent float64     `gorm:"not null" json:"loss_threshold_percent"`
	IsActive             bool        `gorm:"not null" json:"is_active"`
	CreatedAt            time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time   `gorm:"autoUpdateTime" json:"updated_at"`
	Stock                Stock       `gorm:"foreignKey:StockID" json:"stock"`
	User                 UserProfile `gorm:"foreignKey:UserID" json:"user"`
}

func (UserAlert) TableName() string {
	return "user_alerts"
}
