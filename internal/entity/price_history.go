package entity

import "time"

// PriceHistory is one price sample appended per evaluation cycle.
type PriceHistory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StockID    uint      `gorm:"not null" json:"stock_id"`
	Price      float64   `gorm:"not null" json:"price"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`
}

func (PriceHistory) TableName() string {
	return "price_history"
}
