package repository

import (
	"context"
	"time"

	"stock-alert-engine/internal/entity"

	"gorm.io/gorm"
)

// PriceHistoryRepository appends one price sample per evaluation cycle.
type PriceHistoryRepository interface {
	Append(ctx context.Context, stockID uint, price float64, recordedAt time.Time) error
}

type priceHistoryRepository struct {
	db *gorm.DB
}

// NewPriceHistoryRepository creates a new PriceHistoryRepository.
func NewPriceHistoryRepository(db *gorm.DB) PriceHistoryRepository {
	return &priceHistoryRepository{db: db}
}

func (r *priceHistoryRepository) Append(ctx context.Context, stockID uint, price float64, recordedAt time.Time) error {
	record := entity.PriceHistory{
		StockID:    stockID,
		Price:      price,
		RecordedAt: recordedAt,
	}
	return r.db.WithContext(ctx).Create(&record).Error
}
