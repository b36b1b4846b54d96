package repository

import (
	"context"

	"stock-alert-engine/internal/entity"

	"gorm.io/gorm"
)

// AlertLogsRepository records fired alerts.
type AlertLogsRepository interface {
	Append(ctx context.Context, log *entity.AlertLog) error
}

type alertLogsRepository struct {
	db *gorm.DB
}

// NewAlertLogsRepository creates a new AlertLogsRepository.
func NewAlertLogsRepository(db *gorm.DB) AlertLogsRepository {
	return &alertLogsRepository{db: db}
}

func (r *alertLogsRepository) Append(ctx context.Context, log *entity.AlertLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}
