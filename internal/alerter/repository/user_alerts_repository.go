package repository

import (
	"context"

	"stock-alert-engine/internal/entity"

	"gorm.io/gorm"
)

// UserAlertsRepository reads alert rules. The engine never writes them.
type UserAlertsRepository interface {
	GetActiveAlerts(ctx context.Context) ([]entity.UserAlert, error)
}

type userAlertsRepository struct {
	db *gorm.DB
}

// NewUserAlertsRepository creates a new UserAlertsRepository.
func NewUserAlertsRepository(db *gorm.DB) UserAlertsRepository {
	return &userAlertsRepository{db: db}
}

// GetActiveAlerts returns every active rule with the denormalized stock
// and user data notification needs.
func (r *userAlertsRepository) GetActiveAlerts(ctx context.Context) ([]entity.UserAlert, error) {
	var alerts []entity.UserAlert
	err := r.db.WithContext(ctx).
		Preload("Stock").
		Preload("User").
		Where("is_active = ?", true).
		Order("id asc").
		Find(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}
