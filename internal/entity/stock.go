package entity

import (
	"time"
)

// Stock is a company tracked by at least one alert.
type Stock struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CompanyName string    `gorm:"not null" json:"company_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Stock) TableName() string {
	return "stocks"
}

// UserProfile carries the contact data needed for notifications.
type UserProfile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"not null" json:"email"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}
