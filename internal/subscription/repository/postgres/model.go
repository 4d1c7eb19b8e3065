package postgres

import (
	"time"

	"frostwatch-srv/internal/model"
)

// subscriptionModel is the GORM-specific struct for the 'subscriptions' table.
type subscriptionModel struct {
	ID         string `gorm:"type:uuid;primaryKey"`
	Email      string `gorm:"type:varchar(255);not null;uniqueIndex:idx_subscriptions_email"`
	ZipCode    string `gorm:"type:varchar(5);not null"`
	Active     bool   `gorm:"not null;default:true"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LastSentAt *time.Time
}

// TableName explicitly sets the table name for GORM.
func (subscriptionModel) TableName() string {
	return "subscriptions"
}

func (m *subscriptionModel) toDomain() model.Subscription {
	return model.Subscription{
		ID:         m.ID,
		Email:      m.Email,
		ZipCode:    m.ZipCode,
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
		LastSentAt: m.LastSentAt,
	}
}

func fromDomain(s model.Subscription) *subscriptionModel {
	return &subscriptionModel{
		ID:         s.ID,
		Email:      s.Email,
		ZipCode:    s.ZipCode,
		Active:     s.Active,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		LastSentAt: s.LastSentAt,
	}
}
