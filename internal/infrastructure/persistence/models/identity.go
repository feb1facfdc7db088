package models

import (
	"time"

	"github.com/draftly/backend/internal/domain/identity"
)

// UserModel is the GORM model for users
type UserModel struct {
	BaseModel
	Name         string `gorm:"size:200;not null"`
	Email        string `gorm:"size:200;not null;uniqueIndex"`
	Company      string `gorm:"size:200"`
	PasswordHash string `gorm:"size:255;not null"`

	SubscriptionStatus string     `gorm:"size:20;not null;default:'trial'"`
	SubscriptionPlan   string     `gorm:"size:20;not null;default:'monthly'"`
	TrialEndsAt        *time.Time
}

// TableName specifies the table name
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts the model to a domain user
func (m *UserModel) ToDomain() *identity.User {
	return &identity.User{
		BaseEntity:   m.BaseModel.ToDomain(),
		Name:         m.Name,
		Email:        m.Email,
		Company:      m.Company,
		PasswordHash: m.PasswordHash,
		Subscription: identity.Subscription{
			Status:      identity.SubscriptionStatus(m.SubscriptionStatus),
			Plan:        identity.SubscriptionPlan(m.SubscriptionPlan),
			TrialEndsAt: m.TrialEndsAt,
		},
	}
}

// UserModelFromDomain converts a domain user to the model
func UserModelFromDomain(u *identity.User) *UserModel {
	m := &UserModel{
		Name:               u.Name,
		Email:              u.Email,
		Company:            u.Company,
		PasswordHash:       u.PasswordHash,
		SubscriptionStatus: string(u.Subscription.Status),
		SubscriptionPlan:   string(u.Subscription.Plan),
		TrialEndsAt:        u.Subscription.TrialEndsAt,
	}
	m.FromDomainBaseEntity(u.BaseEntity)
	return m
}
