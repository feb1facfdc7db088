package identity

import (
	"time"

	"github.com/draftly/backend/internal/domain/identity"
	"github.com/draftly/backend/internal/infrastructure/auth"
)

// RegisterRequest carries the signup form
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Company  string `json:"company"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries a refresh token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// ChangePasswordRequest carries a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// SubscribeRequest selects a paid plan
type SubscribeRequest struct {
	Plan string `json:"plan" binding:"required,oneof=monthly annual"`
}

// UserInfo is the outward-facing user representation
type UserInfo struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Email        string           `json:"email"`
	Company      string           `json:"company,omitempty"`
	Subscription SubscriptionInfo `json:"subscription"`
	CreatedAt    time.Time        `json:"createdAt"`
}

// SubscriptionInfo describes the user's subscription state
type SubscriptionInfo struct {
	Status      string     `json:"status"`
	Plan        string     `json:"plan,omitempty"`
	TrialEndsAt *time.Time `json:"trialEndsAt,omitempty"`
	CanGenerate bool       `json:"canGenerate"`
}

// AuthResponse is returned from register, login and refresh
type AuthResponse struct {
	Tokens *auth.TokenPair `json:"tokens"`
	User   UserInfo        `json:"user"`
}

// NewUserInfo maps a domain user to its DTO
func NewUserInfo(user *identity.User) UserInfo {
	return UserInfo{
		ID:      user.ID.String(),
		Name:    user.Name,
		Email:   user.Email,
		Company: user.Company,
		Subscription: SubscriptionInfo{
			Status:      string(user.Subscription.Status),
			Plan:        string(user.Subscription.Plan),
			TrialEndsAt: user.Subscription.TrialEndsAt,
			CanGenerate: user.CanGenerate(),
		},
		CreatedAt: user.CreatedAt,
	}
}
