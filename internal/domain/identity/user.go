package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/draftly/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// SubscriptionStatus represents where the user sits in the billing lifecycle
type SubscriptionStatus string

const (
	SubscriptionStatusTrial    SubscriptionStatus = "trial"
	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"
)

// SubscriptionPlan represents the billing cadence
type SubscriptionPlan string

const (
	SubscriptionPlanMonthly SubscriptionPlan = "monthly"
	SubscriptionPlanAnnual  SubscriptionPlan = "annual"
)

// Password cost for bcrypt
const bcryptCost = 12

// Default trial length granted on registration
const trialDuration = 14 * 24 * time.Hour

// Subscription describes a user's access to document generation
type Subscription struct {
	Status      SubscriptionStatus
	Plan        SubscriptionPlan
	TrialEndsAt *time.Time
}

// User is the account owning documents in the system
type User struct {
	shared.BaseEntity
	Name         string
	Email        string
	Company      string
	PasswordHash string
	Subscription Subscription
}

// NewUser creates a registered user with a fresh trial subscription
func NewUser(name, email, password string) (*User, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateEmail(email); err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	trialEnds := time.Now().Add(trialDuration)
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Name:         strings.TrimSpace(name),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		Subscription: Subscription{
			Status:      SubscriptionStatusTrial,
			Plan:        SubscriptionPlanMonthly,
			TrialEndsAt: &trialEnds,
		},
	}, nil
}

// SetCompany sets the user's company name
func (u *User) SetCompany(company string) error {
	if company != "" && len(company) > 200 {
		return shared.NewDomainError("INVALID_COMPANY", "Company cannot exceed 200 characters")
	}

	u.Company = strings.TrimSpace(company)
	u.Touch()
	return nil
}

// ChangePassword changes the user's password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.Touch()
	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Activate moves the user onto a paid plan
func (u *User) Activate(plan SubscriptionPlan) error {
	if plan != SubscriptionPlanMonthly && plan != SubscriptionPlanAnnual {
		return shared.NewDomainError("INVALID_PLAN", "Unknown subscription plan")
	}

	u.Subscription.Status = SubscriptionStatusActive
	u.Subscription.Plan = plan
	u.Subscription.TrialEndsAt = nil
	u.Touch()
	return nil
}

// Cancel ends the subscription
func (u *User) Cancel() error {
	if u.Subscription.Status == SubscriptionStatusCanceled {
		return shared.NewDomainError("ALREADY_CANCELED", "Subscription is already canceled")
	}

	u.Subscription.Status = SubscriptionStatusCanceled
	u.Touch()
	return nil
}

// TrialExpired reports whether a trial subscription has run out
func (u *User) TrialExpired() bool {
	if u.Subscription.Status != SubscriptionStatusTrial {
		return false
	}
	if u.Subscription.TrialEndsAt == nil {
		return false
	}
	return time.Now().After(*u.Subscription.TrialEndsAt)
}

// CanGenerate gates access to the document generator: an active plan, or a
// trial that has not yet expired
func (u *User) CanGenerate() bool {
	switch u.Subscription.Status {
	case SubscriptionStatusActive:
		return true
	case SubscriptionStatusTrial:
		return !u.TrialExpired()
	default:
		return false
	}
}

// Validation functions

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Name cannot exceed 200 characters")
	}
	return nil
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot be empty")
	}
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}

	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
