package document

import (
	"strings"

	"github.com/draftly/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OnboardingEmail is a client onboarding email record
type OnboardingEmail struct {
	shared.BaseEntity
	UserID            uuid.UUID
	ClientName        string
	CompanyName       string
	OnboardingDetails string
}

// NewOnboardingEmail creates an onboarding email with required fields validated
func NewOnboardingEmail(userID uuid.UUID, clientName, companyName, onboardingDetails string) (*OnboardingEmail, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name is required")
	}
	if strings.TrimSpace(companyName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Company name is required")
	}

	return &OnboardingEmail{
		BaseEntity:        shared.NewBaseEntity(),
		UserID:            userID,
		ClientName:        clientName,
		CompanyName:       companyName,
		OnboardingDetails: onboardingDetails,
	}, nil
}

// DisplayTitle returns the conventional email title
func (e *OnboardingEmail) DisplayTitle() string {
	return EmailTitle(e.ClientName)
}

// Summary projects the email into the uniform document summary
func (e *OnboardingEmail) Summary() Summary {
	return Summary{
		ID:         e.ID,
		Type:       TypeEmail,
		Title:      e.DisplayTitle(),
		ClientName: e.ClientName,
		CreatedAt:  e.CreatedAt,
		UserID:     e.UserID,
	}
}
