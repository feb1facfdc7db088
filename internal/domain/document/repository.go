package document

import (
	"context"

	"github.com/google/uuid"
)

// ProposalRepository persists proposals
type ProposalRepository interface {
	Save(ctx context.Context, proposal *Proposal) (*Proposal, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Proposal, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Proposal, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// OnboardingEmailRepository persists onboarding emails
type OnboardingEmailRepository interface {
	Save(ctx context.Context, email *OnboardingEmail) (*OnboardingEmail, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OnboardingEmail, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]OnboardingEmail, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceRepository persists invoices and their line items
type InvoiceRepository interface {
	Save(ctx context.Context, invoice *Invoice) (*Invoice, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Invoice, error)
	RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]Summary, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
