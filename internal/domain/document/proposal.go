package document

import (
	"strings"

	"github.com/draftly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Proposal is a business proposal record owned by a single user
type Proposal struct {
	shared.BaseEntity
	UserID       uuid.UUID
	ClientName   string
	ProjectType  string
	ProjectScope string
	Price        decimal.Decimal
	Title        string

	// Optional long-form fields used by detailed proposals
	ClientBackground      string
	ProjectGoals          string
	Deliverables          string
	Timeline              string
	PaymentTerms          string
	UniqueSellingPoints   string
	CompetitiveAdvantages string
	ClientChallenges      string
	ProposedSolution      string
	SocialProof           string
}

// NewProposal creates a proposal with the required fields validated
func NewProposal(userID uuid.UUID, clientName, projectType, projectScope string, price decimal.Decimal) (*Proposal, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name is required")
	}
	if strings.TrimSpace(projectType) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Project type is required")
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Price cannot be negative")
	}

	return &Proposal{
		BaseEntity:   shared.NewBaseEntity(),
		UserID:       userID,
		ClientName:   clientName,
		ProjectType:  projectType,
		ProjectScope: projectScope,
		Price:        price,
	}, nil
}

// DisplayTitle returns the stored title or the conventional default
func (p *Proposal) DisplayTitle() string {
	return ProposalTitle(p.Title, p.ClientName)
}

// Summary projects the proposal into the uniform document summary
func (p *Proposal) Summary() Summary {
	return Summary{
		ID:         p.ID,
		Type:       TypeProposal,
		Title:      p.DisplayTitle(),
		ClientName: p.ClientName,
		CreatedAt:  p.CreatedAt,
		UserID:     p.UserID,
	}
}
