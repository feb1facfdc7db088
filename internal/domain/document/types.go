package document

import (
	"fmt"
	"time"

	"github.com/draftly/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Type identifies which of the three document kinds a record belongs to
type Type string

const (
	TypeProposal Type = "proposal"
	TypeEmail    Type = "email"
	TypeInvoice  Type = "invoice"
)

// ParseType validates a wire-level document type string
func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeProposal, TypeEmail, TypeInvoice:
		return Type(s), nil
	default:
		return "", shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown document type: %s", s))
	}
}

// Summary is the uniform cross-type projection used by dashboards
// and the recent-documents listing
type Summary struct {
	ID         uuid.UUID `json:"id"`
	Type       Type      `json:"type"`
	Title      string    `json:"title"`
	ClientName string    `json:"clientName"`
	CreatedAt  time.Time `json:"createdAt"`
	UserID     uuid.UUID `json:"userId"`
}

// ProposalTitle returns the stored title or the conventional default
func ProposalTitle(title, clientName string) string {
	if title != "" {
		return title
	}
	return fmt.Sprintf("Proposal for %s", clientName)
}

// EmailTitle returns the conventional onboarding email title
func EmailTitle(clientName string) string {
	return fmt.Sprintf("Welcome Email for %s", clientName)
}

// InvoiceTitle returns the conventional invoice title
func InvoiceTitle(projectName string) string {
	return fmt.Sprintf("Invoice for %s", projectName)
}
