package document

import (
	"time"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/shopspring/decimal"
)

// ProposalCommand carries the proposal form fields into the pipeline
type ProposalCommand struct {
	ClientName   string
	ProjectType  string
	ProjectScope string
	Price        decimal.Decimal
	Title        string

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

	AuthorName     string
	AuthorPosition string
	CompanyName    string
	ContactEmail   string
	ContactPhone   string
	CurrentDate    string
}

// EmailCommand carries the onboarding email form fields
type EmailCommand struct {
	ClientName        string
	CompanyName       string
	OnboardingDetails string

	AuthorName     string
	AuthorPosition string
	AuthorEmail    string
	CurrentDate    string
}

// InvoiceItemCommand is one line of an invoice form.
// Amounts are recomputed server-side, never read from the form.
type InvoiceItemCommand struct {
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
}

// InvoiceCommand carries the invoice form fields
type InvoiceCommand struct {
	ClientName  string
	ProjectName string
	AmountDue   decimal.Decimal
	DueDate     time.Time
	Business    document.BusinessDetails
	Client      document.ClientDetails
	Items       []InvoiceItemCommand

	AuthorName     string
	AuthorPosition string
	CurrentDate    string
}

// GeneratedProposal is the pipeline output for a proposal
type GeneratedProposal struct {
	Proposal *document.Proposal
	Content  string
	Warning  string
}

// GeneratedEmail is the pipeline output for an onboarding email
type GeneratedEmail struct {
	Email   *document.OnboardingEmail
	Content string
	Warning string
}

// GeneratedInvoice is the pipeline output for an invoice
type GeneratedInvoice struct {
	Invoice *document.Invoice
	Content string
	Warning string
}
