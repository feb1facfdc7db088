package handler

import (
	"time"

	"github.com/draftly/backend/internal/domain/document"
)

// GenerateProposalRequest is the proposal generation form
// @name GenerateProposalRequest
type GenerateProposalRequest struct {
	ClientName   string  `json:"clientName" binding:"required,max=200"`
	ProjectType  string  `json:"projectType" binding:"required,max=200"`
	ProjectScope string  `json:"projectScope"`
	Price        float64 `json:"price" binding:"min=0"`
	Title        string  `json:"title" binding:"omitempty,max=255"`

	ClientBackground      string `json:"clientBackground"`
	ProjectGoals          string `json:"projectGoals"`
	Deliverables          string `json:"deliverables"`
	Timeline              string `json:"timeline"`
	PaymentTerms          string `json:"paymentTerms"`
	UniqueSellingPoints   string `json:"uniqueSellingPoints"`
	CompetitiveAdvantages string `json:"competitiveAdvantages"`
	ClientChallenges      string `json:"clientChallenges"`
	ProposedSolution      string `json:"proposedSolution"`
	SocialProof           string `json:"socialProof"`

	AuthorName     string `json:"authorName"`
	AuthorPosition string `json:"authorPosition"`
	CompanyName    string `json:"companyName"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	CurrentDate    string `json:"currentDate"`
}

// GenerateEmailRequest is the onboarding email generation form
// @name GenerateEmailRequest
type GenerateEmailRequest struct {
	ClientName        string `json:"clientName" binding:"required,max=200"`
	CompanyName       string `json:"companyName" binding:"required,max=200"`
	OnboardingDetails string `json:"onboardingDetails"`

	AuthorName     string `json:"authorName"`
	AuthorPosition string `json:"authorPosition"`
	AuthorEmail    string `json:"authorEmail"`
	CurrentDate    string `json:"currentDate"`
}

// InvoiceItemRequest is one line of the invoice form.
// The amount is recomputed server-side from quantity and rate.
type InvoiceItemRequest struct {
	Description string  `json:"description" binding:"required,max=500"`
	Quantity    float64 `json:"quantity" binding:"min=0"`
	Rate        float64 `json:"rate" binding:"min=0"`
}

// GenerateInvoiceRequest is the invoice generation form
// @name GenerateInvoiceRequest
type GenerateInvoiceRequest struct {
	ClientName  string               `json:"clientName" binding:"required,max=200"`
	ProjectName string               `json:"projectName" binding:"required,max=200"`
	AmountDue   float64              `json:"amountDue" binding:"min=0"`
	DueDate     string               `json:"dueDate" binding:"required"`
	Items       []InvoiceItemRequest `json:"items" binding:"required,min=1,dive"`

	BusinessName    string `json:"businessName"`
	BusinessAddress string `json:"businessAddress"`
	BusinessPhone   string `json:"businessPhone"`
	BusinessEmail   string `json:"businessEmail"`
	ClientAddress   string `json:"clientAddress"`
	ClientEmail     string `json:"clientEmail"`

	AuthorName     string `json:"authorName"`
	AuthorPosition string `json:"authorPosition"`
	CurrentDate    string `json:"currentDate"`
}

// ProposalData is the outward-facing proposal representation
type ProposalData struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	ClientName   string    `json:"clientName"`
	ProjectType  string    `json:"projectType"`
	ProjectScope string    `json:"projectScope,omitempty"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"createdAt"`
}

// EmailData is the outward-facing onboarding email representation
type EmailData struct {
	ID                string    `json:"id"`
	Title             string    `json:"title"`
	ClientName        string    `json:"clientName"`
	CompanyName       string    `json:"companyName"`
	OnboardingDetails string    `json:"onboardingDetails,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// InvoiceItemData is the outward-facing invoice line representation
type InvoiceItemData struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// InvoiceData is the outward-facing invoice representation
type InvoiceData struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	ClientName  string            `json:"clientName"`
	ProjectName string            `json:"projectName"`
	AmountDue   float64           `json:"amountDue"`
	DueDate     time.Time         `json:"dueDate"`
	Items       []InvoiceItemData `json:"items"`
	Subtotal    float64           `json:"subtotal"`
	CreatedAt   time.Time         `json:"createdAt"`
}

// GenerateProposalResponse carries the persisted record and generated content
type GenerateProposalResponse struct {
	Proposal ProposalData `json:"proposal"`
	Content  string       `json:"content"`
	Warning  string       `json:"warning,omitempty"`
}

// GenerateEmailResponse carries the persisted record and generated content
type GenerateEmailResponse struct {
	Email   EmailData `json:"email"`
	Content string    `json:"content"`
	Warning string    `json:"warning,omitempty"`
}

// GenerateInvoiceResponse carries the persisted record and generated content
type GenerateInvoiceResponse struct {
	Invoice InvoiceData `json:"invoice"`
	Content string      `json:"content"`
	Warning string      `json:"warning,omitempty"`
}

// ProposalListResponse is a degradable proposal listing
type ProposalListResponse struct {
	Proposals []ProposalData `json:"proposals"`
	Warning   string         `json:"warning,omitempty"`
}

// EmailListResponse is a degradable onboarding email listing
type EmailListResponse struct {
	Emails  []EmailData `json:"emails"`
	Warning string      `json:"warning,omitempty"`
}

// InvoiceListResponse is a degradable invoice listing
type InvoiceListResponse struct {
	Invoices []InvoiceData `json:"invoices"`
	Warning  string        `json:"warning,omitempty"`
}

// RecentDocumentsResponse is the merged cross-type listing
type RecentDocumentsResponse struct {
	Documents []document.Summary `json:"documents"`
	Warning   string             `json:"warning,omitempty"`
}

func toProposalData(p *document.Proposal) ProposalData {
	return ProposalData{
		ID:           p.ID.String(),
		Title:        p.DisplayTitle(),
		ClientName:   p.ClientName,
		ProjectType:  p.ProjectType,
		ProjectScope: p.ProjectScope,
		Price:        p.Price.InexactFloat64(),
		CreatedAt:    p.CreatedAt,
	}
}

func toEmailData(e *document.OnboardingEmail) EmailData {
	return EmailData{
		ID:                e.ID.String(),
		Title:             e.DisplayTitle(),
		ClientName:        e.ClientName,
		CompanyName:       e.CompanyName,
		OnboardingDetails: e.OnboardingDetails,
		CreatedAt:         e.CreatedAt,
	}
}

func toInvoiceData(i *document.Invoice) InvoiceData {
	items := make([]InvoiceItemData, 0, len(i.Items))
	for _, item := range i.Items {
		items = append(items, InvoiceItemData{
			Description: item.Description,
			Quantity:    item.Quantity.InexactFloat64(),
			Rate:        item.Rate.InexactFloat64(),
			Amount:      item.Amount.InexactFloat64(),
		})
	}
	return InvoiceData{
		ID:          i.ID.String(),
		Title:       i.DisplayTitle(),
		ClientName:  i.ClientName,
		ProjectName: i.ProjectName,
		AmountDue:   i.AmountDue.InexactFloat64(),
		DueDate:     i.DueDate,
		Items:       items,
		Subtotal:    i.Subtotal().InexactFloat64(),
		CreatedAt:   i.CreatedAt,
	}
}
