package models

import (
	"time"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProposalModel is the GORM model for proposals
type ProposalModel struct {
	BaseModel
	UserID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientName   string          `gorm:"size:200;not null"`
	ProjectType  string          `gorm:"size:200;not null"`
	ProjectScope string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Title        string          `gorm:"size:255"`

	ClientBackground      string `gorm:"type:text"`
	ProjectGoals          string `gorm:"type:text"`
	Deliverables          string `gorm:"type:text"`
	Timeline              string `gorm:"size:500"`
	PaymentTerms          string `gorm:"size:500"`
	UniqueSellingPoints   string `gorm:"type:text"`
	CompetitiveAdvantages string `gorm:"type:text"`
	ClientChallenges      string `gorm:"type:text"`
	ProposedSolution      string `gorm:"type:text"`
	SocialProof           string `gorm:"type:text"`
}

// TableName specifies the table name
func (ProposalModel) TableName() string {
	return "proposals"
}

// ToDomain converts the model to a domain proposal
func (m *ProposalModel) ToDomain() *document.Proposal {
	return &document.Proposal{
		BaseEntity:            m.BaseModel.ToDomain(),
		UserID:                m.UserID,
		ClientName:            m.ClientName,
		ProjectType:           m.ProjectType,
		ProjectScope:          m.ProjectScope,
		Price:                 m.Price,
		Title:                 m.Title,
		ClientBackground:      m.ClientBackground,
		ProjectGoals:          m.ProjectGoals,
		Deliverables:          m.Deliverables,
		Timeline:              m.Timeline,
		PaymentTerms:          m.PaymentTerms,
		UniqueSellingPoints:   m.UniqueSellingPoints,
		CompetitiveAdvantages: m.CompetitiveAdvantages,
		ClientChallenges:      m.ClientChallenges,
		ProposedSolution:      m.ProposedSolution,
		SocialProof:           m.SocialProof,
	}
}

// ProposalModelFromDomain converts a domain proposal to the model
func ProposalModelFromDomain(p *document.Proposal) *ProposalModel {
	m := &ProposalModel{
		UserID:                p.UserID,
		ClientName:            p.ClientName,
		ProjectType:           p.ProjectType,
		ProjectScope:          p.ProjectScope,
		Price:                 p.Price,
		Title:                 p.Title,
		ClientBackground:      p.ClientBackground,
		ProjectGoals:          p.ProjectGoals,
		Deliverables:          p.Deliverables,
		Timeline:              p.Timeline,
		PaymentTerms:          p.PaymentTerms,
		UniqueSellingPoints:   p.UniqueSellingPoints,
		CompetitiveAdvantages: p.CompetitiveAdvantages,
		ClientChallenges:      p.ClientChallenges,
		ProposedSolution:      p.ProposedSolution,
		SocialProof:           p.SocialProof,
	}
	m.FromDomainBaseEntity(p.BaseEntity)
	return m
}

// OnboardingEmailModel is the GORM model for onboarding emails
type OnboardingEmailModel struct {
	BaseModel
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientName        string    `gorm:"size:200;not null"`
	CompanyName       string    `gorm:"size:200;not null"`
	OnboardingDetails string    `gorm:"type:text"`
}

// TableName specifies the table name
func (OnboardingEmailModel) TableName() string {
	return "onboarding_emails"
}

// ToDomain converts the model to a domain onboarding email
func (m *OnboardingEmailModel) ToDomain() *document.OnboardingEmail {
	return &document.OnboardingEmail{
		BaseEntity:        m.BaseModel.ToDomain(),
		UserID:            m.UserID,
		ClientName:        m.ClientName,
		CompanyName:       m.CompanyName,
		OnboardingDetails: m.OnboardingDetails,
	}
}

// OnboardingEmailModelFromDomain converts a domain onboarding email to the model
func OnboardingEmailModelFromDomain(e *document.OnboardingEmail) *OnboardingEmailModel {
	m := &OnboardingEmailModel{
		UserID:            e.UserID,
		ClientName:        e.ClientName,
		CompanyName:       e.CompanyName,
		OnboardingDetails: e.OnboardingDetails,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}

// InvoiceModel is the GORM model for invoices. Line items live in their own
// table and are written separately from the invoice row.
type InvoiceModel struct {
	BaseModel
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	ClientName  string          `gorm:"size:200;not null"`
	ProjectName string          `gorm:"size:200;not null"`
	AmountDue   decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	DueDate     time.Time       `gorm:"not null"`

	BusinessName    string `gorm:"size:200"`
	BusinessAddress string `gorm:"size:500"`
	BusinessPhone   string `gorm:"size:50"`
	BusinessEmail   string `gorm:"size:200"`

	ClientAddress string `gorm:"size:500"`
	ClientEmail   string `gorm:"size:200"`
}

// TableName specifies the table name
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the model to a domain invoice without items
func (m *InvoiceModel) ToDomain() *document.Invoice {
	return &document.Invoice{
		BaseEntity:  m.BaseModel.ToDomain(),
		UserID:      m.UserID,
		ClientName:  m.ClientName,
		ProjectName: m.ProjectName,
		AmountDue:   m.AmountDue,
		DueDate:     m.DueDate,
		Business: document.BusinessDetails{
			Name:    m.BusinessName,
			Address: m.BusinessAddress,
			Phone:   m.BusinessPhone,
			Email:   m.BusinessEmail,
		},
		Client: document.ClientDetails{
			Name:    m.ClientName,
			Address: m.ClientAddress,
			Email:   m.ClientEmail,
		},
		Items: []document.InvoiceItem{},
	}
}

// InvoiceModelFromDomain converts a domain invoice to the model
func InvoiceModelFromDomain(i *document.Invoice) *InvoiceModel {
	m := &InvoiceModel{
		UserID:          i.UserID,
		ClientName:      i.ClientName,
		ProjectName:     i.ProjectName,
		AmountDue:       i.AmountDue,
		DueDate:         i.DueDate,
		BusinessName:    i.Business.Name,
		BusinessAddress: i.Business.Address,
		BusinessPhone:   i.Business.Phone,
		BusinessEmail:   i.Business.Email,
		ClientAddress:   i.Client.Address,
		ClientEmail:     i.Client.Email,
	}
	m.FromDomainBaseEntity(i.BaseEntity)
	return m
}

// InvoiceItemModel is the GORM model for invoice line items.
// Position records the line's place in the invoice so reads return items
// in the order they were entered.
type InvoiceItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	InvoiceID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Position    int             `gorm:"not null;default:0"`
	Description string          `gorm:"size:500;not null"`
	Quantity    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Rate        decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
}

// TableName specifies the table name
func (InvoiceItemModel) TableName() string {
	return "invoice_items"
}

// ToDomain converts the model to a domain invoice item
func (m *InvoiceItemModel) ToDomain() document.InvoiceItem {
	return document.InvoiceItem{
		ID:          m.ID,
		InvoiceID:   m.InvoiceID,
		Description: m.Description,
		Quantity:    m.Quantity,
		Rate:        m.Rate,
		Amount:      m.Amount,
	}
}

// InvoiceItemModelFromDomain converts a domain invoice item to the model,
// recording its position within the invoice
func InvoiceItemModelFromDomain(item document.InvoiceItem, position int) *InvoiceItemModel {
	return &InvoiceItemModel{
		ID:          item.ID,
		InvoiceID:   item.InvoiceID,
		Position:    position,
		Description: item.Description,
		Quantity:    item.Quantity,
		Rate:        item.Rate,
		Amount:      item.Amount,
	}
}
