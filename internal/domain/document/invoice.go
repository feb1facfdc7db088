package document

import (
	"strings"
	"time"

	"github.com/draftly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BusinessDetails identifies the issuing business on an invoice
type BusinessDetails struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// ClientDetails identifies the billed client on an invoice
type ClientDetails struct {
	Name    string
	Address string
	Email   string
}

// InvoiceItem is a single billed line on an invoice.
// Amount is always recomputed from quantity and rate, never trusted from input.
type InvoiceItem struct {
	ID          uuid.UUID
	InvoiceID   uuid.UUID
	Description string
	Quantity    decimal.Decimal
	Rate        decimal.Decimal
	Amount      decimal.Decimal
}

// NewInvoiceItem creates a line item with the amount derived server-side
func NewInvoiceItem(description string, quantity, rate decimal.Decimal) (InvoiceItem, error) {
	if strings.TrimSpace(description) == "" {
		return InvoiceItem{}, shared.NewDomainError("INVALID_INPUT", "Item description is required")
	}
	if quantity.IsNegative() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_INPUT", "Item quantity cannot be negative")
	}
	if rate.IsNegative() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_INPUT", "Item rate cannot be negative")
	}

	return InvoiceItem{
		ID:          uuid.New(),
		Description: description,
		Quantity:    quantity,
		Rate:        rate,
		Amount:      quantity.Mul(rate),
	}, nil
}

// Invoice is an invoice record with its line items
type Invoice struct {
	shared.BaseEntity
	UserID      uuid.UUID
	ClientName  string
	ProjectName string
	AmountDue   decimal.Decimal
	DueDate     time.Time
	Business    BusinessDetails
	Client      ClientDetails
	Items       []InvoiceItem
}

// NewInvoice creates an invoice with required fields validated.
// Items are re-derived through NewInvoiceItem so stored amounts always
// equal quantity times rate.
func NewInvoice(userID uuid.UUID, clientName, projectName string, amountDue decimal.Decimal, dueDate time.Time, business BusinessDetails, client ClientDetails, items []InvoiceItem) (*Invoice, error) {
	if strings.TrimSpace(clientName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name is required")
	}
	if strings.TrimSpace(projectName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Project name is required")
	}
	if amountDue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Amount due cannot be negative")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "At least one invoice item is required")
	}

	inv := &Invoice{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		ClientName:  clientName,
		ProjectName: projectName,
		AmountDue:   amountDue,
		DueDate:     dueDate,
		Business:    business,
		Client:      client,
		Items:       make([]InvoiceItem, 0, len(items)),
	}
	for _, item := range items {
		recomputed, err := NewInvoiceItem(item.Description, item.Quantity, item.Rate)
		if err != nil {
			return nil, err
		}
		recomputed.InvoiceID = inv.ID
		inv.Items = append(inv.Items, recomputed)
	}
	return inv, nil
}

// Subtotal is the sum of all line item amounts
func (i *Invoice) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range i.Items {
		total = total.Add(item.Amount)
	}
	return total
}

// DisplayTitle returns the conventional invoice title
func (i *Invoice) DisplayTitle() string {
	return InvoiceTitle(i.ProjectName)
}

// Summary projects the invoice into the uniform document summary
func (i *Invoice) Summary() Summary {
	return Summary{
		ID:         i.ID,
		Type:       TypeInvoice,
		Title:      i.DisplayTitle(),
		ClientName: i.ClientName,
		CreatedAt:  i.CreatedAt,
		UserID:     i.UserID,
	}
}
