package document

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvoiceItem(t *testing.T) {
	t.Run("derives amount from quantity and rate", func(t *testing.T) {
		item, err := NewInvoiceItem("Design work", decimal.NewFromInt(3), decimal.NewFromInt(50))
		require.NoError(t, err)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("ignores a tampered amount", func(t *testing.T) {
		item, err := NewInvoiceItem("Design work", decimal.NewFromInt(2), decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.True(t, item.Amount.Equal(decimal.NewFromInt(200)))
	})

	t.Run("rejects empty description", func(t *testing.T) {
		_, err := NewInvoiceItem("  ", decimal.NewFromInt(1), decimal.NewFromInt(10))
		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewInvoiceItem("Work", decimal.NewFromInt(-1), decimal.NewFromInt(10))
		assert.Error(t, err)
	})
}

func TestInvoiceSubtotal(t *testing.T) {
	items := []InvoiceItem{
		{Description: "Design", Quantity: decimal.NewFromInt(3), Rate: decimal.NewFromInt(50)},
		{Description: "Review", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(75)},
	}

	inv, err := NewInvoice(uuid.New(), "Acme Corp", "Website Redesign",
		decimal.NewFromInt(225), time.Now().AddDate(0, 1, 0),
		BusinessDetails{Name: "Studio"}, ClientDetails{Name: "Acme Corp"}, items)
	require.NoError(t, err)

	assert.True(t, inv.Subtotal().Equal(decimal.NewFromInt(225)))
	for _, item := range inv.Items {
		assert.Equal(t, inv.ID, item.InvoiceID)
	}
}

func TestNewInvoiceValidation(t *testing.T) {
	items := []InvoiceItem{
		{Description: "Work", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100)},
	}

	_, err := NewInvoice(uuid.New(), "", "Project", decimal.NewFromInt(100), time.Now(), BusinessDetails{}, ClientDetails{}, items)
	assert.Error(t, err)

	_, err = NewInvoice(uuid.New(), "Client", "", decimal.NewFromInt(100), time.Now(), BusinessDetails{}, ClientDetails{}, items)
	assert.Error(t, err)

	_, err = NewInvoice(uuid.New(), "Client", "Project", decimal.NewFromInt(-1), time.Now(), BusinessDetails{}, ClientDetails{}, items)
	assert.Error(t, err)

	_, err = NewInvoice(uuid.New(), "Client", "Project", decimal.NewFromInt(100), time.Now(), BusinessDetails{}, ClientDetails{}, nil)
	assert.Error(t, err)

	_, err = NewInvoice(uuid.New(), "Client", "Project", decimal.NewFromInt(100), time.Now(), BusinessDetails{}, ClientDetails{}, []InvoiceItem{})
	assert.Error(t, err)
}

func TestSummaries(t *testing.T) {
	userID := uuid.New()

	p, err := NewProposal(userID, "Acme Corp", "Web Development", "Full site", decimal.NewFromInt(5000))
	require.NoError(t, err)
	assert.Equal(t, "Proposal for Acme Corp", p.Summary().Title)
	p.Title = "Custom Title"
	assert.Equal(t, "Custom Title", p.Summary().Title)

	e, err := NewOnboardingEmail(userID, "Acme Corp", "Studio LLC", "Kickoff details")
	require.NoError(t, err)
	assert.Equal(t, "Welcome Email for Acme Corp", e.Summary().Title)
	assert.Equal(t, TypeEmail, e.Summary().Type)

	i, err := NewInvoice(userID, "Acme Corp", "Website Redesign", decimal.NewFromInt(100), time.Now(),
		BusinessDetails{}, ClientDetails{Name: "Acme Corp"},
		[]InvoiceItem{{Description: "Work", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(100)}})
	require.NoError(t, err)
	assert.Equal(t, "Invoice for Website Redesign", i.Summary().Title)
}

func TestParseType(t *testing.T) {
	for _, valid := range []string{"proposal", "email", "invoice"} {
		dt, err := ParseType(valid)
		require.NoError(t, err)
		assert.Equal(t, Type(valid), dt)
	}

	_, err := ParseType("report")
	assert.Error(t, err)
}
