package integration

import (
	"context"
	"testing"
	"time"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/infrastructure/config"
	"github.com/draftly/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDocumentRepositories(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	tdb := NewTestDB(t)
	ctx := context.Background()

	proposals := persistence.NewGormProposalRepository(tdb.DB)
	emails := persistence.NewGormOnboardingEmailRepository(tdb.DB)
	invoices := persistence.NewGormInvoiceRepository(tdb.DB, config.ItemWritePolicyStrict, zap.NewNop())

	userID := uuid.New()
	otherUserID := uuid.New()

	t.Run("proposal round trip keeps long-form fields", func(t *testing.T) {
		proposal, err := document.NewProposal(userID, "Acme Corp", "Website Redesign", "Full redesign of marketing site", decimal.NewFromInt(4500))
		require.NoError(t, err)
		proposal.Title = "Proposal for Acme Corp"
		proposal.ProjectGoals = "Increase conversion by 20%"
		proposal.Deliverables = "Design system, 12 page templates"
		proposal.PaymentTerms = "50% upfront, 50% on delivery"

		saved, err := proposals.Save(ctx, proposal)
		require.NoError(t, err)

		loaded, err := proposals.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Corp", loaded.ClientName)
		assert.Equal(t, "Proposal for Acme Corp", loaded.Title)
		assert.Equal(t, "Increase conversion by 20%", loaded.ProjectGoals)
		assert.Equal(t, "50% upfront, 50% on delivery", loaded.PaymentTerms)
		assert.True(t, decimal.NewFromInt(4500).Equal(loaded.Price))
	})

	t.Run("onboarding email round trip", func(t *testing.T) {
		email, err := document.NewOnboardingEmail(userID, "Dana", "Dana Consulting", "Weekly syncs on Mondays")
		require.NoError(t, err)

		saved, err := emails.Save(ctx, email)
		require.NoError(t, err)

		loaded, err := emails.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		assert.Equal(t, "Dana", loaded.ClientName)
		assert.Equal(t, "Dana Consulting", loaded.CompanyName)
		assert.Equal(t, "Weekly syncs on Mondays", loaded.OnboardingDetails)
	})

	t.Run("invoice round trip preserves recomputed line items", func(t *testing.T) {
		item, err := document.NewInvoiceItem("Development work", decimal.NewFromInt(10), decimal.NewFromInt(120))
		require.NoError(t, err)

		invoice, err := document.NewInvoice(
			userID,
			"Acme Corp",
			"Website Redesign",
			decimal.NewFromInt(1200),
			time.Now().AddDate(0, 1, 0),
			document.BusinessDetails{Name: "Jane Design Studio", Email: "jane@example.com"},
			document.ClientDetails{Name: "Acme Corp", Email: "billing@acme.example.com"},
			[]document.InvoiceItem{item},
		)
		require.NoError(t, err)

		saved, err := invoices.Save(ctx, invoice)
		require.NoError(t, err)

		loaded, err := invoices.FindByID(ctx, saved.ID)
		require.NoError(t, err)
		require.Len(t, loaded.Items, 1)
		assert.Equal(t, "Development work", loaded.Items[0].Description)
		assert.True(t, decimal.NewFromInt(1200).Equal(loaded.Items[0].Amount))
		assert.True(t, decimal.NewFromInt(1200).Equal(loaded.Subtotal()))
		assert.Equal(t, "Jane Design Studio", loaded.Business.Name)
	})

	t.Run("listing is scoped to the owner", func(t *testing.T) {
		foreign, err := document.NewProposal(otherUserID, "Globex", "Branding", "", decimal.NewFromInt(900))
		require.NoError(t, err)
		_, err = proposals.Save(ctx, foreign)
		require.NoError(t, err)

		mine, err := proposals.ListByUser(ctx, userID)
		require.NoError(t, err)
		require.Len(t, mine, 1)
		assert.Equal(t, "Acme Corp", mine[0].ClientName)

		theirs, err := proposals.ListByUser(ctx, otherUserID)
		require.NoError(t, err)
		require.Len(t, theirs, 1)
		assert.Equal(t, "Globex", theirs[0].ClientName)
	})

	t.Run("recent summaries come back newest first", func(t *testing.T) {
		second, err := document.NewProposal(userID, "Initech", "Audit", "", decimal.NewFromInt(2000))
		require.NoError(t, err)
		_, err = proposals.Save(ctx, second)
		require.NoError(t, err)

		summaries, err := proposals.RecentByUser(ctx, userID, 5)
		require.NoError(t, err)
		require.Len(t, summaries, 2)
		assert.Equal(t, document.TypeProposal, summaries[0].Type)
		assert.False(t, summaries[0].CreatedAt.Before(summaries[1].CreatedAt))

		limited, err := proposals.RecentByUser(ctx, userID, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 1)
	})

	t.Run("delete removes the document", func(t *testing.T) {
		doomed, err := document.NewOnboardingEmail(userID, "Shortlived", "Temp Co", "")
		require.NoError(t, err)
		saved, err := emails.Save(ctx, doomed)
		require.NoError(t, err)

		require.NoError(t, emails.Delete(ctx, saved.ID))

		_, err = emails.FindByID(ctx, saved.ID)
		assert.Error(t, err)
	})
}
