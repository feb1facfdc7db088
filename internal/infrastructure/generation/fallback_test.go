package generation

import (
	"testing"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/stretchr/testify/assert"
)

func TestSynthesizeProposal(t *testing.T) {
	t.Run("renders supplied fields", func(t *testing.T) {
		content := Synthesize(document.TypeProposal, document.FallbackPayload{
			"clientName":     "Acme Corp",
			"projectType":    "Web Development",
			"projectScope":   "Full redesign",
			"price":          "$5,000.00",
			"authorName":     "Jamie Rivera",
			"authorPosition": "Designer",
			"companyName":    "Studio LLC",
		})

		assert.Contains(t, content, "# Proposal for Acme Corp")
		assert.Contains(t, content, "Project Type: Web Development")
		assert.Contains(t, content, "Full redesign")
		assert.Contains(t, content, "Estimated Cost: $5,000.00")
		assert.Contains(t, content, "Jamie Rivera")
		assert.Contains(t, content, "Studio LLC")
	})

	t.Run("missing price falls back to a neutral line", func(t *testing.T) {
		content := Synthesize(document.TypeProposal, document.FallbackPayload{"clientName": "Acme Corp"})
		assert.Contains(t, content, "Pricing to be determined")
		assert.NotContains(t, content, "Estimated Cost")
	})

	t.Run("missing client defaults to Client", func(t *testing.T) {
		content := Synthesize(document.TypeProposal, nil)
		assert.Contains(t, content, "# Proposal for Client")
	})
}

func TestSynthesizeEmail(t *testing.T) {
	content := Synthesize(document.TypeEmail, document.FallbackPayload{
		"clientName":        "Acme Corp",
		"onboardingDetails": "Kickoff call on Monday",
		"authorName":        "Jamie Rivera",
	})

	assert.Contains(t, content, "# Welcome Email")
	assert.Contains(t, content, "Dear Acme Corp,")
	assert.Contains(t, content, "Kickoff call on Monday")
	assert.Contains(t, content, "Best regards,\nJamie Rivera")
}

func TestSynthesizeInvoice(t *testing.T) {
	content := Synthesize(document.TypeInvoice, document.FallbackPayload{
		"clientName":  "Acme Corp",
		"projectName": "Website Redesign",
		"amountDue":   "$225.00",
		"dueDate":     "April 30, 2025",
	})

	assert.Contains(t, content, "# Invoice")
	assert.Contains(t, content, "**Client:** Acme Corp")
	assert.Contains(t, content, "**Amount Due:** $225.00")
	assert.Contains(t, content, "**Due Date:** April 30, 2025")

	t.Run("empty payload uses defaults", func(t *testing.T) {
		content := Synthesize(document.TypeInvoice, nil)
		assert.Contains(t, content, "**Amount Due:** $0.00")
		assert.Contains(t, content, "**Due Date:** Upon receipt")
	})
}

func TestSynthesizeUnknownType(t *testing.T) {
	content := Synthesize(document.Type("brochure"), nil)
	assert.Contains(t, content, "# Document")
	assert.Contains(t, content, "Please try again later")
}
