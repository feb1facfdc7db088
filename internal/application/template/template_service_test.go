package template

import (
	"strings"
	"testing"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/domain/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesFor(t *testing.T) {
	svc := NewService()

	emails := svc.TemplatesFor(document.TypeEmail)
	assert.NotEmpty(t, emails)
	for _, tpl := range emails {
		assert.Equal(t, document.TypeEmail, tpl.Type)
	}

	assert.Empty(t, svc.TemplatesFor(document.Type("brochure")))
}

func TestTemplateByID(t *testing.T) {
	svc := NewService()

	tpl, err := svc.TemplateByID("proposal-tech")
	require.NoError(t, err)
	assert.Equal(t, "Technical Project Proposal", tpl.Name)

	_, err = svc.TemplateByID("missing")
	assert.Error(t, err)
}

func TestStyleSheetFor(t *testing.T) {
	svc := NewService()

	t.Run("same inputs give identical output", func(t *testing.T) {
		overrides := map[string]string{"accentColor": "#123456"}
		assert.Equal(t,
			svc.StyleSheetFor(template.StyleCreative, overrides),
			svc.StyleSheetFor(template.StyleCreative, overrides))
	})

	t.Run("exposes all presets", func(t *testing.T) {
		styles := svc.Styles()
		assert.Len(t, styles, 7)
		assert.Contains(t, styles, template.StyleMinimal)
	})
}

func TestAssemble(t *testing.T) {
	svc := NewService()
	tpl, err := svc.TemplateByID("proposal-formal")
	require.NoError(t, err)

	t.Run("sections follow template order", func(t *testing.T) {
		doc := svc.Assemble(tpl, "My Proposal", []template.CustomSection{
			{ID: "pricing", Content: "Total: $5,000"},
			{ID: "intro", Content: "Hello there"},
		})

		assert.Contains(t, doc.Markdown, "# My Proposal")
		introIdx := strings.Index(doc.Markdown, "## Introduction")
		pricingIdx := strings.Index(doc.Markdown, "## Pricing")
		require.GreaterOrEqual(t, introIdx, 0)
		require.GreaterOrEqual(t, pricingIdx, 0)
		assert.Less(t, introIdx, pricingIdx)
	})

	t.Run("required missing sections get the marker", func(t *testing.T) {
		doc := svc.Assemble(tpl, "My Proposal", nil)
		assert.Contains(t, doc.Markdown, "## Timeline\n\n"+MissingSectionMarker)
	})

	t.Run("optional missing sections are omitted", func(t *testing.T) {
		creative, err := svc.TemplateByID("proposal-creative")
		require.NoError(t, err)

		doc := svc.Assemble(creative, "Pitch", []template.CustomSection{{ID: "vision", Content: "Bold"}})
		assert.NotContains(t, doc.Markdown, "## Collaboration Process")
	})

	t.Run("unknown section ids are reported, not dropped silently", func(t *testing.T) {
		doc := svc.Assemble(tpl, "My Proposal", []template.CustomSection{
			{ID: "intro", Content: "Hello"},
			{ID: "appendix", Content: "Extra"},
		})

		assert.Equal(t, []string{"appendix"}, doc.IgnoredSections)
		assert.NotContains(t, doc.Markdown, "Extra")
	})

	t.Run("empty title falls back to Document", func(t *testing.T) {
		doc := svc.Assemble(tpl, "", nil)
		assert.Contains(t, doc.Markdown, "# Document")
	})
}
