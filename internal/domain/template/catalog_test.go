package template

import (
	"testing"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogTemplates(t *testing.T) {
	c := DefaultCatalog()

	proposals := c.Templates(document.TypeProposal)
	assert.Len(t, proposals, 8)
	for _, tpl := range proposals {
		assert.Equal(t, document.TypeProposal, tpl.Type)
		assert.NotEmpty(t, tpl.Sections)
	}

	assert.Empty(t, c.Templates(document.Type("report")))
}

func TestCatalogTemplatesByCategory(t *testing.T) {
	c := DefaultCatalog()

	general := c.TemplatesByCategory(document.TypeProposal, CategoryGeneral)
	require.Len(t, general, 3)
	assert.Equal(t, "proposal-formal", general[0].ID)

	assert.Empty(t, c.TemplatesByCategory(document.TypeProposal, Category("aerospace")))
}

func TestTemplateByID(t *testing.T) {
	c := DefaultCatalog()

	tpl, ok := c.TemplateByID("invoice-minimal")
	require.True(t, ok)
	assert.Equal(t, "Minimal Invoice", tpl.Name)
	assert.Equal(t, document.TypeInvoice, tpl.Type)
	assert.Equal(t, StyleMinimal, tpl.Style)

	_, ok = c.TemplateByID("nonexistent")
	assert.False(t, ok)
}

func TestStyleSheet(t *testing.T) {
	t.Run("idempotent for identical inputs", func(t *testing.T) {
		first := StyleSheet(StyleFormal, nil)
		second := StyleSheet(StyleFormal, nil)
		assert.Equal(t, first, second)
	})

	t.Run("overrides win key by key", func(t *testing.T) {
		css := StyleSheet(StyleFormal, map[string]string{"primaryColor": "#ff0000"})
		assert.Contains(t, css, "#ff0000")
		assert.NotContains(t, css, "color: #2c3e50;\n  background-color")
		// Untouched keys keep the preset value
		assert.Contains(t, css, "'Times New Roman', serif")
	})

	t.Run("unknown style falls back to formal", func(t *testing.T) {
		assert.Equal(t, StyleSheet(StyleFormal, nil), StyleSheet(Style("baroque"), nil))
	})
}
