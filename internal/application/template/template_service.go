package template

import (
	"fmt"
	"strings"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/domain/shared"
	"github.com/draftly/backend/internal/domain/template"
)

// MissingSectionMarker is emitted for required sections the caller did not
// supply content for
const MissingSectionMarker = "[Required section content missing]"

// AssembledDocument is the result of building a document from a template
// and user-supplied sections. IgnoredSections lists supplied section ids
// that do not exist in the template.
type AssembledDocument struct {
	Markdown        string   `json:"markdown"`
	IgnoredSections []string `json:"ignoredSections,omitempty"`
}

// Service exposes the template catalog and style resolver
type Service struct {
	catalog template.Catalog
}

// NewService creates a template service over the built-in catalog
func NewService() *Service {
	return &Service{catalog: template.DefaultCatalog()}
}

// TemplatesFor returns all templates for a document type across categories
func (s *Service) TemplatesFor(docType document.Type) []template.Template {
	return s.catalog.Templates(docType)
}

// TemplatesByCategory returns templates for one type and industry category.
// Unknown categories yield an empty slice, never an error.
func (s *Service) TemplatesByCategory(docType document.Type, category template.Category) []template.Template {
	return s.catalog.TemplatesByCategory(docType, category)
}

// TemplateByID looks a template up by id across the whole catalog
func (s *Service) TemplateByID(id string) (*template.Template, error) {
	tpl, ok := s.catalog.TemplateByID(id)
	if !ok {
		return nil, shared.ErrNotFound
	}
	return tpl, nil
}

// Styles lists all style presets with their configurations
func (s *Service) Styles() map[template.Style]template.StyleConfig {
	styles := make(map[template.Style]template.StyleConfig)
	for _, tag := range template.Styles() {
		styles[tag] = template.StyleConfigFor(tag)
	}
	return styles
}

// StyleSheetFor resolves a style preset plus overrides into CSS
func (s *Service) StyleSheetFor(style template.Style, overrides map[string]string) string {
	return template.StyleSheet(style, overrides)
}

// Assemble builds a markdown document from a template and custom sections.
// Sections are emitted in template order: supplied content under its
// heading, required-but-missing sections with an explicit marker, optional
// missing sections omitted. Supplied ids the template does not know are
// returned in IgnoredSections instead of being silently dropped.
func (s *Service) Assemble(tpl *template.Template, title string, sections []template.CustomSection) AssembledDocument {
	if title == "" {
		title = "Document"
	}

	content := make(map[string]string, len(sections))
	for _, section := range sections {
		content[section.ID] = section.Content
	}

	known := make(map[string]bool, len(tpl.Sections))
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)

	for _, section := range tpl.Sections {
		known[section.ID] = true
		if supplied, ok := content[section.ID]; ok && supplied != "" {
			fmt.Fprintf(&b, "## %s\n\n%s\n\n", section.Name, supplied)
		} else if section.Required {
			fmt.Fprintf(&b, "## %s\n\n%s\n\n", section.Name, MissingSectionMarker)
		}
	}

	ignored := make([]string, 0)
	for _, section := range sections {
		if !known[section.ID] {
			ignored = append(ignored, section.ID)
		}
	}

	return AssembledDocument{Markdown: b.String(), IgnoredSections: ignored}
}
