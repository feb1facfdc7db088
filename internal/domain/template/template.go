package template

import "github.com/draftly/backend/internal/domain/document"

// Category is the industry grouping a template belongs to
type Category string

const (
	CategoryGeneral    Category = "general"
	CategoryTech       Category = "tech"
	CategoryLegal      Category = "legal"
	CategoryHealthcare Category = "healthcare"
	CategoryFreelance  Category = "freelance"
	CategoryConsulting Category = "consulting"
)

// Categories lists all known industry categories in display order
func Categories() []Category {
	return []Category{
		CategoryGeneral,
		CategoryTech,
		CategoryLegal,
		CategoryHealthcare,
		CategoryFreelance,
		CategoryConsulting,
	}
}

// Style is a typography and palette preset name
type Style string

const (
	StyleFormal       Style = "formal"
	StyleCreative     Style = "creative"
	StyleCasual       Style = "casual"
	StyleMinimal      Style = "minimal"
	StyleTechnical    Style = "technical"
	StyleProfessional Style = "professional"
	StyleFriendly     Style = "friendly"
)

// Section is a named block inside a template
type Section struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// Template describes the structure of a generated document
type Template struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Style       Style         `json:"style"`
	Sections    []Section     `json:"sections"`
	Type        document.Type `json:"type"`
	Category    Category      `json:"category"`
}

// CustomSection is user-supplied content keyed by section id
type CustomSection struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}
