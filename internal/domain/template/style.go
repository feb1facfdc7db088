package template

import (
	"fmt"
	"sort"
	"strings"
)

// StyleConfig holds the typography and palette values behind a style preset
type StyleConfig struct {
	FontFamily      string `json:"fontFamily"`
	HeadingFont     string `json:"headingFont"`
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	AccentColor     string `json:"accentColor"`
	BackgroundColor string `json:"backgroundColor"`
	FontSize        string `json:"fontSize"`
	HeadingSize     string `json:"headingSize"`
}

var styleConfigs = map[Style]StyleConfig{
	StyleFormal: {
		FontFamily:      "'Times New Roman', serif",
		HeadingFont:     "'Arial', sans-serif",
		PrimaryColor:    "#2c3e50",
		SecondaryColor:  "#34495e",
		AccentColor:     "#3498db",
		BackgroundColor: "#ffffff",
		FontSize:        "11pt",
		HeadingSize:     "16pt",
	},
	StyleCreative: {
		FontFamily:      "'Montserrat', sans-serif",
		HeadingFont:     "'Playfair Display', serif",
		PrimaryColor:    "#6c5ce7",
		SecondaryColor:  "#a29bfe",
		AccentColor:     "#fd79a8",
		BackgroundColor: "#f9f9f9",
		FontSize:        "12pt",
		HeadingSize:     "18pt",
	},
	StyleCasual: {
		FontFamily:      "'Open Sans', sans-serif",
		HeadingFont:     "'Poppins', sans-serif",
		PrimaryColor:    "#3a7bd5",
		SecondaryColor:  "#00d2d3",
		AccentColor:     "#ffb8b8",
		BackgroundColor: "#f5f5f5",
		FontSize:        "12pt",
		HeadingSize:     "16pt",
	},
	StyleMinimal: {
		FontFamily:      "'Roboto', sans-serif",
		HeadingFont:     "'Roboto', sans-serif",
		PrimaryColor:    "#333333",
		SecondaryColor:  "#555555",
		AccentColor:     "#777777",
		BackgroundColor: "#ffffff",
		FontSize:        "10pt",
		HeadingSize:     "14pt",
	},
	StyleTechnical: {
		FontFamily:      "'Roboto Mono', monospace",
		HeadingFont:     "'IBM Plex Sans', sans-serif",
		PrimaryColor:    "#1e272e",
		SecondaryColor:  "#485460",
		AccentColor:     "#0abde3",
		BackgroundColor: "#f1f2f6",
		FontSize:        "11pt",
		HeadingSize:     "15pt",
	},
	StyleProfessional: {
		FontFamily:      "'Lato', sans-serif",
		HeadingFont:     "'Merriweather', serif",
		PrimaryColor:    "#2c3e50",
		SecondaryColor:  "#34495e",
		AccentColor:     "#2980b9",
		BackgroundColor: "#ecf0f1",
		FontSize:        "11pt",
		HeadingSize:     "16pt",
	},
	StyleFriendly: {
		FontFamily:      "'Nunito', sans-serif",
		HeadingFont:     "'Nunito', sans-serif",
		PrimaryColor:    "#6c5ce7",
		SecondaryColor:  "#00b894",
		AccentColor:     "#fdcb6e",
		BackgroundColor: "#ffffff",
		FontSize:        "12pt",
		HeadingSize:     "16pt",
	},
}

// StyleConfigFor returns the preset for a style tag.
// Unknown tags fall back to the formal preset.
func StyleConfigFor(style Style) StyleConfig {
	if cfg, ok := styleConfigs[style]; ok {
		return cfg
	}
	return styleConfigs[StyleFormal]
}

// Styles lists all known style tags in a stable order
func Styles() []Style {
	tags := make([]Style, 0, len(styleConfigs))
	for tag := range styleConfigs {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

// applyOverrides merges custom values over the preset key by key.
// Override values win and are not validated.
func (c StyleConfig) applyOverrides(overrides map[string]string) StyleConfig {
	for key, value := range overrides {
		switch key {
		case "fontFamily":
			c.FontFamily = value
		case "headingFont":
			c.HeadingFont = value
		case "primaryColor":
			c.PrimaryColor = value
		case "secondaryColor":
			c.SecondaryColor = value
		case "accentColor":
			c.AccentColor = value
		case "backgroundColor":
			c.BackgroundColor = value
		case "fontSize":
			c.FontSize = value
		case "headingSize":
			c.HeadingSize = value
		}
	}
	return c
}

// StyleSheet serializes a style preset, with optional overrides, into the
// CSS block applied to rendered documents. Pure: identical inputs always
// produce identical output.
func StyleSheet(style Style, overrides map[string]string) string {
	cfg := StyleConfigFor(style).applyOverrides(overrides)

	var b strings.Builder
	fmt.Fprintf(&b, "body {\n  font-family: %s;\n  color: %s;\n  background-color: %s;\n  font-size: %s;\n}\n\n",
		cfg.FontFamily, cfg.PrimaryColor, cfg.BackgroundColor, cfg.FontSize)
	fmt.Fprintf(&b, "h1, h2, h3, h4, h5, h6 {\n  font-family: %s;\n  color: %s;\n}\n\n",
		cfg.HeadingFont, cfg.PrimaryColor)
	fmt.Fprintf(&b, "h1 {\n  font-size: %s;\n  margin-bottom: 1.5rem;\n}\n\n", cfg.HeadingSize)
	fmt.Fprintf(&b, "h2 {\n  font-size: calc(%s - 2pt);\n  color: %s;\n}\n\n", cfg.HeadingSize, cfg.SecondaryColor)
	fmt.Fprintf(&b, "a {\n  color: %s;\n}\n\n", cfg.AccentColor)
	fmt.Fprintf(&b, "hr {\n  border-color: %s;\n  opacity: 0.2;\n}\n\n", cfg.SecondaryColor)
	b.WriteString("table {\n  width: 100%;\n  border-collapse: collapse;\n}\n\n")
	fmt.Fprintf(&b, "th {\n  background-color: %s;\n  color: %s;\n  padding: 8px;\n  text-align: left;\n}\n\n",
		cfg.SecondaryColor, cfg.BackgroundColor)
	fmt.Fprintf(&b, "td {\n  padding: 8px;\n  border-bottom: 1px solid %s40;\n}\n", cfg.SecondaryColor)
	return b.String()
}
