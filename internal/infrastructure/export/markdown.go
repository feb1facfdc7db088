// Package export turns generated markdown into downloadable artifacts.
package export

import (
	"bytes"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/draftly/backend/internal/domain/template"
)

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
)

// RenderHTML converts markdown into a standalone HTML document carrying the
// resolved stylesheet inline, ready for PDF printing.
func RenderHTML(markdown string, style template.Style, overrides map[string]string, title string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", NewRenderError(ErrCodeInvalidContent, "markdown content is empty", nil)
	}

	var body bytes.Buffer
	if err := markdownConverter.Convert([]byte(markdown), &body); err != nil {
		return "", NewRenderError(ErrCodeRenderFailed, "markdown conversion failed: "+err.Error(), err)
	}

	stylesheet := template.StyleSheet(style, overrides)

	var doc strings.Builder
	doc.WriteString("<!DOCTYPE html><html><head>")
	doc.WriteString(`<meta charset="UTF-8">`)
	doc.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1.0">`)
	if title != "" {
		fmt.Fprintf(&doc, "<title>%s</title>", html.EscapeString(title))
	}
	doc.WriteString("<style>\n")
	doc.WriteString(stylesheet)
	doc.WriteString("</style></head><body>")
	doc.Write(body.Bytes())
	doc.WriteString("</body></html>")

	return doc.String(), nil
}
