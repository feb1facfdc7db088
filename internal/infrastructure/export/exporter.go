package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/draftly/backend/internal/domain/template"
	"github.com/draftly/backend/internal/infrastructure/config"
)

const downloadURLExpiry = 24 * time.Hour

// ArtifactStore persists export artifacts in object storage
type ArtifactStore interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)
}

// PDFRequest describes a markdown document to print as PDF
type PDFRequest struct {
	Title          string
	ClientName     string
	Markdown       string
	Style          template.Style
	StyleOverrides map[string]string
}

// TextRequest describes a markdown document to export as plain text
type TextRequest struct {
	ClientName string
	Markdown   string
}

// Artifact is a finished export ready to hand to the client
type Artifact struct {
	Filename    string
	ContentType string
	Data        []byte
	PageCount   int
	DownloadURL string // set only when the artifact was uploaded
}

// Exporter assembles export artifacts and optionally uploads them
type Exporter struct {
	renderer Renderer
	store    ArtifactStore
	upload   bool
	logger   *zap.Logger
	now      func() time.Time
}

// NewExporter creates an Exporter. The store may be nil when uploads are off.
func NewExporter(renderer Renderer, store ArtifactStore, cfg config.ExportConfig, logger *zap.Logger) *Exporter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{
		renderer: renderer,
		store:    store,
		upload:   cfg.UploadExports && store != nil,
		logger:   logger,
		now:      time.Now,
	}
}

// ExportPDF renders markdown through the stylesheet pipeline into a paginated PDF.
func (e *Exporter) ExportPDF(ctx context.Context, req PDFRequest) (*Artifact, error) {
	html, err := RenderHTML(req.Markdown, req.Style, req.StyleOverrides, req.Title)
	if err != nil {
		return nil, err
	}

	data, pages, err := e.renderer.Render(ctx, html)
	if err != nil {
		return nil, err
	}

	artifact := &Artifact{
		Filename:    fmt.Sprintf("%s_%d.pdf", slugify(firstNonEmpty(req.Title, req.ClientName, "document")), e.now().UnixMilli()),
		ContentType: "application/pdf",
		Data:        data,
		PageCount:   pages,
	}

	e.maybeUpload(ctx, artifact)
	return artifact, nil
}

// ExportText packages raw markdown as a plain-text download.
func (e *Exporter) ExportText(ctx context.Context, req TextRequest) (*Artifact, error) {
	if strings.TrimSpace(req.Markdown) == "" {
		return nil, NewRenderError(ErrCodeInvalidContent, "markdown content is empty", nil)
	}

	artifact := &Artifact{
		Filename:    fmt.Sprintf("%s-%d.txt", slugify(firstNonEmpty(req.ClientName, "document")), e.now().Unix()),
		ContentType: "text/plain; charset=utf-8",
		Data:        []byte(req.Markdown),
	}

	e.maybeUpload(ctx, artifact)
	return artifact, nil
}

// maybeUpload pushes the artifact to object storage. Upload failures degrade
// the export instead of failing it: the bytes still go back to the caller.
func (e *Exporter) maybeUpload(ctx context.Context, artifact *Artifact) {
	if !e.upload {
		return
	}

	key := "exports/" + artifact.Filename
	if err := e.store.Upload(ctx, key, artifact.Data, artifact.ContentType); err != nil {
		e.logger.Warn("failed to upload export artifact",
			zap.String("key", key),
			zap.Error(err))
		return
	}

	url, _, err := e.store.GenerateDownloadURL(ctx, key, downloadURLExpiry)
	if err != nil {
		e.logger.Warn("failed to generate download URL",
			zap.String("key", key),
			zap.Error(err))
		return
	}
	artifact.DownloadURL = url
}

// slugify lowercases the name and collapses anything outside [a-z0-9] to
// single hyphens, matching the filenames users saw in the web client.
func slugify(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		return "document"
	}
	return slug
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
