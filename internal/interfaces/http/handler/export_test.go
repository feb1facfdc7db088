package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/draftly/backend/internal/domain/template"
	"github.com/draftly/backend/internal/infrastructure/config"
	"github.com/draftly/backend/internal/infrastructure/export"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubRenderer struct {
	data  []byte
	pages int
	err   error
}

func (s *stubRenderer) Render(ctx context.Context, html string) ([]byte, int, error) {
	if s.err != nil {
		return nil, 0, s.err
	}
	return s.data, s.pages, nil
}

type stubStore struct{}

func (s *stubStore) Upload(ctx context.Context, storageKey string, data []byte, contentType string) error {
	return nil
}

func (s *stubStore) GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error) {
	return "https://storage.example.com/" + storageKey, time.Now().Add(expiresIn), nil
}

func setupExportRouter(renderer export.Renderer, store export.ArtifactStore, cfg config.ExportConfig) *gin.Engine {
	h := NewExportHandler(export.NewExporter(renderer, store, cfg, zap.NewNop()))

	r := gin.New()
	r.POST("/export/pdf", h.ExportPDF)
	r.POST("/export/text", h.ExportText)
	return r
}

func TestExportHandler_ExportPDF(t *testing.T) {
	t.Run("streams the PDF as a download", func(t *testing.T) {
		renderer := &stubRenderer{data: []byte("%PDF-1.7 fake"), pages: 2}
		r := setupExportRouter(renderer, nil, config.ExportConfig{})

		rec := doJSON(r, http.MethodPost, "/export/pdf", ExportPDFRequest{
			Title:    "Proposal for Acme Corp",
			Markdown: "# Proposal",
			Style:    string(template.StyleFormal),
		}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".pdf")
		assert.Equal(t, "2", rec.Header().Get("X-Page-Count"))
		assert.Empty(t, rec.Header().Get("X-Download-URL"))
		assert.Equal(t, "%PDF-1.7 fake", rec.Body.String())
	})

	t.Run("exposes the storage URL when uploads are on", func(t *testing.T) {
		renderer := &stubRenderer{data: []byte("pdf"), pages: 1}
		r := setupExportRouter(renderer, &stubStore{}, config.ExportConfig{UploadExports: true})

		rec := doJSON(r, http.MethodPost, "/export/pdf", ExportPDFRequest{
			Title:    "Invoice for Website Redesign",
			Markdown: "# Invoice",
			Style:    string(template.StyleFormal),
		}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("X-Download-URL"), "https://storage.example.com/exports/")
	})

	t.Run("maps render timeouts to 504", func(t *testing.T) {
		renderer := &stubRenderer{err: export.NewRenderError(export.ErrCodeRenderTimeout, "PDF rendering timed out", context.DeadlineExceeded)}
		r := setupExportRouter(renderer, nil, config.ExportConfig{})

		rec := doJSON(r, http.MethodPost, "/export/pdf", ExportPDFRequest{
			Markdown: "# Proposal",
		}, "")

		assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "ERR_RENDER_TIMEOUT", resp.Error.Code)
	})

	t.Run("maps render failures to 500", func(t *testing.T) {
		renderer := &stubRenderer{err: export.NewRenderError(export.ErrCodeRenderFailed, "PDF rendering failed", nil)}
		r := setupExportRouter(renderer, nil, config.ExportConfig{})

		rec := doJSON(r, http.MethodPost, "/export/pdf", ExportPDFRequest{
			Markdown: "# Proposal",
		}, "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "ERR_RENDER_FAILED", resp.Error.Code)
	})

	t.Run("requires markdown", func(t *testing.T) {
		r := setupExportRouter(&stubRenderer{}, nil, config.ExportConfig{})

		rec := doJSON(r, http.MethodPost, "/export/pdf", map[string]string{
			"title": "Untitled",
		}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestExportHandler_ExportText(t *testing.T) {
	t.Run("streams the markdown as a text download", func(t *testing.T) {
		r := setupExportRouter(&stubRenderer{}, nil, config.ExportConfig{})

		rec := doJSON(r, http.MethodPost, "/export/text", ExportTextRequest{
			ClientName: "Acme Corp",
			Markdown:   "# Proposal\n\nBody.",
		}, "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".txt")
		assert.Empty(t, rec.Header().Get("X-Page-Count"))
		assert.Equal(t, "# Proposal\n\nBody.", rec.Body.String())
	})

	t.Run("rejects whitespace-only markdown", func(t *testing.T) {
		r := setupExportRouter(&stubRenderer{}, nil, config.ExportConfig{})

		rec := doJSON(r, http.MethodPost, "/export/text", ExportTextRequest{
			Markdown: "   ",
		}, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec)
		assert.Equal(t, "ERR_INVALID_CONTENT", resp.Error.Code)
	})
}
