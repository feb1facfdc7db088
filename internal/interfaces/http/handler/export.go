package handler

import (
	"errors"
	"fmt"

	"github.com/draftly/backend/internal/domain/template"
	"github.com/draftly/backend/internal/infrastructure/export"
	"github.com/draftly/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// ExportHandler renders documents to downloadable artifacts
type ExportHandler struct {
	BaseHandler
	exporter *export.Exporter
}

// NewExportHandler creates a new export handler
func NewExportHandler(exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{
		exporter: exporter,
	}
}

// ExportPDFRequest is the PDF export form
type ExportPDFRequest struct {
	Title          string            `json:"title"`
	ClientName     string            `json:"clientName"`
	Markdown       string            `json:"markdown" binding:"required"`
	Style          string            `json:"style"`
	StyleOverrides map[string]string `json:"styleOverrides"`
}

// ExportTextRequest is the plain-text export form
type ExportTextRequest struct {
	ClientName string `json:"clientName"`
	Markdown   string `json:"markdown" binding:"required"`
}

// ExportPDF godoc
// @Summary      Export a document as PDF
// @Description  Renders styled markdown to a paginated A4 PDF and returns it as a download
// @Tags         export
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        request body ExportPDFRequest true "Document content and style"
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      504 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /export/pdf [post]
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	var req ExportPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	artifact, err := h.exporter.ExportPDF(c.Request.Context(), export.PDFRequest{
		Title:          req.Title,
		ClientName:     req.ClientName,
		Markdown:       req.Markdown,
		Style:          template.Style(req.Style),
		StyleOverrides: req.StyleOverrides,
	})
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeArtifact(c, artifact)
}

// ExportText godoc
// @Summary      Export a document as plain text
// @Description  Returns the raw markdown as a .txt download
// @Tags         export
// @Accept       json
// @Produce      text/plain
// @Security     BearerAuth
// @Param        request body ExportTextRequest true "Document content"
// @Success      200 {file} binary
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /export/text [post]
func (h *ExportHandler) ExportText(c *gin.Context) {
	var req ExportTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	artifact, err := h.exporter.ExportText(c.Request.Context(), export.TextRequest{
		ClientName: req.ClientName,
		Markdown:   req.Markdown,
	})
	if err != nil {
		h.handleExportError(c, err)
		return
	}

	writeArtifact(c, artifact)
}

// handleExportError maps render errors onto the wire taxonomy before
// falling back to the generic error handler
func (h *ExportHandler) handleExportError(c *gin.Context, err error) {
	var renderErr *export.RenderError
	if errors.As(err, &renderErr) {
		h.ErrorWithCode(c, dto.NormalizeErrorCode(renderErr.Code), renderErr.Message)
		return
	}
	h.HandleError(c, err)
}

// writeArtifact streams an export artifact as an attachment. Page count and
// the optional storage download URL travel in response headers so the body
// stays the raw file.
func writeArtifact(c *gin.Context, artifact *export.Artifact) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	if artifact.PageCount > 0 {
		c.Header("X-Page-Count", fmt.Sprintf("%d", artifact.PageCount))
	}
	if artifact.DownloadURL != "" {
		c.Header("X-Download-URL", artifact.DownloadURL)
	}
	c.Data(200, artifact.ContentType, artifact.Data)
}
