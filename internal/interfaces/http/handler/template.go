package handler

import (
	tmplapp "github.com/draftly/backend/internal/application/template"
	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/domain/template"
	"github.com/gin-gonic/gin"
)

// TemplateHandler serves the built-in template catalog and style presets
type TemplateHandler struct {
	BaseHandler
	templates *tmplapp.Service
}

// NewTemplateHandler creates a new template handler
func NewTemplateHandler(templates *tmplapp.Service) *TemplateHandler {
	return &TemplateHandler{
		templates: templates,
	}
}

// TemplateListResponse is the catalog listing
type TemplateListResponse struct {
	Templates []template.Template `json:"templates"`
}

// StylesResponse maps style preset names to their configurations
type StylesResponse struct {
	Styles map[template.Style]template.StyleConfig `json:"styles"`
}

// StyleSheetRequest resolves a style preset plus overrides into CSS
type StyleSheetRequest struct {
	Style     string            `json:"style" binding:"required"`
	Overrides map[string]string `json:"overrides"`
}

// AssembleRequest builds a markdown document from a template
type AssembleRequest struct {
	TemplateID string                   `json:"templateId" binding:"required"`
	Title      string                   `json:"title"`
	Sections   []template.CustomSection `json:"sections"`
}

// ListTemplates godoc
// @Summary      List templates
// @Description  Templates for a document type, optionally filtered by industry category
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        type     query string true  "Document type" Enums(proposal, email, invoice)
// @Param        category query string false "Industry category"
// @Success      200 {object} dto.Response{data=TemplateListResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /templates [get]
func (h *TemplateHandler) ListTemplates(c *gin.Context) {
	docType, err := document.ParseType(c.Query("type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var templates []template.Template
	if category := c.Query("category"); category != "" {
		templates = h.templates.TemplatesByCategory(docType, template.Category(category))
	} else {
		templates = h.templates.TemplatesFor(docType)
	}

	h.Success(c, TemplateListResponse{Templates: templates})
}

// GetTemplate godoc
// @Summary      Get a template by ID
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Template ID"
// @Success      200 {object} dto.Response{data=template.Template}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /templates/{id} [get]
func (h *TemplateHandler) GetTemplate(c *gin.Context) {
	tpl, err := h.templates.TemplateByID(c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, tpl)
}

// ListStyles godoc
// @Summary      List style presets
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=StylesResponse}
// @Router       /templates/styles [get]
func (h *TemplateHandler) ListStyles(c *gin.Context) {
	h.Success(c, StylesResponse{Styles: h.templates.Styles()})
}

// ResolveStyleSheet godoc
// @Summary      Resolve a stylesheet
// @Description  Resolve a style preset plus overrides into CSS
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body StyleSheetRequest true "Style and overrides"
// @Success      200 {object} dto.Response{data=ContentData}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /templates/stylesheet [post]
func (h *TemplateHandler) ResolveStyleSheet(c *gin.Context) {
	var req StyleSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	css := h.templates.StyleSheetFor(template.Style(req.Style), req.Overrides)
	h.Success(c, ContentData{Content: css})
}

// AssembleDocument godoc
// @Summary      Assemble a document from a template
// @Description  Sections are emitted in template order; unknown section ids are reported, not dropped
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body AssembleRequest true "Template, title and sections"
// @Success      200 {object} dto.Response{data=template.AssembledDocument}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /templates/assemble [post]
func (h *TemplateHandler) AssembleDocument(c *gin.Context) {
	var req AssembleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	tpl, err := h.templates.TemplateByID(req.TemplateID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, h.templates.Assemble(tpl, req.Title, req.Sections))
}
