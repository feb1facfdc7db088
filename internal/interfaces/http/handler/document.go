package handler

import (
	"errors"
	"time"

	docapp "github.com/draftly/backend/internal/application/document"
	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// dueDateLayouts are accepted formats for invoice due dates
var dueDateLayouts = []string{time.RFC3339, "2006-01-02"}

// DocumentHandler handles document generation and listing requests
type DocumentHandler struct {
	BaseHandler
	documents *docapp.Service
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documents *docapp.Service) *DocumentHandler {
	return &DocumentHandler{
		documents: documents,
	}
}

// GenerateProposal godoc
// @Summary      Generate a proposal
// @Description  Validate the form, gate on subscription, generate content and persist the record
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateProposalRequest true "Proposal form"
// @Success      201 {object} dto.Response{data=GenerateProposalResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/proposals [post]
func (h *DocumentHandler) GenerateProposal(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req GenerateProposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.documents.GenerateProposal(c.Request.Context(), userID, docapp.ProposalCommand{
		ClientName:   req.ClientName,
		ProjectType:  req.ProjectType,
		ProjectScope: req.ProjectScope,
		Price:        toDecimal(req.Price),
		Title:        req.Title,

		ClientBackground:      req.ClientBackground,
		ProjectGoals:          req.ProjectGoals,
		Deliverables:          req.Deliverables,
		Timeline:              req.Timeline,
		PaymentTerms:          req.PaymentTerms,
		UniqueSellingPoints:   req.UniqueSellingPoints,
		CompetitiveAdvantages: req.CompetitiveAdvantages,
		ClientChallenges:      req.ClientChallenges,
		ProposedSolution:      req.ProposedSolution,
		SocialProof:           req.SocialProof,

		AuthorName:     req.AuthorName,
		AuthorPosition: req.AuthorPosition,
		CompanyName:    req.CompanyName,
		ContactEmail:   req.ContactEmail,
		ContactPhone:   req.ContactPhone,
		CurrentDate:    req.CurrentDate,
	})
	if err != nil {
		h.handleGenerationError(c, err)
		return
	}

	h.Created(c, GenerateProposalResponse{
		Proposal: toProposalData(result.Proposal),
		Content:  result.Content,
		Warning:  result.Warning,
	})
}

// GenerateEmail godoc
// @Summary      Generate an onboarding email
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateEmailRequest true "Onboarding email form"
// @Success      201 {object} dto.Response{data=GenerateEmailResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/emails [post]
func (h *DocumentHandler) GenerateEmail(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req GenerateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.documents.GenerateEmail(c.Request.Context(), userID, docapp.EmailCommand{
		ClientName:        req.ClientName,
		CompanyName:       req.CompanyName,
		OnboardingDetails: req.OnboardingDetails,

		AuthorName:     req.AuthorName,
		AuthorPosition: req.AuthorPosition,
		AuthorEmail:    req.AuthorEmail,
		CurrentDate:    req.CurrentDate,
	})
	if err != nil {
		h.handleGenerationError(c, err)
		return
	}

	h.Created(c, GenerateEmailResponse{
		Email:   toEmailData(result.Email),
		Content: result.Content,
		Warning: result.Warning,
	})
}

// GenerateInvoice godoc
// @Summary      Generate an invoice
// @Description  Line item amounts are recomputed server-side from quantity and rate
// @Tags         documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GenerateInvoiceRequest true "Invoice form"
// @Success      201 {object} dto.Response{data=GenerateInvoiceResponse}
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      502 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/invoices [post]
func (h *DocumentHandler) GenerateInvoice(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req GenerateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	dueDate, err := parseDueDate(req.DueDate)
	if err != nil {
		h.BadRequest(c, "Invalid due date")
		return
	}

	items := make([]docapp.InvoiceItemCommand, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, docapp.InvoiceItemCommand{
			Description: item.Description,
			Quantity:    toDecimal(item.Quantity),
			Rate:        toDecimal(item.Rate),
		})
	}

	result, err := h.documents.GenerateInvoice(c.Request.Context(), userID, docapp.InvoiceCommand{
		ClientName:  req.ClientName,
		ProjectName: req.ProjectName,
		AmountDue:   toDecimal(req.AmountDue),
		DueDate:     dueDate,
		Business: document.BusinessDetails{
			Name:    req.BusinessName,
			Address: req.BusinessAddress,
			Phone:   req.BusinessPhone,
			Email:   req.BusinessEmail,
		},
		Client: document.ClientDetails{
			Name:    req.ClientName,
			Address: req.ClientAddress,
			Email:   req.ClientEmail,
		},
		Items: items,

		AuthorName:     req.AuthorName,
		AuthorPosition: req.AuthorPosition,
		CurrentDate:    req.CurrentDate,
	})
	if err != nil {
		h.handleGenerationError(c, err)
		return
	}

	h.Created(c, GenerateInvoiceResponse{
		Invoice: toInvoiceData(result.Invoice),
		Content: result.Content,
		Warning: result.Warning,
	})
}

// ListProposals godoc
// @Summary      List the user's proposals
// @Description  Newest first. A failed read degrades to an empty list with a warning.
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=ProposalListResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/proposals [get]
func (h *DocumentHandler) ListProposals(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	proposals, warning := h.documents.ListProposals(c.Request.Context(), userID)
	data := make([]ProposalData, 0, len(proposals))
	for i := range proposals {
		data = append(data, toProposalData(&proposals[i]))
	}

	h.Success(c, ProposalListResponse{Proposals: data, Warning: warning})
}

// ListEmails godoc
// @Summary      List the user's onboarding emails
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=EmailListResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/emails [get]
func (h *DocumentHandler) ListEmails(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	emails, warning := h.documents.ListEmails(c.Request.Context(), userID)
	data := make([]EmailData, 0, len(emails))
	for i := range emails {
		data = append(data, toEmailData(&emails[i]))
	}

	h.Success(c, EmailListResponse{Emails: data, Warning: warning})
}

// ListInvoices godoc
// @Summary      List the user's invoices
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.Response{data=InvoiceListResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/invoices [get]
func (h *DocumentHandler) ListInvoices(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	invoices, warning := h.documents.ListInvoices(c.Request.Context(), userID)
	data := make([]InvoiceData, 0, len(invoices))
	for i := range invoices {
		data = append(data, toInvoiceData(&invoices[i]))
	}

	h.Success(c, InvoiceListResponse{Invoices: data, Warning: warning})
}

// RecentDocuments godoc
// @Summary      List the newest documents across all types
// @Description  Merged and sorted by creation time descending, truncated to limit
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "Maximum number of documents" default(5)
// @Success      200 {object} dto.Response{data=RecentDocumentsResponse}
// @Failure      401 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/recent [get]
func (h *DocumentHandler) RecentDocuments(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var query struct {
		Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, "Invalid query parameters")
		return
	}

	documents, warning := h.documents.RecentDocuments(c.Request.Context(), userID, query.Limit)
	h.Success(c, RecentDocumentsResponse{Documents: documents, Warning: warning})
}

// DeleteDocument godoc
// @Summary      Delete a document
// @Description  Removes a record of the given type after an ownership check
// @Tags         documents
// @Produce      json
// @Security     BearerAuth
// @Param        type path string true "Document type" Enums(proposal, email, invoice)
// @Param        id   path string true "Document ID"
// @Success      204
// @Failure      400 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      403 {object} dto.Response{error=dto.ErrorInfo}
// @Failure      404 {object} dto.Response{error=dto.ErrorInfo}
// @Router       /documents/{type}/{id} [delete]
func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	docType, err := document.ParseType(c.Param("type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid document ID")
		return
	}

	if err := h.documents.DeleteDocument(c.Request.Context(), userID, id, docType); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// handleGenerationError maps generator failures onto the wire taxonomy
// before falling back to the generic error handler
func (h *DocumentHandler) handleGenerationError(c *gin.Context, err error) {
	var genErr *document.GenerationError
	if errors.As(err, &genErr) {
		h.ErrorWithCode(c, dto.ErrCodeGenerationFailed, "Document generation failed. Please try again.")
		return
	}
	h.HandleError(c, err)
}

func parseDueDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dueDateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
