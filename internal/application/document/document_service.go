package document

import (
	"context"
	"sort"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/domain/identity"
	"github.com/draftly/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultRecentLimit is used when the caller does not ask for a specific
// number of recent documents
const DefaultRecentLimit = 5

// ListWarning is attached to degraded list responses so clients can tell an
// empty account apart from a failed read
const ListWarning = "Some documents could not be loaded. Please try again later."

// Service drives the generation pipeline: validate, gate on subscription,
// build the prompt, call the generator, persist. On generator failure
// nothing is persisted.
type Service struct {
	proposals document.ProposalRepository
	emails    document.OnboardingEmailRepository
	invoices  document.InvoiceRepository
	users     identity.UserRepository
	generator document.Generator
	prompts   *PromptBuilder
	logger    *zap.Logger
}

// NewService creates a document service
func NewService(
	proposals document.ProposalRepository,
	emails document.OnboardingEmailRepository,
	invoices document.InvoiceRepository,
	users identity.UserRepository,
	generator document.Generator,
	logger *zap.Logger,
) *Service {
	return &Service{
		proposals: proposals,
		emails:    emails,
		invoices:  invoices,
		users:     users,
		generator: generator,
		prompts:   NewPromptBuilder(),
		logger:    logger,
	}
}

func (s *Service) gate(ctx context.Context, userID uuid.UUID) (*identity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.CanGenerate() {
		return nil, shared.ErrSubscriptionRequired
	}
	return user, nil
}

// GenerateProposal runs the full pipeline for a proposal
func (s *Service) GenerateProposal(ctx context.Context, userID uuid.UUID, cmd ProposalCommand) (*GeneratedProposal, error) {
	if _, err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	proposal, err := document.NewProposal(userID, cmd.ClientName, cmd.ProjectType, cmd.ProjectScope, cmd.Price)
	if err != nil {
		return nil, err
	}
	proposal.Title = document.ProposalTitle(cmd.Title, cmd.ClientName)
	proposal.ClientBackground = cmd.ClientBackground
	proposal.ProjectGoals = cmd.ProjectGoals
	proposal.Deliverables = cmd.Deliverables
	proposal.Timeline = cmd.Timeline
	proposal.PaymentTerms = cmd.PaymentTerms
	proposal.UniqueSellingPoints = cmd.UniqueSellingPoints
	proposal.CompetitiveAdvantages = cmd.CompetitiveAdvantages
	proposal.ClientChallenges = cmd.ClientChallenges
	proposal.ProposedSolution = cmd.ProposedSolution
	proposal.SocialProof = cmd.SocialProof

	prompt := s.prompts.BuildProposalPrompt(cmd)
	result, err := s.generator.Generate(ctx, document.GenerationRequest{
		Type:     document.TypeProposal,
		Prompt:   prompt.Text,
		Fallback: prompt.Fallback,
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.proposals.Save(ctx, proposal)
	if err != nil {
		return nil, err
	}

	s.logger.Info("proposal generated",
		zap.String("proposal_id", saved.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Bool("degraded", result.Degraded()))

	return &GeneratedProposal{Proposal: saved, Content: result.Content, Warning: result.Warning}, nil
}

// GenerateEmail runs the full pipeline for an onboarding email
func (s *Service) GenerateEmail(ctx context.Context, userID uuid.UUID, cmd EmailCommand) (*GeneratedEmail, error) {
	if _, err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	email, err := document.NewOnboardingEmail(userID, cmd.ClientName, cmd.CompanyName, cmd.OnboardingDetails)
	if err != nil {
		return nil, err
	}

	prompt := s.prompts.BuildEmailPrompt(cmd)
	result, err := s.generator.Generate(ctx, document.GenerationRequest{
		Type:     document.TypeEmail,
		Prompt:   prompt.Text,
		Fallback: prompt.Fallback,
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.emails.Save(ctx, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("onboarding email generated",
		zap.String("email_id", saved.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Bool("degraded", result.Degraded()))

	return &GeneratedEmail{Email: saved, Content: result.Content, Warning: result.Warning}, nil
}

// GenerateInvoice runs the full pipeline for an invoice
func (s *Service) GenerateInvoice(ctx context.Context, userID uuid.UUID, cmd InvoiceCommand) (*GeneratedInvoice, error) {
	if _, err := s.gate(ctx, userID); err != nil {
		return nil, err
	}

	items := make([]document.InvoiceItem, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		items = append(items, document.InvoiceItem{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
		})
	}

	invoice, err := document.NewInvoice(userID, cmd.ClientName, cmd.ProjectName, cmd.AmountDue, cmd.DueDate, cmd.Business, cmd.Client, items)
	if err != nil {
		return nil, err
	}

	prompt := s.prompts.BuildInvoicePrompt(cmd)
	result, err := s.generator.Generate(ctx, document.GenerationRequest{
		Type:     document.TypeInvoice,
		Prompt:   prompt.Text,
		Fallback: prompt.Fallback,
	})
	if err != nil {
		return nil, err
	}

	saved, err := s.invoices.Save(ctx, invoice)
	if err != nil {
		return nil, err
	}

	s.logger.Info("invoice generated",
		zap.String("invoice_id", saved.ID.String()),
		zap.String("user_id", userID.String()),
		zap.Bool("degraded", result.Degraded()))

	return &GeneratedInvoice{Invoice: saved, Content: result.Content, Warning: result.Warning}, nil
}

// ListProposals returns the user's proposals newest first. Read failures
// degrade to an empty list with a warning instead of an error.
func (s *Service) ListProposals(ctx context.Context, userID uuid.UUID) ([]document.Proposal, string) {
	proposals, err := s.proposals.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("listing proposals failed", zap.String("user_id", userID.String()), zap.Error(err))
		return []document.Proposal{}, ListWarning
	}
	return proposals, ""
}

// ListEmails returns the user's onboarding emails newest first
func (s *Service) ListEmails(ctx context.Context, userID uuid.UUID) ([]document.OnboardingEmail, string) {
	emails, err := s.emails.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("listing onboarding emails failed", zap.String("user_id", userID.String()), zap.Error(err))
		return []document.OnboardingEmail{}, ListWarning
	}
	return emails, ""
}

// ListInvoices returns the user's invoices newest first, items included
func (s *Service) ListInvoices(ctx context.Context, userID uuid.UUID) ([]document.Invoice, string) {
	invoices, err := s.invoices.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("listing invoices failed", zap.String("user_id", userID.String()), zap.Error(err))
		return []document.Invoice{}, ListWarning
	}
	return invoices, ""
}

// RecentDocuments merges the newest records across all three types into one
// list: fetch up to limit per type, sort by creation time descending, then
// truncate to limit total. A failed read of one type degrades that type to
// empty rather than failing the merge.
func (s *Service) RecentDocuments(ctx context.Context, userID uuid.UUID, limit int) ([]document.Summary, string) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	warning := ""
	merged := make([]document.Summary, 0, 3*limit)

	fetch := func(name string, recent func(context.Context, uuid.UUID, int) ([]document.Summary, error)) {
		summaries, err := recent(ctx, userID, limit)
		if err != nil {
			s.logger.Warn("recent documents fetch failed",
				zap.String("source", name),
				zap.String("user_id", userID.String()),
				zap.Error(err))
			warning = ListWarning
			return
		}
		merged = append(merged, summaries...)
	}

	fetch("proposals", s.proposals.RecentByUser)
	fetch("onboarding_emails", s.emails.RecentByUser)
	fetch("invoices", s.invoices.RecentByUser)

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged, warning
}

// DeleteDocument removes a record of the given type after an ownership
// check. Invoice deletion removes line items before the parent row.
func (s *Service) DeleteDocument(ctx context.Context, userID, id uuid.UUID, docType document.Type) error {
	switch docType {
	case document.TypeProposal:
		proposal, err := s.proposals.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if proposal.UserID != userID {
			return shared.ErrForbidden
		}
		return s.proposals.Delete(ctx, id)
	case document.TypeEmail:
		email, err := s.emails.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if email.UserID != userID {
			return shared.ErrForbidden
		}
		return s.emails.Delete(ctx, id)
	case document.TypeInvoice:
		invoice, err := s.invoices.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if invoice.UserID != userID {
			return shared.ErrForbidden
		}
		return s.invoices.Delete(ctx, id)
	default:
		return shared.NewDomainError("INVALID_INPUT", "Unknown document type")
	}
}
