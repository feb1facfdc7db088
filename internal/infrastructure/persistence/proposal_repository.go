package persistence

import (
	"context"
	"errors"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/domain/shared"
	"github.com/draftly/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProposalRepository implements document.ProposalRepository using GORM
type GormProposalRepository struct {
	db *gorm.DB
}

// NewGormProposalRepository creates a new GormProposalRepository
func NewGormProposalRepository(db *gorm.DB) *GormProposalRepository {
	return &GormProposalRepository{db: db}
}

// Save creates or updates a proposal and returns the persisted record
func (r *GormProposalRepository) Save(ctx context.Context, proposal *document.Proposal) (*document.Proposal, error) {
	model := models.ProposalModelFromDomain(proposal)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByID finds a proposal by its ID
func (r *GormProposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.Proposal, error) {
	var model models.ProposalModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByUser lists a user's proposals, newest first
func (r *GormProposalRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]document.Proposal, error) {
	var proposalModels []models.ProposalModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&proposalModels).Error; err != nil {
		return nil, err
	}

	proposals := make([]document.Proposal, len(proposalModels))
	for i, model := range proposalModels {
		proposals[i] = *model.ToDomain()
	}
	return proposals, nil
}

// RecentByUser returns summaries of the user's newest proposals
func (r *GormProposalRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]document.Summary, error) {
	var proposalModels []models.ProposalModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&proposalModels).Error; err != nil {
		return nil, err
	}

	summaries := make([]document.Summary, len(proposalModels))
	for i, model := range proposalModels {
		summaries[i] = model.ToDomain().Summary()
	}
	return summaries, nil
}

// Delete deletes a proposal
func (r *GormProposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProposalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormProposalRepository implements ProposalRepository
var _ document.ProposalRepository = (*GormProposalRepository)(nil)
