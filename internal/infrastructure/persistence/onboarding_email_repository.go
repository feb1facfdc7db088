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

// GormOnboardingEmailRepository implements document.OnboardingEmailRepository using GORM
type GormOnboardingEmailRepository struct {
	db *gorm.DB
}

// NewGormOnboardingEmailRepository creates a new GormOnboardingEmailRepository
func NewGormOnboardingEmailRepository(db *gorm.DB) *GormOnboardingEmailRepository {
	return &GormOnboardingEmailRepository{db: db}
}

// Save creates or updates an onboarding email and returns the persisted record
func (r *GormOnboardingEmailRepository) Save(ctx context.Context, email *document.OnboardingEmail) (*document.OnboardingEmail, error) {
	model := models.OnboardingEmailModelFromDomain(email)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByID finds an onboarding email by its ID
func (r *GormOnboardingEmailRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.OnboardingEmail, error) {
	var model models.OnboardingEmailModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByUser lists a user's onboarding emails, newest first
func (r *GormOnboardingEmailRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]document.OnboardingEmail, error) {
	var emailModels []models.OnboardingEmailModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&emailModels).Error; err != nil {
		return nil, err
	}

	emails := make([]document.OnboardingEmail, len(emailModels))
	for i, model := range emailModels {
		emails[i] = *model.ToDomain()
	}
	return emails, nil
}

// RecentByUser returns summaries of the user's newest onboarding emails
func (r *GormOnboardingEmailRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]document.Summary, error) {
	var emailModels []models.OnboardingEmailModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&emailModels).Error; err != nil {
		return nil, err
	}

	summaries := make([]document.Summary, len(emailModels))
	for i, model := range emailModels {
		summaries[i] = model.ToDomain().Summary()
	}
	return summaries, nil
}

// Delete deletes an onboarding email
func (r *GormOnboardingEmailRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.OnboardingEmailModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormOnboardingEmailRepository implements OnboardingEmailRepository
var _ document.OnboardingEmailRepository = (*GormOnboardingEmailRepository)(nil)
