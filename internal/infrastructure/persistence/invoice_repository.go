package persistence

import (
	"context"
	"errors"

	"github.com/draftly/backend/internal/domain/document"
	"github.com/draftly/backend/internal/domain/shared"
	"github.com/draftly/backend/internal/infrastructure/config"
	"github.com/draftly/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements document.InvoiceRepository using GORM.
// The invoice row and its line items are written in two steps; the configured
// item write policy decides whether an item failure keeps or rolls back the
// invoice row.
type GormInvoiceRepository struct {
	db     *gorm.DB
	policy string
	logger *zap.Logger
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB, policy string, logger *zap.Logger) *GormInvoiceRepository {
	if policy == "" {
		policy = config.ItemWritePolicyLenient
	}
	return &GormInvoiceRepository{db: db, policy: policy, logger: logger}
}

// Save creates or updates an invoice with its line items and returns the
// persisted record. Under the lenient policy an item write failure keeps the
// invoice row and is logged; under the strict policy the whole write rolls
// back.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *document.Invoice) (*document.Invoice, error) {
	if r.policy == config.ItemWritePolicyStrict {
		return r.saveStrict(ctx, invoice)
	}
	return r.saveLenient(ctx, invoice)
}

func (r *GormInvoiceRepository) saveLenient(ctx context.Context, invoice *document.Invoice) (*document.Invoice, error) {
	model := models.InvoiceModelFromDomain(invoice)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return nil, err
	}

	persisted := model.ToDomain()
	if err := r.saveItems(ctx, r.db, invoice); err != nil {
		r.logger.Warn("invoice items failed to persist, keeping invoice row",
			zap.String("invoice_id", invoice.ID.String()),
			zap.Error(err))
		return persisted, nil
	}

	persisted.Items = invoice.Items
	return persisted, nil
}

func (r *GormInvoiceRepository) saveStrict(ctx context.Context, invoice *document.Invoice) (*document.Invoice, error) {
	model := models.InvoiceModelFromDomain(invoice)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(model).Error; err != nil {
			return err
		}
		return r.saveItems(ctx, tx, invoice)
	})
	if err != nil {
		return nil, err
	}

	persisted := model.ToDomain()
	persisted.Items = invoice.Items
	return persisted, nil
}

func (r *GormInvoiceRepository) saveItems(ctx context.Context, tx *gorm.DB, invoice *document.Invoice) error {
	// Replace the full item set so updates don't leave stale rows behind
	if err := tx.WithContext(ctx).
		Delete(&models.InvoiceItemModel{}, "invoice_id = ?", invoice.ID).Error; err != nil {
		return err
	}
	if len(invoice.Items) == 0 {
		return nil
	}

	itemModels := make([]*models.InvoiceItemModel, len(invoice.Items))
	for i, item := range invoice.Items {
		itemModels[i] = models.InvoiceItemModelFromDomain(item, i)
	}
	return tx.WithContext(ctx).Create(itemModels).Error
}

// FindByID finds an invoice with its line items
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*document.Invoice, error) {
	var model models.InvoiceModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}

	invoice := model.ToDomain()
	items, err := r.findItems(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice.Items = items
	return invoice, nil
}

// ListByUser lists a user's invoices with items, newest first
func (r *GormInvoiceRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]document.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]document.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoice := model.ToDomain()
		items, err := r.findItems(ctx, model.ID)
		if err != nil {
			return nil, err
		}
		invoice.Items = items
		invoices[i] = *invoice
	}
	return invoices, nil
}

// RecentByUser returns summaries of the user's newest invoices
func (r *GormInvoiceRepository) RecentByUser(ctx context.Context, userID uuid.UUID, limit int) ([]document.Summary, error) {
	var invoiceModels []models.InvoiceModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	summaries := make([]document.Summary, len(invoiceModels))
	for i, model := range invoiceModels {
		summaries[i] = model.ToDomain().Summary()
	}
	return summaries, nil
}

// Delete removes an invoice and its line items. Items go first so a failure
// never leaves orphaned rows behind.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.InvoiceItemModel{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.InvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

func (r *GormInvoiceRepository) findItems(ctx context.Context, invoiceID uuid.UUID) ([]document.InvoiceItem, error) {
	var itemModels []models.InvoiceItemModel
	if err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("position ASC").
		Find(&itemModels).Error; err != nil {
		return nil, err
	}

	items := make([]document.InvoiceItem, len(itemModels))
	for i, model := range itemModels {
		items[i] = model.ToDomain()
	}
	return items, nil
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ document.InvoiceRepository = (*GormInvoiceRepository)(nil)
