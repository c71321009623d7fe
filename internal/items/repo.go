package items

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cropsense/cropsense-backend/pkg/db/models"
)

// Repository exposes listing persistence operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an items repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new listing and returns the persisted model.
func (r *Repository) Create(ctx context.Context, dto CreateItemDTO) (*models.Item, error) {
	item := dto.ToModel()
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindByItemID loads a listing by its public identifier.
func (r *Repository) FindByItemID(ctx context.Context, itemID string) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByItemIDs loads the listings matching the given public identifiers in
// one batch. Missing identifiers are simply absent from the result.
func (r *Repository) FindByItemIDs(ctx context.Context, itemIDs []string) ([]models.Item, error) {
	if len(itemIDs) == 0 {
		return nil, nil
	}
	var items []models.Item
	if err := r.db.WithContext(ctx).Where("item_id IN ?", itemIDs).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// List returns listings, optionally filtered by type, newest first.
func (r *Repository) List(ctx context.Context, itemType string) ([]models.Item, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if itemType != "" {
		query = query.Where("type = ?", itemType)
	}
	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// ListByOwner returns the listings created by the given user, newest first.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateFields applies the given column updates to a listing.
func (r *Repository) UpdateFields(ctx context.Context, itemID string, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("item_id = ?", itemID).
		Updates(updates).Error
}

// Delete removes a listing by its public identifier.
func (r *Repository) Delete(ctx context.Context, itemID string) error {
	return r.db.WithContext(ctx).
		Where("item_id = ?", itemID).
		Delete(&models.Item{}).Error
}

// ReadStockRow fetches only the stock columns for an item.
func (r *Repository) ReadStockRow(ctx context.Context, itemID string) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).
		Select("item_id", "sold", "qty", "sold_out").
		Where("item_id = ?", itemID).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// WriteStockRow overwrites the sold counter and sold-out flag unconditionally.
func (r *Repository) WriteStockRow(ctx context.Context, itemID string, sold int, soldOut bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Item{}).
		Where("item_id = ?", itemID).
		Updates(map[string]any{"sold": sold, "sold_out": soldOut}).Error
}
