package items

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/cropsense/cropsense-backend/pkg/db/models"
	pkgerrors "github.com/cropsense/cropsense-backend/pkg/errors"
)

type repository interface {
	Create(ctx context.Context, dto CreateItemDTO) (*models.Item, error)
	FindByItemID(ctx context.Context, itemID string) (*models.Item, error)
	FindByItemIDs(ctx context.Context, itemIDs []string) ([]models.Item, error)
	List(ctx context.Context, itemType string) ([]models.Item, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Item, error)
	UpdateFields(ctx context.Context, itemID string, updates map[string]any) error
	Delete(ctx context.Context, itemID string) error
	ReadStockRow(ctx context.Context, itemID string) (*models.Item, error)
	WriteStockRow(ctx context.Context, itemID string, sold int, soldOut bool) error
}

// Service owns listing CRUD and the stock accessor surface consumed by order
// placement.
type Service struct {
	repo repository
}

// NewService builds an items service with the required dependencies.
func NewService(repo repository) (*Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("items repository required")
	}
	return &Service{repo: repo}, nil
}

// ReadStock returns the current sold counter and optional ceiling for an item.
func (s *Service) ReadStock(ctx context.Context, itemID string) (StockSnapshot, error) {
	row, err := s.repo.ReadStockRow(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StockSnapshot{}, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
		}
		return StockSnapshot{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reading item stock")
	}
	return StockSnapshot{Sold: row.Sold, Qty: row.Qty}, nil
}

// WriteStock overwrites the sold counter and sold-out flag. The write is
// unconditional; callers own the read-validate-write sequencing.
func (s *Service) WriteStock(ctx context.Context, itemID string, sold int, soldOut bool) error {
	if err := s.repo.WriteStockRow(ctx, itemID, sold, soldOut); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "writing item stock")
	}
	return nil
}

// FindSnapshots batch-loads the reduced listing views for the given ids.
func (s *Service) FindSnapshots(ctx context.Context, itemIDs []string) (map[string]*ItemSnapshot, error) {
	rows, err := s.repo.FindByItemIDs(ctx, itemIDs)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item snapshots")
	}
	snapshots := make(map[string]*ItemSnapshot, len(rows))
	for i := range rows {
		snapshots[rows[i].ItemID] = SnapshotFromModel(&rows[i])
	}
	return snapshots, nil
}

// CreateListing validates and persists a new listing for the owner.
func (s *Service) CreateListing(ctx context.Context, dto CreateItemDTO) (*ItemDTO, error) {
	if dto.OwnerID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "owner is required")
	}
	if dto.Title == "" || dto.Contact == "" || dto.Type == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "title, contact and type are required")
	}
	if dto.Price.LessThanOrEqual(decimal.Zero) {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than 0")
	}
	if dto.Qty != nil && *dto.Qty <= 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "qty must be greater than 0")
	}

	item, err := s.repo.Create(ctx, dto)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating item")
	}
	return FromModel(item), nil
}

// GetListing loads a single listing by its public identifier.
func (s *Service) GetListing(ctx context.Context, itemID string) (*ItemDTO, error) {
	item, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}
	return FromModel(item), nil
}

// ListListings returns all listings, optionally filtered by type.
func (s *Service) ListListings(ctx context.Context, itemType string) ([]ItemDTO, error) {
	rows, err := s.repo.List(ctx, itemType)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing items")
	}
	out := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// ListOwnListings returns the caller's listings.
func (s *Service) ListOwnListings(ctx context.Context, ownerID uuid.UUID) ([]ItemDTO, error) {
	rows, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing items")
	}
	out := make([]ItemDTO, 0, len(rows))
	for i := range rows {
		out = append(out, *FromModel(&rows[i]))
	}
	return out, nil
}

// UpdateListing applies the given changes after an ownership check.
func (s *Service) UpdateListing(ctx context.Context, itemID string, actorID uuid.UUID, dto UpdateItemDTO) (*ItemDTO, error) {
	item, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}
	if item.OwnerID != actorID {
		return nil, pkgerrors.New(pkgerrors.CodeForbidden, "You can only update your own items")
	}

	updates := map[string]any{}
	if dto.Title != nil {
		updates["title"] = *dto.Title
	}
	if dto.Description != nil {
		updates["description"] = *dto.Description
	}
	if dto.Price != nil {
		if dto.Price.LessThanOrEqual(decimal.Zero) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than 0")
		}
		updates["price"] = *dto.Price
	}
	if dto.Contact != nil {
		updates["contact"] = *dto.Contact
	}
	if dto.Type != nil {
		updates["type"] = *dto.Type
	}
	if dto.ImageLink != nil {
		updates["image_link"] = *dto.ImageLink
	}
	if dto.Qty != nil {
		if *dto.Qty <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "qty must be greater than 0")
		}
		updates["qty"] = *dto.Qty
		updates["sold_out"] = item.Sold >= *dto.Qty
	}

	if err := s.repo.UpdateFields(ctx, itemID, updates); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating item")
	}

	updated, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reloading item")
	}
	return FromModel(updated), nil
}

// DeleteListing removes a listing after an ownership check.
func (s *Service) DeleteListing(ctx context.Context, itemID string, actorID uuid.UUID) error {
	item, err := s.repo.FindByItemID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "Item not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading item")
	}
	if item.OwnerID != actorID {
		return pkgerrors.New(pkgerrors.CodeForbidden, "You can only delete your own items")
	}
	if err := s.repo.Delete(ctx, itemID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting item")
	}
	return nil
}
