package items

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/cropsense/cropsense-backend/pkg/db/models"
)

// ItemDTO is the transport shape of a listing.
type ItemDTO struct {
	ItemID      string          `json:"item_id"`
	OwnerID     uuid.UUID       `json:"owner_id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Contact     string          `json:"contact"`
	Type        string          `json:"type"`
	ImageLink   *string         `json:"image_url,omitempty"`
	Qty         *int            `json:"qty,omitempty"`
	Sold        int             `json:"sold"`
	SoldOut     bool            `json:"sold_out"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ItemSnapshot is the reduced listing view embedded into order history rows.
type ItemSnapshot struct {
	ItemID      string          `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Type        string          `json:"type"`
	Description string          `json:"description"`
	ImageURL    *string         `json:"image_url"`
	Contact     string          `json:"farmer_contact"`
}

// CreateItemDTO holds the data required to persist a new listing.
type CreateItemDTO struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Price       decimal.Decimal
	Contact     string
	Type        string
	ImageLink   *string
	ImageBucket *string
	Qty         *int
}

// UpdateItemDTO carries the mutable listing fields. Nil means "leave as is".
type UpdateItemDTO struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	Contact     *string
	Type        *string
	ImageLink   *string
	Qty         *int
}

// StockSnapshot is the accessor's read view of an item's counters. A nil Qty
// means the listing has no stock ceiling.
type StockSnapshot struct {
	Sold int
	Qty  *int
}

func FromModel(m *models.Item) *ItemDTO {
	if m == nil {
		return nil
	}
	return &ItemDTO{
		ItemID:      m.ItemID,
		OwnerID:     m.OwnerID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		Contact:     m.Contact,
		Type:        m.Type,
		ImageLink:   m.ImageLink,
		Qty:         m.Qty,
		Sold:        m.Sold,
		SoldOut:     m.SoldOut,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func SnapshotFromModel(m *models.Item) *ItemSnapshot {
	if m == nil {
		return nil
	}
	return &ItemSnapshot{
		ItemID:      m.ItemID,
		Title:       m.Title,
		Price:       m.Price,
		Type:        m.Type,
		Description: m.Description,
		ImageURL:    m.ImageLink,
		Contact:     m.Contact,
	}
}

func (c CreateItemDTO) ToModel() *models.Item {
	return &models.Item{
		ID:          uuid.New(),
		ItemID:      uuid.NewString(),
		OwnerID:     c.OwnerID,
		Title:       c.Title,
		Description: c.Description,
		Price:       c.Price,
		Contact:     c.Contact,
		Type:        c.Type,
		ImageLink:   c.ImageLink,
		ImageBucket: c.ImageBucket,
		Qty:         c.Qty,
	}
}
