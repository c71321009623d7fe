package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/cropsense/cropsense-backend/internal/items"
	"github.com/cropsense/cropsense-backend/pkg/db/models"
)

// OrderDTO is the transport shape of an order record.
type OrderDTO struct {
	OrderID     string    `json:"order_id"`
	ItemID      string    `json:"item_id"`
	Qty         int       `json:"qty"`
	PurchaserID uuid.UUID `json:"uuid"`
	Progress    string    `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EnrichedOrderDTO pairs an order with a snapshot of the listing it was placed
// against. Items is null when the listing no longer resolves.
type EnrichedOrderDTO struct {
	OrderDTO
	Items *items.ItemSnapshot `json:"items"`
}

// PlaceOrderInput carries the caller-supplied order parameters.
type PlaceOrderInput struct {
	ItemID string
	Qty    int
	UserID uuid.UUID
}

// CreateOrderDTO holds the data required to persist a new order row.
type CreateOrderDTO struct {
	ItemID      string
	Qty         int
	PurchaserID uuid.UUID
}

func FromModel(m *models.Order) *OrderDTO {
	if m == nil {
		return nil
	}
	return &OrderDTO{
		OrderID:     m.OrderID,
		ItemID:      m.ItemID,
		Qty:         m.Qty,
		PurchaserID: m.PurchaserID,
		Progress:    m.Progress,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func (c CreateOrderDTO) ToModel() *models.Order {
	return &models.Order{
		ID:          uuid.New(),
		OrderID:     uuid.NewString(),
		ItemID:      c.ItemID,
		Qty:         c.Qty,
		PurchaserID: c.PurchaserID,
		Progress:    models.OrderProgressPending,
	}
}
