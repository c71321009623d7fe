package models

import (
	"time"

	"github.com/google/uuid"
)

// Order records a purchase of qty units of an item. ItemID references the
// item's public identifier, not the row PK, so orders survive relisting.
type Order struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	OrderID     string    `gorm:"column:order_id;not null;uniqueIndex"`
	ItemID      string    `gorm:"column:item_id;not null;index"`
	Qty         int       `gorm:"column:qty;not null"`
	PurchaserID uuid.UUID `gorm:"column:purchaser_id;type:uuid;not null;index"`
	Progress    string    `gorm:"column:progress;not null;default:pending"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Order) TableName() string {
	return "orders"
}

// Order progress states.
const (
	OrderProgressPending = "pending"
)
