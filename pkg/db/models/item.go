package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item is a marketplace listing a farmer put up for sale. ItemID is the
// opaque public identifier; ID stays internal.
type Item struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey"`
	ItemID      string          `gorm:"column:item_id;not null;uniqueIndex"`
	OwnerID     uuid.UUID       `gorm:"column:owner_id;type:uuid;not null;index"`
	Title       string          `gorm:"column:title;not null"`
	Description string          `gorm:"column:description;not null"`
	Price       decimal.Decimal `gorm:"column:price;type:numeric(12,2);not null"`
	Contact     string          `gorm:"column:contact;not null"`
	Type        string          `gorm:"column:type;not null"`
	ImageLink   *string         `gorm:"column:image_link"`
	ImageBucket *string         `gorm:"column:image_bucket"`
	Qty         *int            `gorm:"column:qty"`
	Sold        int             `gorm:"column:sold;not null;default:0"`
	SoldOut     bool            `gorm:"column:sold_out;not null;default:false"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Item) TableName() string {
	return "items"
}
