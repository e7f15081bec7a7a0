package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Sale is an outbound stock event. Rows are immutable once committed; a
// sale is only ever created together with the stock decrement it records,
// so no committed sale can have driven a quantity below zero.
type Sale struct {
	BaseModel
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product    Product         `json:"product" validate:"-"` // Relation - skip validation
	Qty        int             `gorm:"not null" json:"qty" validate:"required,gt=0"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_price"`
	Customer   string          `gorm:"type:varchar(255)" json:"customer"`
}
