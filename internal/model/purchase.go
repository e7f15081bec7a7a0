package model

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Purchase is an inbound stock event. Rows are immutable once committed;
// each one increases the referenced product's quantity by Qty.
type Purchase struct {
	BaseModel
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index" json:"product_id" validate:"uuid_required"`
	Product   Product         `json:"product" validate:"-"` // Relation - skip validation
	Qty       int             `gorm:"not null" json:"qty" validate:"required,gt=0"`
	TotalCost decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_cost"`
	Supplier  string          `gorm:"type:varchar(255)" json:"supplier"`
}
