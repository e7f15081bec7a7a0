package model

import "github.com/shopspring/decimal"

const DefaultMinStock = 5

type Product struct {
	BaseModel
	SKU      string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"sku" validate:"required"`
	Name     string          `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Category string          `gorm:"type:varchar(100)" json:"category"`
	Price    decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Quantity int             `gorm:"not null;default:0" json:"quantity"`
	Supplier string          `gorm:"type:varchar(255)" json:"supplier,omitempty"`
	MinStock int             `gorm:"not null;default:5" json:"min_stock"`

	// Relations
	Purchases []Purchase `json:"purchases,omitempty"`
	Sales     []Sale     `json:"sales,omitempty"`
}
