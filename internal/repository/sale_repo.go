package repository

import (
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SaleRepository interface {
	Create(tx *gorm.DB, sale *model.Sale) error
	FindAll() ([]model.Sale, error)
	FindByID(id uuid.UUID) (*model.Sale, error)
}

type saleRepo struct {
	db *gorm.DB
}

func NewSaleRepo(db *gorm.DB) SaleRepository {
	return &saleRepo{db}
}

// Create appends a sale event. Callers pass tx so the append commits
// together with the stock decrement.
func (r *saleRepo) Create(tx *gorm.DB, sale *model.Sale) error {
	if tx == nil {
		tx = r.db
	}
	return wrapErr(tx.Create(sale).Error)
}

func (r *saleRepo) FindAll() ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Preload("Product").Order("created_at DESC").Find(&sales).Error
	return sales, wrapErr(err)
}

func (r *saleRepo) FindByID(id uuid.UUID) (*model.Sale, error) {
	var sale model.Sale
	if err := r.db.Preload("Product").First(&sale, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &sale, nil
}
