package repository

import (
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PurchaseRepository interface {
	Create(tx *gorm.DB, purchase *model.Purchase) error
	FindAll() ([]model.Purchase, error)
	FindByID(id uuid.UUID) (*model.Purchase, error)
}

type purchaseRepo struct {
	db *gorm.DB
}

func NewPurchaseRepo(db *gorm.DB) PurchaseRepository {
	return &purchaseRepo{db}
}

// Create appends a purchase event. Callers pass tx so the append commits
// together with the stock increment.
func (r *purchaseRepo) Create(tx *gorm.DB, purchase *model.Purchase) error {
	if tx == nil {
		tx = r.db
	}
	return wrapErr(tx.Create(purchase).Error)
}

func (r *purchaseRepo) FindAll() ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.db.Preload("Product").Order("created_at DESC").Find(&purchases).Error
	return purchases, wrapErr(err)
}

func (r *purchaseRepo) FindByID(id uuid.UUID) (*model.Purchase, error) {
	var purchase model.Purchase
	if err := r.db.Preload("Product").First(&purchase, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &purchase, nil
}
