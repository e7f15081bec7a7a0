package repository

import (
	"github.com/Sidra-Yasmeen/Inventory-App/internal/apperr"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepository interface {
	Create(product *model.Product) error
	Search(query string) ([]model.Product, error)
	FindAllByName() ([]model.Product, error)
	FindByID(id uuid.UUID) (*model.Product, error)
	FindBySKU(sku string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id uuid.UUID) error
	AdjustQuantity(tx *gorm.DB, id uuid.UUID, delta int) error
}

type productRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) ProductRepository {
	return &productRepo{db}
}

func (r *productRepo) Create(product *model.Product) error {
	return wrapErr(r.db.Create(product).Error)
}

// Search matches name, sku or category by substring, newest-first.
// An empty query matches everything.
func (r *productRepo) Search(query string) ([]model.Product, error) {
	var products []model.Product
	db := r.db.Order("created_at DESC")
	if query != "" {
		like := "%" + query + "%"
		db = db.Where("name LIKE ? OR sku LIKE ? OR category LIKE ?", like, like, like)
	}
	err := db.Find(&products).Error
	return products, wrapErr(err)
}

func (r *productRepo) FindAllByName() ([]model.Product, error) {
	var products []model.Product
	err := r.db.Order("name ASC").Find(&products).Error
	return products, wrapErr(err)
}

func (r *productRepo) FindByID(id uuid.UUID) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &product, nil
}

func (r *productRepo) FindBySKU(sku string) (*model.Product, error) {
	var product model.Product
	if err := r.db.First(&product, "sku = ?", sku).Error; err != nil {
		return nil, wrapErr(err)
	}
	return &product, nil
}

func (r *productRepo) Update(product *model.Product) error {
	return wrapErr(r.db.Save(product).Error)
}

// Delete is idempotent: removing an absent id is not an error
func (r *productRepo) Delete(id uuid.UUID) error {
	return wrapErr(r.db.Delete(&model.Product{}, "id = ?", id).Error)
}

// AdjustQuantity is the only write path for stock. The guard travels in
// the statement itself, so concurrent adjustments against the same row
// serialize at the storage layer and the quantity can never go negative.
// Pass tx to run inside a ledger transaction.
func (r *productRepo) AdjustQuantity(tx *gorm.DB, id uuid.UUID, delta int) error {
	if tx == nil {
		tx = r.db
	}
	res := tx.Model(&model.Product{}).
		Where("id = ? AND quantity + ? >= 0", id, delta).
		Update("quantity", gorm.Expr("quantity + ?", delta))
	if res.Error != nil {
		return wrapErr(res.Error)
	}
	if res.RowsAffected == 0 {
		// Distinguish a missing row from a rejected decrement
		var count int64
		if err := tx.Model(&model.Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return wrapErr(err)
		}
		if count == 0 {
			return apperr.ErrNotFound
		}
		return apperr.ErrInsufficientStock
	}
	return nil
}
