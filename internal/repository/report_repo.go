package repository

import (
	"time"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportRepository serves the read-only aggregate queries behind the
// dashboard. Every method is a single SELECT, so each result is a
// consistent snapshot and never observes a half-applied ledger
// transaction.
type ReportRepository interface {
	TotalStockValue() (decimal.Decimal, error)
	CountProducts() (int64, error)
	FindLowStock(limit int) ([]model.Product, error)
	SalesTotalSince(since time.Time) (decimal.Decimal, error)
	SalesCreatedSince(since time.Time) ([]model.Sale, error)
}

type reportRepo struct {
	db *gorm.DB
}

func NewReportRepo(db *gorm.DB) ReportRepository {
	return &reportRepo{db}
}

// TotalStockValue computes SUM(price * quantity) over all products
func (r *reportRepo) TotalStockValue() (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Product{}).
		Select("COALESCE(SUM(price * quantity), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, wrapErr(err)
	}
	return total, nil
}

func (r *reportRepo) CountProducts() (int64, error) {
	var count int64
	err := r.db.Model(&model.Product{}).Count(&count).Error
	return count, wrapErr(err)
}

// FindLowStock returns products at or below their own reorder threshold,
// most depleted first. limit <= 0 means no limit.
func (r *reportRepo) FindLowStock(limit int) ([]model.Product, error) {
	var products []model.Product
	db := r.db.Where("quantity <= min_stock").Order("quantity ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}
	err := db.Find(&products).Error
	return products, wrapErr(err)
}

// SalesTotalSince computes SUM(total_price) of sales in the trailing window
func (r *reportRepo) SalesTotalSince(since time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.Model(&model.Sale{}).
		Where("created_at >= ?", since).
		Select("COALESCE(SUM(total_price), 0)").
		Row().Scan(&total)
	if err != nil {
		return decimal.Zero, wrapErr(err)
	}
	return total, nil
}

// SalesCreatedSince returns the raw sale rows in the window, oldest first.
// Month formatting differs between Postgres and SQLite, so calendar
// bucketing happens in the service instead of in SQL.
func (r *reportRepo) SalesCreatedSince(since time.Time) ([]model.Sale, error) {
	var sales []model.Sale
	err := r.db.Where("created_at >= ?", since).Order("created_at ASC").Find(&sales).Error
	return sales, wrapErr(err)
}
