package service_test

import (
	"testing"
	"time"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// memdb opens a fresh in-memory database per test. A single pooled
// connection keeps the :memory: store shared and serializes writers the
// way a row lock would.
func memdb(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&model.Product{}, &model.Purchase{}, &model.Sale{}, &model.User{}); err != nil {
		t.Fatal(err)
	}
	return db
}

func seedProduct(t *testing.T, db *gorm.DB, sku string, qty int, price string, minStock int) *model.Product {
	t.Helper()
	p := &model.Product{
		SKU:      sku,
		Name:     "Product " + sku,
		Category: "general",
		Price:    mustDecimal(t, price),
		Quantity: qty,
		MinStock: minStock,
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatal(err)
	}
	return p
}

func seedSaleAt(t *testing.T, db *gorm.DB, productID uuid.UUID, qty int, total string, at time.Time) {
	t.Helper()
	s := &model.Sale{
		ProductID:  productID,
		Qty:        qty,
		TotalPrice: mustDecimal(t, total),
		Customer:   "walk-in",
	}
	s.CreatedAt = at
	if err := db.Create(s).Error; err != nil {
		t.Fatal(err)
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}
