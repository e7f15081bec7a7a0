package service_test

import (
	"testing"
	"time"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/repository"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/service"

	"gorm.io/gorm"
)

func newReports(db *gorm.DB) service.ReportService {
	return service.NewReportService(repository.NewReportRepo(db))
}

// A purchase must be visible in the valuation immediately, no stale read
func TestTotalStockValueReflectsPurchase(t *testing.T) {
	db := memdb(t)
	reports := newReports(db)
	ledger := newLedger(db)
	p := seedProduct(t, db, "SKU-1", 0, "10.00", 5)

	before, err := reports.TotalStockValue()
	if err != nil {
		t.Fatal(err)
	}
	if !before.IsZero() {
		t.Fatalf("want zero valuation, got %s", before)
	}

	if _, err := ledger.RecordPurchase(&model.Purchase{
		ProductID: p.ID, Qty: 5, TotalCost: mustDecimal(t, "50.00"), Supplier: "X",
	}, "tester"); err != nil {
		t.Fatal(err)
	}

	after, err := reports.TotalStockValue()
	if err != nil {
		t.Fatal(err)
	}
	if !after.Equal(mustDecimal(t, "50.00")) {
		t.Fatalf("want 50.00, got %s", after)
	}
}

func TestLowStockThreshold(t *testing.T) {
	db := memdb(t)
	reports := newReports(db)

	low := seedProduct(t, db, "LOW-1", 2, "1.00", 5)
	seedProduct(t, db, "OK-1", 10, "1.00", 5)
	lower := seedProduct(t, db, "LOW-0", 0, "1.00", 5)

	products, err := reports.LowStock()
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("want 2 low-stock products, got %d", len(products))
	}
	// Ascending by quantity
	if products[0].ID != lower.ID || products[1].ID != low.ID {
		t.Fatalf("wrong order: %s, %s", products[0].SKU, products[1].SKU)
	}
}

// Events across 13 distinct months must collapse into at most 12 buckets
func TestMonthlySalesWindow(t *testing.T) {
	db := memdb(t)
	reports := newReports(db)
	p := seedProduct(t, db, "SKU-1", 0, "1.00", 5)

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 13; i++ {
		seedSaleAt(t, db, p.ID, 2, "10.00", monthStart.AddDate(0, -i, 0))
	}

	buckets, err := reports.MonthlySales(12)
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 12 {
		t.Fatalf("want 12 buckets, got %d", len(buckets))
	}
	// Chronological: last bucket is the current month
	if want := monthStart.Format("Jan 2006"); buckets[11].Month != want {
		t.Fatalf("want last bucket %q, got %q", want, buckets[11].Month)
	}
	for _, b := range buckets {
		if b.Units != 2 || !b.Amount.Equal(mustDecimal(t, "10.00")) {
			t.Fatalf("bad bucket: %+v", b)
		}
	}
}

func TestMonthlySalesGroupsWithinMonth(t *testing.T) {
	db := memdb(t)
	reports := newReports(db)
	p := seedProduct(t, db, "SKU-1", 0, "1.00", 5)

	now := time.Now()
	day := time.Date(now.Year(), now.Month(), 1, 9, 0, 0, 0, time.UTC)
	seedSaleAt(t, db, p.ID, 3, "30.00", day)
	seedSaleAt(t, db, p.ID, 1, "12.50", day.Add(48*time.Hour))

	buckets, err := reports.MonthlySales(1)
	if err != nil {
		t.Fatal(err)
	}
	if len(buckets) != 1 {
		t.Fatalf("want 1 bucket, got %d", len(buckets))
	}
	if buckets[0].Units != 4 || !buckets[0].Amount.Equal(mustDecimal(t, "42.50")) {
		t.Fatalf("bad aggregation: %+v", buckets[0])
	}
}

func TestRecentSalesTotalTrailingWindow(t *testing.T) {
	db := memdb(t)
	reports := newReports(db)
	p := seedProduct(t, db, "SKU-1", 0, "1.00", 5)

	now := time.Now()
	seedSaleAt(t, db, p.ID, 1, "25.00", now.AddDate(0, 0, -3))
	seedSaleAt(t, db, p.ID, 1, "99.00", now.AddDate(0, 0, -10)) // outside 7d

	total, err := reports.RecentSalesTotal(7)
	if err != nil {
		t.Fatal(err)
	}
	if !total.Equal(mustDecimal(t, "25.00")) {
		t.Fatalf("want 25.00, got %s", total)
	}
}

func TestSummaryShape(t *testing.T) {
	db := memdb(t)
	reports := newReports(db)
	p := seedProduct(t, db, "SKU-1", 2, "10.00", 5)
	seedSaleAt(t, db, p.ID, 1, "10.00", time.Now().AddDate(0, 0, -1))

	summary, err := reports.Summary()
	if err != nil {
		t.Fatal(err)
	}
	if summary.TotalProducts != 1 {
		t.Fatalf("want 1 product, got %d", summary.TotalProducts)
	}
	if !summary.TotalValue.Equal(mustDecimal(t, "20.00")) {
		t.Fatalf("want valuation 20.00, got %s", summary.TotalValue)
	}
	if len(summary.LowStockProducts) != 1 {
		t.Fatalf("want 1 low-stock product, got %d", len(summary.LowStockProducts))
	}
	if !summary.RecentSales.Equal(mustDecimal(t, "10.00")) {
		t.Fatalf("want recent sales 10.00, got %s", summary.RecentSales)
	}
	if len(summary.MonthlySales) == 0 {
		t.Fatal("want at least one monthly bucket")
	}
}
