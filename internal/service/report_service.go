package service

import (
	"sort"
	"time"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/repository"

	"github.com/shopspring/decimal"
)

// MonthlySales is one calendar-month bucket of sale events
type MonthlySales struct {
	Month  string          `json:"month"` // e.g. "Jan 2026"
	Amount decimal.Decimal `json:"amount"`
	Units  int             `json:"units"`
}

// Summary is the dashboard contract: valuation, low stock, trailing and
// monthly sales in one payload
type Summary struct {
	TotalValue       decimal.Decimal `json:"total_value"`
	TotalProducts    int64           `json:"total_products"`
	LowStockProducts []model.Product `json:"low_stock_products"`
	RecentSales      decimal.Decimal `json:"recent_sales"`
	MonthlySales     []MonthlySales  `json:"monthly_sales"`
}

// ReportService derives read-only views from the catalog and the event
// history. Query-only, no side effects.
type ReportService interface {
	TotalStockValue() (decimal.Decimal, error)
	LowStock() ([]model.Product, error)
	MonthlySales(windowMonths int) ([]MonthlySales, error)
	RecentSalesTotal(days int) (decimal.Decimal, error)
	Summary() (*Summary, error)
}

type reportService struct {
	reportRepo repository.ReportRepository
	now        func() time.Time
}

func NewReportService(rRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: rRepo, now: time.Now}
}

func (s *reportService) TotalStockValue() (decimal.Decimal, error) {
	return s.reportRepo.TotalStockValue()
}

func (s *reportService) LowStock() ([]model.Product, error) {
	return s.reportRepo.FindLowStock(0)
}

// MonthlySales groups sales by calendar month over the most recent
// windowMonths months (anchored to now), returned chronologically.
// Months with no sales produce no bucket.
func (s *reportService) MonthlySales(windowMonths int) ([]MonthlySales, error) {
	if windowMonths <= 0 {
		return nil, nil
	}

	now := s.now()
	// First day of the oldest month in the window
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(windowMonths - 1), 0)

	sales, err := s.reportRepo.SalesCreatedSince(from)
	if err != nil {
		return nil, err
	}

	type bucket struct {
		amount decimal.Decimal
		units  int
	}
	buckets := make(map[time.Time]*bucket)
	for _, sale := range sales {
		ts := sale.CreatedAt
		key := time.Date(ts.Year(), ts.Month(), 1, 0, 0, 0, 0, ts.Location())
		b, ok := buckets[key]
		if !ok {
			b = &bucket{amount: decimal.Zero}
			buckets[key] = b
		}
		b.amount = b.amount.Add(sale.TotalPrice)
		b.units += sale.Qty
	}

	months := make([]time.Time, 0, len(buckets))
	for m := range buckets {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].Before(months[j]) })

	result := make([]MonthlySales, 0, len(months))
	for _, m := range months {
		result = append(result, MonthlySales{
			Month:  m.Format("Jan 2006"),
			Amount: buckets[m].amount,
			Units:  buckets[m].units,
		})
	}
	return result, nil
}

func (s *reportService) RecentSalesTotal(days int) (decimal.Decimal, error) {
	since := s.now().AddDate(0, 0, -days)
	return s.reportRepo.SalesTotalSince(since)
}

func (s *reportService) Summary() (*Summary, error) {
	totalValue, err := s.reportRepo.TotalStockValue()
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.reportRepo.CountProducts()
	if err != nil {
		return nil, err
	}
	lowStock, err := s.reportRepo.FindLowStock(10)
	if err != nil {
		return nil, err
	}
	recentSales, err := s.RecentSalesTotal(7)
	if err != nil {
		return nil, err
	}
	monthlySales, err := s.MonthlySales(12)
	if err != nil {
		return nil, err
	}

	return &Summary{
		TotalValue:       totalValue,
		TotalProducts:    totalProducts,
		LowStockProducts: lowStock,
		RecentSales:      recentSales,
		MonthlySales:     monthlySales,
	}, nil
}
