package service

import (
	"errors"
	"fmt"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/apperr"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/repository"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/ws"
	"github.com/Sidra-Yasmeen/Inventory-App/pkg/validator"

	"github.com/google/uuid"
)

// ProductService covers catalog CRUD and search. Stock quantity is out of
// its reach: administrative edits touch name/price/metadata only, and
// every quantity change goes through the ledger.
type ProductService interface {
	Create(req *model.Product, userID string) error
	Update(id uuid.UUID, req *model.Product, userID string) (*model.Product, error)
	Delete(id uuid.UUID) error
	Get(id uuid.UUID) (*model.Product, error)
	Search(query string) ([]model.Product, error)
	LowStock() ([]model.Product, error)
	Snapshot() ([]model.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
	reportRepo  repository.ReportRepository
	wsHub       *ws.Hub
}

func NewProductService(pRepo repository.ProductRepository, rRepo repository.ReportRepository, hub *ws.Hub) ProductService {
	return &productService{
		productRepo: pRepo,
		reportRepo:  rRepo,
		wsHub:       hub,
	}
}

func (s *productService) Create(req *model.Product, userID string) error {
	// 1. Struct validation
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return apperr.Validationf("%s", errs[0])
	}
	if req.Price.IsNegative() {
		return apperr.Validationf("price must not be negative")
	}
	if req.Quantity < 0 {
		return apperr.Validationf("quantity must not be negative")
	}
	if req.MinStock < 0 {
		return apperr.Validationf("min_stock must not be negative")
	}
	if req.MinStock == 0 {
		req.MinStock = model.DefaultMinStock
	}

	// 2. SKU duplicate check (the unique index is the backstop under races)
	existing, err := s.productRepo.FindBySKU(req.SKU)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return err
	}
	if existing != nil && existing.ID != uuid.Nil {
		return fmt.Errorf("%w: sku %q already exists", apperr.ErrDuplicateKey, req.SKU)
	}

	// 3. Audit fields
	req.CreatedBy = userID
	req.UpdatedBy = userID

	// 4. Persist
	if err := s.productRepo.Create(req); err != nil {
		return err
	}

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent(map[string]interface{}{
			"type":   "stock_update",
			"action": "product_created",
			"product": map[string]interface{}{
				"id":       req.ID,
				"sku":      req.SKU,
				"name":     req.Name,
				"quantity": req.Quantity,
				"price":    req.Price,
			},
		})
	}

	return nil
}

// Update applies an administrative edit. The quantity field of req is
// deliberately ignored; only purchases and sales move stock.
func (s *productService) Update(id uuid.UUID, req *model.Product, userID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("%s", errs[0])
	}
	if req.Price.IsNegative() {
		return nil, apperr.Validationf("price must not be negative")
	}
	if req.MinStock < 0 {
		return nil, apperr.Validationf("min_stock must not be negative")
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	existing.Name = req.Name
	existing.SKU = req.SKU
	existing.Category = req.Category
	existing.Price = req.Price
	existing.Supplier = req.Supplier
	if req.MinStock > 0 {
		existing.MinStock = req.MinStock
	}
	existing.UpdatedBy = userID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}

	if s.wsHub != nil {
		go s.wsHub.BroadcastEvent(map[string]interface{}{
			"type":   "stock_update",
			"action": "product_updated",
			"product": map[string]interface{}{
				"id":    existing.ID,
				"sku":   existing.SKU,
				"name":  existing.Name,
				"price": existing.Price,
			},
		})
	}

	return existing, nil
}

func (s *productService) Delete(id uuid.UUID) error {
	return s.productRepo.Delete(id)
}

func (s *productService) Get(id uuid.UUID) (*model.Product, error) {
	return s.productRepo.FindByID(id)
}

func (s *productService) Search(query string) ([]model.Product, error) {
	return s.productRepo.Search(query)
}

func (s *productService) LowStock() ([]model.Product, error) {
	return s.reportRepo.FindLowStock(0)
}

// Snapshot returns the full catalog ordered by name, for the CSV export
func (s *productService) Snapshot() ([]model.Product, error) {
	return s.productRepo.FindAllByName()
}
