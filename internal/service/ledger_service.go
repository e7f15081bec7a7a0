package service

import (
	"fmt"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/apperr"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/repository"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/ws"
	"github.com/Sidra-Yasmeen/Inventory-App/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LedgerService turns purchase and sale requests into atomic state
// transitions: the event append and the stock mutation commit together or
// not at all. The non-negativity check rides inside the conditional
// UPDATE, so concurrent sales against one product serialize at the row
// while sales against different products proceed independently.
type LedgerService interface {
	RecordPurchase(req *model.Purchase, userID string) (*model.Purchase, error)
	RecordSale(req *model.Sale, userID string) (*model.Sale, error)
	GetPurchases() ([]model.Purchase, error)
	GetSales() ([]model.Sale, error)
	GetPurchase(id uuid.UUID) (*model.Purchase, error)
	GetSale(id uuid.UUID) (*model.Sale, error)
}

type ledgerService struct {
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	db           *gorm.DB
	wsHub        *ws.Hub
}

func NewLedgerService(
	pRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	db *gorm.DB,
	hub *ws.Hub,
) LedgerService {
	return &ledgerService{
		productRepo:  pRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		db:           db,
		wsHub:        hub,
	}
}

func (s *ledgerService) RecordPurchase(req *model.Purchase, userID string) (*model.Purchase, error) {
	// 1. Input validation
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("%s", errs[0])
	}
	if req.TotalCost.IsNegative() {
		return nil, apperr.Validationf("total_cost must not be negative")
	}

	var product model.Product

	// 2. Atomic transition: stock increment + event append
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.AdjustQuantity(tx, req.ProductID, req.Qty); err != nil {
			return err
		}
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			return apperr.Storage(err)
		}

		req.CreatedBy = userID
		req.UpdatedBy = userID
		return s.purchaseRepo.Create(tx, req)
	})
	if err != nil {
		return nil, err
	}

	s.broadcastLedgerEvent("purchase_recorded", "IN", req.Qty, &product)
	return req, nil
}

func (s *ledgerService) RecordSale(req *model.Sale, userID string) (*model.Sale, error) {
	// 1. Input validation
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Validationf("%s", errs[0])
	}
	if req.TotalPrice.IsNegative() {
		return nil, apperr.Validationf("total_price must not be negative")
	}

	var product model.Product

	// 2. Atomic transition: conditional decrement + event append.
	// AdjustQuantity distinguishes a missing product from a decrement the
	// guard rejected, so NotFound and InsufficientStock both surface here.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.productRepo.AdjustQuantity(tx, req.ProductID, -req.Qty); err != nil {
			return err
		}
		if err := tx.First(&product, "id = ?", req.ProductID).Error; err != nil {
			return apperr.Storage(err)
		}

		req.CreatedBy = userID
		req.UpdatedBy = userID
		return s.saleRepo.Create(tx, req)
	})
	if err != nil {
		return nil, err
	}

	s.broadcastLedgerEvent("sale_recorded", "OUT", req.Qty, &product)
	return req, nil
}

func (s *ledgerService) GetPurchases() ([]model.Purchase, error) {
	return s.purchaseRepo.FindAll()
}

func (s *ledgerService) GetSales() ([]model.Sale, error) {
	return s.saleRepo.FindAll()
}

func (s *ledgerService) GetPurchase(id uuid.UUID) (*model.Purchase, error) {
	return s.purchaseRepo.FindByID(id)
}

func (s *ledgerService) GetSale(id uuid.UUID) (*model.Sale, error) {
	return s.saleRepo.FindByID(id)
}

// broadcastLedgerEvent notifies dashboard clients after a commit. Runs
// outside the transaction so a rollback never leaks a phantom event.
func (s *ledgerService) broadcastLedgerEvent(action, direction string, qty int, product *model.Product) {
	if s.wsHub == nil {
		return
	}
	verb := "added"
	if direction == "OUT" {
		verb = "removed"
	}
	go s.wsHub.BroadcastEvent(map[string]interface{}{
		"type":   "stock_update",
		"action": action,
		"event": map[string]interface{}{
			"direction":  direction,
			"qty":        qty,
			"product_id": product.ID,
			"product": map[string]interface{}{
				"name": product.Name,
				"sku":  product.SKU,
			},
			"new_quantity": product.Quantity,
		},
		"message": fmt.Sprintf("%s %d units of '%s' (%s)", verb, qty, product.Name, direction),
	})
}
