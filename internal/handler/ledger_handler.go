package handler

import (
	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type LedgerHandler struct {
	service service.LedgerService
}

func NewLedgerHandler(s service.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: s}
}

func (h *LedgerHandler) ListPurchases(c *fiber.Ctx) error {
	purchases, err := h.service.GetPurchases()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchases)
}

func (h *LedgerHandler) CreatePurchase(c *fiber.Ctx) error {
	var purchase model.Purchase
	if err := c.BodyParser(&purchase); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	recorded, err := h.service.RecordPurchase(&purchase, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Purchase recorded", "data": recorded})
}

func (h *LedgerHandler) ListSales(c *fiber.Ctx) error {
	sales, err := h.service.GetSales()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sales)
}

func (h *LedgerHandler) CreateSale(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	recorded, err := h.service.RecordSale(&sale, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Sale recorded", "data": recorded})
}

func (h *LedgerHandler) GetPurchase(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	purchase, err := h.service.GetPurchase(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(purchase)
}

func (h *LedgerHandler) GetSale(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.service.GetSale(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(sale)
}
