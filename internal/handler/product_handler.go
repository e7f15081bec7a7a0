package handler

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/model"
	"github.com/Sidra-Yasmeen/Inventory-App/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// List returns products, optionally filtered by ?q= substring search
func (h *ProductHandler) List(c *fiber.Ctx) error {
	products, err := h.service.Search(c.Query("q"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

func (h *ProductHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	product, err := h.service.Get(id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(product)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	if err := h.service.Create(&product, getUserID(c)); err != nil {
		return fail(c, err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Product created", "data": product})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	var product model.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}

	updated, err := h.service.Update(id, &product, getUserID(c))
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{"message": "Product updated", "data": updated})
}

// Delete is idempotent: deleting an absent id still answers success
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid product ID"})
	}

	if err := h.service.Delete(id); err != nil {
		return fail(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// LowStock lists products at or below their reorder threshold
func (h *ProductHandler) LowStock(c *fiber.Ctx) error {
	products, err := h.service.LowStock()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(products)
}

// ExportCSV streams the current catalog snapshot as a CSV download
func (h *ProductHandler) ExportCSV(c *fiber.Ctx) error {
	products, err := h.service.Snapshot()
	if err != nil {
		return fail(c, err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"ID", "Name", "SKU", "Category", "Price", "Quantity", "Supplier"})
	for _, p := range products {
		_ = w.Write([]string{
			p.ID.String(),
			p.Name,
			p.SKU,
			p.Category,
			p.Price.StringFixed(2),
			strconv.Itoa(p.Quantity),
			p.Supplier,
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write CSV"})
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="products.csv"`)
	return c.Send(buf.Bytes())
}
