package handler

import (
	"strconv"

	"github.com/Sidra-Yasmeen/Inventory-App/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

// Summary returns the dashboard payload: total_value, total_products,
// low_stock_products, recent_sales (7 days), monthly_sales (12 months)
func (h *ReportHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.service.Summary()
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(summary)
}

// MonthlySales returns the per-month breakdown. Query param: months (default 12)
func (h *ReportHandler) MonthlySales(c *fiber.Ctx) error {
	months, err := strconv.Atoi(c.Query("months", "12"))
	if err != nil || months <= 0 {
		months = 12
	}

	data, err := h.service.MonthlySales(months)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(fiber.Map{
		"window_months": months,
		"data":          data,
	})
}
