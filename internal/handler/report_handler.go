package handler

import (
	"time"

	"stockroom/internal/model"
	"stockroom/internal/repository"
	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	service service.ReportService
}

func NewReportHandler(s service.ReportService) *ReportHandler {
	return &ReportHandler{service: s}
}

func (h *ReportHandler) Dashboard(c *fiber.Ctx) error {
	report, err := h.service.Dashboard()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, report)
}

func (h *ReportHandler) InventorySummary(c *fiber.Ctx) error {
	report, err := h.service.InventorySummary()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, report)
}

func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	report, err := h.service.LowStock()
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, report)
}

func (h *ReportHandler) Transactions(c *fiber.Ctx) error {
	filter := repository.TransactionFilter{
		Type: model.TransactionType(c.Query("type")),
	}

	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
		}
		filter.StartDate = t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fail(c, fiber.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
		}
		// Include the whole end day.
		filter.EndDate = t.Add(24*time.Hour - time.Nanosecond)
	}

	report, err := h.service.Transactions(filter)
	if err != nil {
		return serviceError(c, err)
	}
	return ok(c, report)
}
