package handler

import (
	"errors"

	"stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var verboseErrors bool

// SetVerboseErrors switches unexpected-error responses to include the
// underlying error text. Only enabled in development.
func SetVerboseErrors(v bool) {
	verboseErrors = v
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page        int  `json:"page"`
	Limit       int  `json:"limit"`
	Total       int  `json:"total"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func ok(c *fiber.Ctx, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "data": data})
}

func okMessage(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{"success": true, "message": message, "data": data})
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": message,
		"data":    data,
	})
}

func paginated(c *fiber.Ctx, data interface{}, p Pagination) error {
	return c.JSON(fiber.Map{"success": true, "data": data, "pagination": p})
}

func fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"success": false, "error": message})
}

// serviceError maps service-layer errors onto HTTP statuses.
func serviceError(c *fiber.Ctx, err error) error {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		return fail(c, fiber.StatusBadRequest, verr.Message)
	}

	switch {
	case errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrSupplierNotFound),
		errors.Is(err, service.ErrInventoryNotFound),
		errors.Is(err, service.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, service.ErrSKUExists),
		errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrInventoryExists),
		errors.Is(err, service.ErrCategoryInUse),
		errors.Is(err, service.ErrSupplierInUse),
		errors.Is(err, service.ErrSelfDelete):
		return fail(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, service.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	}

	zap.L().Error("request failed",
		zap.String("path", c.Path()),
		zap.String("method", c.Method()),
		zap.Error(err),
	)
	msg := "Internal server error"
	if verboseErrors {
		msg = err.Error()
	}
	return fail(c, fiber.StatusInternalServerError, msg)
}

// ErrorHandler is the app-level fallback for errors that escape handlers.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code == fiber.StatusInternalServerError {
		zap.L().Error("unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		if !verboseErrors {
			return fail(c, code, "Internal server error")
		}
	}
	return fail(c, code, err.Error())
}

func paramUUID(c *fiber.Ctx, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Params(name))
}

// paginate slices a full result set into the requested page window.
func paginate(c *fiber.Ctx, total int) (offset, limit int, p Pagination) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit = c.QueryInt("limit", 10)
	if limit < 1 {
		limit = 10
	}

	totalPages := (total + limit - 1) / limit
	offset = (page - 1) * limit
	if offset > total {
		offset = total
	}

	p = Pagination{
		Page:        page,
		Limit:       limit,
		Total:       total,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
	}
	return offset, limit, p
}
