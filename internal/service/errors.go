package service

import (
	"errors"
	"fmt"

	"stockroom/pkg/validator"
)

// Sentinel errors shared across services. Messages are user-facing; handlers
// map them to HTTP statuses.
var (
	ErrProductNotFound   = errors.New("Product not found")
	ErrCategoryNotFound  = errors.New("Category not found")
	ErrSupplierNotFound  = errors.New("Supplier not found")
	ErrInventoryNotFound = errors.New("Inventory item not found")
	ErrUserNotFound      = errors.New("User not found")

	ErrSKUExists       = errors.New("SKU already exists")
	ErrEmailExists     = errors.New("Email already exists")
	ErrInventoryExists = errors.New("Inventory item already exists for this product")
	ErrCategoryInUse   = errors.New("Category still has associated products")
	ErrSupplierInUse   = errors.New("Supplier still has associated products")

	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrSelfDelete         = errors.New("Cannot delete your own account")
)

// ValidationError carries field-level validation failures.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// checkRequest validates a request DTO and converts the first failure into a
// ValidationError.
func checkRequest(req interface{}) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{
			Message: fmt.Sprintf("Validation failed: %s", errs[0].Message()),
		}
	}
	return nil
}
