package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCategoryInUse      = errors.New("cannot delete category because it contains products")
	ErrProductExists      = errors.New("product already exists")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidQuantity    = errors.New("qty must be greater than 0")
	ErrInsufficientStock  = errors.New("insufficient stock")
	ErrNoFieldsProvided   = errors.New("at least one field (status, paid, paid_by) is required")
)
