package repository

import (
	"storefront/internal/domain"
)

type CartRepository interface {
	// FindLine returns the open line for (customer, product), nil if none.
	FindLine(customerID, productID uint64) (*domain.CartLine, error)
	// FindByIDForCustomer scopes the lookup to the owning customer; another
	// customer's line is indistinguishable from a missing one.
	FindByIDForCustomer(id, customerID uint64) (*domain.CartLine, error)
	ListByCustomer(customerID uint64) ([]domain.CartLine, error)
	Save(line *domain.CartLine) error
	Update(line *domain.CartLine) error
	Delete(id, customerID uint64) error
}
