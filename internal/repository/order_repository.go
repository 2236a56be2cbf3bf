package repository

import (
	"context"

	"storefront/internal/domain"
)

type OrderRepository interface {
	// FindByID loads the order with its detail lines, nil if absent.
	FindByID(id uint64) (*domain.Order, error)
	FindAllNewestFirst() ([]domain.Order, error)
	Update(order *domain.Order) error
}

// CheckoutRepository owns the one multi-row transaction in the system:
// cart lines in, committed order out, stock decremented, cart cleared,
// all of it atomic.
type CheckoutRepository interface {
	CreateOrderFromCart(ctx context.Context, customerID uint64) (*domain.Order, error)
}
