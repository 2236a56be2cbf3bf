package domain

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrProductNotFound = errors.New("product not found")
)

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	ProductID uint64
	Title     string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s", e.Title)
}

// PriceCart runs the checkout validation pass and prices the cart. Every line
// is checked against its product before anything is built, so a failure on
// the last line reports before any caller-side mutation can start. On success
// it returns the order (total frozen at the current prices) and one detail
// per line with price and cost snapshotted.
func PriceCart(customerID uint64, lines []CartLine, products map[uint64]*Product) (*Order, []OrderDetail, error) {
	if len(lines) == 0 {
		return nil, nil, ErrEmptyCart
	}

	for _, line := range lines {
		product, ok := products[line.ProductID]
		if !ok || product == nil {
			return nil, nil, ErrProductNotFound
		}
		if line.Qty > product.Stock {
			return nil, nil, &InsufficientStockError{
				ProductID: product.ID,
				Title:     product.Title,
				Requested: line.Qty,
				Available: product.Stock,
			}
		}
	}

	total := 0.0
	details := make([]OrderDetail, 0, len(lines))
	for _, line := range lines {
		product := products[line.ProductID]
		total += product.Price * float64(line.Qty)
		details = append(details, OrderDetail{
			ProductID: product.ID,
			Qty:       line.Qty,
			Cost:      product.Cost,
			Price:     product.Price,
		})
	}

	order := &Order{
		CustomerID: customerID,
		Total:      total,
		Status:     StatusPending,
		Paid:       false,
	}
	return order, details, nil
}
