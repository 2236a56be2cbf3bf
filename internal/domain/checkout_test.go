package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceCart(t *testing.T) {
	productA := &Product{ID: 1, Title: "Product A", Price: 10, Cost: 6, Stock: 5}
	productB := &Product{ID: 2, Title: "Product B", Price: 5, Cost: 2, Stock: 3}

	tests := []struct {
		name          string
		lines         []CartLine
		products      map[uint64]*Product
		expectedTotal float64
		expectedError error
		stockError    bool
	}{
		{
			name: "two lines priced and snapshotted",
			lines: []CartLine{
				{ID: 10, CustomerID: 7, ProductID: 1, Qty: 2},
				{ID: 11, CustomerID: 7, ProductID: 2, Qty: 1},
			},
			products:      map[uint64]*Product{1: productA, 2: productB},
			expectedTotal: 25,
		},
		{
			name:          "empty cart",
			lines:         nil,
			products:      map[uint64]*Product{},
			expectedError: ErrEmptyCart,
		},
		{
			name: "product vanished",
			lines: []CartLine{
				{CustomerID: 7, ProductID: 99, Qty: 1},
			},
			products:      map[uint64]*Product{1: productA},
			expectedError: ErrProductNotFound,
		},
		{
			name: "insufficient stock on later line fails before building anything",
			lines: []CartLine{
				{CustomerID: 7, ProductID: 1, Qty: 2},
				{CustomerID: 7, ProductID: 2, Qty: 4},
			},
			products:   map[uint64]*Product{1: productA, 2: productB},
			stockError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order, details, err := PriceCart(7, tt.lines, tt.products)

			if tt.stockError {
				var stockErr *InsufficientStockError
				assert.True(t, errors.As(err, &stockErr))
				assert.Equal(t, "Product B", stockErr.Title)
				assert.Equal(t, 4, stockErr.Requested)
				assert.Equal(t, 3, stockErr.Available)
				assert.Nil(t, order)
				assert.Nil(t, details)
				return
			}

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				assert.Nil(t, details)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, order.Total)
			assert.Equal(t, uint64(7), order.CustomerID)
			assert.Equal(t, StatusPending, order.Status)
			assert.False(t, order.Paid)
			assert.Len(t, details, len(tt.lines))
		})
	}
}

func TestPriceCartSnapshotsPriceAndCost(t *testing.T) {
	product := &Product{ID: 1, Title: "Widget", Price: 9.5, Cost: 4.25, Stock: 10}
	lines := []CartLine{{CustomerID: 3, ProductID: 1, Qty: 3}}

	order, details, err := PriceCart(3, lines, map[uint64]*Product{1: product})

	assert.NoError(t, err)
	assert.Equal(t, 28.5, order.Total)
	assert.Equal(t, 9.5, details[0].Price)
	assert.Equal(t, 4.25, details[0].Cost)
	assert.Equal(t, 3, details[0].Qty)
	assert.Equal(t, uint64(1), details[0].ProductID)

	// Later product changes must not leak into the snapshot.
	product.Price = 100
	product.Cost = 50
	assert.Equal(t, 9.5, details[0].Price)
	assert.Equal(t, 4.25, details[0].Cost)
}

func TestPriceCartExactStockAllowed(t *testing.T) {
	product := &Product{ID: 1, Title: "Last one", Price: 2, Stock: 1}
	lines := []CartLine{{CustomerID: 1, ProductID: 1, Qty: 1}}

	order, _, err := PriceCart(1, lines, map[uint64]*Product{1: product})

	assert.NoError(t, err)
	assert.Equal(t, 2.0, order.Total)
}
