package domain

import "time"

type OrderCreatedEvent struct {
	OrderID    uint64    `json:"orderId"`
	CustomerID uint64    `json:"customerId"`
	Total      float64   `json:"total"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type OrderUpdatedEvent struct {
	OrderID uint64 `json:"orderId"`
	Status  string `json:"status"`
	Paid    bool   `json:"paid"`
	PaidBy  string `json:"paidBy"`
}
