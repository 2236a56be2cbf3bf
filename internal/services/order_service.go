package services

import (
	"context"
	"log"
	"strings"
	"time"

	"storefront/internal/domain"
	rabbit "storefront/internal/infra/rabbitmq"
	"storefront/internal/repository"
)

// OrderLineView is a detail line joined with the product's current title.
// Price, cost and subtotal come from the checkout-time snapshot.
type OrderLineView struct {
	ProductID uint64  `json:"product_id"`
	Product   string  `json:"product"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
	Cost      float64 `json:"cost"`
	Subtotal  float64 `json:"subtotal"`
}

type OrderView struct {
	ID         uint64          `json:"id"`
	CustomerID uint64          `json:"customer_id"`
	Total      float64         `json:"total"`
	Status     string          `json:"status"`
	Paid       bool            `json:"paid"`
	PaidBy     string          `json:"paid_by"`
	CreatedAt  time.Time       `json:"date_time"`
	Details    []OrderLineView `json:"details"`
}

// UpdateOrderInput carries the admin's partial update. Paid is the raw JSON
// value so the bool-or-string contract can be applied; nil means absent.
type UpdateOrderInput struct {
	Status string
	Paid   any
	PaidBy string
}

type OrderService struct {
	repo      repository.OrderRepository
	products  repository.ProductRepository
	publisher rabbit.PublisherInterface
}

func NewOrderService(r repository.OrderRepository, products repository.ProductRepository, publisher rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		products:  products,
		publisher: publisher,
	}
}

// TrackOrder returns the order only to its owner. A foreign order is
// indistinguishable from a missing one.
func (s *OrderService) TrackOrder(customerID, orderID uint64) (*OrderView, error) {
	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil || order.CustomerID != customerID {
		return nil, ErrOrderNotFound
	}
	return s.orderView(order)
}

// ListOrders returns every order newest-first with embedded detail lines.
func (s *OrderService) ListOrders() ([]domain.Order, error) {
	return s.repo.FindAllNewestFirst()
}

func (s *OrderService) OrderDetail(orderID uint64) (*OrderView, error) {
	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.orderView(order)
}

// UpdateOrder applies a non-empty subset of {status, paid, paid_by}.
func (s *OrderService) UpdateOrder(orderID uint64, input UpdateOrderInput) (*domain.Order, error) {
	order, err := s.repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	if input.Status == "" && input.Paid == nil && input.PaidBy == "" {
		return nil, ErrNoFieldsProvided
	}

	if input.Status != "" {
		order.Status = domain.NormalizeStatus(input.Status)
	}
	if input.Paid != nil {
		paid, err := domain.ParsePaid(input.Paid)
		if err != nil {
			return nil, err
		}
		order.Paid = paid
	}
	if input.PaidBy != "" {
		order.PaidBy = strings.TrimSpace(input.PaidBy)
	}

	if err := s.repo.Update(order); err != nil {
		return nil, err
	}

	go s.publishOrderUpdated(context.Background(), order)

	return order, nil
}

func (s *OrderService) publishOrderUpdated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderUpdatedEvent{
		OrderID: order.ID,
		Status:  order.Status,
		Paid:    order.Paid,
		PaidBy:  order.PaidBy,
	}

	if err := s.publisher.Publish(ctx, "order.updated", evt); err != nil {
		log.Printf("failed to publish order.updated for order %d: %v", order.ID, err)
	}
}

func (s *OrderService) orderView(order *domain.Order) (*OrderView, error) {
	view := &OrderView{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		Status:     order.Status,
		Paid:       order.Paid,
		PaidBy:     order.PaidBy,
		CreatedAt:  order.CreatedAt,
		Details:    make([]OrderLineView, 0, len(order.Details)),
	}

	for _, detail := range order.Details {
		title := ""
		product, err := s.products.FindByID(detail.ProductID)
		if err != nil {
			return nil, err
		}
		if product != nil {
			title = product.Title
		}
		view.Details = append(view.Details, OrderLineView{
			ProductID: detail.ProductID,
			Product:   title,
			Qty:       detail.Qty,
			Price:     detail.Price,
			Cost:      detail.Cost,
			Subtotal:  detail.Price * float64(detail.Qty),
		})
	}
	return view, nil
}
