package services

import (
	"context"
	"log"

	"storefront/internal/domain"
	rabbit "storefront/internal/infra/rabbitmq"
	"storefront/internal/repository"

	"github.com/go-redis/redis/v8"
)

type CheckoutService struct {
	checkout    repository.CheckoutRepository
	publisher   rabbit.PublisherInterface
	redisClient *redis.Client
}

func NewCheckoutService(checkout repository.CheckoutRepository, publisher rabbit.PublisherInterface) *CheckoutService {
	return &CheckoutService{
		checkout:  checkout,
		publisher: publisher,
	}
}

func (s *CheckoutService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Checkout converts the customer's cart into a committed order. All the
// multi-row work happens inside the repository transaction; this layer adds
// the event publish and drops the cached products whose stock just changed.
func (s *CheckoutService) Checkout(ctx context.Context, customerID uint64) (*domain.Order, error) {
	order, err := s.checkout.CreateOrderFromCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		keys := make([]string, 0, len(order.Details))
		for _, detail := range order.Details {
			keys = append(keys, productCacheKey(detail.ProductID))
		}
		s.redisClient.Del(ctx, keys...)
	}

	go s.publishOrderCreated(context.Background(), order)

	return order, nil
}

func (s *CheckoutService) publishOrderCreated(ctx context.Context, order *domain.Order) {
	evt := domain.OrderCreatedEvent{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Total:      order.Total,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	}

	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created for order %d: %v", order.ID, err)
	}
}
