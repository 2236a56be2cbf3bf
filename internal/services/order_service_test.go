package services

import (
	"testing"
	"time"

	"storefront/internal/domain"
	"storefront/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestOrderService_UpdateOrder(t *testing.T) {
	existing := func() *domain.Order {
		return &domain.Order{
			ID:         42,
			CustomerID: 7,
			Total:      25,
			Status:     domain.StatusPending,
			Paid:       false,
		}
	}

	tests := []struct {
		name           string
		input          UpdateOrderInput
		setupMocks     func(*mocks.MockOrderRepository, *mocks.MockPublisher)
		expectedError  error
		expectedStatus string
		expectedPaid   bool
		expectedPaidBy string
	}{
		{
			name:  "paid string 1 sets true",
			input: UpdateOrderInput{Paid: "1"},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(42)).Return(existing(), nil)
				mockRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				mockPub.On("Publish", mock.Anything, "order.updated", mock.Anything).Return(nil).Maybe()
			},
			expectedStatus: "pending",
			expectedPaid:   true,
		},
		{
			name:  "paid maybe rejected, order untouched",
			input: UpdateOrderInput{Paid: "maybe"},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(42)).Return(existing(), nil)
			},
			expectedError: domain.ErrInvalidPaidValue,
		},
		{
			name:  "status trimmed and lowercased",
			input: UpdateOrderInput{Status: "  SHIPPED "},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(42)).Return(existing(), nil)
				mockRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				mockPub.On("Publish", mock.Anything, "order.updated", mock.Anything).Return(nil).Maybe()
			},
			expectedStatus: "shipped",
		},
		{
			name:  "all fields at once",
			input: UpdateOrderInput{Status: "paid", Paid: true, PaidBy: " card "},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(42)).Return(existing(), nil)
				mockRepo.On("Update", mock.AnythingOfType("*domain.Order")).Return(nil)
				mockPub.On("Publish", mock.Anything, "order.updated", mock.Anything).Return(nil).Maybe()
			},
			expectedStatus: "paid",
			expectedPaid:   true,
			expectedPaidBy: "card",
		},
		{
			name:  "no fields provided",
			input: UpdateOrderInput{},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(42)).Return(existing(), nil)
			},
			expectedError: ErrNoFieldsProvided,
		},
		{
			name:  "order missing",
			input: UpdateOrderInput{Status: "paid"},
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockPub *mocks.MockPublisher) {
				mockRepo.On("FindByID", uint64(42)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			mockProducts := new(mocks.MockProductRepository)
			mockPublisher := new(mocks.MockPublisher)
			tt.setupMocks(mockRepo, mockPublisher)

			service := NewOrderService(mockRepo, mockProducts, mockPublisher)

			order, err := service.UpdateOrder(42, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, order)
				mockRepo.AssertNotCalled(t, "Update", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedStatus, order.Status)
				assert.Equal(t, tt.expectedPaid, order.Paid)
				assert.Equal(t, tt.expectedPaidBy, order.PaidBy)
				// Total stays frozen no matter what the admin touches.
				assert.Equal(t, 25.0, order.Total)
			}

			time.Sleep(50 * time.Millisecond)
			mockRepo.AssertExpectations(t)
			mockPublisher.AssertExpectations(t)
		})
	}
}

func TestOrderService_TrackOrder(t *testing.T) {
	order := &domain.Order{
		ID:         42,
		CustomerID: 7,
		Total:      25,
		Status:     domain.StatusPending,
		Details: []domain.OrderDetail{
			{OrderID: 42, ProductID: 1, Qty: 2, Price: 10, Cost: 6},
		},
	}

	tests := []struct {
		name          string
		customerID    uint64
		setupMocks    func(*mocks.MockOrderRepository, *mocks.MockProductRepository)
		expectedError error
	}{
		{
			name:       "owner sees order with snapshot prices",
			customerID: 7,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockProducts *mocks.MockProductRepository) {
				mockRepo.On("FindByID", uint64(42)).Return(order, nil)
				mockProducts.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, Title: "Widget", Price: 99}, nil)
			},
		},
		{
			name:       "foreign order reported as not found",
			customerID: 8,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockProducts *mocks.MockProductRepository) {
				mockRepo.On("FindByID", uint64(42)).Return(order, nil)
			},
			expectedError: ErrOrderNotFound,
		},
		{
			name:       "missing order",
			customerID: 7,
			setupMocks: func(mockRepo *mocks.MockOrderRepository, mockProducts *mocks.MockProductRepository) {
				mockRepo.On("FindByID", uint64(42)).Return(nil, nil)
			},
			expectedError: ErrOrderNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(mocks.MockOrderRepository)
			mockProducts := new(mocks.MockProductRepository)
			mockPublisher := new(mocks.MockPublisher)
			tt.setupMocks(mockRepo, mockProducts)

			service := NewOrderService(mockRepo, mockProducts, mockPublisher)

			view, err := service.TrackOrder(tt.customerID, 42)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, view)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 25.0, view.Total)
				assert.Len(t, view.Details, 1)
				assert.Equal(t, "Widget", view.Details[0].Product)
				// Snapshot price, not the product's current 99.
				assert.Equal(t, 10.0, view.Details[0].Price)
				assert.Equal(t, 20.0, view.Details[0].Subtotal)
			}

			mockRepo.AssertExpectations(t)
			mockProducts.AssertExpectations(t)
		})
	}
}
