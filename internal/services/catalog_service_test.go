package services

import (
	"context"
	"testing"

	"storefront/internal/domain"
	"storefront/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCatalogService_CreateCategory(t *testing.T) {
	tests := []struct {
		name          string
		categoryName  string
		setupMocks    func(*mocks.MockCategoryRepository)
		expectedError error
	}{
		{
			name:         "created with trimmed name",
			categoryName: " Drinks ",
			setupMocks: func(mockCategories *mocks.MockCategoryRepository) {
				mockCategories.On("FindByNameFold", "Drinks", uint64(0)).Return(nil, nil)
				mockCategories.On("Save", mock.AnythingOfType("*domain.Category")).Return(nil)
			},
		},
		{
			name:         "case-insensitive duplicate rejected",
			categoryName: "drinks",
			setupMocks: func(mockCategories *mocks.MockCategoryRepository) {
				mockCategories.On("FindByNameFold", "drinks", uint64(0)).Return(&domain.Category{ID: 1, Name: "Drinks"}, nil)
			},
			expectedError: ErrCategoryExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := new(mocks.MockCategoryRepository)
			mockProducts := new(mocks.MockProductRepository)
			tt.setupMocks(mockCategories)

			service := NewCatalogService(mockCategories, mockProducts)

			category, err := service.CreateCategory(tt.categoryName)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, category)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "Drinks", category.Name)
			}
			mockCategories.AssertExpectations(t)
		})
	}
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockCategoryRepository)
		expectedError error
	}{
		{
			name: "empty category deleted",
			setupMocks: func(mockCategories *mocks.MockCategoryRepository) {
				mockCategories.On("FindByID", uint64(1)).Return(&domain.Category{ID: 1, Name: "Drinks"}, nil)
				mockCategories.On("CountProducts", uint64(1)).Return(int64(0), nil)
				mockCategories.On("Delete", uint64(1)).Return(nil)
			},
		},
		{
			name: "category with products refused",
			setupMocks: func(mockCategories *mocks.MockCategoryRepository) {
				mockCategories.On("FindByID", uint64(1)).Return(&domain.Category{ID: 1, Name: "Drinks"}, nil)
				mockCategories.On("CountProducts", uint64(1)).Return(int64(3), nil)
			},
			expectedError: ErrCategoryInUse,
		},
		{
			name: "missing category",
			setupMocks: func(mockCategories *mocks.MockCategoryRepository) {
				mockCategories.On("FindByID", uint64(1)).Return(nil, nil)
			},
			expectedError: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := new(mocks.MockCategoryRepository)
			mockProducts := new(mocks.MockProductRepository)
			tt.setupMocks(mockCategories)

			service := NewCatalogService(mockCategories, mockProducts)

			err := service.DeleteCategory(1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				mockCategories.AssertNotCalled(t, "Delete", mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockCategories.AssertExpectations(t)
		})
	}
}

func TestCatalogService_CreateProduct(t *testing.T) {
	tests := []struct {
		name          string
		product       *domain.Product
		setupMocks    func(*mocks.MockCategoryRepository, *mocks.MockProductRepository)
		expectedError error
	}{
		{
			name:    "created",
			product: &domain.Product{Title: "Widget", Price: 10, Cost: 6, Stock: 5, CategoryID: 1},
			setupMocks: func(mockCategories *mocks.MockCategoryRepository, mockProducts *mocks.MockProductRepository) {
				mockProducts.On("FindByTitle", "Widget", uint64(0)).Return(nil, nil)
				mockCategories.On("FindByID", uint64(1)).Return(&domain.Category{ID: 1, Name: "Gadgets"}, nil)
				mockProducts.On("Save", mock.AnythingOfType("*domain.Product")).Return(nil)
			},
		},
		{
			name:    "duplicate title",
			product: &domain.Product{Title: "Widget", CategoryID: 1},
			setupMocks: func(mockCategories *mocks.MockCategoryRepository, mockProducts *mocks.MockProductRepository) {
				mockProducts.On("FindByTitle", "Widget", uint64(0)).Return(&domain.Product{ID: 9, Title: "Widget"}, nil)
			},
			expectedError: ErrProductExists,
		},
		{
			name:    "unknown category",
			product: &domain.Product{Title: "Widget", CategoryID: 99},
			setupMocks: func(mockCategories *mocks.MockCategoryRepository, mockProducts *mocks.MockProductRepository) {
				mockProducts.On("FindByTitle", "Widget", uint64(0)).Return(nil, nil)
				mockCategories.On("FindByID", uint64(99)).Return(nil, nil)
			},
			expectedError: ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCategories := new(mocks.MockCategoryRepository)
			mockProducts := new(mocks.MockProductRepository)
			tt.setupMocks(mockCategories, mockProducts)

			service := NewCatalogService(mockCategories, mockProducts)

			product, err := service.CreateProduct(context.Background(), tt.product)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, product)
				mockProducts.AssertNotCalled(t, "Save", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, product)
			}
			mockCategories.AssertExpectations(t)
			mockProducts.AssertExpectations(t)
		})
	}
}

func TestCatalogService_UpdateProductStockFloor(t *testing.T) {
	mockCategories := new(mocks.MockCategoryRepository)
	mockProducts := new(mocks.MockProductRepository)

	mockProducts.On("FindByID", uint64(1)).Return(&domain.Product{ID: 1, Title: "Widget", Stock: 5}, nil)
	mockProducts.On("Update", mock.AnythingOfType("*domain.Product")).Return(nil)

	service := NewCatalogService(mockCategories, mockProducts)

	stock := 0
	product, err := service.UpdateProduct(context.Background(), 1, UpdateProductInput{Stock: &stock})

	assert.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}
