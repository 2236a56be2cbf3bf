package repository

import (
	"storefront/internal/domain"
)

type CategoryRepository interface {
	Save(category *domain.Category) error
	FindByID(id uint64) (*domain.Category, error)
	// FindByNameFold matches case-insensitively, skipping excludeID so an
	// update does not collide with the row being updated. excludeID 0 means
	// no exclusion.
	FindByNameFold(name string, excludeID uint64) (*domain.Category, error)
	FindAll() ([]domain.Category, error)
	Update(category *domain.Category) error
	Delete(id uint64) error
	CountProducts(categoryID uint64) (int64, error)
}

type ProductRepository interface {
	Save(product *domain.Product) error
	FindByID(id uint64) (*domain.Product, error)
	// FindByTitle skips excludeID, same contract as FindByNameFold.
	FindByTitle(title string, excludeID uint64) (*domain.Product, error)
	FindAll() ([]domain.Product, error)
	FindByCategory(categoryID uint64) ([]domain.Product, error)
	Update(product *domain.Product) error
	Delete(id uint64) error
}
