package repository

import (
	"storefront/internal/domain"
)

type CustomerRepository interface {
	Save(customer *domain.Customer) error
	FindByID(id uint64) (*domain.Customer, error)
	FindByUsername(username string) ([]domain.Customer, error)
	FindAll() ([]domain.Customer, error)
	Update(customer *domain.Customer) error
	Delete(id uint64) error
}
