package mysql

import (
	"errors"
	"log"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type customerRepo struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) Save(customer *domain.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		log.Printf("customer save error: %v", err)
		return err
	}
	return nil
}

func (r *customerRepo) FindByID(id uint64) (*domain.Customer, error) {
	var c domain.Customer
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *customerRepo) FindByUsername(username string) ([]domain.Customer, error) {
	var out []domain.Customer
	if err := r.db.Where("username = ?", username).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *customerRepo) FindAll() ([]domain.Customer, error) {
	var out []domain.Customer
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *customerRepo) Update(customer *domain.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Customer{}, id).Error
}
