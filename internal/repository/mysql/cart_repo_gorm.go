package mysql

import (
	"errors"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type cartRepo struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepo{db: db}
}

func (r *cartRepo) FindLine(customerID, productID uint64) (*domain.CartLine, error) {
	var line domain.CartLine
	err := r.db.Where("customer_id = ? AND product_id = ?", customerID, productID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *cartRepo) FindByIDForCustomer(id, customerID uint64) (*domain.CartLine, error) {
	var line domain.CartLine
	err := r.db.Where("id = ? AND customer_id = ?", id, customerID).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &line, nil
}

func (r *cartRepo) ListByCustomer(customerID uint64) ([]domain.CartLine, error) {
	var out []domain.CartLine
	if err := r.db.Where("customer_id = ?", customerID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *cartRepo) Save(line *domain.CartLine) error {
	return r.db.Create(line).Error
}

func (r *cartRepo) Update(line *domain.CartLine) error {
	return r.db.Save(line).Error
}

// Delete is idempotent: removing an already-removed line is not an error.
func (r *cartRepo) Delete(id, customerID uint64) error {
	return r.db.Where("id = ? AND customer_id = ?", id, customerID).Delete(&domain.CartLine{}).Error
}
