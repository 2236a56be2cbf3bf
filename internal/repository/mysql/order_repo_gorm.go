package mysql

import (
	"errors"
	"log"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) FindByID(id uint64) (*domain.Order, error) {
	var o domain.Order
	if err := r.db.Preload("Details").First(&o, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) FindAllNewestFirst() ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.Preload("Details").Order("created_at DESC").Find(&out).Error
	if err != nil {
		log.Printf("order FindAllNewestFirst error: %v", err)
		return nil, err
	}
	return out, nil
}

// Update writes the admin-mutable fields only. Total and the detail rows are
// frozen at checkout and never touched here.
func (r *orderRepo) Update(order *domain.Order) error {
	return r.db.Model(&domain.Order{}).Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":  order.Status,
			"paid":    order.Paid,
			"paid_by": order.PaidBy,
		}).Error
}
