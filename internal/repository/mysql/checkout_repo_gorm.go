package mysql

import (
	"context"
	"log"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type checkoutRepo struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) repository.CheckoutRepository {
	return &checkoutRepo{db: db}
}

// CreateOrderFromCart turns the customer's cart into a committed order inside
// a single transaction. The product rows are read under FOR UPDATE so the
// validation in domain.PriceCart and the decrements below see the same stock;
// the decrement still carries a stock >= qty guard, and a guard miss aborts
// the whole transaction.
func (r *checkoutRepo) CreateOrderFromCart(ctx context.Context, customerID uint64) (*domain.Order, error) {
	var order *domain.Order

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var lines []domain.CartLine
		if err := tx.Where("customer_id = ?", customerID).Find(&lines).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return domain.ErrEmptyCart
		}

		productIDs := make([]uint64, 0, len(lines))
		for _, line := range lines {
			productIDs = append(productIDs, line.ProductID)
		}

		var products []domain.Product
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ?", productIDs).Find(&products).Error; err != nil {
			return err
		}

		byID := make(map[uint64]*domain.Product, len(products))
		for i := range products {
			byID[products[i].ID] = &products[i]
		}

		priced, details, err := domain.PriceCart(customerID, lines, byID)
		if err != nil {
			return err
		}

		if err := tx.Create(priced).Error; err != nil {
			return err
		}
		for i := range details {
			details[i].OrderID = priced.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}

		for _, line := range lines {
			res := tx.Model(&domain.Product{}).
				Where("id = ? AND stock >= ?", line.ProductID, line.Qty).
				Update("stock", gorm.Expr("stock - ?", line.Qty))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				product := byID[line.ProductID]
				return &domain.InsufficientStockError{
					ProductID: line.ProductID,
					Title:     product.Title,
					Requested: line.Qty,
					Available: product.Stock,
				}
			}
		}

		if err := tx.Where("customer_id = ?", customerID).Delete(&domain.CartLine{}).Error; err != nil {
			return err
		}

		priced.Details = details
		order = priced
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("checkout committed: order %d, customer %d, total %.2f", order.ID, customerID, order.Total)
	return order, nil
}
