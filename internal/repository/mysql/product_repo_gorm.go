package mysql

import (
	"errors"
	"log"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type productRepo struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepo{db: db}
}

func (r *productRepo) Save(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		log.Printf("product save error: %v", err)
		return err
	}
	return nil
}

func (r *productRepo) FindByID(id uint64) (*domain.Product, error) {
	var p domain.Product
	if err := r.db.First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindByTitle(title string, excludeID uint64) (*domain.Product, error) {
	var p domain.Product
	q := r.db.Where("title = ?", title)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepo) FindAll() ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) FindByCategory(categoryID uint64) ([]domain.Product, error) {
	var out []domain.Product
	if err := r.db.Where("category_id = ?", categoryID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *productRepo) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Product{}, id).Error
}
