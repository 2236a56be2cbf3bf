package mysql

import (
	"errors"
	"log"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"gorm.io/gorm"
)

type categoryRepo struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Save(category *domain.Category) error {
	if err := r.db.Create(category).Error; err != nil {
		log.Printf("category save error: %v", err)
		return err
	}
	return nil
}

func (r *categoryRepo) FindByID(id uint64) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.First(&c, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindByNameFold(name string, excludeID uint64) (*domain.Category, error) {
	var c domain.Category
	q := r.db.Where("LOWER(name) = LOWER(?)", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) FindAll() ([]domain.Category, error) {
	var out []domain.Category
	if err := r.db.Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *categoryRepo) Update(category *domain.Category) error {
	return r.db.Save(category).Error
}

func (r *categoryRepo) Delete(id uint64) error {
	return r.db.Delete(&domain.Category{}, id).Error
}

func (r *categoryRepo) CountProducts(categoryID uint64) (int64, error) {
	var n int64
	if err := r.db.Model(&domain.Product{}).Where("category_id = ?", categoryID).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
