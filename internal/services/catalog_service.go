package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const productCacheTTL = 5 * time.Minute

type CatalogService struct {
	categories  repository.CategoryRepository
	products    repository.ProductRepository
	redisClient *redis.Client
}

func NewCatalogService(categories repository.CategoryRepository, products repository.ProductRepository) *CatalogService {
	return &CatalogService{
		categories: categories,
		products:   products,
	}
}

func (s *CatalogService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

func (s *CatalogService) CreateCategory(name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	existing, err := s.categories.FindByNameFold(name, 0)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	category := &domain.Category{Name: name}
	if err := s.categories.Save(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.categories.FindAll()
}

func (s *CatalogService) UpdateCategory(id uint64, name string) (*domain.Category, error) {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	name = strings.TrimSpace(name)
	conflict, err := s.categories.FindByNameFold(name, id)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, ErrCategoryExists
	}

	category.Name = name
	if err := s.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory refuses while any product still references the category.
func (s *CatalogService) DeleteCategory(id uint64) error {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrCategoryNotFound
	}

	count, err := s.categories.CountProducts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	return s.categories.Delete(id)
}

func (s *CatalogService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.Title = strings.TrimSpace(product.Title)

	existing, err := s.products.FindByTitle(product.Title, 0)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrProductExists
	}

	category, err := s.categories.FindByID(product.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if err := s.products.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProductInput carries the optional fields of a partial update; nil
// means leave as-is.
type UpdateProductInput struct {
	Title       *string
	Price       *float64
	Cost        *float64
	Stock       *int
	CategoryID  *uint64
	Description *string
	Image       *string
}

func (s *CatalogService) UpdateProduct(ctx context.Context, id uint64, input UpdateProductInput) (*domain.Product, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		conflict, err := s.products.FindByTitle(title, id)
		if err != nil {
			return nil, err
		}
		if conflict != nil {
			return nil, ErrProductExists
		}
		product.Title = title
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Cost != nil {
		product.Cost = *input.Cost
	}
	if input.Stock != nil {
		product.Stock = *input.Stock
	}
	if input.CategoryID != nil {
		category, err := s.categories.FindByID(*input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrCategoryNotFound
		}
		product.CategoryID = *input.CategoryID
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	if err := s.products.Update(product); err != nil {
		return nil, err
	}

	s.InvalidateProducts(ctx, id)
	return product, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, id uint64) error {
	product, err := s.products.FindByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrProductNotFound
	}

	if err := s.products.Delete(id); err != nil {
		return err
	}

	s.InvalidateProducts(ctx, id)
	return nil
}

// GetProduct reads through the redis cache when one is configured.
func (s *CatalogService) GetProduct(ctx context.Context, id uint64) (*domain.Product, error) {
	cacheKey := productCacheKey(id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			var product domain.Product
			if err := json.Unmarshal([]byte(cached), &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(product); err == nil {
			s.redisClient.Set(ctx, cacheKey, data, productCacheTTL)
		}
	}
	return product, nil
}

func (s *CatalogService) ListProducts() ([]domain.Product, error) {
	return s.products.FindAll()
}

func (s *CatalogService) ListProductsByCategory(categoryID uint64) (*domain.Category, []domain.Product, error) {
	category, err := s.categories.FindByID(categoryID)
	if err != nil {
		return nil, nil, err
	}
	if category == nil {
		return nil, nil, ErrCategoryNotFound
	}

	products, err := s.products.FindByCategory(categoryID)
	if err != nil {
		return nil, nil, err
	}
	return category, products, nil
}

// WarmupCache preloads the cache for the given products with bounded
// concurrency.
func (s *CatalogService) WarmupCache(ctx context.Context, ids []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			product, err := s.products.FindByID(id)
			if err != nil || product == nil {
				log.Printf("cache warmup skipped product %d: %v", id, err)
				return nil
			}
			if data, err := json.Marshal(product); err == nil {
				s.redisClient.Set(ctx, productCacheKey(id), data, productCacheTTL)
			}
			return nil
		})
	}
	return g.Wait()
}

// InvalidateProducts drops cached entries after a stock or catalog change.
func (s *CatalogService) InvalidateProducts(ctx context.Context, ids ...uint64) {
	if s.redisClient == nil {
		return
	}
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, productCacheKey(id))
	}
	s.redisClient.Del(ctx, keys...)
}

func productCacheKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}
