package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/repositories"
	"recyclemart/pkg/cache"
	"recyclemart/pkg/utils"
)

const (
	categoriesCacheKey = "categories:all"
	categoriesCacheTTL = 5 * time.Minute
)

type CategoryServiceInterface interface {
	ListCategories(ctx context.Context) ([]db_models.Category, error)
	GetCategory(ctx context.Context, id string) (*db_models.Category, error)
	ListCategoryProducts(ctx context.Context, id string) ([]db_models.Product, error)
}

type CategoryService struct {
	categoryRepo repositories.CategoryRepository
	productRepo  repositories.ProductRepository
	cache        cache.Store
}

func NewCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository, store cache.Store) CategoryServiceInterface {
	return &CategoryService{categoryRepo: categoryRepo, productRepo: productRepo, cache: store}
}

// ListCategories serves the category listing from Redis when possible. Cache
// failures degrade to the database instead of failing the request.
func (c *CategoryService) ListCategories(ctx context.Context) ([]db_models.Category, error) {
	var cached []db_models.Category
	hit, err := c.cache.GetJSON(ctx, categoriesCacheKey, &cached)
	if err != nil {
		log.Warn().Err(err).Msg("category cache read failed")
	}
	if hit {
		return cached, nil
	}

	categories, err := c.categoryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if err := c.cache.SetJSON(ctx, categoriesCacheKey, categories, categoriesCacheTTL); err != nil {
		log.Warn().Err(err).Msg("category cache write failed")
	}
	return categories, nil
}

func (c *CategoryService) GetCategory(ctx context.Context, id string) (*db_models.Category, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrCategoryNotFound
	}
	category, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	return category, nil
}

func (c *CategoryService) ListCategoryProducts(ctx context.Context, id string) ([]db_models.Product, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrCategoryNotFound
	}
	category, err := c.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if category == nil {
		return nil, utils.ErrCategoryNotFound
	}
	products, err := c.productRepo.ListByCategory(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return products, nil
}
