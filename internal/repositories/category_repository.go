package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
)

type CategoryRepository interface {
	ListAll(ctx context.Context) ([]db_models.Category, error)
	FindByID(ctx context.Context, id string) (*db_models.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (c *categoryRepository) ListAll(ctx context.Context) ([]db_models.Category, error) {
	var categories []db_models.Category
	if err := c.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *categoryRepository) FindByID(ctx context.Context, id string) (*db_models.Category, error) {
	var category db_models.Category
	err := c.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}
