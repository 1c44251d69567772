package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
)

type ProductRepository interface {
	Insert(ctx context.Context, product *db_models.Product) error
	FindByID(ctx context.Context, id string) (*db_models.Product, error)
	ListAll(ctx context.Context) ([]db_models.Product, error)
	ListByCategory(ctx context.Context, categoryID string) ([]db_models.Product, error)
	SetAdvertised(ctx context.Context, id string) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (p *productRepository) Insert(ctx context.Context, product *db_models.Product) error {
	return p.db.WithContext(ctx).Create(product).Error
}

func (p *productRepository) FindByID(ctx context.Context, id string) (*db_models.Product, error) {
	var product db_models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) ListAll(ctx context.Context) ([]db_models.Product, error) {
	var products []db_models.Product
	if err := p.db.WithContext(ctx).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) ListByCategory(ctx context.Context, categoryID string) ([]db_models.Product, error) {
	var products []db_models.Product
	err := p.db.WithContext(ctx).
		Where("category_id = ? AND sold = FALSE", categoryID).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (p *productRepository) SetAdvertised(ctx context.Context, id string) (int64, error) {
	res := p.db.WithContext(ctx).
		Model(&db_models.Product{}).
		Where("id = ?", id).
		Update("advertised", true)
	return res.RowsAffected, res.Error
}

func (p *productRepository) Delete(ctx context.Context, id string) (int64, error) {
	res := p.db.WithContext(ctx).Delete(&db_models.Product{}, "id = ?", id)
	return res.RowsAffected, res.Error
}
