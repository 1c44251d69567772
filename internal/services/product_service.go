package services

import (
	"context"

	"github.com/google/uuid"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/repositories"
	"recyclemart/pkg/utils"
)

type ProductServiceInterface interface {
	ListProducts(ctx context.Context) ([]db_models.Product, error)
	CreateProduct(ctx context.Context, req request_models.CreateProductRequest) (*db_models.Product, error)
	AdvertiseProduct(ctx context.Context, id string) error
	DeleteProduct(ctx context.Context, id string) error
}

type ProductService struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductServiceInterface {
	return &ProductService{productRepo: productRepo}
}

func (p *ProductService) ListProducts(ctx context.Context) ([]db_models.Product, error) {
	products, err := p.productRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return products, nil
}

func (p *ProductService) CreateProduct(ctx context.Context, req request_models.CreateProductRequest) (*db_models.Product, error) {
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return nil, utils.ErrCategoryNotFound
	}

	product := &db_models.Product{
		Name:        req.Name,
		CategoryID:  categoryID,
		PriceMinor:  req.PriceMinor,
		Condition:   req.Condition,
		Location:    req.Location,
		Description: req.Description,
		Images:      req.Images,
		SellerEmail: req.SellerEmail,
	}

	if err := p.productRepo.Insert(ctx, product); err != nil {
		return nil, utils.ErrDatabaseError
	}
	return product, nil
}

func (p *ProductService) AdvertiseProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrProductNotFound
	}
	affected, err := p.productRepo.SetAdvertised(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}

func (p *ProductService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrProductNotFound
	}
	affected, err := p.productRepo.Delete(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrProductNotFound
	}
	return nil
}
