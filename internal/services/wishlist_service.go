package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/models/response_models"
	"recyclemart/internal/repositories"
	"recyclemart/pkg/utils"
)

type WishlistServiceInterface interface {
	AddToWishlist(ctx context.Context, identityEmail string, req request_models.CreateWishlistRequest) (*response_models.CreateResult, error)
	GetWishlistsByEmail(ctx context.Context, identityEmail, email string) ([]db_models.Wishlist, error)
}

type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository) WishlistServiceInterface {
	return &WishlistService{wishlistRepo: wishlistRepo}
}

func (w *WishlistService) AddToWishlist(ctx context.Context, identityEmail string, req request_models.CreateWishlistRequest) (*response_models.CreateResult, error) {
	if req.Email != identityEmail {
		return nil, utils.ErrForbidden
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return nil, utils.ErrProductNotFound
	}

	entry := &db_models.Wishlist{
		Email:      req.Email,
		ProductID:  productID,
		Product:    req.Product,
		PriceMinor: req.PriceMinor,
	}

	if err := w.wishlistRepo.Insert(ctx, entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &response_models.CreateResult{
				Acknowledged: false,
				Message:      fmt.Sprintf("You have already added %s to your wishlist", req.Product),
			}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateResult{Acknowledged: true, Record: entry}, nil
}

func (w *WishlistService) GetWishlistsByEmail(ctx context.Context, identityEmail, email string) ([]db_models.Wishlist, error) {
	if email != identityEmail {
		return nil, utils.ErrForbidden
	}
	entries, err := w.wishlistRepo.ListByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return entries, nil
}
