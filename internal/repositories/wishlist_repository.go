package repositories

import (
	"context"

	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
)

type WishlistRepository interface {
	Insert(ctx context.Context, entry *db_models.Wishlist) error
	ListByEmail(ctx context.Context, email string) ([]db_models.Wishlist, error)
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{db: db}
}

func (w *wishlistRepository) Insert(ctx context.Context, entry *db_models.Wishlist) error {
	return w.db.WithContext(ctx).Create(entry).Error
}

func (w *wishlistRepository) ListByEmail(ctx context.Context, email string) ([]db_models.Wishlist, error) {
	var entries []db_models.Wishlist
	err := w.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
