package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
)

type UserRepository interface {
	Insert(ctx context.Context, user *db_models.User) error
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id string) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	SetRoleAdmin(ctx context.Context, id string) (int64, error)
	SetVerified(ctx context.Context, id string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (u *userRepository) Insert(ctx context.Context, user *db_models.User) error {
	return u.db.WithContext(ctx).Create(user).Error
}

func (u *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	var user db_models.User
	err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (u *userRepository) ListAll(ctx context.Context) ([]db_models.User, error) {
	var users []db_models.User
	if err := u.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (u *userRepository) SetRoleAdmin(ctx context.Context, id string) (int64, error) {
	res := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("role", db_models.RoleAdmin)
	return res.RowsAffected, res.Error
}

func (u *userRepository) SetVerified(ctx context.Context, id string) (int64, error) {
	res := u.db.WithContext(ctx).
		Model(&db_models.User{}).
		Where("id = ?", id).
		Update("verified", true)
	return res.RowsAffected, res.Error
}
