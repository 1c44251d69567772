package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/models/response_models"
	"recyclemart/internal/repositories"
	"recyclemart/pkg/utils"
)

type UserServiceInterface interface {
	RegisterUser(ctx context.Context, req request_models.RegisterUserRequest) (*response_models.CreateResult, error)
	IssueToken(ctx context.Context, email string) (string, error)
	ListUsers(ctx context.Context) ([]db_models.User, error)
	IsAdmin(ctx context.Context, email string) (bool, error)
	MakeAdmin(ctx context.Context, id string) error
	VerifySeller(ctx context.Context, id string) error
}

type UserService struct {
	userRepo    repositories.UserRepository
	tokenSecret TokenSecret
}

func NewUserService(userRepo repositories.UserRepository, tokenSecret TokenSecret) UserServiceInterface {
	return &UserService{userRepo: userRepo, tokenSecret: tokenSecret}
}

// RegisterUser stores a user on first sign-in. Registering the same email
// again is reported as acknowledged-false rather than failing the request,
// since clients replay this call on every login.
func (u *UserService) RegisterUser(ctx context.Context, req request_models.RegisterUserRequest) (*response_models.CreateResult, error) {
	user := &db_models.User{Name: req.Name, Email: req.Email}

	if err := u.userRepo.Insert(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return &response_models.CreateResult{
				Acknowledged: false,
				Message:      "user already registered",
			}, nil
		}
		return nil, utils.ErrDatabaseError
	}

	return &response_models.CreateResult{Acknowledged: true, Record: user}, nil
}

// IssueToken signs a 24h access token, but only for a known user.
func (u *UserService) IssueToken(ctx context.Context, email string) (string, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	if user == nil {
		return "", utils.ErrUserNotFound
	}
	token, err := utils.CreateToken(email, u.tokenSecret, utils.TokenTTL)
	if err != nil {
		return "", utils.ErrTokenSigning
	}
	return token, nil
}

func (u *UserService) ListUsers(ctx context.Context) ([]db_models.User, error) {
	users, err := u.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return users, nil
}

func (u *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := u.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, utils.ErrDatabaseError
	}
	return user != nil && user.Role == db_models.RoleAdmin, nil
}

func (u *UserService) MakeAdmin(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrUserNotFound
	}
	affected, err := u.userRepo.SetRoleAdmin(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}

func (u *UserService) VerifySeller(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return utils.ErrUserNotFound
	}
	affected, err := u.userRepo.SetVerified(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrUserNotFound
	}
	return nil
}
