package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"recyclemart/internal/models/db_models"
	"recyclemart/internal/models/request_models"
	"recyclemart/pkg/utils"
)

type fakeUserRepo struct {
	byEmail map[string]*db_models.User
	err     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*db_models.User)}
}

func (f *fakeUserRepo) Insert(ctx context.Context, user *db_models.User) error {
	if f.err != nil {
		return f.err
	}
	if _, exists := f.byEmail[user.Email]; exists {
		return gorm.ErrDuplicatedKey
	}
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id string) (*db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) ListAll(ctx context.Context) ([]db_models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.User
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) SetRoleAdmin(ctx context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			u.Role = db_models.RoleAdmin
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeUserRepo) SetVerified(ctx context.Context, id string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	for _, u := range f.byEmail {
		if u.ID.String() == id {
			u.Verified = true
			return 1, nil
		}
	}
	return 0, nil
}

var testSecret = TokenSecret("user-service-secret")

func TestRegisterUser(t *testing.T) {
	ctx := context.Background()
	req := request_models.RegisterUserRequest{Name: "Ana", Email: "a@x.com"}

	t.Run("NewUser", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), testSecret)

		result, err := svc.RegisterUser(ctx, req)
		require.NoError(t, err)
		assert.True(t, result.Acknowledged)
	})

	t.Run("ReplayIsAcknowledgedFalse", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo, testSecret)

		_, err := svc.RegisterUser(ctx, req)
		require.NoError(t, err)

		second, err := svc.RegisterUser(ctx, req)
		require.NoError(t, err)
		assert.False(t, second.Acknowledged)
		assert.Len(t, repo.byEmail, 1)
	})
}

func TestIssueToken(t *testing.T) {
	ctx := context.Background()

	t.Run("KnownUser", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.byEmail["a@x.com"] = &db_models.User{Email: "a@x.com"}
		svc := NewUserService(repo, testSecret)

		token, err := svc.IssueToken(ctx, "a@x.com")
		require.NoError(t, err)

		claims, err := utils.ValidateToken(token, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), testSecret)

		_, err := svc.IssueToken(ctx, "nobody@x.com")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})
}

func TestAdminOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("IsAdmin", func(t *testing.T) {
		repo := newFakeUserRepo()
		repo.byEmail["admin@x.com"] = &db_models.User{Email: "admin@x.com", Role: db_models.RoleAdmin}
		repo.byEmail["user@x.com"] = &db_models.User{Email: "user@x.com"}
		svc := NewUserService(repo, testSecret)

		isAdmin, err := svc.IsAdmin(ctx, "admin@x.com")
		require.NoError(t, err)
		assert.True(t, isAdmin)

		isAdmin, err = svc.IsAdmin(ctx, "user@x.com")
		require.NoError(t, err)
		assert.False(t, isAdmin)

		isAdmin, err = svc.IsAdmin(ctx, "nobody@x.com")
		require.NoError(t, err)
		assert.False(t, isAdmin)
	})

	t.Run("MakeAdmin", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo, testSecret)
		_, err := svc.RegisterUser(ctx, request_models.RegisterUserRequest{Name: "Ana", Email: "a@x.com"})
		require.NoError(t, err)

		id := repo.byEmail["a@x.com"].ID.String()
		require.NoError(t, svc.MakeAdmin(ctx, id))
		assert.Equal(t, db_models.RoleAdmin, repo.byEmail["a@x.com"].Role)
	})

	t.Run("MakeAdminUnknownUser", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), testSecret)
		err := svc.MakeAdmin(ctx, uuid.New().String())
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("MakeAdminMalformedID", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), testSecret)
		err := svc.MakeAdmin(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("VerifySellerMalformedID", func(t *testing.T) {
		svc := NewUserService(newFakeUserRepo(), testSecret)
		err := svc.VerifySeller(ctx, "not-a-uuid")
		assert.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("VerifySeller", func(t *testing.T) {
		repo := newFakeUserRepo()
		svc := NewUserService(repo, testSecret)
		_, err := svc.RegisterUser(ctx, request_models.RegisterUserRequest{Name: "Sel", Email: "s@x.com"})
		require.NoError(t, err)

		id := repo.byEmail["s@x.com"].ID.String()
		require.NoError(t, svc.VerifySeller(ctx, id))
		assert.True(t, repo.byEmail["s@x.com"].Verified)
	})
}
