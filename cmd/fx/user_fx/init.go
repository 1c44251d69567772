package user_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"
	"recyclemart/internal/repositories"
	"recyclemart/internal/services"
)

var Module = fx.Provide(
	provideTokenSecret, provideUserRepo, provideUserService)

func provideTokenSecret() services.TokenSecret {
	return services.TokenSecret(os.Getenv("ACCESS_TOKEN"))
}

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideUserService(userRepo repositories.UserRepository, secret services.TokenSecret) services.UserServiceInterface {
	return services.NewUserService(userRepo, secret)
}
