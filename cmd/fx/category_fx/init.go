package category_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"recyclemart/internal/repositories"
	"recyclemart/internal/services"
	"recyclemart/pkg/cache"
)

var Module = fx.Provide(
	provideCategoryRepo, provideCategoryService)

func provideCategoryRepo(db *gorm.DB) repositories.CategoryRepository {
	return repositories.NewCategoryRepository(db)
}

func provideCategoryService(categoryRepo repositories.CategoryRepository, productRepo repositories.ProductRepository, store cache.Store) services.CategoryServiceInterface {
	return services.NewCategoryService(categoryRepo, productRepo, store)
}
