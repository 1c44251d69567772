package controllers

import (
	"github.com/gin-gonic/gin"
	"recyclemart/internal/services"
	"recyclemart/pkg/utils"
)

type CategoryController struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryController(categoryService services.CategoryServiceInterface) *CategoryController {
	return &CategoryController{categoryService: categoryService}
}

func (cc *CategoryController) ListCategories(c *gin.Context) {
	categories, err := cc.categoryService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Categories fetched successfully")
}

func (cc *CategoryController) GetCategory(c *gin.Context) {
	category, err := cc.categoryService.GetCategory(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, category, "Category fetched successfully")
}

func (cc *CategoryController) ListCategoryProducts(c *gin.Context) {
	products, err := cc.categoryService.ListCategoryProducts(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}
