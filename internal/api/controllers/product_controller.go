package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"recyclemart/internal/models/request_models"
	"recyclemart/internal/services"
	"recyclemart/pkg/utils"
)

type ProductController struct {
	productService services.ProductServiceInterface
}

func NewProductController(productService services.ProductServiceInterface) *ProductController {
	return &ProductController{productService: productService}
}

func (p *ProductController) ListProducts(c *gin.Context) {
	products, err := p.productService.ListProducts(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, products, "Products fetched successfully")
}

// CreateProduct godoc
// @Summary Create a product listing
// @Tags Products
// @Accept json
// @Produce json
// @Param request body request_models.CreateProductRequest true "Product payload"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /products [post]
func (p *ProductController) CreateProduct(c *gin.Context) {
	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	product, err := p.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, product, "Product created successfully")
}

func (p *ProductController) AdvertiseProduct(c *gin.Context) {
	if err := p.productService.AdvertiseProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product advertised")
}

func (p *ProductController) DeleteProduct(c *gin.Context) {
	if err := p.productService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Product deleted")
}
