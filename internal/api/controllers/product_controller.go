package controllers

import (
	"net/http"

	"gidimart/internal/models/request_models"
	"gidimart/internal/services"
	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProductController struct {
	productService services.ProductServiceInterface
}

func NewProductController(productService services.ProductServiceInterface) *ProductController {
	return &ProductController{
		productService: productService,
	}
}

// ListProducts godoc
// @Summary Browse active products
// @Description Filters combine with AND; search matches title or description case-insensitively
// @Tags Products
// @Produce json
// @Param category query string false "Category"
// @Param condition query string false "new, used or refurbished"
// @Param minPrice query int false "Minimum price"
// @Param maxPrice query int false "Maximum price"
// @Param search query string false "Search text"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} response_models.ProductResponse
// @Router /api/products [get]
func (p *ProductController) ListProducts(c *gin.Context) {
	var query request_models.ProductListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	products, err := p.productService.ListProducts(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"products": products})
}

// GetProduct godoc
// @Summary Product detail
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} response_models.ProductResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/products/{id} [get]
func (p *ProductController) GetProduct(c *gin.Context) {
	productID, ok := pathID(c, utils.ErrProductNotFound)
	if !ok {
		return
	}

	product, err := p.productService.GetProduct(c.Request.Context(), productID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"product": product})
}

// CreateProduct godoc
// @Summary List a product for sale
// @Tags Products
// @Accept json
// @Produce json
// @Param request body request_models.CreateProductRequest true "Product"
// @Success 201 {object} response_models.ProductResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/products [post]
func (p *ProductController) CreateProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Title, description, price and category are required")
		return
	}

	product, err := p.productService.CreateProduct(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{
		"message": "Product created successfully",
		"product": product,
	})
}

// UpdateProduct godoc
// @Summary Edit one of your products
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request_models.UpdateProductRequest true "Fields to change"
// @Success 200 {object} response_models.ProductResponse
// @Security BearerAuth
// @Router /api/products/{id} [put]
func (p *ProductController) UpdateProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, utils.ErrProductNotFound)
	if !ok {
		return
	}

	var req request_models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	product, err := p.productService.UpdateProduct(c.Request.Context(), userID, productID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"product": product})
}

// DeactivateProduct godoc
// @Summary Remove one of your products from sale
// @Tags Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /api/products/{id} [delete]
func (p *ProductController) DeactivateProduct(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, utils.ErrProductNotFound)
	if !ok {
		return
	}

	if err := p.productService.DeactivateProduct(c.Request.Context(), userID, productID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "Product removed"})
}

// AddReview godoc
// @Summary Rate a product
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body request_models.CreateReviewRequest true "Rating 1-5 and comment"
// @Success 201 {object} response_models.ReviewResponse
// @Security BearerAuth
// @Router /api/products/{id}/reviews [post]
func (p *ProductController) AddReview(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	productID, ok := pathID(c, utils.ErrProductNotFound)
	if !ok {
		return
	}

	var req request_models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Rating must be between 1 and 5")
		return
	}

	review, err := p.productService.AddReview(c.Request.Context(), userID, productID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"review": review})
}
