package controllers

import (
	"net/http"

	"gidimart/internal/models/request_models"
	"gidimart/internal/services"
	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService services.OrderServiceInterface
}

func NewOrderController(orderService services.OrderServiceInterface) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// CreateOrder godoc
// @Summary Place an order
// @Description Snapshots the product price; the order starts pending with escrow held
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body request_models.CreateOrderRequest true "Order"
// @Success 201 {object} response_models.OrderResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/orders [post]
func (o *OrderController) CreateOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Product ID and quantity are required")
		return
	}

	order, err := o.orderService.CreateOrder(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{
		"message": "Order created successfully",
		"order":   order,
	})
}

// ListOrders godoc
// @Summary Orders you bought or sold
// @Tags Orders
// @Produce json
// @Param type query string false "buyer or seller" default(buyer)
// @Param status query string false "Order status"
// @Success 200 {array} response_models.OrderResponse
// @Security BearerAuth
// @Router /api/orders [get]
func (o *OrderController) ListOrders(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var query request_models.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	orders, err := o.orderService.ListOrders(c.Request.Context(), userID, query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"orders": orders})
}

// GetOrder godoc
// @Summary Order detail for its buyer or seller
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response_models.OrderResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/orders/{id} [get]
func (o *OrderController) GetOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, utils.ErrOrderNotFound)
	if !ok {
		return
	}

	order, err := o.orderService.GetOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"order": order})
}

// UpdateStatus godoc
// @Summary Move an order along its lifecycle
// @Description Sellers ship confirmed orders; either party marks shipped orders delivered, which releases escrow
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request_models.UpdateOrderStatusRequest true "Target status"
// @Success 200 {object} response_models.OrderResponse
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/orders/{id}/status [patch]
func (o *OrderController) UpdateStatus(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, utils.ErrOrderNotFound)
	if !ok {
		return
	}

	var req request_models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Status is required")
		return
	}

	order, err := o.orderService.UpdateStatus(c.Request.Context(), userID, orderID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"order": order})
}

// CancelOrder godoc
// @Summary Cancel an undelivered order and refund what was paid
// @Tags Orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response_models.OrderResponse
// @Security BearerAuth
// @Router /api/orders/{id}/cancel [post]
func (o *OrderController) CancelOrder(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, utils.ErrOrderNotFound)
	if !ok {
		return
	}

	order, err := o.orderService.CancelOrder(c.Request.Context(), userID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"order": order})
}
