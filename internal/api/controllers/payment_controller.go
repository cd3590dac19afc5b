package controllers

import (
	"net/http"

	"gidimart/internal/models/request_models"
	"gidimart/internal/services"
	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
)

type PaymentController struct {
	paymentService services.PaymentServiceInterface
}

func NewPaymentController(paymentService services.PaymentServiceInterface) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// ProcessPayment godoc
// @Summary Pay for an order
// @Description Simulated capture: always succeeds once the order and amount check out
// @Tags Payments
// @Accept json
// @Produce json
// @Param request body request_models.ProcessPaymentRequest true "Payment"
// @Success 200 {object} response_models.PaymentResult
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/payments/process [post]
func (p *PaymentController) ProcessPayment(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var request request_models.ProcessPaymentRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Missing required payment information")
		return
	}

	result, err := p.paymentService.ProcessPayment(c.Request.Context(), userID, request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"message":       "Payment processed successfully",
		"transactionId": result.TransactionID,
		"reference":     result.Reference,
		"order":         result.Order,
	})
}

// ListOrderPayments godoc
// @Summary Payments captured against an order
// @Tags Payments
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {array} response_models.PaymentResponse
// @Security BearerAuth
// @Router /api/orders/{id}/payments [get]
func (p *PaymentController) ListOrderPayments(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	orderID, ok := pathID(c, utils.ErrOrderNotFound)
	if !ok {
		return
	}

	payments, err := p.paymentService.ListPayments(c.Request.Context(), userID, orderID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"payments": payments})
}
