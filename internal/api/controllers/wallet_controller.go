package controllers

import (
	"net/http"

	"gidimart/internal/models/request_models"
	"gidimart/internal/services"
	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
)

type WalletController struct {
	walletService services.WalletServiceInterface
}

func NewWalletController(walletService services.WalletServiceInterface) *WalletController {
	return &WalletController{
		walletService: walletService,
	}
}

// GetBalance godoc
// @Summary Wallet balances
// @Description availableBalance is totalBalance minus escrowBalance
// @Tags Wallet
// @Produce json
// @Success 200 {object} response_models.BalanceResponse
// @Security BearerAuth
// @Router /api/wallet/balance [get]
func (w *WalletController) GetBalance(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	balance, err := w.walletService.GetBalance(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, balance)
}

// ListTransactions godoc
// @Summary Wallet ledger, newest first
// @Tags Wallet
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {array} response_models.WalletTransactionResponse
// @Security BearerAuth
// @Router /api/wallet/transactions [get]
func (w *WalletController) ListTransactions(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	transactions, err := w.walletService.ListTransactions(c.Request.Context(), userID, c.Query("page"), c.Query("limit"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"transactions": transactions})
}

// TopUp godoc
// @Summary Fund the wallet (simulated)
// @Tags Wallet
// @Accept json
// @Produce json
// @Param request body request_models.TopUpRequest true "Amount and funding method"
// @Success 201 {object} response_models.WalletTransactionResponse
// @Security BearerAuth
// @Router /api/wallet/topup [post]
func (w *WalletController) TopUp(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A positive amount and a funding method are required")
		return
	}

	entry, err := w.walletService.TopUp(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{"transaction": entry})
}
