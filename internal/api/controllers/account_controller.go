package controllers

import (
	"net/http"

	"gidimart/internal/models/request_models"
	"gidimart/internal/services"
	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a buyer, seller or combined account and return a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.RegisterRequest true "Account registration payload"
// @Success 201 {object} response_models.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All fields are required and must be valid")
		return
	}

	resp, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Login godoc
// @Summary Login with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.AuthResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	resp, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// SocialAuth godoc
// @Summary Login with an OAuth provider
// @Description Exchange a google, facebook or instagram authorization code for a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SocialAuthRequest true "Provider and authorization code"
// @Success 200 {object} response_models.AuthResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/auth/social [post]
func (a *AccountController) SocialAuth(c *gin.Context) {
	var req request_models.SocialAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Provider and code are required")
		return
	}

	resp, err := a.accountService.SocialAuth(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{
		"message": "Social authentication successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// GetProfile godoc
// @Summary Current user's profile with wallet balances
// @Tags User
// @Produce json
// @Success 200 {object} response_models.UserResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/user/profile [get]
func (a *AccountController) GetProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := a.accountService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"user": user})
}

// UpdateProfile godoc
// @Summary Update profile fields
// @Tags User
// @Accept json
// @Produce json
// @Param request body request_models.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} response_models.UserResponse
// @Security BearerAuth
// @Router /api/user/profile [put]
func (a *AccountController) UpdateProfile(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	var req request_models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	user, err := a.accountService.UpdateProfile(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"user": user})
}

// SubmitKYC godoc
// @Summary Submit identity verification for review
// @Tags User
// @Produce json
// @Success 200 {object} response_models.UserResponse
// @Security BearerAuth
// @Router /api/user/kyc [post]
func (a *AccountController) SubmitKYC(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	user, err := a.accountService.SubmitKYC(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"user": user})
}

// Deactivate godoc
// @Summary Deactivate the current account
// @Tags User
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /api/user/profile [delete]
func (a *AccountController) Deactivate(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}

	if err := a.accountService.Deactivate(c.Request.Context(), userID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, http.StatusOK, gin.H{"message": "Account deactivated"})
}
