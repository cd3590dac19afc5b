package main

import (
	"net/http"

	"gidimart/internal/api/controllers"
	"gidimart/internal/config"
	"gidimart/pkg/middleware"
	"gidimart/pkg/ratelimit"
	"gidimart/pkg/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Controllers struct {
	Account *controllers.AccountController
	Product *controllers.ProductController
	Order   *controllers.OrderController
	Payment *controllers.PaymentController
	Wallet  *controllers.WalletController
	Health  *controllers.HealthController
}

func ProvideRouter(
	cfg config.Config,
	logger *zap.Logger,
	tokens *utils.TokenManager,
	limiter ratelimit.Limiter,
	accountController *controllers.AccountController,
	productController *controllers.ProductController,
	orderController *controllers.OrderController,
	paymentController *controllers.PaymentController,
	walletController *controllers.WalletController,
	healthController *controllers.HealthController) *gin.Engine {

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(logger))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RateLimitMiddleware(limiter))

	RegisterRoutes(r, middleware.JWTAuthMiddleware(tokens), Controllers{
		Account: accountController,
		Product: productController,
		Order:   orderController,
		Payment: paymentController,
		Wallet:  walletController,
		Health:  healthController,
	})

	return r
}

func RegisterRoutes(r *gin.Engine, auth gin.HandlerFunc, c Controllers) {
	r.GET("/health", c.Health.Health)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", c.Account.Register)
	authGroup.POST("/login", c.Account.Login)
	authGroup.POST("/social", c.Account.SocialAuth)

	userGroup := api.Group("/user", auth)
	userGroup.GET("/profile", c.Account.GetProfile)
	userGroup.PUT("/profile", c.Account.UpdateProfile)
	userGroup.DELETE("/profile", c.Account.Deactivate)
	userGroup.POST("/kyc", c.Account.SubmitKYC)

	productGroup := api.Group("/products")
	productGroup.GET("", c.Product.ListProducts)
	productGroup.GET("/:id", c.Product.GetProduct)
	productGroup.POST("", auth, c.Product.CreateProduct)
	productGroup.PUT("/:id", auth, c.Product.UpdateProduct)
	productGroup.DELETE("/:id", auth, c.Product.DeactivateProduct)
	productGroup.POST("/:id/reviews", auth, c.Product.AddReview)

	orderGroup := api.Group("/orders", auth)
	orderGroup.POST("", c.Order.CreateOrder)
	orderGroup.GET("", c.Order.ListOrders)
	orderGroup.GET("/:id", c.Order.GetOrder)
	orderGroup.PATCH("/:id/status", c.Order.UpdateStatus)
	orderGroup.POST("/:id/cancel", c.Order.CancelOrder)
	orderGroup.GET("/:id/payments", c.Payment.ListOrderPayments)

	paymentGroup := api.Group("/payments", auth)
	paymentGroup.POST("/process", c.Payment.ProcessPayment)

	walletGroup := api.Group("/wallet", auth)
	walletGroup.GET("/balance", c.Wallet.GetBalance)
	walletGroup.GET("/transactions", c.Wallet.ListTransactions)
	walletGroup.POST("/topup", c.Wallet.TopUp)

	r.NoRoute(func(c *gin.Context) {
		utils.RespondError(c, http.StatusNotFound, "Route not found")
	})
}
