package order_fx

import (
	"gidimart/internal/events"
	"gidimart/internal/repositories"
	"gidimart/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideOrderRepo, provideOrderService)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideOrderService(
	db *gorm.DB,
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	walletRepo repositories.WalletRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) services.OrderServiceInterface {
	return services.NewOrderService(db, orderRepo, productRepo, walletRepo, publisher, logger)
}
