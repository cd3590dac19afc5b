package wallet_fx

import (
	"gidimart/internal/events"
	"gidimart/internal/repositories"
	"gidimart/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideWalletRepo, provideWalletService)

func provideWalletRepo(db *gorm.DB) repositories.WalletRepository {
	return repositories.NewWalletRepository(db)
}

func provideWalletService(walletRepo repositories.WalletRepository, publisher events.Publisher, logger *zap.Logger) services.WalletServiceInterface {
	return services.NewWalletService(walletRepo, publisher, logger)
}
