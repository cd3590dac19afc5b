package payment_service_fx

import (
	"gidimart/internal/events"
	"gidimart/internal/repositories"
	"gidimart/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	providePaymentRepo, providePaymentService,
)

func providePaymentRepo(db *gorm.DB) repositories.PaymentRepository {
	return repositories.NewPaymentRepository(db)
}

func providePaymentService(
	db *gorm.DB,
	orderRepo repositories.OrderRepository,
	paymentRepo repositories.PaymentRepository,
	walletRepo repositories.WalletRepository,
	publisher events.Publisher,
	logger *zap.Logger,
) services.PaymentServiceInterface {
	return services.NewPaymentService(db, orderRepo, paymentRepo, walletRepo, publisher, logger)
}
