package product_fx

import (
	"gidimart/internal/repositories"
	"gidimart/internal/services"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(provideProductRepo, provideProductService)

func provideProductRepo(db *gorm.DB) repositories.ProductRepository {
	return repositories.NewProductRepository(db)
}

func provideProductService(productRepo repositories.ProductRepository, userRepo repositories.UserRepository, logger *zap.Logger) services.ProductServiceInterface {
	return services.NewProductService(productRepo, userRepo, logger)
}
