package account_fx

import (
	"gidimart/internal/config"
	"gidimart/internal/identity"
	"gidimart/internal/repositories"
	"gidimart/internal/services"
	"gidimart/pkg/utils"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo, provideIdentityProviders)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideIdentityProviders(cfg config.Config) *identity.Registry {
	return identity.NewRegistry(
		identity.NewGoogleProvider(cfg.Google.ClientID, cfg.Google.ClientSecret, cfg.Google.RedirectURI),
		identity.NewFacebookProvider(cfg.Facebook.ClientID, cfg.Facebook.ClientSecret, cfg.Facebook.RedirectURI),
		identity.NewInstagramProvider(cfg.Instagram.ClientID, cfg.Instagram.ClientSecret, cfg.Instagram.RedirectURI),
	)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	walletRepo repositories.WalletRepository,
	providers *identity.Registry,
	tokens *utils.TokenManager,
	cfg config.Config,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, walletRepo, providers, tokens, cfg.BcryptCost, logger)
}
