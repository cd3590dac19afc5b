package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"gidimart/cmd/fx/account_fx"
	"gidimart/cmd/fx/config_fx"
	"gidimart/cmd/fx/controllers_fx"
	"gidimart/cmd/fx/db_fx"
	"gidimart/cmd/fx/events_fx"
	"gidimart/cmd/fx/order_fx"
	"gidimart/cmd/fx/payment_service_fx"
	"gidimart/cmd/fx/product_fx"
	"gidimart/cmd/fx/ratelimit_fx"
	"gidimart/cmd/fx/wallet_fx"
	"gidimart/internal/config"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		db_fx.Module,
		ratelimit_fx.Module,
		events_fx.Module,
		account_fx.Module,
		product_fx.Module,
		order_fx.Module,
		payment_service_fx.Module,
		wallet_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("GidiMart API listening", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
