package main

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"time"

	"budgy/cmd/fx/alert_fx"
	"budgy/cmd/fx/auth_fx"
	"budgy/cmd/fx/category_fx"
	"budgy/cmd/fx/config_fx"
	"budgy/cmd/fx/controllers_fx"
	"budgy/cmd/fx/db_fx"
	"budgy/cmd/fx/ledger_fx"
	"budgy/cmd/fx/logger_fx"
	"budgy/cmd/fx/mail_fx"
	"budgy/cmd/fx/memcache_fx"
	"budgy/cmd/fx/report_fx"
	"budgy/cmd/fx/user_fx"
	"budgy/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	app := fx.New(
		config_fx.Module(*configPath),
		logger_fx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		db_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		mail_fx.Module,
		user_fx.Module,
		category_fx.Module,
		ledger_fx.Module,
		alert_fx.Module,
		report_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr), zap.String("mode", cfg.Server.Mode))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
