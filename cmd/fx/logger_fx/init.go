package logger_fx

import (
	"context"

	"budgy/internal/config"
	"budgy/pkg/logger"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Options(
	fx.Provide(provideLogger),
	fx.Invoke(registerGlobal),
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Log.Level, cfg.Log.Format)
}

// registerGlobal makes the logger reachable through zap.L for helpers that
// have no injected logger.
func registerGlobal(lc fx.Lifecycle, log *zap.Logger) {
	undo := zap.ReplaceGlobals(log)
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			undo()
			_ = log.Sync()
			return nil
		},
	})
}
