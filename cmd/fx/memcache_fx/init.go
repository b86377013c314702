package memcache_fx

import (
	"context"
	"time"

	"budgy/internal/config"
	mem "budgy/pkg/memcache"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Provide(provideLoginAttempts)

const sweepEvery = time.Minute

// provideLoginAttempts also runs a sweeper for the app's lifetime so clients
// that never come back do not stay in memory.
func provideLoginAttempts(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger) mem.LoginAttemptStore {
	store := mem.NewLoginAttempts()
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(sweepEvery)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := store.Sweep(cfg.Auth.LoginWindow); n > 0 {
							log.Debug("swept login attempts", zap.Int("keys", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
	return store
}
