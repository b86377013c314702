package config_fx

import (
	"budgy/internal/config"

	"go.uber.org/fx"
)

// Module loads configuration from path, or from the default search paths
// when path is empty.
func Module(path string) fx.Option {
	return fx.Provide(func() (*config.Config, error) {
		return config.LoadConfig(path)
	})
}
