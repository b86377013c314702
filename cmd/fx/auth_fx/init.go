package auth_fx

import (
	"budgy/internal/config"
	"budgy/pkg/utils"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	provideHasher, provideTokenIssuer)

func provideHasher(cfg *config.Config) (utils.PasswordHasher, error) {
	return utils.NewPasswordHasher(cfg.Auth.PasswordHashing)
}

func provideTokenIssuer(cfg *config.Config) *utils.TokenIssuer {
	return utils.NewTokenIssuer(cfg.JWT.Secret, cfg.JWT.ExpireTime)
}
