package alert_fx

import (
	"budgy/internal/repositories"
	"budgy/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewAlertRepository,
	services.NewAlertService,
)
