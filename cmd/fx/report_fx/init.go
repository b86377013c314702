package report_fx

import (
	"budgy/internal/repositories"
	"budgy/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewSummaryRepository,
	services.NewSummaryService,
	services.NewExportService,
)
