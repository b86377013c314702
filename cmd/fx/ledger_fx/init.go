package ledger_fx

import (
	"budgy/internal/repositories"
	"budgy/internal/services"

	"go.uber.org/fx"
)

var Module = fx.Provide(
	repositories.NewExpenseRepository,
	repositories.NewIncomeRepository,
	repositories.NewSavingsRepository,
	services.NewExpenseService,
	services.NewIncomeService,
	services.NewSavingsService,
	services.NewLedgerQueryService,
)
