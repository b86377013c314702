package controllers_fx

import (
	"budgy/internal/api/controllers"

	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(controllers.NewUserController),
	fx.Provide(controllers.NewCategoryController),
	fx.Provide(controllers.NewExpenseController),
	fx.Provide(controllers.NewIncomeController),
	fx.Provide(controllers.NewSavingsController),
	fx.Provide(controllers.NewAlertController),
	fx.Provide(controllers.NewReportController))
