package main

import (
	"budgy/internal/api/controllers"
	"budgy/internal/config"
	"budgy/internal/models/db_models"
	mem "budgy/pkg/memcache"
	"budgy/pkg/middleware"
	"budgy/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type RouterParams struct {
	fx.In

	Config        *config.Config
	Log           *zap.Logger
	Issuer        *utils.TokenIssuer
	LoginAttempts mem.LoginAttemptStore

	Users      *controllers.UserController
	Categories *controllers.CategoryController
	Expenses   *controllers.ExpenseController
	Incomes    *controllers.IncomeController
	Savings    *controllers.SavingsController
	Alerts     *controllers.AlertController
	Reports    *controllers.ReportController
}

func ProvideRouter(p RouterParams) *gin.Engine {
	if p.Config.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Log))
	r.Use(gin.Recovery())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	api := r.Group("/api")

	public := api.Group("/users")
	public.POST("", p.Users.Register)
	public.POST("/login",
		middleware.LoginRateLimit(p.LoginAttempts, p.Config.Auth.LoginMaxAttempts, p.Config.Auth.LoginWindow),
		p.Users.Login)

	secured := api.Group("")
	adminOnly := []gin.HandlerFunc{}
	if p.Config.Auth.RequireToken {
		secured.Use(middleware.JWTAuthMiddleware(p.Issuer))
		adminOnly = append(adminOnly, middleware.RequireRole(string(db_models.RoleAdmin)))
	}

	users := secured.Group("/users")
	users.GET("", append(adminOnly, p.Users.List)...)
	users.GET("/:id", p.Users.Get)
	users.PUT("/:id", p.Users.Update)
	users.DELETE("/:id", p.Users.Delete)
	users.GET("/:id/summary", p.Reports.GetSummary)
	users.GET("/:id/export", p.Reports.Export)

	categories := secured.Group("/expense-categories")
	categories.POST("", p.Categories.Create)
	categories.GET("", p.Categories.List)
	categories.GET("/:id", p.Categories.Get)
	categories.PUT("/:id", p.Categories.Update)
	categories.DELETE("/:id", p.Categories.Delete)

	expenses := secured.Group("/expenses")
	expenses.POST("", p.Expenses.Create)
	expenses.GET("", p.Expenses.List)
	expenses.PUT("/:id", p.Expenses.Update)
	expenses.DELETE("/:id", p.Expenses.Delete)
	expenses.GET("/user/:userId", p.Expenses.ListByUser)
	expenses.GET("/user/:userId/total", p.Expenses.TotalByUser)
	expenses.GET("/user/:userId/category/:categoryId", p.Expenses.ListByUserAndCategory)
	expenses.GET("/category/:categoryId", p.Expenses.ListByCategory)

	incomes := secured.Group("/incomes")
	incomes.POST("", p.Incomes.Create)
	incomes.GET("", p.Incomes.List)
	incomes.PUT("/:id", p.Incomes.Update)
	incomes.DELETE("/:id", p.Incomes.Delete)
	incomes.GET("/user/:userId", p.Incomes.ListByUser)
	incomes.GET("/user/:userId/total", p.Incomes.TotalByUser)
	incomes.GET("/user/:userId/type/:type", p.Incomes.ListByUserAndType)
	incomes.GET("/user/:userId/period", p.Incomes.ListByUserWithinPeriod)

	savings := secured.Group("/savings")
	savings.POST("", p.Savings.Create)
	savings.GET("", p.Savings.List)
	savings.PUT("/:id", p.Savings.Update)
	savings.DELETE("/:id", p.Savings.Delete)
	savings.GET("/user/:userId", p.Savings.ListByUser)
	savings.GET("/user/:userId/priority/:priority", p.Savings.ListByUserAndPriority)
	savings.GET("/user/:userId/period", p.Savings.ListByUserWithinPeriod)
	savings.GET("/priority/:priority", p.Savings.ListByPriority)

	alerts := secured.Group("/alerts")
	alerts.POST("", p.Alerts.Create)
	alerts.GET("", p.Alerts.List)
	alerts.PUT("/:id", p.Alerts.Update)
	alerts.PATCH("/:id/read", p.Alerts.MarkRead)
	alerts.DELETE("/:id", p.Alerts.Delete)
	alerts.GET("/user/:userId", p.Alerts.ListByUser)
	alerts.GET("/user/:userId/unread", p.Alerts.ListUnreadByUser)
}
