package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"lifedash/internal/adapter/http/handlers"
	"lifedash/internal/adapter/http/middleware"
	"lifedash/internal/core/ports"
)

type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	Task        *handlers.TaskHandler
	Transaction *handlers.TransactionHandler
	Category    *handlers.CategoryHandler
	Budget      *handlers.BudgetHandler
	Schedule    *handlers.ScheduleHandler
	Telegram    *handlers.TelegramHandler
}

type RouteConfig struct {
	AuthService ports.AuthService
	CronSecret  string
}

func RegisterRoutes(r *gin.Engine, h Handlers, cfg RouteConfig) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.MetricsMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)
		api.GET("/metrics", gin.WrapH(promhttp.Handler()))

		auth := api.Group("/auth")
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.DELETE("/login", h.Auth.Logout)
		auth.GET("/verify", h.Auth.Verify)
		auth.POST("/resend-verification", h.Auth.ResendVerification)

		api.POST("/cron/schedule-reminder", middleware.CronSecretMiddleware(cfg.CronSecret), h.Schedule.SendReminders)
	}

	private := api.Group("")
	private.Use(middleware.AuthMiddleware(cfg.AuthService))
	{
		private.GET("/me", h.Auth.Me)

		private.GET("/tasks", h.Task.ListTasks)
		private.POST("/tasks", h.Task.CreateTask)
		private.GET("/tasks/priorities", h.Task.ListPriorities)
		private.GET("/tasks/:id", h.Task.GetTask)
		private.PATCH("/tasks/:id", h.Task.UpdateTask)
		private.DELETE("/tasks/:id", h.Task.DeleteTask)
		private.POST("/tasks/:id/toggle", h.Task.ToggleTask)

		private.GET("/transactions", h.Transaction.ListTransactions)
		private.POST("/transactions", h.Transaction.CreateTransaction)
		private.GET("/transactions/summary", h.Transaction.Summary)
		private.PATCH("/transactions/:id", h.Transaction.UpdateTransaction)
		private.DELETE("/transactions/:id", h.Transaction.DeleteTransaction)

		private.GET("/categories", h.Category.ListCategories)
		private.POST("/categories", h.Category.CreateCategory)

		private.GET("/budgets", h.Budget.ListBudgets)
		private.POST("/budgets", h.Budget.CreateBudget)

		private.GET("/schedules", h.Schedule.ListSchedules)
		private.POST("/schedules", h.Schedule.CreateSchedule)
		private.PATCH("/schedules/:id", h.Schedule.UpdateSchedule)
		private.DELETE("/schedules/:id", h.Schedule.DeleteSchedule)

		private.POST("/telegram/save", h.Telegram.Save)
		private.GET("/telegram/status", h.Telegram.Status)
		private.DELETE("/telegram", h.Telegram.Disconnect)
		private.POST("/telegram/test", h.Telegram.SendTest)
	}
}
