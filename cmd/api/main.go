package main

import (
	"strings"

	"lifedash/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	dbadapter "lifedash/internal/adapter/db"
	httpadapter "lifedash/internal/adapter/http"
	"lifedash/internal/adapter/http/handlers"
	httpmiddleware "lifedash/internal/adapter/http/middleware"
	"lifedash/internal/adapter/mailer"
	redisadapter "lifedash/internal/adapter/redis"
	"lifedash/internal/adapter/telegram"
	appservice "lifedash/internal/app/service"
	"lifedash/internal/config"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageEn, translator.LanguageId},
	})

	cfg := config.LoadConfig()
	location := cfg.Location()

	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	redisClient := redisadapter.NewClient(cfg)
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("failed to close redis connection", zap.Error(err))
		}
	}()

	telegramClient := telegram.NewClient(cfg.TelegramAPIURL, cfg.TelegramBotToken)
	smtpMailer := mailer.NewSMTPMailer(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		From:     cfg.SMTPFrom,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	})

	userRepository := dbadapter.NewUserRepository(db)
	authService := appservice.NewAuthService(
		userRepository,
		dbadapter.NewVerificationTokenRepository(db),
		redisadapter.NewSessionStore(redisClient),
		redisadapter.NewRateLimiter(redisClient, cfg.LoginRateLimit, cfg.LoginRateWindow),
		smtpMailer,
		appservice.AuthConfig{SessionTTL: cfg.SessionTTL, BaseURL: cfg.AppBaseURL},
	)
	taskService := appservice.NewTaskService(dbadapter.NewTaskRepository(db))
	transactionRepository := dbadapter.NewTransactionRepository(db)
	transactionService := appservice.NewTransactionService(transactionRepository)
	budgetService := appservice.NewBudgetService(dbadapter.NewBudgetRepository(db), transactionRepository)
	categoryService := appservice.NewCategoryService(dbadapter.NewCategoryRepository(db))
	scheduleService := appservice.NewScheduleService(dbadapter.NewScheduleRepository(db), telegramClient, location).
		WithDeliveryLock(redisadapter.NewRunLock(redisClient, uuid.NewString()))
	telegramService := appservice.NewTelegramService(userRepository, telegramClient)

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Fatal("invalid trusted proxies", zap.Strings("trusted_proxies", cfg.TrustedProxies), zap.Error(err))
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health: handlers.NewHealthHandler(db, redisClient),
		Auth: handlers.NewAuthHandler(authService, handlers.CookieConfig{
			TTL:    cfg.SessionTTL,
			Secure: strings.HasPrefix(cfg.AppBaseURL, "https://"),
		}),
		Task:        handlers.NewTaskHandler(taskService, location),
		Transaction: handlers.NewTransactionHandler(transactionService, location),
		Category:    handlers.NewCategoryHandler(categoryService),
		Budget:      handlers.NewBudgetHandler(budgetService, location),
		Schedule:    handlers.NewScheduleHandler(scheduleService),
		Telegram:    handlers.NewTelegramHandler(telegramService),
	}, httpadapter.RouteConfig{AuthService: authService, CronSecret: cfg.CronSecret})

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	addr := ":" + port
	logger.Info("starting server", zap.String("addr", addr), zap.String("timezone", location.String()))
	if err := r.Run(addr); err != nil {
		logger.Fatal("could not start server", zap.Error(err))
	}
}
