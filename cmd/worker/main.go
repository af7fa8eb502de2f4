package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	dbadapter "lifedash/internal/adapter/db"
	redisadapter "lifedash/internal/adapter/redis"
	"lifedash/internal/adapter/telegram"
	appservice "lifedash/internal/app/service"
	"lifedash/internal/app/worker"
	"lifedash/internal/config"
)

// cronLogger routes cron's own logging into zap.
type cronLogger struct {
	sugar *zap.SugaredLogger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.sugar.Debugw(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.sugar.Errorw(msg, append(keysAndValues, "error", err)...)
}

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

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

	instanceID := uuid.NewString()
	runLock := redisadapter.NewRunLock(redisClient, instanceID)
	scheduleService := appservice.NewScheduleService(
		dbadapter.NewScheduleRepository(db),
		telegram.NewClient(cfg.TelegramAPIURL, cfg.TelegramBotToken),
		location,
	).WithDeliveryLock(runLock)
	job := worker.NewReminderJob(scheduleService, runLock, location)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cronLog := cronLogger{sugar: logger.Sugar()}
	scheduler := cron.New(
		cron.WithLocation(location),
		cron.WithLogger(cronLog),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)
	if _, err := scheduler.AddFunc(cfg.ReminderCron, func() { job.Run(ctx) }); err != nil {
		logger.Fatal("invalid reminder cron expression", zap.String("expr", cfg.ReminderCron), zap.Error(err))
	}

	scheduler.Start()
	logger.Info("reminder worker started",
		zap.String("instance_id", instanceID),
		zap.String("cron", cfg.ReminderCron),
		zap.String("timezone", location.String()),
	)

	<-ctx.Done()
	logger.Info("shutting down reminder worker")
	<-scheduler.Stop().Done()
}
