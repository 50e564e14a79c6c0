package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/ischultz503/Survivor/internal/bot"
	"github.com/ischultz503/Survivor/internal/cache"
	"github.com/ischultz503/Survivor/internal/config"
	"github.com/ischultz503/Survivor/internal/db"
	"github.com/ischultz503/Survivor/internal/httpapi"
	"github.com/ischultz503/Survivor/internal/jobs"
	"github.com/ischultz503/Survivor/internal/logging"
	"github.com/ischultz503/Survivor/internal/observability"
	"github.com/ischultz503/Survivor/internal/seed"
	"github.com/ischultz503/Survivor/internal/service"
	"go.uber.org/zap"
)

func main() {
	forceSeed := flag.Bool("seed", false, "seed an empty database from legacy spreadsheets and continue")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg, err := logging.Init(cfg.LogLevel, cfg.Env)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer lg.Closer()
	logger := lg.Base

	flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Env, cfg.Release)
	if err != nil {
		logger.Warn("sentry init failed", zap.Error(err))
	}
	defer flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	database, err := db.Open(ctx, cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer func() { _ = database.Close() }()

	if err := db.Migrate(database); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	lf, err := seed.LoadLeagueFile(cfg.LeaguesFile)
	if err != nil {
		logger.Fatal("league file", zap.Error(err))
	}
	seeder := seed.New(database, lg.Component("seed"), seed.Options{
		File:          lf,
		DataDir:       cfg.DataDir,
		AdminUsername: cfg.AdminUsername,
		AdminPassword: cfg.AdminPassword,
		Enabled:       cfg.SeedOnStart,
	})
	if rep, err := seeder.Seed(ctx, *forceSeed); err != nil {
		observability.CaptureOp("seed", err)
		logger.Fatal("seed failed", zap.Error(err))
	} else if !rep.Skipped {
		logger.Info("database seeded", zap.Int("teams", rep.Teams), zap.Int("events", rep.Events))
	}

	runner := jobs.New(ctx, lg.Component("jobs"))
	runner.Every(30*time.Second, "db_ping", jobs.DBPing(database))

	loader := &cache.Loader{TTL: cfg.CacheTTL, Log: lg.Component("cache")}
	if cfg.RedisAddr != "" {
		rc, err := cache.NewRedis(ctx, cfg.RedisAddr)
		if err != nil {
			logger.Warn("redis unavailable, using in-process cache", zap.Error(err))
		} else {
			defer func() { _ = rc.Close() }()
			loader.Cache = rc
		}
	}
	if loader.Cache == nil {
		mem := cache.NewMemory()
		loader.Cache = mem
		runner.Every(time.Minute, "cache_purge", jobs.PurgeCache(mem, lg.Component("cache")))
	}

	svc := service.New(database, loader, lg.Component("service"))

	router := httpapi.NewRouter(svc, database.PingContext, lg.Component("http"), httpapi.Options{
		CORSOrigin: cfg.CORSOrigin,
		Release:    cfg.Env == "prod",
	})
	srv := httpapi.Start(ctx, cfg.HTTPAddr, router, lg.Component("http"))

	if cfg.BotToken != "" {
		api, err := tgbotapi.NewBotAPI(cfg.BotToken)
		if err != nil {
			logger.Error("telegram bot init failed", zap.Error(err))
			observability.CaptureOp("bot init", err)
		} else {
			go bot.New(svc, lg.Component("bot")).Run(ctx, api)
		}
	}

	logger.Info("survivor started", zap.String("env", cfg.Env), zap.String("http", cfg.HTTPAddr))
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case <-srv.Done():
		// сервер упал сам (например, занят порт): останавливаем бота и джобы
		stop()
	}
	<-srv.Done()
}
