package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aliskhannn/cultural-explorer-bot/internal/config"
	"github.com/aliskhannn/cultural-explorer-bot/internal/delivery/httpapi"
	"github.com/aliskhannn/cultural-explorer-bot/internal/delivery/telegram"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres"
	"github.com/aliskhannn/cultural-explorer-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/cultural-explorer-bot/internal/logger"
	catalogrepo "github.com/aliskhannn/cultural-explorer-bot/internal/repository"
	"github.com/aliskhannn/cultural-explorer-bot/internal/service"
	"github.com/aliskhannn/cultural-explorer-bot/internal/storage"
)

func main() {
	// .env is optional, real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, lg); err != nil && !errors.Is(err, context.Canceled) {
		lg.Fatal("bot stopped with error", zap.Error(err))
	}

	lg.Info("shutdown complete")
}

func run(ctx context.Context, cfg *config.Config, lg *zap.Logger) error {
	dsn, err := cfg.DB.DSN()
	if err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        int32(cfg.DB.MaxConnections),
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		return err
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		return err
	}
	bot.Debug = cfg.Env != "production"
	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	if _, err := bot.Request(tgbotapi.NewSetMyCommands(botCommands()...)); err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	// Repositories.
	countryRepo := catalogrepo.NewCountryRepository(cfg.Catalog.Path)
	userRepo := repository.NewUserRepository(pool)
	settingsRepo := repository.NewSettingsRepository(pool)
	bookmarkRepo := repository.NewBookmarkRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	tr := postgres.NewTransactor(pool)

	// Services.
	countryService := service.NewCountryService(countryRepo, service.NewRand())
	userService := service.NewUserService(userRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	bookmarkService := service.NewBookmarkService(bookmarkRepo, countryRepo)
	resetService := service.NewResetService(tr)
	quizService := service.NewQuizService(
		countryRepo,
		settingsService,
		resultRepo,
		tr,
		storage.NewQuizStorage[*service.QuizManager](),
		lg,
	)
	refresher := service.NewCatalogRefresher(countryRepo, cfg.Catalog.ReloadCron, lg)

	handler := telegram.NewHandler(
		bot,
		lg,
		countryService,
		bookmarkService,
		quizService,
		settingsService,
		userService,
		resetService,
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return refresher.Start(ctx)
	})

	g.Go(func() error {
		defer bot.StopReceivingUpdates()
		return handler.Run(ctx)
	})

	if cfg.HTTP.Addr != "" {
		api := httpapi.NewHandler(countryService, lg)
		g.Go(func() error {
			return httpapi.Serve(ctx, cfg.HTTP.Addr, api.Routes(cfg.HTTP.AllowedOrigins), lg)
		})
	}

	return g.Wait()
}

func botCommands() []tgbotapi.BotCommand {
	return []tgbotapi.BotCommand{
		{Command: "start", Description: "Start the bot"},
		{Command: "all", Description: "Browse all countries"},
		{Command: "search", Description: "Search by name, region or language"},
		{Command: "region", Description: "Browse a region"},
		{Command: "random", Description: "Show a random country"},
		{Command: "bookmarks", Description: "Your saved countries"},
		{Command: "quiz", Description: "Start a quiz (usage: /quiz food)"},
		{Command: "history", Description: "Your quiz results"},
		{Command: "settings", Description: "Quiz settings"},
		{Command: "reset", Description: "Delete your data"},
		{Command: "help", Description: "Help"},
	}
}
