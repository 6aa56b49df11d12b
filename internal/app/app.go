package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/slvrxyzz/telegram-media-bot/internal/config"
	"github.com/slvrxyzz/telegram-media-bot/internal/infra/download"
	"github.com/slvrxyzz/telegram-media-bot/internal/infra/telegram"
	"github.com/slvrxyzz/telegram-media-bot/internal/repo/postgres"
	catalogsvc "github.com/slvrxyzz/telegram-media-bot/internal/services/catalog"
	mediasvc "github.com/slvrxyzz/telegram-media-bot/internal/services/media"
	"github.com/slvrxyzz/telegram-media-bot/internal/services/session"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger
	db     *gorm.DB
	tg     *telegram.Client

	sessions       *session.Manager
	mediaService   *mediasvc.Service
	catalogService *catalogsvc.Service
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := postgres.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	app := &App{
		cfg:      cfg,
		logger:   logger,
		db:       db,
		sessions: session.NewManager(time.Duration(cfg.SessionTTLMinutes)*time.Minute, logger),
	}

	app.tg, err = telegram.NewClient(cfg.BotToken, cfg.PollTimeoutSeconds, logger, app.routeUpdate)
	if err != nil {
		app.close()
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	var downloader mediasvc.Downloader
	if cfg.DownloadFiles {
		downloader = download.New(app.tg, cfg.DownloadPath)
	}

	mediaRepo := postgres.NewMediaRepo(db)
	app.mediaService = mediasvc.NewService(mediaRepo, app.tg, downloader, logger, cfg.ModerationEnabled, cfg.AdminIDs)
	app.catalogService = catalogsvc.NewService(mediaRepo, cfg.ModerationEnabled)

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()

	go a.sessions.Run(ctx)
	return a.tg.Start(ctx)
}

func (a *App) close() {
	if a.db == nil {
		return
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		a.logger.Error("resolve sql connection", "error", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		a.logger.Error("close postgres", "error", err)
	}
}
