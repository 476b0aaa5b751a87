package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cliphub/cliphub/internal/config"
	"github.com/cliphub/cliphub/internal/handlers"
	"github.com/cliphub/cliphub/internal/notifier"
	"github.com/cliphub/cliphub/internal/pg"
	"github.com/cliphub/cliphub/internal/proofstore"
	"github.com/cliphub/cliphub/internal/providers"
	"github.com/cliphub/cliphub/internal/ratelimit"
	"github.com/cliphub/cliphub/internal/repo"
	"github.com/cliphub/cliphub/internal/service"
	"github.com/cliphub/cliphub/internal/tracker"
	"github.com/cliphub/cliphub/pkg/auth"
	"github.com/cliphub/cliphub/pkg/clients"
	"github.com/cliphub/cliphub/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	tracker *tracker.Tracker

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg.LogLvl)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	conn := pg.New(pool)

	bot, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		zap.L().Error("telegram bot init failed: ", zap.Error(err))
		return fmt.Errorf("can't init telegram bot: %w", err)
	}
	notif := notifier.New(bot, cfg.AdminChatID)

	proofs, err := proofstore.New(proofstore.Config{
		Endpoint:     cfg.S3Endpoint,
		Region:       cfg.S3Region,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
		Bucket:       cfg.S3Bucket,
		BaseURL:      cfg.S3BaseURL,
		UsePathStyle: cfg.S3UsePathStyle,
	})
	if err != nil {
		zap.L().Error("proof store init failed: ", zap.Error(err))
		return fmt.Errorf("can't init proof store: %w", err)
	}

	provider := providers.NewRegistry(clients.NewHTTPClient(), cfg.YouTubeAPIKey, cfg.RapidAPIKey)
	limiter := ratelimit.New(cfg.RateLimitWindow)
	jwt := auth.NewJWT(cfg.JWTSecret, cfg.JWTTTL)

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(cfg, a.repo, txManager, notif, provider, limiter, jwt)
	a.api = handlers.New(a.srv, proofs, jwt, cfg.ServiceKey)
	a.tracker = tracker.New(
		a.srv.SubmissionService, a.srv.CampaignService, a.srv.BudgetService,
		provider, notif,
		cfg.TrackInterval, cfg.BudgetCheckInterval, cfg.SpikeThreshold,
	)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.tracker.Start(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
