package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/gorilla/sessions"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/acaidecasa/storefront/internal/api"
	"github.com/acaidecasa/storefront/internal/cart"
	"github.com/acaidecasa/storefront/internal/catalog"
	"github.com/acaidecasa/storefront/internal/config"
	"github.com/acaidecasa/storefront/internal/events"
	"github.com/acaidecasa/storefront/internal/pix"
	"github.com/acaidecasa/storefront/internal/service"
	"github.com/acaidecasa/storefront/internal/whatsapp"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// Load the catalog once; it is immutable for the process lifetime.
	cat, err := loadCatalog(cfg)
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	logger.Info("catalog loaded", zap.Int("products", len(cat.Products())))

	// Wire the session carts and the order composer
	carts := cart.NewManager(logger)

	bus := EventBus.New()
	if err := events.RegisterAuditLogger(bus, logger); err != nil {
		logger.Fatal("Failed to register order audit subscriber", zap.Error(err))
	}

	orders, err := service.NewOrderService(cfg, pix.NewGenerator(logger), whatsapp.NewLinkBuilder(), bus, logger)
	if err != nil {
		logger.Fatal("Failed to initialize order service", zap.Error(err))
	}

	sessionStore := sessions.NewCookieStore([]byte(cfg.Session.Secret))
	sessionStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
	}

	router := api.NewRouter(cfg, cat, carts, orders, sessionStore, logger)

	// Idle carts are swept periodically; sessions are memory-only state.
	sched := cron.New()
	if _, err := sched.AddFunc("@every 10m", func() {
		carts.PurgeIdle(cfg.Cart.IdleTTL)
	}); err != nil {
		logger.Fatal("Failed to schedule cart purge", zap.Error(err))
	}
	sched.Start()
	defer sched.Stop()

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Environment == "production" {
		zapCfg := zap.NewProductionConfig()
		if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
			zapCfg.Level = level
		}
		return zapCfg.Build()
	}
	return zap.NewDevelopment()
}

func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.File != "" {
		return catalog.LoadFile(cfg.Catalog.File)
	}
	return catalog.Default(), nil
}
