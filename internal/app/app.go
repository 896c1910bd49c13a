package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"github.com/wb-go/wbf/logger"

	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/auth"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/checkout"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/config"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/events"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/handler"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/middleware"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/notification"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/poller"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/router"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/service"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/upstream"
	"github.com/MominRazaSzabist/FlexBNB-sub000/internal/ws"
)

type App struct {
	cfg        *config.Config
	log        logger.Logger
	httpServer *http.Server

	bus      *events.Bus
	hub      *ws.Hub
	poller   *poller.Poller
	drafts   *checkout.Store
	notifier *notification.HostNotifier
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"BookingGateway",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initServices() error {
	marketplace := upstream.NewClient(a.cfg.Upstream.BaseURL, a.cfg.Upstream.Timeout, a.log)

	a.bus = events.NewBus(a.log)
	a.hub = ws.NewHub(a.bus, a.log)
	a.poller = poller.New(marketplace, a.bus, a.cfg.Poller.Interval, a.log)
	a.drafts = checkout.NewStore(a.cfg.Checkout.SessionTTL, a.log)

	notifier, err := notification.NewHostNotifier(
		a.cfg.Telegram.BotToken,
		a.cfg.Telegram.HostChatID,
		a.log,
	)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}
	a.notifier = notifier

	quoteService := service.NewQuoteService(marketplace)
	checkoutService := service.NewCheckoutService(
		marketplace,
		a.drafts,
		a.cfg.Checkout.ProcessingDelay,
		a.log,
	)
	bookingService := service.NewBookingService(
		marketplace,
		auth.ContextTokenSource{},
		a.bus,
		a.drafts,
		a.log,
	)

	h := handler.NewHandler(quoteService, checkoutService, bookingService, a.hub, a.poller, a.log)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		middleware.RequestID(),
		middleware.BearerToken(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var wg sync.WaitGroup
	wg.Add(4)
	go func() { defer wg.Done(); a.hub.Run(ctx) }()
	go func() { defer wg.Done(); a.poller.Start(ctx) }()
	go func() { defer wg.Done(); a.drafts.StartSweeper(ctx, a.cfg.Checkout.SweepInterval) }()
	go func() { defer wg.Done(); a.notifier.Run(ctx, a.bus) }()

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		stop()
		wg.Wait()
		return err
	}

	stop()
	err := a.shutdown()
	wg.Wait()
	return err
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}
