package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"

	"zassprint/internal/config"
	"zassprint/internal/database"
	"zassprint/internal/handler"
	"zassprint/internal/mw"
	"zassprint/internal/notify"
	"zassprint/internal/receipt"
	"zassprint/internal/service"
	"zassprint/internal/worker"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.New()

	db, err := database.NewDB(cfg.DatabaseURI)
	if err != nil {
		slog.Error("failed to connect to DB", "error", err)
		os.Exit(1)
	}
	defer database.CloseDB(db)

	if err := database.InitSchema(db); err != nil {
		slog.Error("failed to init DB schema", "error", err)
		os.Exit(1)
	}

	// Services
	authSvc, err := service.NewAuthService(cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		slog.Error("failed to init auth service", "error", err)
		os.Exit(1)
	}
	orderSvc := service.NewOrderService(db)
	priceSvc := service.NewPriceService(db)

	renderer, err := receipt.NewRenderer(cfg.ReceiptTemplate)
	if err != nil {
		slog.Error("failed to load receipt template", "error", err)
		os.Exit(1)
	}

	// Alert dispatcher
	telegram := notify.NewTelegramClient(cfg.TelegramAPIURL, cfg.TelegramBotToken, cfg.TelegramChatID)
	alerts := worker.NewAlertDispatcher(telegram)

	// Sessions
	sessionStore := sessions.NewCookieStore(cfg.SessionKey)
	sessionStore.Options.HttpOnly = true
	sessionStore.Options.Secure = cfg.CookieSecure
	sessionStore.Options.SameSite = http.SameSiteLaxMode
	sessionStore.Options.Path = "/"

	// Router
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Credentialed CORS requires concrete origins; a wildcard origin never
	// carries the session cookie, so wildcard mode stays credential-free.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: !cfg.CORSAllowAll(),
		MaxAge:           300,
	}))

	// Public routes
	r.Post("/auth/login", handler.LoginHandler(authSvc, sessionStore))
	r.Post("/auth/logout", handler.LogoutHandler(sessionStore))

	r.Get("/orders", handler.ListOrdersHandler(orderSvc))
	r.Post("/orders", handler.SubmitOrderHandler(orderSvc, alerts))
	r.Get("/orders/status", handler.GetOrderStatusHandler(orderSvc))

	r.Get("/prices", handler.ListPricesHandler(priceSvc))
	r.Get("/receipt/{orderNo}", handler.ReceiptHandler(orderSvc, priceSvc, renderer))

	// Admin-only routes
	r.Group(func(r chi.Router) {
		r.Use(mw.AdminOnly(sessionStore))

		r.Delete("/orders", handler.DeleteOrderHandler(orderSvc))
		r.Post("/orders/status", handler.UpdateOrderStatusHandler(orderSvc))
		r.Post("/prices", handler.UpdatePricesHandler(priceSvc))
	})

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	go alerts.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-quit
	slog.Info("shutting down...")

	cancel() // stop alert dispatcher
	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}
