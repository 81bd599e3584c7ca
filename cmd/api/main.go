package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/tusharoffice40/Whole-X/api/routes"
	"github.com/tusharoffice40/Whole-X/internal/advisor"
	"github.com/tusharoffice40/Whole-X/internal/cart"
	"github.com/tusharoffice40/Whole-X/internal/catalog"
	"github.com/tusharoffice40/Whole-X/internal/orders"
	"github.com/tusharoffice40/Whole-X/internal/views"
	"github.com/tusharoffice40/Whole-X/pkg/config"
	"github.com/tusharoffice40/Whole-X/pkg/genai"
	"github.com/tusharoffice40/Whole-X/pkg/logger"
	"github.com/tusharoffice40/Whole-X/pkg/session"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	generator := genai.NewClient(cfg.GenAI)

	catalogService, err := catalog.NewService(generator, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to seed catalog", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	ordersService := orders.NewService()

	viewsService, err := views.NewService(catalogService)
	if err != nil {
		logg.Error(context.Background(), "failed to create view service", err)
		os.Exit(1)
	}

	advisorService, err := advisor.NewService(generator, cfg.Advisor, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create advisor service", err)
		os.Exit(1)
	}

	sessions := session.NewManager()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, sessions, catalogService, cartService, ordersService, viewsService, advisorService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
