package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/ruvello/export-api/internal/application/auth"
	"github.com/ruvello/export-api/internal/application/billing"
	"github.com/ruvello/export-api/internal/application/measurement"
	"github.com/ruvello/export-api/internal/application/usecase"
	infraexcel "github.com/ruvello/export-api/internal/infrastructure/excel"
	infrapdf "github.com/ruvello/export-api/internal/infrastructure/pdf"
	"github.com/ruvello/export-api/internal/infrastructure/postgres"
	httpRouter "github.com/ruvello/export-api/internal/interfaces/http"
	"github.com/ruvello/export-api/pkg/config"
	"github.com/ruvello/export-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	buyerRepo := postgres.NewBuyerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	measurementRepo := postgres.NewMeasurementRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Document renderers
	pdfGenerator := infrapdf.NewInvoiceGenerator()
	packingListGenerator := infrapdf.NewPackingListGenerator()
	workbookExporter := infraexcel.NewWorkbookExporter()

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	buyerUC := billing.NewBuyerUseCase(buyerRepo)
	invoiceUC := billing.NewInvoiceUseCase(txRunner, buyerRepo, companyRepo, invoiceRepo)
	documentUC := billing.NewDocumentUseCase(invoiceUC, pdfGenerator, workbookExporter)
	measurementUC := measurement.NewUseCase(
		txRunner, measurementRepo, buyerRepo, companyRepo,
		packingListGenerator, workbookExporter,
	)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Ruvello Export API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:     companyUC,
		BuyerUC:       buyerUC,
		InvoiceUC:     invoiceUC,
		DocumentUC:    documentUC,
		MeasurementUC: measurementUC,
		AuthUC:        authUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
