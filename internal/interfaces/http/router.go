package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/ruvello/export-api/internal/application/auth"
	"github.com/ruvello/export-api/internal/application/billing"
	"github.com/ruvello/export-api/internal/application/measurement"
	"github.com/ruvello/export-api/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	CompanyUC     *usecase.CompanyUseCase
	BuyerUC       *billing.BuyerUseCase
	InvoiceUC     *billing.InvoiceUseCase
	DocumentUC    *billing.DocumentUseCase
	MeasurementUC *measurement.UseCase
	AuthUC        *auth.AuthUseCase
	JWTSecret     string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Company registration (public bootstrap; users register against it)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Post("/companies", companyHandler.Create)

	// Protected routes (Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Exporter profile, scoped to the token company
	protected.Get("/company", companyHandler.Get)
	protected.Put("/company", adminOnly(), companyHandler.Update)

	// Buyers (consignees)
	buyers := protected.Group("/buyers")
	buyerHandler := NewBuyerHandler(deps.BuyerUC)
	buyers.Post("/", buyerHandler.Create)
	buyers.Get("/", buyerHandler.List)
	buyers.Get("/:id", buyerHandler.GetByID)

	// Invoices (proforma / commercial) with document downloads
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.DocumentUC)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)
	invoices.Get("/:id/xlsx", invoiceHandler.DownloadXLSX)

	// Measurement sheets with packing list downloads
	measurements := protected.Group("/measurements")
	measurementHandler := NewMeasurementHandler(deps.MeasurementUC)
	measurements.Post("/", measurementHandler.Create)
	measurements.Get("/", measurementHandler.List)
	measurements.Get("/:id", measurementHandler.GetByID)
	measurements.Get("/:id/pdf", measurementHandler.DownloadPDF)
	measurements.Get("/:id/xlsx", measurementHandler.DownloadXLSX)
}
