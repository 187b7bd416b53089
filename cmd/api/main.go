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
	"github.com/tu-usuario/myinvois-pro/internal/application/auth"
	"github.com/tu-usuario/myinvois-pro/internal/application/billing"
	"github.com/tu-usuario/myinvois-pro/internal/application/usecase"
	inframyinvois "github.com/tu-usuario/myinvois-pro/internal/infrastructure/myinvois"
	infrapdf "github.com/tu-usuario/myinvois-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/myinvois-pro/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/myinvois-pro/internal/interfaces/http"
	"github.com/tu-usuario/myinvois-pro/pkg/config"
	"github.com/tu-usuario/myinvois-pro/pkg/logger"
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
		Str("myinvois_env", cfg.MyInvois.Environment).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	businessRepo := postgres.NewBusinessRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	businessUC := usecase.NewBusinessUseCase(businessRepo)
	productUC := usecase.NewProductUseCase(productRepo, txRunner)
	customerUC := billing.NewCustomerUseCase(customerRepo)
	createInvoiceUC := billing.NewCreateInvoiceUseCase(txRunner, businessRepo, customerRepo, productRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, customerRepo)

	// Compliance document: canonical JSON + hash, with XML/PDF renditions.
	documentBuilder := inframyinvois.NewDocumentBuilderService()
	xmlBuilder := inframyinvois.NewXMLBuilderService()
	documentUC := billing.NewDocumentUseCase(
		invoiceRepo, businessRepo, customerRepo, productRepo,
		documentBuilder, xmlBuilder,
	)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.MyInvois.PortalBaseURL)
	invoicePDFUC := billing.NewPDFUseCase(
		invoiceRepo, businessRepo, customerRepo, productRepo,
		documentBuilder, pdfGenerator,
	)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI locally: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MyInvois Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BusinessUC:    businessUC,
		ProductUC:     productUC,
		CustomerUC:    customerUC,
		CreateInvoice: createInvoiceUC,
		InvoiceUC:     invoiceUC,
		DocumentUC:    documentUC,
		InvoicePDF:    invoicePDFUC,
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

	log.Info().Msg("shutdown signal received, closing server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
