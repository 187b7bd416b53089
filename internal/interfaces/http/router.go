package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/myinvois-pro/internal/application/auth"
	"github.com/tu-usuario/myinvois-pro/internal/application/billing"
	"github.com/tu-usuario/myinvois-pro/internal/application/usecase"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	BusinessUC    *usecase.BusinessUseCase
	ProductUC     *usecase.ProductUseCase
	CustomerUC    *billing.CustomerUseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoiceUC     *billing.InvoiceUseCase
	DocumentUC    *billing.DocumentUseCase
	InvoicePDF    *billing.PDFUseCase
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

	// Protected routes (require Bearer token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Business profile (protected; creation also links the user)
	business := protected.Group("/business")
	businessHandler := NewBusinessHandler(deps.BusinessUC, deps.AuthUC)
	business.Post("/", businessHandler.Create)
	business.Get("/", businessHandler.Get)
	business.Put("/", businessHandler.Update)

	// Products (protected)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	// Customers (protected)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Invoices (protected). Status changes are restricted to admins and
	// billers; deleting issued invoices is not supported.
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoiceUC, deps.DocumentUC, deps.InvoicePDF)
	invoices.Post("/", invoiceHandler.Create)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Patch("/:id/status", RequireRole("admin", "biller"), invoiceHandler.UpdateStatus)
	invoices.Get("/:id/document", invoiceHandler.Document)
	invoices.Get("/:id/document.xml", invoiceHandler.DocumentXML)
	invoices.Get("/:id/pdf", invoiceHandler.PDF)
}
