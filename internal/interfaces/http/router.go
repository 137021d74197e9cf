package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cotizador-api/internal/application/analytics"
	"github.com/jhoicas/cotizador-api/internal/application/auth"
	"github.com/jhoicas/cotizador-api/internal/application/catalog"
	"github.com/jhoicas/cotizador-api/internal/application/chat"
	"github.com/jhoicas/cotizador-api/internal/application/quoting"
	"github.com/jhoicas/cotizador-api/internal/application/usecase"
	"github.com/jhoicas/cotizador-api/internal/domain/entity"
	"github.com/jhoicas/cotizador-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *usecase.CustomerUseCase
	CatalogUC   *catalog.UseCase
	ImportUC    *catalog.ImportUseCase
	QuoteUC     *quoting.QuoteUseCase
	QuotePDFUC  *quoting.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	ChatRouter  *chat.Router
	Sender      textSender
	JWTSecret   string
	VerifyToken string
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth: login público; register solo ADMIN (más abajo).
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	api.Post("/auth/login", authHandler.Login)

	// Webhook WhatsApp (público: Meta autentica con el verify token).
	webhookHandler := NewWebhookHandler(deps.ChatRouter, deps.Sender, deps.VerifyToken, deps.Log)
	api.Get("/webhook/whatsapp", webhookHandler.Verify)
	api.Post("/webhook/whatsapp", webhookHandler.Receive)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Registro de usuarios (solo ADMIN)
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Log)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Delete("/:id", customerHandler.Delete)

	// Catálogo de productos
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC, deps.Log)
	products.Get("/search", productHandler.Search)
	products.Get("/", productHandler.List)
	products.Get("/:id/prices", productHandler.PriceHistory)

	// Importación de listas de precios (solo ADMIN)
	importHandler := NewImportHandler(deps.ImportUC, deps.Log)
	protected.Post("/catalog/import", RequireRole(entity.RoleAdmin), importHandler.Import)

	// Cotizaciones
	quotes := protected.Group("/quotes")
	quoteHandler := NewQuoteHandler(deps.QuoteUC, deps.QuotePDFUC, deps.Log)
	quotes.Post("/", quoteHandler.Create)
	quotes.Get("/", quoteHandler.List)
	quotes.Get("/:id", quoteHandler.GetByID)
	quotes.Delete("/:id", quoteHandler.Delete)
	quotes.Post("/:id/items", quoteHandler.AddItem)
	quotes.Delete("/:id/items/:itemId", quoteHandler.DeleteItem)
	quotes.Post("/:id/recalculate", quoteHandler.Recalculate)
	quotes.Get("/:id/pdf", quoteHandler.PDF)

	// Asistente de catálogo (widget web)
	chatHandler := NewChatHandler(deps.ChatRouter, deps.Log)
	protected.Post("/chat", chatHandler.Chat)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)
	protected.Get("/dashboard", dashboardHandler.Summary)
}
