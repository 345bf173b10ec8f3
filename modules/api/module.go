// Package api serves the storefront REST API over Fiber.
package api

import (
	"context"
	"fmt"
	"time"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	cartmod "github.com/krisly/beauty-store/modules/cart"
	catalogmod "github.com/krisly/beauty-store/modules/catalog"
	contactmod "github.com/krisly/beauty-store/modules/contact"
	reviewmod "github.com/krisly/beauty-store/modules/review"
)

// Config holds HTTP server settings.
type Config struct {
	Port         int
	AllowOrigins string
}

// Providers are the modules whose services back the routes. They are listed
// in Dependencies, so mono starts them before the api module.
type Providers struct {
	Catalog *catalogmod.Module
	Cart    *cartmod.Module
	Review  *reviewmod.Module
	Contact *contactmod.Module
	// Health is reported by GET /health/modules, keyed by module name.
	Health map[string]mono.HealthCheckableModule
}

// Module provides the HTTP API for the store.
type Module struct {
	cfg       Config
	providers Providers
	app       *fiber.App
	logger    types.Logger
}

// Compile-time interface checks.
var (
	_ mono.Module                = (*Module)(nil)
	_ mono.DependentModule       = (*Module)(nil)
	_ mono.HealthCheckableModule = (*Module)(nil)
)

// NewModule creates a new API module.
func NewModule(cfg Config, providers Providers, logger types.Logger) *Module {
	if cfg.AllowOrigins == "" {
		cfg.AllowOrigins = "*"
	}
	return &Module{
		cfg:       cfg,
		providers: providers,
		logger:    logger.WithModule("api"),
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// Dependencies returns the modules that must be running before the server
// accepts requests. notification is included so its event consumers are
// registered before the first write.
func (m *Module) Dependencies() []string {
	return []string{"catalog", "cart", "review", "contact", "notification"}
}

// SetDependencyServiceContainer is a no-op: the store modules expose typed
// ports instead of container services.
func (m *Module) SetDependencyServiceContainer(string, mono.ServiceContainer) {}

// Start resolves the services, builds the Fiber app and starts listening.
func (m *Module) Start(_ context.Context) error {
	ports, err := m.resolvePorts()
	if err != nil {
		return err
	}

	m.app = NewApp(m.cfg, NewHandlers(ports, m.providers.Health, m.logger), m.logger)

	addr := fmt.Sprintf(":%d", m.cfg.Port)
	errCh := make(chan error, 1)
	go func() {
		if err := m.app.Listen(addr); err != nil {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("HTTP server failed to start: %w", err)
	case <-time.After(100 * time.Millisecond):
	}

	m.logger.Info("HTTP server started", "addr", addr)
	return nil
}

func (m *Module) resolvePorts() (Ports, error) {
	p := m.providers
	if p.Catalog == nil || p.Cart == nil || p.Review == nil || p.Contact == nil {
		return Ports{}, fmt.Errorf("api module requires catalog, cart, review and contact modules")
	}

	ports := Ports{
		Catalog: p.Catalog.Port(),
		Cart:    p.Cart.Port(),
		Review:  p.Review.Port(),
		Contact: p.Contact.Port(),
	}
	if ports.Catalog == nil || ports.Cart == nil || ports.Review == nil || ports.Contact == nil {
		return Ports{}, fmt.Errorf("store services not available - catalog, cart, review and contact must be started first")
	}
	return ports, nil
}

// Stop shuts the HTTP server down, waiting for in-flight requests.
func (m *Module) Stop(ctx context.Context) error {
	if m.app == nil {
		return nil
	}
	m.logger.Info("Shutting down HTTP server")
	if err := m.app.ShutdownWithContext(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}
	return nil
}

// Health reports whether the server is running.
func (m *Module) Health(_ context.Context) mono.HealthStatus {
	if m.app == nil {
		return mono.HealthStatus{Healthy: false, Message: "not started"}
	}
	return mono.HealthStatus{
		Healthy: true,
		Message: "operational",
		Details: map[string]any{"port": m.cfg.Port},
	}
}

// NewApp builds the Fiber application with middleware and routes.
func NewApp(cfg Config, h *Handlers, log types.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Krisly Beauty API",
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	setupRoutes(app, h)
	return app
}

func setupRoutes(app *fiber.App, h *Handlers) {
	app.Get("/", h.Root)
	app.Get("/health", h.HealthCheck)
	app.Get("/health/modules", h.ModulesHealth)

	api := app.Group("/api")

	products := api.Group("/products")
	products.Get("/", h.ListProducts)
	products.Get("/featured/by-criteria", h.FeaturedProducts)
	products.Get("/:id", h.GetProduct)
	products.Post("/", h.CreateProduct)
	products.Put("/:id", h.UpdateProduct)
	products.Delete("/:id", h.DeleteProduct)

	cart := api.Group("/cart")
	cart.Get("/:user_id", h.GetCart)
	cart.Post("/:user_id/items", h.AddCartItem)
	cart.Put("/:user_id/items/:item_id", h.UpdateCartItem)
	cart.Delete("/:user_id/items/:item_id", h.RemoveCartItem)
	cart.Delete("/:user_id/clear", h.ClearCart)

	reviews := api.Group("/reviews")
	reviews.Get("/product/:product_id", h.ListProductReviews)
	reviews.Post("/", h.CreateReview)
	reviews.Get("/:id", h.GetReview)
	reviews.Delete("/:id", h.DeleteReview)

	contact := api.Group("/contact")
	contact.Post("/", h.CreateContactMessage)
	contact.Get("/", h.ListContactMessages)
	contact.Get("/:id", h.GetContactMessage)
	contact.Delete("/:id", h.DeleteContactMessage)
}
