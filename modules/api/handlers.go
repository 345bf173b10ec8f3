package api

import (
	"strconv"

	"github.com/go-monolith/mono"
	"github.com/go-monolith/mono/pkg/types"
	"github.com/gofiber/fiber/v2"

	cartmod "github.com/krisly/beauty-store/modules/cart"
	catalogmod "github.com/krisly/beauty-store/modules/catalog"
	contactmod "github.com/krisly/beauty-store/modules/contact"
	reviewmod "github.com/krisly/beauty-store/modules/review"
)

// Version is reported at GET /.
const Version = "1.0.0"

// Ports groups the services behind the HTTP routes.
type Ports struct {
	Catalog catalogmod.CatalogPort
	Cart    cartmod.CartPort
	Review  reviewmod.ReviewPort
	Contact contactmod.ContactPort
}

// Handlers provides HTTP handlers for the store API.
type Handlers struct {
	ports  Ports
	health map[string]mono.HealthCheckableModule
	logger types.Logger
}

// NewHandlers creates a new handlers instance. health lists the modules
// reported by GET /health/modules.
func NewHandlers(ports Ports, health map[string]mono.HealthCheckableModule, logger types.Logger) *Handlers {
	return &Handlers{
		ports:  ports,
		health: health,
		logger: logger,
	}
}

// Root handles GET /.
func (h *Handlers) Root(c *fiber.Ctx) error {
	return c.JSON(RootResponse{Message: "Bienvenido a Krisly Beauty API", Version: Version})
}

// HealthCheck handles GET /health.
func (h *Handlers) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{Status: "ok"})
}

// ModulesHealth handles GET /health/modules.
func (h *Handlers) ModulesHealth(c *fiber.Ctx) error {
	resp := ModulesHealthResponse{Status: "ok", Modules: make(map[string]ModuleHealth, len(h.health))}
	for name, m := range h.health {
		s := m.Health(c.UserContext())
		resp.Modules[name] = ModuleHealth{Healthy: s.Healthy, Message: s.Message, Details: s.Details}
		if !s.Healthy {
			resp.Status = "degraded"
		}
	}

	status := fiber.StatusOK
	if resp.Status != "ok" {
		status = fiber.StatusServiceUnavailable
	}
	return c.Status(status).JSON(resp)
}

// ListProducts handles GET /api/products.
func (h *Handlers) ListProducts(c *fiber.Ctx) error {
	skip, err := queryInt(c, "skip")
	if err != nil {
		return invalidInput(c, "skip must be an integer")
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return invalidInput(c, "limit must be an integer")
	}

	req := catalogmod.ListProductsRequest{Category: c.Query("category"), Limit: limit}
	if skip != nil {
		req.Skip = *skip
	}
	products, err := h.ports.Catalog.List(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(products)
}

// FeaturedProducts handles GET /api/products/featured/by-criteria.
func (h *Handlers) FeaturedProducts(c *fiber.Ctx) error {
	criteria := catalogmod.Criteria(c.Query("criteria", string(catalogmod.CriteriaFeatured)))
	limit, err := queryInt(c, "limit")
	if err != nil {
		return invalidInput(c, "limit must be an integer")
	}
	n := catalogmod.DefaultFeaturedLimit
	if limit != nil {
		n = *limit
	}

	products, err := h.ports.Catalog.Featured(c.UserContext(), criteria, n)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(products)
}

// GetProduct handles GET /api/products/:id.
func (h *Handlers) GetProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return invalidInput(c, "invalid product id")
	}
	p, err := h.ports.Catalog.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(p)
}

// CreateProduct handles POST /api/products.
func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	var req catalogmod.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, "invalid request body")
	}
	p, err := h.ports.Catalog.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// UpdateProduct handles PUT /api/products/:id.
func (h *Handlers) UpdateProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return invalidInput(c, "invalid product id")
	}
	var req catalogmod.ProductRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, "invalid request body")
	}
	p, err := h.ports.Catalog.Update(c.UserContext(), id, req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(p)
}

// DeleteProduct handles DELETE /api/products/:id.
func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return invalidInput(c, "invalid product id")
	}
	if err := h.ports.Catalog.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(MessageResponse{Message: "Producto eliminado"})
}

// GetCart handles GET /api/cart/:user_id.
func (h *Handlers) GetCart(c *fiber.Ctx) error {
	cart, err := h.ports.Cart.Get(c.UserContext(), c.Params("user_id"))
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(cart)
}

// AddCartItem handles POST /api/cart/:user_id/items.
func (h *Handlers) AddCartItem(c *fiber.Ctx) error {
	var req cartmod.AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, "invalid request body")
	}
	cart, err := h.ports.Cart.AddItem(c.UserContext(), c.Params("user_id"), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(cart)
}

// UpdateCartItem handles PUT /api/cart/:user_id/items/:item_id.
func (h *Handlers) UpdateCartItem(c *fiber.Ctx) error {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return invalidInput(c, "invalid item id")
	}
	var req CartItemQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, "invalid request body")
	}
	cart, err := h.ports.Cart.UpdateItem(c.UserContext(), c.Params("user_id"), itemID, req.Quantity)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(cart)
}

// RemoveCartItem handles DELETE /api/cart/:user_id/items/:item_id.
func (h *Handlers) RemoveCartItem(c *fiber.Ctx) error {
	itemID, err := pathID(c, "item_id")
	if err != nil {
		return invalidInput(c, "invalid item id")
	}
	cart, err := h.ports.Cart.RemoveItem(c.UserContext(), c.Params("user_id"), itemID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(cart)
}

// ClearCart handles DELETE /api/cart/:user_id/clear.
func (h *Handlers) ClearCart(c *fiber.Ctx) error {
	if err := h.ports.Cart.Clear(c.UserContext(), c.Params("user_id")); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(MessageResponse{Message: "Carrito vaciado"})
}

// ListProductReviews handles GET /api/reviews/product/:product_id.
func (h *Handlers) ListProductReviews(c *fiber.Ctx) error {
	productID, err := pathID(c, "product_id")
	if err != nil {
		return invalidInput(c, "invalid product id")
	}
	reviews, err := h.ports.Review.ListForProduct(c.UserContext(), productID)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(reviews)
}

// CreateReview handles POST /api/reviews. The user id comes from the body,
// then the user_id query parameter.
func (h *Handlers) CreateReview(c *fiber.Ctx) error {
	var req reviewmod.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, "invalid request body")
	}
	if req.UserID == "" {
		req.UserID = c.Query("user_id")
	}
	r, err := h.ports.Review.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(r)
}

// GetReview handles GET /api/reviews/:id.
func (h *Handlers) GetReview(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return invalidInput(c, "invalid review id")
	}
	r, err := h.ports.Review.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(r)
}

// DeleteReview handles DELETE /api/reviews/:id.
func (h *Handlers) DeleteReview(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return invalidInput(c, "invalid review id")
	}
	if err := h.ports.Review.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(MessageResponse{Message: "Reseña eliminada"})
}

// CreateContactMessage handles POST /api/contact.
func (h *Handlers) CreateContactMessage(c *fiber.Ctx) error {
	var req contactmod.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return invalidInput(c, "invalid request body")
	}
	msg, err := h.ports.Contact.Create(c.UserContext(), req)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.Status(fiber.StatusCreated).JSON(msg)
}

// ListContactMessages handles GET /api/contact.
func (h *Handlers) ListContactMessages(c *fiber.Ctx) error {
	msgs, err := h.ports.Contact.List(c.UserContext())
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(msgs)
}

// GetContactMessage handles GET /api/contact/:id.
func (h *Handlers) GetContactMessage(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return invalidInput(c, "invalid message id")
	}
	msg, err := h.ports.Contact.Get(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(msg)
}

// DeleteContactMessage handles DELETE /api/contact/:id.
func (h *Handlers) DeleteContactMessage(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return invalidInput(c, "invalid message id")
	}
	if err := h.ports.Contact.Delete(c.UserContext(), id); err != nil {
		return respondError(c, h.logger, err)
	}
	return c.JSON(MessageResponse{Message: "Mensaje eliminado"})
}

// queryInt returns nil when the parameter is absent.
func queryInt(c *fiber.Ctx, key string) (*int, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func pathID(c *fiber.Ctx, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(name), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
