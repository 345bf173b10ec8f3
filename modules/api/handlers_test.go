package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisly/beauty-store/internal/storetest"
	cartmod "github.com/krisly/beauty-store/modules/cart"
	catalogmod "github.com/krisly/beauty-store/modules/catalog"
	contactmod "github.com/krisly/beauty-store/modules/contact"
	reviewmod "github.com/krisly/beauty-store/modules/review"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := storetest.NewStore(t)
	log := storetest.Logger()

	catalog := catalogmod.NewService(store, nil, log)
	if _, err := catalog.Seed(context.Background(), catalogmod.DemoProducts()); err != nil {
		t.Fatalf("Seed() error = %v", err)
	}

	ports := Ports{
		Catalog: catalog,
		Cart:    cartmod.NewService(store, log),
		Review:  reviewmod.NewService(store, nil, log),
		Contact: contactmod.NewService(store, nil, log),
	}
	return NewApp(Config{AllowOrigins: "*"}, NewHandlers(ports, nil, log), log)
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, data
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), "body: %s", data)
	return v
}

func TestRootAndHealth(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, status)
	root := decode[RootResponse](t, body)
	assert.Equal(t, "Bienvenido a Krisly Beauty API", root.Message)
	assert.Equal(t, "1.0.0", root.Version)

	status, body = doRequest(t, app, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))
}

func TestProductRoutes(t *testing.T) {
	app := setupTestApp(t)

	t.Run("list seeded catalog", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products", "")
		require.Equal(t, http.StatusOK, status)
		products := decode[[]catalogmod.ProductResponse](t, body)
		require.Len(t, products, 3)
		assert.Equal(t, "Sombra Negra Colorida", products[0].Name)
		assert.Equal(t, 29.99, products[0].Price)
	})

	t.Run("filter by category", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products/?category=Cuidado%20Personal", "")
		require.Equal(t, http.StatusOK, status)
		products := decode[[]catalogmod.ProductResponse](t, body)
		require.Len(t, products, 1)
		assert.Equal(t, "Crema Hidratante Premium", products[0].Name)
	})

	t.Run("paging parameters", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products?limit=0", "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `[]`, string(body))

		status, body = doRequest(t, app, http.MethodGet, "/api/products?skip=2&limit=5", "")
		require.Equal(t, http.StatusOK, status)
		assert.Len(t, decode[[]catalogmod.ProductResponse](t, body), 1)

		for _, query := range []string{"skip=abc", "limit=1.5", "skip=1&limit=ten"} {
			status, body = doRequest(t, app, http.MethodGet, "/api/products?"+query, "")
			assert.Equal(t, http.StatusBadRequest, status, query)
			assert.Equal(t, CodeInvalidInput, decode[ErrorResponse](t, body).Error, query)
		}

		status, _ = doRequest(t, app, http.MethodGet, "/api/products/featured/by-criteria?limit=x", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("featured by sales", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products/featured/by-criteria?criteria=sales&limit=2", "")
		require.Equal(t, http.StatusOK, status)
		products := decode[[]catalogmod.ProductResponse](t, body)
		require.Len(t, products, 2)
		assert.Equal(t, "Crema Hidratante Premium", products[0].Name)
		assert.Equal(t, "Sombra Negra Colorida", products[1].Name)
	})

	t.Run("unknown criteria", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/api/products/featured/by-criteria?criteria=newest", "")
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, CodeInvalidInput, decode[ErrorResponse](t, body).Error)
	})

	t.Run("create update delete", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost, "/api/products",
			`{"name":"Rimel Volumen","price":18.5,"category":"Maquillaje","stock":20}`)
		require.Equal(t, http.StatusCreated, status)
		created := decode[catalogmod.ProductResponse](t, body)
		assert.Equal(t, 4.5, created.Rating)

		status, body = doRequest(t, app, http.MethodPut, "/api/products/"+itoa(created.ID),
			`{"name":"Rimel Volumen XL","price":21,"stock":5,"rating":4.1}`)
		require.Equal(t, http.StatusOK, status)
		updated := decode[catalogmod.ProductResponse](t, body)
		assert.Equal(t, "Rimel Volumen XL", updated.Name)
		assert.Equal(t, "", updated.Category)

		status, _ = doRequest(t, app, http.MethodDelete, "/api/products/"+itoa(created.ID), "")
		assert.Equal(t, http.StatusOK, status)

		status, body = doRequest(t, app, http.MethodGet, "/api/products/"+itoa(created.ID), "")
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, CodeNotFound, decode[ErrorResponse](t, body).Error)
	})

	t.Run("bad input", func(t *testing.T) {
		tests := []struct {
			name, method, path, body string
			wantStatus              int
		}{
			{"non numeric id", http.MethodGet, "/api/products/abc", "", http.StatusBadRequest},
			{"malformed body", http.MethodPost, "/api/products", `{"name":`, http.StatusBadRequest},
			{"missing name", http.MethodPost, "/api/products", `{"price":3}`, http.StatusBadRequest},
			{"rating above five", http.MethodPost, "/api/products", `{"name":"x","rating":7}`, http.StatusBadRequest},
			{"update missing product", http.MethodPut, "/api/products/9999", `{"name":"x"}`, http.StatusNotFound},
			{"delete missing product", http.MethodDelete, "/api/products/9999", "", http.StatusNotFound},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				status, _ := doRequest(t, app, tt.method, tt.path, tt.body)
				assert.Equal(t, tt.wantStatus, status)
			})
		}
	})
}

func TestCartRoutes(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodGet, "/api/cart/user-42", "")
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `[]`, string(mustField(t, body, "items")))

	status, body = doRequest(t, app, http.MethodPost, "/api/cart/user-42/items", `{"product_id":1,"quantity":2}`)
	require.Equal(t, http.StatusOK, status)
	cart := decode[cartmod.CartResponse](t, body)
	require.Len(t, cart.Items, 1)
	assert.InDelta(t, 2*29.99, cart.TotalPrice, 1e-9)

	status, body = doRequest(t, app, http.MethodPost, "/api/cart/user-42/items", `{"product_id":1}`)
	require.Equal(t, http.StatusOK, status)
	cart = decode[cartmod.CartResponse](t, body)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	itemID := itoa(cart.Items[0].ID)

	status, body = doRequest(t, app, http.MethodPost, "/api/cart/user-42/items", `{"product_id":3,"quantity":31}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, CodeInsufficientStock, decode[ErrorResponse](t, body).Error)

	status, _ = doRequest(t, app, http.MethodPost, "/api/cart/user-42/items", `{"product_id":999}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doRequest(t, app, http.MethodPut, "/api/cart/user-42/items/"+itemID, `{"quantity":5}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, decode[cartmod.CartResponse](t, body).Items[0].Quantity)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/cart/other-user/items/"+itemID, "")
	assert.Equal(t, http.StatusNotFound, status)

	status, body = doRequest(t, app, http.MethodDelete, "/api/cart/user-42/items/"+itemID, "")
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decode[cartmod.CartResponse](t, body).Items)

	status, body = doRequest(t, app, http.MethodDelete, "/api/cart/user-42/clear", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Carrito vaciado", decode[MessageResponse](t, body).Message)
}

func TestReviewRoutes(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/reviews?user_id=ana", `{"product_id":2,"rating":1,"comment":"seca"}`)
	require.Equal(t, http.StatusCreated, status)
	first := decode[reviewmod.ReviewResponse](t, body)
	assert.Equal(t, "ana", first.UserID)

	status, body = doRequest(t, app, http.MethodPost, "/api/reviews?user_id=ana", `{"product_id":2,"rating":4,"user_id":"luis"}`)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "luis", decode[reviewmod.ReviewResponse](t, body).UserID)

	_, body = doRequest(t, app, http.MethodGet, "/api/products/2", "")
	assert.Equal(t, 2.5, decode[catalogmod.ProductResponse](t, body).Rating)

	status, body = doRequest(t, app, http.MethodGet, "/api/reviews/product/2", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]reviewmod.ReviewResponse](t, body), 2)

	status, _ = doRequest(t, app, http.MethodPost, "/api/reviews", `{"product_id":2,"rating":6}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doRequest(t, app, http.MethodPost, "/api/reviews", `{"product_id":77,"rating":3}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/reviews/"+itoa(first.ID), "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/reviews/"+itoa(first.ID), "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = doRequest(t, app, http.MethodGet, "/api/reviews/"+itoa(first.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestContactRoutes(t *testing.T) {
	app := setupTestApp(t)

	status, body := doRequest(t, app, http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"ana@example.com","subject":"Envíos","message":"¿Envían a Cali?"}`)
	require.Equal(t, http.StatusCreated, status)
	msg := decode[contactmod.MessageResponse](t, body)

	status, body = doRequest(t, app, http.MethodPost, "/api/contact",
		`{"name":"Ana","email":"ana@example.com","subject":"   ","message":"hola"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, CodeInvalidInput, decode[ErrorResponse](t, body).Error)

	status, body = doRequest(t, app, http.MethodGet, "/api/contact", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decode[[]contactmod.MessageResponse](t, body), 1)

	status, _ = doRequest(t, app, http.MethodGet, "/api/contact/"+itoa(msg.ID), "")
	assert.Equal(t, http.StatusOK, status)

	status, body = doRequest(t, app, http.MethodDelete, "/api/contact/"+itoa(msg.ID), "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Mensaje eliminado", decode[MessageResponse](t, body).Message)

	status, _ = doRequest(t, app, http.MethodDelete, "/api/contact/"+itoa(msg.ID), "")
	assert.Equal(t, http.StatusNotFound, status)
}

type failingCatalog struct {
	catalogmod.CatalogPort
}

func (failingCatalog) List(context.Context, catalogmod.ListProductsRequest) ([]catalogmod.ProductResponse, error) {
	return nil, errors.New("connection reset")
}

type staticHealth struct {
	status mono.HealthStatus
}

func (s staticHealth) Name() string                            { return "static" }
func (s staticHealth) Start(context.Context) error             { return nil }
func (s staticHealth) Stop(context.Context) error              { return nil }
func (s staticHealth) Health(context.Context) mono.HealthStatus { return s.status }

func TestInternalErrorsAreNotLeaked(t *testing.T) {
	log := storetest.Logger()
	app := NewApp(Config{}, NewHandlers(Ports{Catalog: failingCatalog{}}, nil, log), log)

	status, body := doRequest(t, app, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	resp := decode[ErrorResponse](t, body)
	assert.Equal(t, CodeInternal, resp.Error)
	assert.NotContains(t, resp.Message, "connection reset")

	status, body = doRequest(t, app, http.MethodGet, "/no/such/route", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, CodeNotFound, decode[ErrorResponse](t, body).Error)
}

func TestModulesHealth(t *testing.T) {
	log := storetest.Logger()
	health := map[string]mono.HealthCheckableModule{
		"database": staticHealth{mono.HealthStatus{Healthy: true, Message: "operational"}},
		"catalog":  staticHealth{mono.HealthStatus{Healthy: false, Message: "not started"}},
	}
	app := NewApp(Config{}, NewHandlers(Ports{}, health, log), log)

	status, body := doRequest(t, app, http.MethodGet, "/health/modules", "")
	assert.Equal(t, http.StatusServiceUnavailable, status)
	resp := decode[ModulesHealthResponse](t, body)
	assert.Equal(t, "degraded", resp.Status)
	assert.True(t, resp.Modules["database"].Healthy)
	assert.Equal(t, "not started", resp.Modules["catalog"].Message)
}

func TestModuleStartRequiresProviders(t *testing.T) {
	m := NewModule(Config{Port: 0}, Providers{}, storetest.Logger())
	assert.Equal(t, "api", m.Name())
	assert.ElementsMatch(t, []string{"catalog", "cart", "review", "contact", "notification"}, m.Dependencies())
	assert.Error(t, m.Start(context.Background()))
	assert.False(t, m.Health(context.Background()).Healthy)
	assert.NoError(t, m.Stop(context.Background()))

	m = NewModule(Config{}, Providers{
		Catalog: catalogmod.NewModule(false, storetest.Logger()),
		Cart:    cartmod.NewModule(storetest.Logger()),
		Review:  reviewmod.NewModule(storetest.Logger()),
		Contact: contactmod.NewModule(storetest.Logger()),
	}, storetest.Logger())
	err := m.Start(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")
}

func mustField(t *testing.T, data []byte, field string) json.RawMessage {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &m))
	return m[field]
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
