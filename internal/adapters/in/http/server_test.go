package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	httpadapter "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/memory"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRand struct{}

func (stubRand) Float64() float64 { return 0.0 }
func (stubRand) IntN(_ int) int   { return 0 }

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.NewOrderStore()
	catalogLookup, err := memory.NewCatalog()
	require.NoError(t, err)
	users := memory.NewUserDirectory()

	createHandler := commands.NewCreateOrderCommandHandler(store, catalogLookup, users, stubRand{})
	cancelHandler := commands.NewCancelOrderCommandHandler(store)
	registerHandler := commands.NewRegisterUserCommandHandler(users)
	getOrdersHandler := queries.NewGetOrdersQueryHandler(store)
	getOrderHandler := queries.NewGetOrderQueryHandler(store)

	server := httpadapter.NewServer(
		createHandler,
		cancelHandler,
		registerHandler,
		getOrdersHandler,
		getOrderHandler,
		catalogLookup,
		"https://example.test/register",
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func placeOrder(t *testing.T, e *echo.Echo, userID string) httpadapter.OrderResponse {
	t.Helper()

	rec := doJSON(e, http.MethodPost, "/api/orders",
		`{"userId":"`+userID+`","nickname":"friday","items":[{"pizzaId":"pepperoni","quantity":2,"extraToppingIds":["extra-mozzarella"]}]}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created httpadapter.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	return created
}

func TestCreateOrderRoute(t *testing.T) {
	t.Run("should place an order and return the stored record", func(t *testing.T) {
		e := newTestServer(t)

		created := placeOrder(t, e, "user-1")

		assert.NotEmpty(t, created.ID)
		assert.Empty(t, created.UserID)
		assert.Equal(t, "pending", created.Status)
		assert.Equal(t, "friday", created.Nickname)
		// (10.00 + 1.50) * 2
		assert.InDelta(t, 23.0, created.TotalPrice, 0.001)
	})

	t.Run("should reject an order without user", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/api/orders",
			`{"items":[{"pizzaId":"margherita","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown pizza", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/api/orders",
			`{"userId":"user-1","items":[{"pizzaId":"calzone","quantity":1}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown topping", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/api/orders",
			`{"userId":"user-1","items":[{"pizzaId":"margherita","quantity":1,"extraToppingIds":["pineapple-gold"]}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an oversized order", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodPost, "/api/orders",
			`{"userId":"user-1","items":[{"pizzaId":"margherita","quantity":51}]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should throttle a sixth active order", func(t *testing.T) {
		e := newTestServer(t)
		for i := 0; i < 5; i++ {
			placeOrder(t, e, "user-1")
		}

		rec := doJSON(e, http.MethodPost, "/api/orders",
			`{"userId":"user-1","items":[{"pizzaId":"margherita","quantity":1}]}`)

		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	})
}

func TestGetOrderRoutes(t *testing.T) {
	t.Run("should fetch a placed order without its owner", func(t *testing.T) {
		e := newTestServer(t)
		created := placeOrder(t, e, "user-1")

		rec := doJSON(e, http.MethodGet, "/api/orders/"+created.ID, "")

		require.Equal(t, http.StatusOK, rec.Code)
		var found httpadapter.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
		assert.Equal(t, created.ID, found.ID)
		assert.Empty(t, found.UserID)
	})

	t.Run("should report a missing order", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodGet, "/api/orders/999", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should filter the order list", func(t *testing.T) {
		e := newTestServer(t)
		placeOrder(t, e, "user-1")
		placeOrder(t, e, "user-2")

		rec := doJSON(e, http.MethodGet, "/api/orders?userId=user-1&status=pending&last=60m", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var orders []httpadapter.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
		assert.Len(t, orders, 1)
	})

	t.Run("should reject a malformed window expression", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodGet, "/api/orders?last=90x", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should reject an unknown status filter", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodGet, "/api/orders?status=delivered", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCancelOrderRoute(t *testing.T) {
	t.Run("should cancel an own pending order", func(t *testing.T) {
		e := newTestServer(t)
		created := placeOrder(t, e, "user-1")

		rec := doJSON(e, http.MethodDelete, "/api/orders/"+created.ID+"?userId=user-1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var cancelled httpadapter.OrderResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cancelled))
		assert.Equal(t, "cancelled", cancelled.Status)
	})

	t.Run("should refuse to cancel a foreign order", func(t *testing.T) {
		e := newTestServer(t)
		created := placeOrder(t, e, "user-1")

		rec := doJSON(e, http.MethodDelete, "/api/orders/"+created.ID+"?userId=user-2", "")

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("should require the requester", func(t *testing.T) {
		e := newTestServer(t)
		created := placeOrder(t, e, "user-1")

		rec := doJSON(e, http.MethodDelete, "/api/orders/"+created.ID, "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("should report a missing order", func(t *testing.T) {
		e := newTestServer(t)

		rec := doJSON(e, http.MethodDelete, "/api/orders/999?userId=user-1", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCatalogRoutes(t *testing.T) {
	e := newTestServer(t)

	t.Run("should serve the pizza menu", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/pizzas", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "margherita")
	})

	t.Run("should serve a single pizza", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/pizzas/margherita", "")

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("should report an unknown pizza", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/pizzas/calzone", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("should filter toppings by category", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/toppings?category=cheese", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "extra-mozzarella")
	})

	t.Run("should serve an empty list for a category without toppings", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/toppings?category=fruit", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "[]\n", rec.Body.String())
	})

	t.Run("should list topping categories", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/toppings/categories", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "cheese")
	})
}

func TestAccessTokenRoute(t *testing.T) {
	e := newTestServer(t)

	t.Run("should require the identity hash", func(t *testing.T) {
		rec := doJSON(e, http.MethodGet, "/api/me/access-token", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("should mint a stable token per identity", func(t *testing.T) {
		request := func() string {
			req := httptest.NewRequest(http.MethodGet, "/api/me/access-token", nil)
			req.Header.Set("X-Identity-Hash", "abc123")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			require.Equal(t, http.StatusOK, rec.Code)

			var response httpadapter.AccessTokenResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			return response.AccessToken
		}

		first := request()
		second := request()

		assert.NotEmpty(t, first)
		assert.Equal(t, first, second)
	})
}

func TestHealthRoute(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
