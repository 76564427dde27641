package http

import (
	"errors"
	"net/http"
	"strings"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/ports"

	"github.com/labstack/echo/v4"
)

// identityHashHeader carries the customer identity hash computed by the
// authentication layer in front of this service.
const identityHashHeader = "X-Identity-Hash"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	cancelOrderHandler  commands.CancelOrderCommandHandler
	registerUserHandler commands.RegisterUserCommandHandler

	// Query handlers
	getOrdersHandler queries.GetOrdersQueryHandler
	getOrderHandler  queries.GetOrderQueryHandler

	// Menu reference data is served straight from the lookup port.
	catalog ports.CatalogLookup

	// registrationURL points unregistered customers at the signup page.
	registrationURL string
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	registerUserHandler commands.RegisterUserCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	catalogLookup ports.CatalogLookup,
	registrationURL string,
) *Server {
	return &Server{
		createOrderHandler:  createOrderHandler,
		cancelOrderHandler:  cancelOrderHandler,
		registerUserHandler: registerUserHandler,
		getOrdersHandler:    getOrdersHandler,
		getOrderHandler:     getOrderHandler,
		catalog:             catalogLookup,
		registrationURL:     registrationURL,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.DELETE("/orders/:id", s.CancelOrder)

	api.GET("/pizzas", s.GetPizzas)
	api.GET("/pizzas/:id", s.GetPizza)
	api.GET("/toppings", s.GetToppings)
	api.GET("/toppings/categories", s.GetToppingCategories)
	api.GET("/toppings/:id", s.GetTopping)

	api.GET("/me/access-token", s.GetAccessToken)

	e.GET("/health", s.GetHealth)
}

// CreateOrder handles POST /api/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	items := make([]commands.ItemRequest, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, commands.ItemRequest{
			PizzaID:         item.PizzaID,
			Quantity:        item.Quantity,
			ExtraToppingIDs: item.ExtraToppingIDs,
		})
	}

	cmd, err := commands.NewCreateOrderCommand(request.UserID, request.Nickname, items)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.createOrderError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

func (s *Server) createOrderError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrUserNotRegistered):
		return errorJSON(ctx, http.StatusUnauthorized,
			"userId is not registered, please register at "+s.registrationURL)
	case errors.Is(err, commands.ErrTooManyActiveOrders):
		return errorJSON(ctx, http.StatusTooManyRequests, err.Error())
	case errors.Is(err, commands.ErrPizzaNotFound),
		errors.Is(err, commands.ErrToppingNotFound),
		errors.Is(err, commands.ErrOrderHasNoItems),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrOrderTooLarge):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to create order")
	}
}

// GetOrders handles GET /api/orders - lists orders with optional filters.
// Supported query parameters: userId, status (comma-separated), last
// (a duration expression such as "60m" or "2h").
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetOrdersQuery()
	query.UserID = ctx.QueryParam("userId")

	if statusCSV := ctx.QueryParam("status"); statusCSV != "" {
		if err := query.ParseStatuses(strings.Split(statusCSV, ",")); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		}
	}

	if last := ctx.QueryParam("last"); last != "" {
		if err := query.ParseSince(last); err != nil {
			return errorJSON(ctx, http.StatusBadRequest, err.Error())
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetOrder handles GET /api/orders/:id - retrieves a single order.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	found, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}
	if found == nil {
		return errorJSON(ctx, http.StatusNotFound, "Order not found")
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(found))
}

// CancelOrder handles DELETE /api/orders/:id - cancels a pending order.
// The userId query parameter identifies the requester; only the order owner
// may cancel, and only while the order is still pending.
func (s *Server) CancelOrder(ctx echo.Context) error {
	cmd, err := commands.NewCancelOrderCommand(ctx.Param("id"), ctx.QueryParam("userId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	}

	cancelled, err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNotOrderOwner):
			return errorJSON(ctx, http.StatusForbidden, err.Error())
		case errors.Is(err, commands.ErrOrderNotFound):
			return errorJSON(ctx, http.StatusNotFound, err.Error())
		default:
			return errorJSON(ctx, http.StatusInternalServerError, "Failed to cancel order")
		}
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(cancelled))
}

// GetPizzas handles GET /api/pizzas - returns the pizza menu.
func (s *Server) GetPizzas(ctx echo.Context) error {
	pizzas, err := s.catalog.Pizzas(ctx.Request().Context())
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve pizzas")
	}

	return ctx.JSON(http.StatusOK, pizzas)
}

// GetPizza handles GET /api/pizzas/:id - returns a single menu entry.
func (s *Server) GetPizza(ctx echo.Context) error {
	pizza, err := s.catalog.Pizza(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve pizza")
	}
	if pizza == nil {
		return errorJSON(ctx, http.StatusNotFound, "Pizza not found")
	}

	return ctx.JSON(http.StatusOK, pizza)
}

// GetToppings handles GET /api/toppings - returns toppings, optionally
// filtered by the category query parameter.
func (s *Server) GetToppings(ctx echo.Context) error {
	category := catalog.ToppingCategory(ctx.QueryParam("category"))

	toppings, err := s.catalog.Toppings(ctx.Request().Context(), category)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve toppings")
	}

	return ctx.JSON(http.StatusOK, toppings)
}

// GetTopping handles GET /api/toppings/:id - returns a single topping.
func (s *Server) GetTopping(ctx echo.Context) error {
	topping, err := s.catalog.Topping(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to retrieve topping")
	}
	if topping == nil {
		return errorJSON(ctx, http.StatusNotFound, "Topping not found")
	}

	return ctx.JSON(http.StatusOK, topping)
}

// GetToppingCategories handles GET /api/toppings/categories.
func (s *Server) GetToppingCategories(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, catalog.Categories())
}

// GetAccessToken handles GET /api/me/access-token - returns the access token
// for the customer identified by the identity hash header, registering the
// customer on first contact.
func (s *Server) GetAccessToken(ctx echo.Context) error {
	cmd, err := commands.NewRegisterUserCommand(ctx.Request().Header.Get(identityHashHeader))
	if err != nil {
		return errorJSON(ctx, http.StatusUnauthorized, "Missing identity hash")
	}

	token, err := s.registerUserHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorJSON(ctx, http.StatusInternalServerError, "Failed to issue access token")
	}

	return ctx.JSON(http.StatusOK, AccessTokenResponse{AccessToken: token})
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
