package http

import (
	"time"

	"pizzeria/internal/core/domain/model/order"
)

// ErrorResponse is the uniform error body returned by every handler.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemResponse is the wire shape of a single order line.
type OrderItemResponse struct {
	PizzaID         string   `json:"pizzaId"`
	Quantity        int      `json:"quantity"`
	ExtraToppingIDs []string `json:"extraToppingIds,omitempty"`
}

// OrderResponse is the wire shape of an order record. UserID is omitted on
// public read paths; the store strips it before the order reaches this layer.
type OrderResponse struct {
	ID                    string              `json:"id"`
	UserID                string              `json:"userId,omitempty"`
	Nickname              string              `json:"nickname,omitempty"`
	Items                 []OrderItemResponse `json:"items"`
	Status                string              `json:"status"`
	CreatedAt             time.Time           `json:"createdAt"`
	EstimatedCompletionAt time.Time           `json:"estimatedCompletionAt"`
	ReadyAt               *time.Time          `json:"readyAt,omitempty"`
	CompletedAt           *time.Time          `json:"completedAt,omitempty"`
	TotalPrice            float64             `json:"totalPrice"`
}

// CreateOrderRequest is the body of POST /api/orders.
type CreateOrderRequest struct {
	UserID   string              `json:"userId"`
	Nickname string              `json:"nickname"`
	Items    []CreateItemRequest `json:"items"`
}

// CreateItemRequest is one requested order line.
type CreateItemRequest struct {
	PizzaID         string   `json:"pizzaId"`
	Quantity        int      `json:"quantity"`
	ExtraToppingIDs []string `json:"extraToppingIds,omitempty"`
}

// AccessTokenResponse is the body of GET /api/me/access-token.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemResponse{
			PizzaID:         item.PizzaID(),
			Quantity:        item.Quantity(),
			ExtraToppingIDs: item.ExtraToppingIDs(),
		})
	}

	return OrderResponse{
		ID:                    o.ID(),
		UserID:                o.UserID(),
		Nickname:              o.Nickname(),
		Items:                 items,
		Status:                o.Status().String(),
		CreatedAt:             o.CreatedAt(),
		EstimatedCompletionAt: o.EstimatedCompletionAt(),
		ReadyAt:               o.ReadyAt(),
		CompletedAt:           o.CompletedAt(),
		TotalPrice:            o.TotalPrice(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	responses := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, toOrderResponse(o))
	}
	return responses
}
