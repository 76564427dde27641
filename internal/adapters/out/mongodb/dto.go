// Package mongodb implements the outbound ports against a remote document
// database. Orders are stored one document per order with the order id as
// the document key, mirroring a one-partition-per-order layout.
package mongodb

import (
	"time"

	"pizzeria/internal/core/domain/model/catalog"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// orderDTO is the document representation of an order.
type orderDTO struct {
	ID                    string         `bson:"_id"`
	UserID                string         `bson:"userId"`
	Nickname              string         `bson:"nickname,omitempty"`
	Items                 []orderItemDTO `bson:"items"`
	Status                string         `bson:"status"`
	CreatedAt             time.Time      `bson:"createdAt"`
	EstimatedCompletionAt time.Time      `bson:"estimatedCompletionAt"`
	ReadyAt               *time.Time     `bson:"readyAt,omitempty"`
	CompletedAt           *time.Time     `bson:"completedAt,omitempty"`
	TotalPrice            float64        `bson:"totalPrice"`
}

// orderItemDTO is one order line inside an order document.
type orderItemDTO struct {
	PizzaID         string   `bson:"pizzaId"`
	Quantity        int      `bson:"quantity"`
	ExtraToppingIDs []string `bson:"extraToppingIds,omitempty"`
}

// fromDomain converts an order aggregate to its document representation.
func fromDomain(o *order.Order) orderDTO {
	items := make([]orderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, orderItemDTO{
			PizzaID:         item.PizzaID(),
			Quantity:        item.Quantity(),
			ExtraToppingIDs: item.ExtraToppingIDs(),
		})
	}

	return orderDTO{
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

// toDomain reconstructs an order aggregate from its document representation.
func toDomain(dto orderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.PizzaID, itemDTO.Quantity, itemDTO.ExtraToppingIDs)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		dto.ID,
		dto.UserID,
		dto.Nickname,
		items,
		status,
		dto.TotalPrice,
		dto.CreatedAt,
		dto.EstimatedCompletionAt,
		dto.ReadyAt,
		dto.CompletedAt,
	)
}

// applyPatch blindly merges a patch into the document: the patch status
// replaces the current one, timestamps overwrite when provided, and a
// completion without a timestamp gets the current time.
func applyPatch(dto orderDTO, patch ports.OrderPatch, now time.Time) orderDTO {
	if patch.Status != order.Unknown {
		dto.Status = patch.Status.String()
	}
	if patch.ReadyAt != nil {
		dto.ReadyAt = patch.ReadyAt
	}
	if patch.CompletedAt != nil {
		dto.CompletedAt = patch.CompletedAt
	}
	if dto.Status == order.Completed.String() && dto.CompletedAt == nil {
		dto.CompletedAt = &now
	}
	return dto
}

// pizzaDTO is the document representation of a menu pizza.
type pizzaDTO struct {
	ID          string  `bson:"_id"`
	Name        string  `bson:"name"`
	Description string  `bson:"description,omitempty"`
	Price       float64 `bson:"price"`
}

// toppingDTO is the document representation of a menu topping.
type toppingDTO struct {
	ID       string  `bson:"_id"`
	Name     string  `bson:"name"`
	Price    float64 `bson:"price"`
	Category string  `bson:"category"`
}

func pizzaFromDomain(p catalog.Pizza) pizzaDTO {
	return pizzaDTO{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
	}
}

func pizzaToDomain(dto pizzaDTO) catalog.Pizza {
	return catalog.Pizza{
		ID:          dto.ID,
		Name:        dto.Name,
		Description: dto.Description,
		Price:       dto.Price,
	}
}

func toppingFromDomain(t catalog.Topping) toppingDTO {
	return toppingDTO{
		ID:       t.ID,
		Name:     t.Name,
		Price:    t.Price,
		Category: string(t.Category),
	}
}

func toppingToDomain(dto toppingDTO) catalog.Topping {
	return catalog.Topping{
		ID:       dto.ID,
		Name:     dto.Name,
		Price:    dto.Price,
		Category: catalog.ToppingCategory(dto.Category),
	}
}

// userDTO is the document representation of a registered user.
type userDTO struct {
	Hash        string    `bson:"hash"`
	AccessToken string    `bson:"accessToken"`
	CreatedAt   time.Time `bson:"createdAt"`
}

func userToDomain(dto userDTO) ports.User {
	return ports.User{
		Hash:        dto.Hash,
		AccessToken: dto.AccessToken,
		CreatedAt:   dto.CreatedAt,
	}
}
