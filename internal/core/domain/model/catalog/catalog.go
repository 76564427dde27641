// Package catalog contains the read-only menu reference data: pizzas and
// toppings. Catalog entries are owned by an external process and never
// modified by this service, so they are modeled as plain read structs
// rather than guarded aggregates.
package catalog

// ToppingCategory groups toppings for menu presentation and filtering.
type ToppingCategory string

const (
	CategoryCheese    ToppingCategory = "cheese"
	CategoryMeat      ToppingCategory = "meat"
	CategoryVegetable ToppingCategory = "vegetable"
	CategorySauce     ToppingCategory = "sauce"
)

// Categories returns all known topping categories.
func Categories() []ToppingCategory {
	return []ToppingCategory{CategoryCheese, CategoryMeat, CategoryVegetable, CategorySauce}
}

// Pizza is a menu entry a customer can order.
type Pizza struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
}

// Topping is an extra that can be added to any pizza for a surcharge.
type Topping struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Price    float64         `json:"price"`
	Category ToppingCategory `json:"category"`
}
