package catalog

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"picko/internal/domain"
)

// Controller serves the static menu. The catalog is immutable, so there is
// no service or repository behind it.
type Controller struct {
	logger *zap.Logger
}

func NewController(logger *zap.Logger) *Controller {
	return &Controller{logger: logger}
}

type PizzaDTO struct {
	Name            string          `json:"name"`
	DisplayName     string          `json:"displayName"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	DefaultSize     string          `json:"defaultSize"`
	DefaultToppings []ToppingDTO    `json:"defaultToppings"`
}

type ToppingDTO struct {
	Name        string          `json:"name"`
	DisplayName string          `json:"displayName"`
	Price       decimal.Decimal `json:"price"`
}

func (c *Controller) HandleListPizzas(w http.ResponseWriter, r *http.Request) {
	pizzas := domain.Pizzas()
	out := make([]PizzaDTO, len(pizzas))
	for i, p := range pizzas {
		out[i] = PizzaDTO{
			Name:            string(p.Name),
			DisplayName:     domain.PizzaDisplayName(p.Name),
			BasePrice:       p.BasePrice,
			DefaultSize:     string(p.Size),
			DefaultToppings: toToppingDTOs(p.DefaultToppings),
		}
	}
	c.writeJSON(w, out)
}

func (c *Controller) HandleListToppings(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, toToppingDTOs(domain.AddableToppings()))
}

func toToppingDTOs(toppings []domain.Topping) []ToppingDTO {
	out := make([]ToppingDTO, len(toppings))
	for i, t := range toppings {
		out[i] = ToppingDTO{
			Name:        t.Name,
			DisplayName: domain.ToppingDisplayName(t),
			Price:       t.Price,
		}
	}
	return out
}

func (c *Controller) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
