package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type PizzaType string

const (
	PizzaMargarita  PizzaType = "margarita"
	PizzaClassic    PizzaType = "classic"
	PizzaVegetarian PizzaType = "vegetarian"
	PizzaCountry    PizzaType = "country"
	PizzaKarst      PizzaType = "karst"
	PizzaSeafood    PizzaType = "seafood"
)

type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

var validSizes = map[Size]struct{}{
	SizeSmall:  {},
	SizeMedium: {},
	SizeLarge:  {},
}

func IsValidSize(s Size) bool {
	_, ok := validSizes[s]
	return ok
}

// Topping is either a catalog topping (CustomName empty) or a custom one
// carrying its own price and display name.
type Topping struct {
	Name       string          `json:"name"`
	CustomName string          `json:"customName,omitempty"`
	Price      decimal.Decimal `json:"price"`
}

func (t Topping) IsCustom() bool {
	return t.CustomName != ""
}

// NewCustomTopping slugifies the free-form name and keeps the original
// as the display name.
func NewCustomTopping(name string, price decimal.Decimal) Topping {
	slug := strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(name))), "-")
	return Topping{
		Name:       slug,
		CustomName: strings.TrimSpace(name),
		Price:      price,
	}
}

type Pizza struct {
	Name            PizzaType       `json:"name"`
	BasePrice       decimal.Decimal `json:"basePrice"`
	Size            Size            `json:"size"`
	DefaultToppings []Topping       `json:"defaultToppings"`
}

func (p Pizza) clone() Pizza {
	out := p
	out.DefaultToppings = append([]Topping(nil), p.DefaultToppings...)
	return out
}

// The fixed menu. Default toppings are included in the base price.
var defaultPizzas = []Pizza{
	{
		Name:            PizzaMargarita,
		BasePrice:       decimal.NewFromInt(10),
		Size:            SizeSmall,
		DefaultToppings: includedToppings("cheese", "tomato"),
	},
	{
		Name:            PizzaClassic,
		BasePrice:       decimal.NewFromInt(11),
		Size:            SizeSmall,
		DefaultToppings: includedToppings("cheese", "tomato", "ham", "mushrooms"),
	},
	{
		Name:            PizzaVegetarian,
		BasePrice:       decimal.NewFromInt(9),
		Size:            SizeSmall,
		DefaultToppings: includedToppings("cheese", "tomato", "corn", "egg", "artichoke", "zucchini"),
	},
	{
		Name:            PizzaCountry,
		BasePrice:       decimal.NewFromInt(11),
		Size:            SizeSmall,
		DefaultToppings: includedToppings("cheese", "tomato", "sourCream", "onion", "prosciutto"),
	},
	{
		Name:            PizzaKarst,
		BasePrice:       decimal.NewFromInt(12),
		Size:            SizeSmall,
		DefaultToppings: includedToppings("cheese", "tomato", "prosciutto", "pepper"),
	},
	{
		Name:            PizzaSeafood,
		BasePrice:       decimal.NewFromInt(14),
		Size:            SizeSmall,
		DefaultToppings: includedToppings("cheese", "tomato", "tuna", "onion", "corn"),
	},
}

// Toppings that can be added to any pizza, with their surcharge.
var defaultToppings = []Topping{
	{Name: "corn", Price: decimal.NewFromInt(1)},
	{Name: "egg", Price: decimal.NewFromInt(1)},
	{Name: "artichoke", Price: decimal.NewFromFloat(1.5)},
	{Name: "zucchini", Price: decimal.NewFromFloat(1.5)},
	{Name: "sourCream", Price: decimal.NewFromInt(1)},
	{Name: "onion", Price: decimal.NewFromInt(1)},
	{Name: "prosciutto", Price: decimal.NewFromInt(3)},
	{Name: "pepper", Price: decimal.NewFromInt(1)},
}

func includedToppings(names ...string) []Topping {
	toppings := make([]Topping, len(names))
	for i, name := range names {
		toppings[i] = Topping{Name: name, Price: decimal.Zero}
	}
	return toppings
}

// Pizzas returns a copy of the full menu.
func Pizzas() []Pizza {
	out := make([]Pizza, len(defaultPizzas))
	for i, p := range defaultPizzas {
		out[i] = p.clone()
	}
	return out
}

// CatalogPizza returns a snapshot of the catalog entry, so orders holding it
// are never retroactively affected by catalog changes.
func CatalogPizza(name PizzaType) (Pizza, bool) {
	for _, p := range defaultPizzas {
		if p.Name == name {
			return p.clone(), true
		}
	}
	return Pizza{}, false
}

// AddableToppings returns a copy of the priced topping list.
func AddableToppings() []Topping {
	return append([]Topping(nil), defaultToppings...)
}

func CatalogTopping(name string) (Topping, bool) {
	for _, t := range defaultToppings {
		if t.Name == name {
			return t, true
		}
	}
	return Topping{}, false
}
