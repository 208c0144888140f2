package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Display strings are Slovenian, matching the single supported locale.

func PizzaDisplayName(name PizzaType) string {
	switch name {
	case PizzaMargarita:
		return "Margarita"
	case PizzaClassic:
		return "Klasična"
	case PizzaVegetarian:
		return "Zelenjavna"
	case PizzaCountry:
		return "Kmečka"
	case PizzaKarst:
		return "Kraška"
	case PizzaSeafood:
		return "Morska"
	default:
		return "Margarita"
	}
}

func SizeDisplayName(size Size) string {
	switch size {
	case SizeSmall:
		return "Mala"
	case SizeMedium:
		return "Srednja"
	case SizeLarge:
		return "Velika"
	default:
		return "Mala"
	}
}

func ToppingDisplayName(t Topping) string {
	if t.CustomName != "" {
		return t.CustomName
	}
	switch t.Name {
	case "corn":
		return "Koruza"
	case "egg":
		return "Jajce"
	case "artichoke":
		return "Artičoka"
	case "zucchini":
		return "Bučka"
	case "sourCream":
		return "Kisla smetana"
	case "onion":
		return "Čebula"
	case "prosciutto":
		return "Pršut"
	case "pepper":
		return "Paprika"
	case "cheese":
		return "Sir"
	case "tomato":
		return "Pelati"
	case "ham":
		return "Šunka"
	case "mushrooms":
		return "Gobice"
	case "tuna":
		return "Tuna"
	default:
		return "Neznana sestavina"
	}
}

func StatusDisplayName(status StatusType) string {
	switch status {
	case StatusCreated:
		return "Ustvarjeno"
	case StatusPreparation:
		return "V pripravi"
	case StatusPrepared:
		return "Pripravljeno"
	case StatusDelivery:
		return "V dostavi"
	case StatusDelivered:
		return "Dostavljeno"
	case StatusCanceled:
		return "Preklicano"
	default:
		return "Neznano"
	}
}

// CreditCardNumberDisplay masks all but the last four digits.
func (o Order) CreditCardNumberDisplay() string {
	if o.CreditCard == nil || o.CreditCard.Number == "" {
		return ""
	}
	number := o.CreditCard.Number
	if len(number) < 4 {
		return ""
	}
	return fmt.Sprintf("**** **** **** %s", number[len(number)-4:])
}

// PriceDifferenceDisplay renders a topping surcharge with an explicit sign.
func PriceDifferenceDisplay(price decimal.Decimal) string {
	rounded := price.Round(2)
	if rounded.Sign() >= 0 {
		return "+" + rounded.String()
	}
	return rounded.String()
}
