package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"picko/internal/domain"
)

func catalogItem(t *testing.T, name domain.PizzaType, size domain.Size, quantity int) domain.OrderItem {
	t.Helper()

	pizza, ok := domain.CatalogPizza(name)
	require.True(t, ok)
	pizza.Size = size

	return domain.OrderItem{
		Pizza:    pizza,
		Quantity: quantity,
	}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"expected %s, got %s", expected, actual)
}

func TestItemPizzaPrice(t *testing.T) {
	item := catalogItem(t, domain.PizzaMargarita, domain.SizeSmall, 1)
	assertDecimal(t, "10", ItemPizzaPrice(&item))

	item.Pizza.Size = domain.SizeMedium
	assertDecimal(t, "12", ItemPizzaPrice(&item))

	item.Pizza.Size = domain.SizeLarge
	item.Quantity = 3
	assertDecimal(t, "42", ItemPizzaPrice(&item))
}

func TestItemPizzaPrice_NilItem(t *testing.T) {
	assertDecimal(t, "0", ItemPizzaPrice(nil))
}

func TestItemToppingsPrice(t *testing.T) {
	item := catalogItem(t, domain.PizzaClassic, domain.SizeSmall, 2)
	prosciutto, ok := domain.CatalogTopping("prosciutto")
	require.True(t, ok)
	artichoke, ok := domain.CatalogTopping("artichoke")
	require.True(t, ok)
	item.AddedToppings = []domain.Topping{prosciutto, artichoke}

	// 2 x (3 + 1.5)
	assertDecimal(t, "9", ItemToppingsPrice(&item))
}

func TestItemToppingsPrice_RemovedToppingsAreFree(t *testing.T) {
	item := catalogItem(t, domain.PizzaClassic, domain.SizeSmall, 1)
	item.RemovedToppings = []domain.Topping{
		{Name: "ham", Price: decimal.Zero},
		{Name: "mushrooms", Price: decimal.Zero},
	}

	// Removing default toppings never subtracts from the price.
	assertDecimal(t, "0", ItemToppingsPrice(&item))
	assertDecimal(t, "11", ItemTotal(&item))
}

func TestItemStudentDiscount(t *testing.T) {
	item := catalogItem(t, domain.PizzaVegetarian, domain.SizeSmall, 2)
	assertDecimal(t, "0", ItemStudentDiscount(&item))

	item.StudentDiscount = true
	assertDecimal(t, "-7.72", ItemStudentDiscount(&item))
}

func TestItemTotal_PlainItemEqualsPizzaPrice(t *testing.T) {
	for _, size := range []domain.Size{domain.SizeSmall, domain.SizeMedium, domain.SizeLarge} {
		for quantity := 1; quantity <= 4; quantity++ {
			item := catalogItem(t, domain.PizzaSeafood, size, quantity)
			assert.True(t, ItemTotal(&item).Equal(ItemPizzaPrice(&item)),
				"size %s quantity %d", size, quantity)
		}
	}
}

func TestItemTotal_Scenario(t *testing.T) {
	// margarita, base 10, medium (+2), quantity 2, student, one 1.5 topping
	item := catalogItem(t, domain.PizzaMargarita, domain.SizeMedium, 2)
	item.StudentDiscount = true
	item.AddedToppings = []domain.Topping{
		{Name: "artichoke", Price: decimal.NewFromFloat(1.5)},
	}

	assertDecimal(t, "24", ItemPizzaPrice(&item))
	assertDecimal(t, "3", ItemToppingsPrice(&item))
	assertDecimal(t, "-7.72", ItemStudentDiscount(&item))
	assertDecimal(t, "19.28", ItemTotal(&item))
}

func TestItemTotal_NilItem(t *testing.T) {
	assertDecimal(t, "0", ItemTotal(nil))
}

func TestOrderStudentDiscountCount_CountsUnitsNotRows(t *testing.T) {
	student := catalogItem(t, domain.PizzaMargarita, domain.SizeSmall, 3)
	student.StudentDiscount = true
	regular := catalogItem(t, domain.PizzaClassic, domain.SizeSmall, 5)

	order := domain.Order{Items: []domain.OrderItem{student, regular}}

	assert.Equal(t, 3, OrderStudentDiscountCount(&order))
	assertDecimal(t, "-11.58", OrderStudentDiscount(&order))
}

func TestOrderStudentDiscountCount_NilOrder(t *testing.T) {
	assert.Equal(t, 0, OrderStudentDiscountCount(nil))
}

func TestOrderTotal(t *testing.T) {
	first := catalogItem(t, domain.PizzaMargarita, domain.SizeMedium, 2)
	first.StudentDiscount = true
	first.AddedToppings = []domain.Topping{
		{Name: "artichoke", Price: decimal.NewFromFloat(1.5)},
	}
	second := catalogItem(t, domain.PizzaSeafood, domain.SizeSmall, 1)

	order := domain.Order{Items: []domain.OrderItem{first, second}}

	// 24 + 3 + 14 - 7.72
	assertDecimal(t, "33.28", OrderTotal(&order))
}

func TestOrderTotal_MatchesComponentSum(t *testing.T) {
	first := catalogItem(t, domain.PizzaCountry, domain.SizeLarge, 2)
	first.StudentDiscount = true
	second := catalogItem(t, domain.PizzaKarst, domain.SizeMedium, 1)
	second.AddedToppings = []domain.Topping{
		{Name: "prosciutto", Price: decimal.NewFromInt(3)},
	}

	order := domain.Order{Items: []domain.OrderItem{first, second}}

	expected := ItemPizzaPrice(&first).
		Add(ItemToppingsPrice(&first)).
		Add(ItemPizzaPrice(&second)).
		Add(ItemToppingsPrice(&second)).
		Add(OrderStudentDiscount(&order)).
		Round(2)

	assert.True(t, OrderTotal(&order).Equal(expected))
}

func TestOrderTotal_NilOrder(t *testing.T) {
	assertDecimal(t, "0", OrderTotal(nil))
}

func TestSizeSurcharge(t *testing.T) {
	assertDecimal(t, "0", SizeSurcharge(domain.SizeSmall))
	assertDecimal(t, "2", SizeSurcharge(domain.SizeMedium))
	assertDecimal(t, "4", SizeSurcharge(domain.SizeLarge))
}
