// Package pricing computes order totals. All functions are pure: they take
// plain domain records and return money values, with no state and no I/O.
//
// Every aggregate named here is rounded half-up to two decimals on its own
// before entering any further sum. Rounding only the final total can differ
// by a cent, and the per-step behavior is the one order totals were built on.
package pricing

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"picko/internal/domain"
)

// StudentDiscount is the per-unit price delta applied when an item is
// flagged; it applies once per pizza unit, not once per item row.
var StudentDiscount = decimal.NewFromFloat(-3.86)

var sizeSurcharges = map[domain.Size]decimal.Decimal{
	domain.SizeSmall:  decimal.Zero,
	domain.SizeMedium: decimal.NewFromInt(2),
	domain.SizeLarge:  decimal.NewFromInt(4),
}

// SizeSurcharge returns the fixed price delta for a pizza size. Unknown
// sizes carry no surcharge.
func SizeSurcharge(size domain.Size) decimal.Decimal {
	return sizeSurcharges[size]
}

// ItemPizzaPrice is quantity x (base price + size surcharge). A nil item
// prices to zero rather than failing: nothing to price is a valid case.
func ItemPizzaPrice(item *domain.OrderItem) decimal.Decimal {
	if item == nil {
		return decimal.Zero
	}
	unit := item.Pizza.BasePrice.Add(SizeSurcharge(item.Pizza.Size))
	return unit.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
}

// ItemToppingsPrice is quantity x the sum of added-topping prices. Removed
// toppings carry no price delta; removing a default topping is free.
func ItemToppingsPrice(item *domain.OrderItem) decimal.Decimal {
	if item == nil {
		return decimal.Zero
	}
	sum := lo.Reduce(item.AddedToppings, func(acc decimal.Decimal, t domain.Topping, _ int) decimal.Decimal {
		return acc.Add(t.Price)
	}, decimal.Zero)
	return sum.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
}

// ItemStudentDiscount is quantity x StudentDiscount when flagged, zero
// otherwise. The result is negative or zero.
func ItemStudentDiscount(item *domain.OrderItem) decimal.Decimal {
	if item == nil || !item.StudentDiscount {
		return decimal.Zero
	}
	return StudentDiscount.Mul(decimal.NewFromInt(int64(item.Quantity))).Round(2)
}

// ItemTotal sums the three item components.
func ItemTotal(item *domain.OrderItem) decimal.Decimal {
	if item == nil {
		return decimal.Zero
	}
	return ItemPizzaPrice(item).
		Add(ItemToppingsPrice(item)).
		Add(ItemStudentDiscount(item)).
		Round(2)
}

// OrderStudentDiscountCount is the number of discounted pizza units.
func OrderStudentDiscountCount(order *domain.Order) int {
	if order == nil {
		return 0
	}
	return lo.SumBy(order.Items, func(item domain.OrderItem) int {
		if !item.StudentDiscount {
			return 0
		}
		return item.Quantity
	})
}

func OrderStudentDiscount(order *domain.Order) decimal.Decimal {
	count := OrderStudentDiscountCount(order)
	return StudentDiscount.Mul(decimal.NewFromInt(int64(count))).Round(2)
}

// OrderTotal is the sum of per-item pizza and topping prices plus the order
// student discount. A nil order prices to zero.
func OrderTotal(order *domain.Order) decimal.Decimal {
	if order == nil {
		return decimal.Zero
	}

	total := decimal.Zero
	for i := range order.Items {
		total = total.Add(ItemPizzaPrice(&order.Items[i]))
		total = total.Add(ItemToppingsPrice(&order.Items[i]))
	}
	return total.Add(OrderStudentDiscount(order)).Round(2)
}
