package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"picko/internal/domain"
	"picko/internal/pricing"
)

// OrderResponse decorates a stored order with the derived values the shell
// renders: totals, discount count, lifecycle flags and delivery estimates.
type OrderResponse struct {
	domain.Order
	Total                    decimal.Decimal `json:"total"`
	StudentDiscount          decimal.Decimal `json:"studentDiscount"`
	StudentDiscountCount     int             `json:"studentDiscountCount"`
	ItemPricing              []ItemPricing   `json:"itemPricing"`
	Finished                 bool            `json:"finished"`
	Cancelable               bool            `json:"cancelable"`
	EstimatedDeliveryMinutes int             `json:"estimatedDeliveryMinutes"`
	EstimatedDeliveryAt      *time.Time      `json:"estimatedDeliveryAt,omitempty"`
}

type ItemPricing struct {
	ItemID        uuid.UUID       `json:"itemId"`
	PizzaPrice    decimal.Decimal `json:"pizzaPrice"`
	ToppingsPrice decimal.Decimal `json:"toppingsPrice"`
	Discount      decimal.Decimal `json:"discount"`
	Total         decimal.Decimal `json:"total"`
}

func NewOrderResponse(order domain.Order) OrderResponse {
	itemPricing := make([]ItemPricing, len(order.Items))
	for i := range order.Items {
		item := &order.Items[i]
		itemPricing[i] = ItemPricing{
			ItemID:        item.ID,
			PizzaPrice:    pricing.ItemPizzaPrice(item),
			ToppingsPrice: pricing.ItemToppingsPrice(item),
			Discount:      pricing.ItemStudentDiscount(item),
			Total:         pricing.ItemTotal(item),
		}
	}

	resp := OrderResponse{
		Order:                    order,
		Total:                    pricing.OrderTotal(&order),
		StudentDiscount:          pricing.OrderStudentDiscount(&order),
		StudentDiscountCount:     pricing.OrderStudentDiscountCount(&order),
		ItemPricing:              itemPricing,
		Finished:                 order.IsFinished(),
		Cancelable:               order.IsCancelable(),
		EstimatedDeliveryMinutes: order.EstimatedDeliveryMinutes(),
	}
	if at, ok := order.EstimatedDeliveryAt(); ok {
		resp.EstimatedDeliveryAt = &at
	}
	return resp
}

func NewOrderResponses(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, len(orders))
	for i, o := range orders {
		out[i] = NewOrderResponse(o)
	}
	return out
}
