package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"picko/internal/domain"
)

// Fixed identifiers keep the demo data stable across runs.
var (
	seedOrder1ID = uuid.MustParse("5f9c0a2e-1d3b-4c6f-8a7e-9b0d1c2e3f40")
	seedOrder2ID = uuid.MustParse("7a1b2c3d-4e5f-4a6b-8c7d-0e1f2a3b4c5d")
	seedOrder3ID = uuid.MustParse("9d8c7b6a-5e4f-4d3c-8b2a-1f0e9d8c7b6a")
	seedOrder4ID = uuid.MustParse("2b3c4d5e-6f7a-4b8c-9d0e-1a2b3c4d5e6f")
)

// SeedOrders is the deterministic demo set used on first run and on
// reset-to-seed: one freshly created order, one out for delivery, one
// delivered and one canceled. Timestamps are offsets from now.
func SeedOrders(now time.Time) []domain.Order {
	margarita, _ := domain.CatalogPizza(domain.PizzaMargarita)
	margarita.Size = domain.SizeMedium
	classic, _ := domain.CatalogPizza(domain.PizzaClassic)
	classic.Size = domain.SizeLarge
	seafood, _ := domain.CatalogPizza(domain.PizzaSeafood)
	vegetarian, _ := domain.CatalogPizza(domain.PizzaVegetarian)

	corn, _ := domain.CatalogTopping("corn")
	egg, _ := domain.CatalogTopping("egg")
	artichoke, _ := domain.CatalogTopping("artichoke")

	return []domain.Order{
		{
			ID:              seedOrder1ID,
			CustomerName:    "Janez Novak",
			DeliveryAddress: "Prešernova cesta 13, Ljubljana",
			PhoneNumber:     "040 123 456",
			PaymentMethod:   domain.PaymentCard,
			CreditCard: &domain.CreditCard{
				Number:     "1234-1234-1234-1234",
				Expiration: "12/26",
				CVV:        "031",
			},
			Items: []domain.OrderItem{
				{
					ID:              uuid.MustParse("aa11bb22-cc33-4d44-8e55-ff6677889900"),
					Pizza:           margarita,
					RemovedToppings: []domain.Topping{{Name: "tomato", Price: decimal.Zero}},
					AddedToppings:   []domain.Topping{corn, egg},
					Quantity:        1,
					StudentDiscount: true,
				},
				{
					ID:            uuid.MustParse("bb22cc33-dd44-4e55-8f66-007788990011"),
					Pizza:         classic,
					AddedToppings: []domain.Topping{egg, artichoke},
					Quantity:      2,
				},
			},
			Statuses: []domain.Status{
				{Name: domain.StatusCreated, CreatedAt: now.Add(-10 * time.Minute)},
			},
			CreatedAt: now.Add(-10 * time.Minute),
			Note:      "Brez čebule, prosim.",
		},
		{
			ID:              seedOrder2ID,
			CustomerName:    "Ana Kovač",
			DeliveryAddress: "Slovenska cesta 5, Ljubljana",
			PhoneNumber:     "031 555 123",
			PaymentMethod:   domain.PaymentCash,
			Items: []domain.OrderItem{
				{
					ID:       uuid.MustParse("cc33dd44-ee55-4f66-8a77-118899001122"),
					Pizza:    seafood,
					Quantity: 1,
				},
			},
			Statuses: []domain.Status{
				{Name: domain.StatusCreated, CreatedAt: now.Add(-35 * time.Minute)},
				{Name: domain.StatusPreparation, CreatedAt: now.Add(-30 * time.Minute)},
				{Name: domain.StatusPrepared, CreatedAt: now.Add(-15 * time.Minute)},
				{Name: domain.StatusDelivery, CreatedAt: now.Add(-10 * time.Minute)},
			},
			CreatedAt: now.Add(-35 * time.Minute),
		},
		{
			ID:              seedOrder3ID,
			CustomerName:    "Peter Zupan",
			DeliveryAddress: "Trubarjeva ulica 22, Maribor",
			PaymentMethod:   domain.PaymentCash,
			Items: []domain.OrderItem{
				{
					ID:              uuid.MustParse("dd44ee55-ff66-4a77-8b88-229900112233"),
					Pizza:           vegetarian,
					Quantity:        2,
					StudentDiscount: true,
				},
			},
			Statuses: []domain.Status{
				{Name: domain.StatusCreated, CreatedAt: now.Add(-2 * time.Hour)},
				{Name: domain.StatusPreparation, CreatedAt: now.Add(-115 * time.Minute)},
				{Name: domain.StatusPrepared, CreatedAt: now.Add(-95 * time.Minute)},
				{Name: domain.StatusDelivery, CreatedAt: now.Add(-90 * time.Minute)},
				{Name: domain.StatusDelivered, CreatedAt: now.Add(-70 * time.Minute)},
			},
			CreatedAt: now.Add(-2 * time.Hour),
		},
		{
			ID:              seedOrder4ID,
			CustomerName:    "Maja Horvat",
			DeliveryAddress: "Cankarjeva ulica 8, Kranj",
			PhoneNumber:     "070 987 654",
			PaymentMethod:   domain.PaymentCash,
			Items: []domain.OrderItem{
				{
					ID:       uuid.MustParse("ee55ff66-0077-4b88-8c99-330011223344"),
					Pizza:    margarita,
					Quantity: 3,
				},
			},
			Statuses: []domain.Status{
				{Name: domain.StatusCreated, CreatedAt: now.Add(-50 * time.Minute)},
				{Name: domain.StatusCanceled, CreatedAt: now.Add(-45 * time.Minute)},
			},
			CreatedAt: now.Add(-50 * time.Minute),
		},
	}
}
