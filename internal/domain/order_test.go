package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "picko/internal/errors"
)

func validOrder(t *testing.T) Order {
	t.Helper()

	pizza, ok := CatalogPizza(PizzaMargarita)
	require.True(t, ok)

	return Order{
		ID:              uuid.New(),
		CustomerName:    "Janez Novak",
		DeliveryAddress: "Prešernova cesta 13, Ljubljana",
		PhoneNumber:     "040 123 456",
		PaymentMethod:   PaymentCash,
		Items: []OrderItem{
			{
				ID:       uuid.New(),
				Pizza:    pizza,
				Quantity: 1,
			},
		},
		Statuses: []Status{
			{Name: StatusCreated, CreatedAt: time.Now()},
		},
		CreatedAt: time.Now(),
	}
}

func TestOrder_Validate_Valid(t *testing.T) {
	assert.NoError(t, validOrder(t).Validate())
}

func TestOrder_Validate_RequiredFields(t *testing.T) {
	order := validOrder(t)
	order.CustomerName = ""
	order.DeliveryAddress = ""

	err := order.Validate()
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Len(t, ve.Details, 2)
}

func TestOrder_Validate_PhoneFormat(t *testing.T) {
	order := validOrder(t)
	order.PhoneNumber = "0401234567"

	err := order.Validate()
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)

	// phone is optional
	order.PhoneNumber = ""
	assert.NoError(t, order.Validate())
}

func TestOrder_Validate_CardPaymentRequiresCreditCard(t *testing.T) {
	order := validOrder(t)
	order.PaymentMethod = PaymentCard

	err := order.Validate()
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)

	order.CreditCard = &CreditCard{
		Number:     "1234-1234-1234-1234",
		Expiration: "12/26",
		CVV:        "031",
	}
	assert.NoError(t, order.Validate())
}

func TestOrder_Validate_CreditCardFormats(t *testing.T) {
	tests := []struct {
		name string
		card CreditCard
	}{
		{"bad number", CreditCard{Number: "1234123412341234", Expiration: "12/26", CVV: "031"}},
		{"bad expiration", CreditCard{Number: "1234-1234-1234-1234", Expiration: "122026", CVV: "031"}},
		{"bad cvv", CreditCard{Number: "1234-1234-1234-1234", Expiration: "12/26", CVV: "ab1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder(t)
			order.PaymentMethod = PaymentCard
			order.CreditCard = &tt.card

			err := order.Validate()
			_, ok := apperrors.IsValidationError(err)
			assert.True(t, ok)
		})
	}
}

func TestOrder_Validate_QuantityAtLeastOne(t *testing.T) {
	order := validOrder(t)
	order.Items[0].Quantity = 0

	err := order.Validate()
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestOrder_Validate_RequiresItems(t *testing.T) {
	order := validOrder(t)
	order.Items = nil

	err := order.Validate()
	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestOrder_Validate_RemovedToppingsMustBeDefaults(t *testing.T) {
	order := validOrder(t)
	order.Items[0].RemovedToppings = []Topping{{Name: "tomato"}}
	assert.NoError(t, order.Validate())

	// margarita has no prosciutto to remove
	order.Items[0].RemovedToppings = []Topping{{Name: "prosciutto"}}
	err := order.Validate()
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "items[0].removedToppings", ve.Details[0].Field)
}
