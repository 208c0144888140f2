package dto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"picko/internal/domain"
	apperrors "picko/internal/errors"
)

// CreateOrderRequest is the wire form of a new order. It references the
// catalog by name; ToOrder resolves it into a complete domain.Order with
// snapshot pizza data, so a partially built order never reaches the store.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customerName"`
	DeliveryAddress string             `json:"deliveryAddress"`
	PhoneNumber     string             `json:"phoneNumber,omitempty"`
	PaymentMethod   string             `json:"paymentMethod"`
	CreditCard      *CreditCardRequest `json:"creditCard,omitempty"`
	Note            string             `json:"note,omitempty"`
	Items           []OrderItemRequest `json:"items"`
}

type CreditCardRequest struct {
	Number     string `json:"number"`
	Expiration string `json:"expiration"`
	CVV        string `json:"cvv"`
}

type OrderItemRequest struct {
	Pizza           string           `json:"pizza"`
	Size            string           `json:"size,omitempty"`
	RemovedToppings []string         `json:"removedToppings,omitempty"`
	AddedToppings   []ToppingRequest `json:"addedToppings,omitempty"`
	Quantity        int              `json:"quantity"`
	StudentDiscount bool             `json:"studentDiscount"`
}

// ToppingRequest names a catalog topping, or a custom one when Price is set.
type ToppingRequest struct {
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

// ToOrder finalizes the request into a stored order: catalog entries are
// snapshotted, ids and the initial created status are stamped, and the
// result is validated before it is returned.
func (r CreateOrderRequest) ToOrder(id uuid.UUID, now time.Time) (domain.Order, error) {
	items := make([]domain.OrderItem, len(r.Items))
	for i, itemReq := range r.Items {
		item, err := itemReq.toOrderItem()
		if err != nil {
			ve, _ := apperrors.IsValidationError(err)
			return domain.Order{}, apperrors.NewValidationError("invalid order", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d]", i),
				Message: ve.Message,
			})
		}
		items[i] = item
	}

	order := domain.Order{
		ID:              id,
		CustomerName:    r.CustomerName,
		DeliveryAddress: r.DeliveryAddress,
		PhoneNumber:     r.PhoneNumber,
		PaymentMethod:   domain.PaymentMethod(r.PaymentMethod),
		Items:           items,
		Statuses: []domain.Status{
			{Name: domain.StatusCreated, CreatedAt: now},
		},
		CreatedAt: now,
		Note:      r.Note,
	}
	if r.CreditCard != nil {
		order.CreditCard = &domain.CreditCard{
			Number:     r.CreditCard.Number,
			Expiration: r.CreditCard.Expiration,
			CVV:        r.CreditCard.CVV,
		}
	}

	if err := order.Validate(); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r OrderItemRequest) toOrderItem() (domain.OrderItem, error) {
	pizza, ok := domain.CatalogPizza(domain.PizzaType(r.Pizza))
	if !ok {
		return domain.OrderItem{}, apperrors.NewValidationError(fmt.Sprintf("unknown pizza %q", r.Pizza))
	}
	if r.Size != "" {
		size := domain.Size(r.Size)
		if !domain.IsValidSize(size) {
			return domain.OrderItem{}, apperrors.NewValidationError(fmt.Sprintf("unknown size %q", r.Size))
		}
		pizza.Size = size
	}

	removed := make([]domain.Topping, len(r.RemovedToppings))
	for i, name := range r.RemovedToppings {
		removed[i] = domain.Topping{Name: name, Price: decimal.Zero}
	}

	added := make([]domain.Topping, len(r.AddedToppings))
	for i, toppingReq := range r.AddedToppings {
		topping, err := toppingReq.toTopping()
		if err != nil {
			return domain.OrderItem{}, err
		}
		added[i] = topping
	}

	item := domain.OrderItem{
		ID:              uuid.New(),
		Pizza:           pizza,
		Quantity:        r.Quantity,
		StudentDiscount: r.StudentDiscount,
	}
	if len(removed) > 0 {
		item.RemovedToppings = removed
	}
	if len(added) > 0 {
		item.AddedToppings = added
	}
	return item, nil
}

func (r ToppingRequest) toTopping() (domain.Topping, error) {
	if topping, ok := domain.CatalogTopping(r.Name); ok {
		return topping, nil
	}
	// Custom toppings have no catalog price, so one must be supplied.
	if r.Price == nil {
		return domain.Topping{}, apperrors.NewValidationError(
			fmt.Sprintf("custom topping %q requires a price", r.Name),
		)
	}
	return domain.NewCustomTopping(r.Name, decimal.NewFromFloat(*r.Price)), nil
}
