package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	apperrors "picko/internal/errors"
)

type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

type CreditCard struct {
	Number     string `json:"number" validate:"required,cardnumber"`
	Expiration string `json:"expiration" validate:"required,cardexpiration"`
	CVV        string `json:"cvv" validate:"required,cardcvv"`
}

type OrderItem struct {
	ID              uuid.UUID `json:"id"`
	Pizza           Pizza     `json:"pizza"`
	RemovedToppings []Topping `json:"removedToppings,omitempty"`
	AddedToppings   []Topping `json:"addedToppings,omitempty"`
	Quantity        int       `json:"quantity" validate:"gte=1"`
	StudentDiscount bool      `json:"studentDiscount"`
}

type Order struct {
	ID              uuid.UUID     `json:"id"`
	CustomerName    string        `json:"customerName" validate:"required"`
	DeliveryAddress string        `json:"deliveryAddress" validate:"required"`
	PhoneNumber     string        `json:"phoneNumber,omitempty" validate:"omitempty,phoneformat"`
	PaymentMethod   PaymentMethod `json:"paymentMethod" validate:"required,oneof=cash card"`
	CreditCard      *CreditCard   `json:"creditCard,omitempty" validate:"required_if=PaymentMethod card"`
	Items           []OrderItem   `json:"items" validate:"min=1,dive"`
	Statuses        []Status      `json:"statuses,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	Note            string        `json:"note,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegisterPattern(v, "phoneformat", `^[0-9]{3} [0-9]{3} [0-9]{3}$`)
	mustRegisterPattern(v, "cardnumber", `^[0-9]{4}-[0-9]{4}-[0-9]{4}-[0-9]{4}$`)
	mustRegisterPattern(v, "cardexpiration", `^[0-9]{2}/[0-9]{2}$`)
	mustRegisterPattern(v, "cardcvv", `^[0-9]{3,4}$`)
	return v
}

func mustRegisterPattern(v *validator.Validate, tag, pattern string) {
	re := regexp.MustCompile(pattern)
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Validate checks the order invariants: required customer fields, phone and
// credit-card formats, at least one item with quantity >= 1, and removed
// toppings being a subset of the pizza's default toppings.
func (o Order) Validate() error {
	if err := validate.Struct(o); err != nil {
		fieldErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return err
		}
		details := make([]apperrors.ValidationDetail, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			details = append(details, apperrors.ValidationDetail{
				Field:   fe.Namespace(),
				Message: fmt.Sprintf("failed on %q", fe.Tag()),
			})
		}
		return apperrors.NewValidationError("invalid order", details...)
	}

	for i, item := range o.Items {
		if msg, ok := item.removedToppingsViolation(); ok {
			return apperrors.NewValidationError("invalid order", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].removedToppings", i),
				Message: msg,
			})
		}
	}

	return nil
}

func (i OrderItem) removedToppingsViolation() (string, bool) {
	defaults := make(map[string]struct{}, len(i.Pizza.DefaultToppings))
	for _, t := range i.Pizza.DefaultToppings {
		defaults[t.Name] = struct{}{}
	}

	for _, removed := range i.RemovedToppings {
		if _, ok := defaults[removed.Name]; !ok {
			return fmt.Sprintf("topping %q is not a default topping of pizza %q", removed.Name, i.Pizza.Name), true
		}
	}
	return "", false
}
