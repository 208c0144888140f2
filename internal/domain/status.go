package domain

import (
	"errors"
	"time"

	"github.com/samber/lo"
)

type StatusType string

// remember to add new statuses to the validStatusTypes map
const (
	StatusCreated     StatusType = "created"
	StatusPreparation StatusType = "preparation"
	StatusPrepared    StatusType = "prepared"
	StatusDelivery    StatusType = "delivery"
	StatusDelivered   StatusType = "delivered"
	StatusCanceled    StatusType = "canceled"
)

var validStatusTypes = map[StatusType]struct{}{
	StatusCreated:     {},
	StatusPreparation: {},
	StatusPrepared:    {},
	StatusDelivery:    {},
	StatusDelivered:   {},
	StatusCanceled:    {},
}

func ToStatusType(s string) (StatusType, error) {
	status := StatusType(s)
	if _, ok := validStatusTypes[status]; ok {
		return status, nil
	}

	return "", errors.New("invalid status type")
}

type Status struct {
	Name      StatusType `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
}

// PrepMinutesPerUnit is the flat per-pizza preparation estimate.
const PrepMinutesPerUnit = 20

func (o Order) LastStatus() (Status, bool) {
	if len(o.Statuses) == 0 {
		return Status{}, false
	}
	return o.Statuses[len(o.Statuses)-1], true
}

// IsFinished reports whether the order has been delivered.
func (o Order) IsFinished() bool {
	last, ok := o.LastStatus()
	return ok && last.Name == StatusDelivered
}

// IsCancelable reports whether a canceled status may still be appended.
// The guard is advisory: AppendStatus itself never checks it.
func (o Order) IsCancelable() bool {
	last, ok := o.LastStatus()
	if !ok {
		return true
	}
	return last.Name != StatusDelivered && last.Name != StatusCanceled
}

// TotalQuantity is the number of pizza units across all items.
func (o Order) TotalQuantity() int {
	return lo.SumBy(o.Items, func(item OrderItem) int {
		return item.Quantity
	})
}

// EstimatedDeliveryMinutes is a linear estimate from the unit count; it does
// not model kitchen load.
func (o Order) EstimatedDeliveryMinutes() int {
	return o.TotalQuantity() * PrepMinutesPerUnit
}

// EstimatedDeliveryAt derives the expected delivery time from the first
// status. The second return value is false when the order has no statuses
// yet, in which case no estimate exists.
func (o Order) EstimatedDeliveryAt() (time.Time, bool) {
	if len(o.Statuses) == 0 {
		return time.Time{}, false
	}
	at := o.Statuses[0].CreatedAt.Add(time.Duration(o.EstimatedDeliveryMinutes()) * time.Minute)
	return at, true
}

// RemainingMinutes is the estimate relative to now; negative when overdue.
func (o Order) RemainingMinutes(now time.Time) (int, bool) {
	at, ok := o.EstimatedDeliveryAt()
	if !ok {
		return 0, false
	}
	return int(at.Sub(now) / time.Minute), true
}

// AppendStatus returns a copy of the order with one more status entry. It
// performs no transition validation; callers that care about cancellation
// must check IsCancelable first.
func (o Order) AppendStatus(name StatusType, at time.Time) Order {
	statuses := make([]Status, 0, len(o.Statuses)+1)
	statuses = append(statuses, o.Statuses...)
	statuses = append(statuses, Status{Name: name, CreatedAt: at})

	out := o
	out.Statuses = statuses
	return out
}
