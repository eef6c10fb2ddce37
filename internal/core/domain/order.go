package domain

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

const OrderPlacedMessage = "Order placed"

var (
	DefaultDueTime = NewTimeOfDay(16, 0)
	// DueTimes are the delivery slots offered for new orders.
	DueTimes = func() []TimeOfDay {
		times := make([]TimeOfDay, 0, 9)
		for h := 8; h <= 16; h++ {
			times = append(times, NewTimeOfDay(h, 0))
		}
		return times
	}()
)

type OrderItem struct {
	ID       int64    `json:"id"`
	Product  *Product `json:"product"`
	Quantity int      `json:"quantity"`
	Comment  string   `json:"comment,omitempty"`
}

// TotalPrice in cents.
func (i *OrderItem) TotalPrice() int64 {
	if i.Product == nil {
		return 0
	}
	return int64(i.Quantity) * i.Product.Price
}

type Order struct {
	Base
	State          OrderState      `json:"state"`
	DueDate        time.Time       `json:"due_date"`
	DueTime        TimeOfDay       `json:"due_time"`
	Customer       Customer        `json:"customer"`
	PickupLocation *PickupLocation `json:"pickup_location"`
	Items          []*OrderItem    `json:"items"`
	History        []HistoryItem   `json:"history"`
	Paid           bool            `json:"paid"`
}

// NewOrder returns an unpersisted order placed by actor at the given instant.
func NewOrder(actor *User, at time.Time) *Order {
	o := &Order{
		State:   OrderStateNew,
		DueDate: DateOf(at),
		DueTime: DefaultDueTime,
	}
	o.History = append(o.History, newHistoryItem(actor, OrderPlacedMessage, nil, at))
	return o
}

// DueAt is the delivery instant.
func (o *Order) DueAt() time.Time {
	return o.DueTime.On(o.DueDate)
}

// TotalPrice in cents.
func (o *Order) TotalPrice() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.TotalPrice()
	}
	return total
}

func (o *Order) ChangeState(actor *User, state OrderState) error {
	return o.ChangeStateAt(actor, state, time.Now())
}

// ChangeStateAt moves the order to state and records the change in the history.
// Re-applying the current state is allowed and still recorded.
func (o *Order) ChangeStateAt(actor *User, state OrderState, at time.Time) error {
	if !o.State.CanTransitionTo(state) {
		return NewValidationError("state",
			fmt.Errorf("%w: %s to %s", ErrIllegalStateTransition, o.State, state))
	}
	o.State = state
	newState := state
	o.History = append(o.History,
		newHistoryItem(actor, "Order "+state.DisplayName(), &newState, at))
	return nil
}

// AddHistoryItem appends an informational entry such as a comment.
func (o *Order) AddHistoryItem(actor *User, message string) {
	o.AddHistoryItemAt(actor, message, time.Now())
}

func (o *Order) AddHistoryItemAt(actor *User, message string, at time.Time) {
	o.History = append(o.History, newHistoryItem(actor, message, nil, at))
}

// Clone copies the order with its own History slice. Items and references are shared.
func (o *Order) Clone() *Order {
	c := *o
	c.History = slices.Clone(o.History)
	return &c
}

// PlacedAt is the timestamp of the first history entry, or the zero time.
func (o *Order) PlacedAt() time.Time {
	if len(o.History) == 0 {
		return time.Time{}
	}
	return o.History[0].Timestamp
}

func (o *Order) Validate() error {
	if o.DueDate.IsZero() {
		return NewValidationError("due_date", ErrRequiredFields)
	}
	if err := o.Customer.Validate(); err != nil {
		return err
	}
	if o.PickupLocation == nil || o.PickupLocation.ID == 0 {
		return NewValidationError("pickup_location", ErrRequiredFields)
	}
	if len(o.Items) == 0 {
		return NewValidationError("items", ErrRequiredFields)
	}
	for i, item := range o.Items {
		field := fmt.Sprintf("items[%d]", i)
		if item.Product == nil || item.Product.ID == 0 {
			return NewValidationError(field+".product", ErrRequiredFields)
		}
		if item.Quantity < 1 {
			return NewValidationError(field+".quantity", errors.New("quantity must be at least 1"))
		}
		if len(item.Comment) > 255 {
			return NewValidationError(field+".comment", errors.New("comment is too long"))
		}
	}
	return nil
}
