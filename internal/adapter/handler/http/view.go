package http

import (
	"errors"

	"github.com/MikeRez0/bakery/internal/adapter/metrics"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/presenter"
	"github.com/MikeRez0/bakery/internal/core/storefront"
)

// requestView is the view of a single HTTP request. The request body stands in for the form,
// the confirm query parameter answers confirmations up front.
type requestView[T any] struct {
	confirm      bool
	write        func(T) error
	err          *presenter.ErrorMessage
	confirmation *presenter.Confirmation
}

func newRequestView[T any](confirm bool, write func(T) error) *requestView[T] {
	return &requestView[T]{confirm: confirm, write: write}
}

func (v *requestView[T]) ShowError(msg presenter.ErrorMessage) {
	metrics.PresenterErrorsTotal.WithLabelValues(msg.Category.String()).Inc()
	if v.err == nil {
		v.err = &msg
	}
}

func (v *requestView[T]) Confirm(c *presenter.Confirmation) {
	if v.confirm {
		c.Confirm()
		return
	}
	v.confirmation = c
}

// IsDirty is true when the request carries changes that were not saved.
func (v *requestView[T]) IsDirty() bool {
	return v.write != nil
}

func (v *requestView[T]) Write(entity T) error {
	if v.write == nil {
		return nil
	}
	return v.write(entity)
}

func (v *requestView[T]) Clear() {}

// awaitingConfirmation returns the confirmation that was asked and left unanswered.
func (v *requestView[T]) awaitingConfirmation() *presenter.Confirmation {
	if v.confirmation == nil || !v.confirmation.Pending() {
		return nil
	}
	return v.confirmation
}

type openedOrder struct {
	order *domain.Order
	mode  storefront.Mode
	isNew bool
}

// orderView renders the storefront dialog state of a request.
type orderView struct {
	*requestView[*domain.Order]
	draft         func() *domain.Order
	focused       string
	opened        bool
	open          *openedOrder
	notifications []string
}

func newOrderView(confirm bool, write func(*domain.Order) error) *orderView {
	return &orderView{requestView: newRequestView(confirm, write)}
}

// Validate applies the request to a copy of the open order and reports the first invalid field.
func (v *orderView) Validate() []string {
	if v.write == nil || v.draft == nil {
		return nil
	}
	order := v.draft()
	if order == nil {
		return nil
	}
	copied := *order
	if err := v.write(&copied); err != nil {
		return invalidFields(err)
	}
	return invalidFields(copied.Validate())
}

func invalidFields(err error) []string {
	if err == nil {
		return nil
	}
	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		return []string{validation.Field}
	}
	return []string{""}
}

func (v *orderView) Focus(field string) {
	v.focused = field
}

func (v *orderView) Open(order *domain.Order, mode storefront.Mode, isNew bool) {
	v.open = &openedOrder{order: order, mode: mode, isNew: isNew}
}

func (v *orderView) SetOpened(opened bool) {
	v.opened = opened
}

func (v *orderView) ShowNotification(msg string) {
	v.notifications = append(v.notifications, msg)
}
