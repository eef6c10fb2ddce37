package port

import (
	"context"

	"github.com/MikeRez0/bakery/internal/core/domain"
)

type OrderEventType string

const (
	OrderEventCreated      OrderEventType = "order.created"
	OrderEventUpdated      OrderEventType = "order.updated"
	OrderEventStateChanged OrderEventType = "order.state_changed"
	OrderEventCommented    OrderEventType = "order.commented"
	OrderEventDeleted      OrderEventType = "order.deleted"
)

// OrderEventPublisher announces order changes to other systems. Publishing never blocks the caller.
//
//go:generate mockgen -source=events.go -destination=mock/events.go -package=mock
type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, eventType OrderEventType, order *domain.Order)
}
