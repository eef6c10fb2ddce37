package service

import (
	"context"
	"strings"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	orderDeleteNotAllowed = "Only administrators can delete orders"
	orderDeleteWrongState = "Order can not be deleted in its current state"
	salesYears            = 3
)

type OrderService struct {
	repo      port.OrderRepository
	locations port.PickupLocationService
	events    port.OrderEventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrderService(repo port.OrderRepository, locations port.PickupLocationService,
	events port.OrderEventPublisher, logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		repo:      repo,
		locations: locations,
		events:    events,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// WithClock replaces the time source, used by tests.
func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func (s *OrderService) Load(ctx context.Context, id int64) (*domain.Order, error) {
	o, err := s.repo.ReadOrder(ctx, id)
	if err != nil {
		return nil, repoError(s.logger, "Read order", err)
	}
	return o, nil
}

func (s *OrderService) CreateNew(ctx context.Context, actor *domain.User) *domain.Order {
	order := domain.NewOrder(actor, s.now())
	location, err := s.locations.GetDefault(ctx)
	if err != nil {
		s.logger.Warn("No default pickup location", zap.Error(err))
		return order
	}
	order.PickupLocation = location
	return order
}

func (s *OrderService) Save(ctx context.Context, actor *domain.User, order *domain.Order) (*domain.Order, error) {
	if err := order.Validate(); err != nil {
		return nil, err
	}

	if order.IsNew() {
		saved, err := s.repo.CreateOrder(ctx, order)
		if err != nil {
			return nil, repoError(s.logger, "Create order", err)
		}
		s.events.PublishOrderEvent(ctx, port.OrderEventCreated, saved)
		return saved, nil
	}

	saved, err := s.repo.UpdateOrder(ctx, order)
	if err != nil {
		return nil, repoError(s.logger, "Update order", err)
	}
	s.events.PublishOrderEvent(ctx, port.OrderEventUpdated, saved)
	return saved, nil
}

func (s *OrderService) Delete(ctx context.Context, actor *domain.User, order *domain.Order) error {
	if actor == nil || actor.Role != domain.RoleAdmin {
		return domain.NewUserFriendlyError(orderDeleteNotAllowed)
	}
	if order.State != domain.OrderStateNew && order.State != domain.OrderStateCancelled {
		return domain.NewUserFriendlyError(orderDeleteWrongState)
	}
	if err := s.repo.DeleteOrder(ctx, order.ID); err != nil {
		return repoError(s.logger, "Delete order", err)
	}
	s.events.PublishOrderEvent(ctx, port.OrderEventDeleted, order)
	return nil
}

// ChangeState and AddComment work on a copy, so order is left as it was when the update fails.
func (s *OrderService) ChangeState(ctx context.Context, actor *domain.User, order *domain.Order,
	state domain.OrderState) (*domain.Order, error) {
	changed := order.Clone()
	if err := changed.ChangeStateAt(actor, state, s.now()); err != nil {
		return nil, err
	}
	saved, err := s.repo.UpdateOrder(ctx, changed)
	if err != nil {
		return nil, repoError(s.logger, "Change order state", err)
	}
	s.events.PublishOrderEvent(ctx, port.OrderEventStateChanged, saved)
	return saved, nil
}

func (s *OrderService) AddComment(ctx context.Context, actor *domain.User, order *domain.Order,
	comment string) (*domain.Order, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, domain.NewValidationError("comment", domain.ErrRequiredFields)
	}
	commented := order.Clone()
	commented.AddHistoryItemAt(actor, comment, s.now())
	saved, err := s.repo.UpdateOrder(ctx, commented)
	if err != nil {
		return nil, repoError(s.logger, "Add order comment", err)
	}
	s.events.PublishOrderEvent(ctx, port.OrderEventCommented, saved)
	return saved, nil
}

func (s *OrderService) FindAnyMatchingAfterDueDate(ctx context.Context, filter string, after *time.Time,
	page domain.PageRequest) ([]*domain.Order, error) {
	list, err := s.repo.ListOrders(ctx, filter, after, page)
	if err != nil {
		return nil, repoError(s.logger, "List orders", err)
	}
	return list, nil
}

func (s *OrderService) CountAnyMatchingAfterDueDate(ctx context.Context, filter string,
	after *time.Time) (int64, error) {
	n, err := s.repo.CountOrders(ctx, filter, after)
	if err != nil {
		return 0, repoError(s.logger, "Count orders", err)
	}
	return n, nil
}

func (s *OrderService) LastCreatedOrder(ctx context.Context) (*domain.Order, error) {
	o, err := s.repo.LastCreatedOrder(ctx)
	if err != nil {
		return nil, repoError(s.logger, "Last order", err)
	}
	return o, nil
}

// DashboardData runs the dashboard queries concurrently. Sales are reported for the last salesYears years.
func (s *OrderService) DashboardData(ctx context.Context, now time.Time) (*domain.DashboardData, error) {
	today := domain.DateOf(now)
	data := &domain.DashboardData{SalesPerMonth: make([][]int64, salesYears)}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		stats, err := s.repo.DeliveryStats(ctx, today)
		if err != nil {
			return repoError(s.logger, "Delivery stats", err)
		}
		data.DeliveryStats = *stats
		return nil
	})
	g.Go(func() error {
		perDay, err := s.repo.DeliveriesPerDay(ctx, today.Year(), today.Month())
		if err != nil {
			return repoError(s.logger, "Deliveries per day", err)
		}
		data.DeliveriesThisMonth = perDay
		return nil
	})
	g.Go(func() error {
		perMonth, err := s.repo.DeliveriesPerMonth(ctx, today.Year())
		if err != nil {
			return repoError(s.logger, "Deliveries per month", err)
		}
		data.DeliveriesThisYear = perMonth
		return nil
	})
	for i := range salesYears {
		g.Go(func() error {
			yearSales, err := s.repo.SalesPerMonth(ctx, today.Year()-i)
			if err != nil {
				return repoError(s.logger, "Sales per month", err)
			}
			data.SalesPerMonth[i] = yearSales
			return nil
		})
	}
	g.Go(func() error {
		products, err := s.repo.ProductDeliveries(ctx, today.Year(), today.Month())
		if err != nil {
			return repoError(s.logger, "Product deliveries", err)
		}
		data.ProductDeliveries = products
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
