package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
)

type OrderFilter struct {
	Filter       string
	ShowPrevious bool
}

type PageObserver func(orders []*domain.Order)

// OrdersDataProvider pages through storefront orders and hands every fetched page to its observers.
type OrdersDataProvider struct {
	service port.OrderService
	now     func() time.Time

	mu        sync.Mutex
	observers map[int]PageObserver
	nextID    int
}

func NewOrdersDataProvider(service port.OrderService, now func() time.Time) *OrdersDataProvider {
	if now == nil {
		now = time.Now
	}
	return &OrdersDataProvider{
		service:   service,
		now:       now,
		observers: make(map[int]PageObserver),
	}
}

// AddPageObserver registers fn and returns the function that removes it.
func (p *OrdersDataProvider) AddPageObserver(fn PageObserver) (remove func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextID
	p.nextID++
	p.observers[id] = fn

	return func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.observers, id)
	}
}

func (p *OrdersDataProvider) Fetch(ctx context.Context, filter OrderFilter,
	page domain.PageRequest) ([]*domain.Order, error) {
	orders, err := p.service.FindAnyMatchingAfterDueDate(ctx, filter.Filter, p.filterDate(filter), page)
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	observers := make([]PageObserver, 0, len(p.observers))
	for _, o := range p.observers {
		observers = append(observers, o)
	}
	p.mu.Unlock()

	for _, o := range observers {
		o(orders)
	}
	return orders, nil
}

func (p *OrdersDataProvider) Size(ctx context.Context, filter OrderFilter) (int64, error) {
	return p.service.CountAnyMatchingAfterDueDate(ctx, filter.Filter, p.filterDate(filter))
}

// filterDate hides orders due before today unless past orders were asked for.
func (p *OrdersDataProvider) filterDate(filter OrderFilter) *time.Time {
	if filter.ShowPrevious {
		return nil
	}
	yesterday := domain.DateOf(p.now()).AddDate(0, 0, -1)
	return &yesterday
}
