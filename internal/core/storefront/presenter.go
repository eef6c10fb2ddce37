package storefront

import (
	"context"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/presenter"
	"go.uber.org/zap"
)

const (
	OrderCreatedNotification = "Order successfully created."
	OrderUpdatedNotification = "Order successfully updated."
)

type Mode int

const (
	ModeDetails Mode = iota
	ModeEdit
	ModeReview
)

func (m Mode) String() string {
	switch m {
	case ModeEdit:
		return "edit"
	case ModeReview:
		return "review"
	}
	return "details"
}

// OrderView is the storefront order dialog.
type OrderView interface {
	presenter.EntityView[*domain.Order]
	// Validate checks the editor fields and returns the invalid ones in form order.
	Validate() []string
	Focus(field string)
	Open(order *domain.Order, mode Mode, isNew bool)
	SetOpened(opened bool)
	ShowNotification(msg string)
}

// OrderPresenter drives the storefront: order list headers plus the edit, review and save dialog.
type OrderPresenter struct {
	entity  *presenter.EntityPresenter[*domain.Order]
	service port.OrderService
	session *Session
	view    OrderView
	logger  *zap.Logger
}

// NewOrderPresenter binds a view to the user's session. The caller holds the session lock while using it.
func NewOrderPresenter(service port.OrderService, session *Session, users port.CurrentUser,
	view OrderView, logger *zap.Logger) *OrderPresenter {
	return &OrderPresenter{
		entity:  presenter.NewEntityPresenter[*domain.Order](service, users, view, "Order", logger),
		service: service,
		session: session,
		view:    view,
		logger:  logger,
	}
}

// Entity exposes the underlying entity presenter.
func (p *OrderPresenter) Entity() *presenter.EntityPresenter[*domain.Order] {
	return p.entity
}

func (p *OrderPresenter) FilterChanged(filter string, showPrevious bool) {
	p.session.filter = OrderFilter{Filter: filter, ShowPrevious: showPrevious}
	p.session.headers.ResetHeaderChain(showPrevious)
}

// FetchPage loads a page of the current filter and assigns headers to it.
func (p *OrderPresenter) FetchPage(ctx context.Context, page domain.PageRequest) ([]*domain.Order, error) {
	return p.session.provider.Fetch(ctx, p.session.filter, page)
}

func (p *OrderPresenter) Size(ctx context.Context) (int64, error) {
	return p.session.provider.Size(ctx, p.session.filter)
}

func (p *OrderPresenter) HeaderByOrderID(id int64) (domain.OrderCardHeader, bool) {
	return p.session.headers.Get(id)
}

func (p *OrderPresenter) OnNavigation(ctx context.Context, id int64, edit bool) {
	p.entity.LoadEntity(ctx, id, func(o *domain.Order) {
		p.open(o, edit)
	})
}

func (p *OrderPresenter) CreateNewOrder(ctx context.Context) {
	p.open(p.entity.CreateNew(ctx), true)
}

func (p *OrderPresenter) Cancel() {
	p.entity.Cancel(p.close, func() { p.view.SetOpened(true) })
}

func (p *OrderPresenter) CloseSilently() {
	p.entity.Close()
	p.view.SetOpened(false)
}

func (p *OrderPresenter) Edit() {
	if !p.entity.HasEntity() {
		return
	}
	p.open(p.entity.Entity(), true)
}

// Back returns from the review to the editor.
func (p *OrderPresenter) Back() {
	if !p.entity.HasEntity() {
		return
	}
	p.view.Open(p.entity.Entity(), ModeEdit, p.entity.IsNew())
}

// Review validates the editor and shows the order summary. Invalid input focuses the first invalid field.
func (p *OrderPresenter) Review() bool {
	if invalid := p.view.Validate(); len(invalid) > 0 {
		p.view.Focus(invalid[0])
		return false
	}
	if !p.entity.WriteEntity() {
		return false
	}
	p.view.Open(p.entity.Entity(), ModeReview, p.entity.IsNew())
	return true
}

// Save persists the open order and closes the dialog. It returns the saved order, or false when saving failed.
func (p *OrderPresenter) Save(ctx context.Context) (*domain.Order, bool) {
	wasNew := p.entity.IsNew()
	var saved *domain.Order
	p.entity.Save(ctx, func(o *domain.Order) {
		saved = o
		if wasNew {
			p.view.ShowNotification(OrderCreatedNotification)
		} else {
			p.view.ShowNotification(OrderUpdatedNotification)
		}
		// The saved order may open a header bucket before the current holder.
		p.session.headers.ResetHeaderChain(p.session.filter.ShowPrevious)
		p.close()
	})
	return saved, saved != nil
}

func (p *OrderPresenter) AddComment(ctx context.Context, comment string) {
	p.entity.ExecuteUpdate(ctx,
		func(ctx context.Context, actor *domain.User, o *domain.Order) (*domain.Order, error) {
			return p.service.AddComment(ctx, actor, o, comment)
		},
		func(o *domain.Order) {
			p.open(o, false)
		})
}

func (p *OrderPresenter) ChangeState(ctx context.Context, state domain.OrderState) {
	p.entity.ExecuteUpdate(ctx,
		func(ctx context.Context, actor *domain.User, o *domain.Order) (*domain.Order, error) {
			return p.service.ChangeState(ctx, actor, o, state)
		},
		func(o *domain.Order) {
			p.open(o, false)
		})
}

// Delete asks for confirmation, then deletes the open order.
func (p *OrderPresenter) Delete(ctx context.Context) {
	p.entity.Delete(ctx, func(o *domain.Order) {
		p.logger.Debug("Order deleted", zap.Int64("id", o.ID))
		p.session.headers.ResetHeaderChain(p.session.filter.ShowPrevious)
		p.close()
	})
}

func (p *OrderPresenter) open(o *domain.Order, edit bool) {
	mode := ModeDetails
	if edit {
		mode = ModeEdit
	}
	p.view.SetOpened(true)
	p.view.Open(o, mode, p.entity.IsNew())
}

func (p *OrderPresenter) close() {
	p.view.SetOpened(false)
	p.entity.Close()
}
