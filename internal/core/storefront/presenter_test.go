package storefront_test

import (
	"context"
	"testing"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port/mock"
	"github.com/MikeRez0/bakery/internal/core/presenter"
	"github.com/MikeRez0/bakery/internal/core/service"
	"github.com/MikeRez0/bakery/internal/core/storefront"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type opened struct {
	order *domain.Order
	mode  storefront.Mode
	isNew bool
}

type fakeOrderView struct {
	dirty         bool
	invalid       []string
	focused       string
	writeErr      error
	opened        bool
	opens         []opened
	notifications []string
	errors        []presenter.ErrorMessage
	confirmations []*presenter.Confirmation
	customerName  string
}

func (v *fakeOrderView) ShowError(msg presenter.ErrorMessage) { v.errors = append(v.errors, msg) }
func (v *fakeOrderView) Confirm(c *presenter.Confirmation)    { v.confirmations = append(v.confirmations, c) }
func (v *fakeOrderView) IsDirty() bool                        { return v.dirty }
func (v *fakeOrderView) Clear()                               {}
func (v *fakeOrderView) Validate() []string                   { return v.invalid }
func (v *fakeOrderView) Focus(field string)                   { v.focused = field }
func (v *fakeOrderView) SetOpened(o bool)                     { v.opened = o }
func (v *fakeOrderView) ShowNotification(msg string)          { v.notifications = append(v.notifications, msg) }

func (v *fakeOrderView) Open(o *domain.Order, mode storefront.Mode, isNew bool) {
	v.opens = append(v.opens, opened{order: o, mode: mode, isNew: isNew})
}

func (v *fakeOrderView) Write(o *domain.Order) error {
	if v.writeErr != nil {
		return v.writeErr
	}
	if v.customerName != "" {
		o.Customer.FullName = v.customerName
	}
	return nil
}

func (v *fakeOrderView) last() opened {
	return v.opens[len(v.opens)-1]
}

var barista = &domain.User{Base: domain.Base{ID: 2}, Role: domain.RoleBarista}

func newOrderPresenter(t *testing.T, ctrl *gomock.Controller) (*storefront.OrderPresenter, *mock.MockOrderService,
	*fakeOrderView, *storefront.Session) {
	t.Helper()
	svc := mock.NewMockOrderService(ctrl)
	users := mock.NewMockCurrentUser(ctrl)
	users.EXPECT().CurrentUser().Return(barista).AnyTimes()
	view := &fakeOrderView{}
	session := storefront.NewSession(svc, clock(now))
	return storefront.NewOrderPresenter(svc, session, users, view, zap.NewNop()), svc, view, session
}

func TestOrderPresenter_CreateReviewSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view, _ := newOrderPresenter(t, ctrl)
	draft := domain.NewOrder(barista, now)
	svc.EXPECT().CreateNew(gomock.Any(), barista).Return(draft)

	p.CreateNewOrder(context.Background())
	assert.True(t, view.opened)
	assert.Equal(t, opened{order: draft, mode: storefront.ModeEdit, isNew: true}, view.last())

	view.invalid = []string{"customer.phone_number", "items"}
	assert.False(t, p.Review())
	assert.Equal(t, "customer.phone_number", view.focused)

	view.invalid = nil
	view.customerName = "Jane Roe"
	assert.True(t, p.Review())
	assert.Equal(t, storefront.ModeReview, view.last().mode)
	assert.Equal(t, "Jane Roe", draft.Customer.FullName)

	saved := &domain.Order{Base: domain.Base{ID: 77, Version: 0}}
	svc.EXPECT().Save(gomock.Any(), barista, draft).Return(saved, nil)
	result, ok := p.Save(context.Background())
	require.True(t, ok)
	assert.Same(t, saved, result)

	assert.Equal(t, []string{storefront.OrderCreatedNotification}, view.notifications)
	assert.False(t, view.opened)
	assert.False(t, p.Entity().HasEntity())
}

func TestOrderPresenter_SaveConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view, _ := newOrderPresenter(t, ctrl)
	stored := &domain.Order{Base: domain.Base{ID: 5, Version: 3}, State: domain.OrderStateNew}
	svc.EXPECT().Load(gomock.Any(), int64(5)).Return(stored, nil)

	p.OnNavigation(context.Background(), 5, true)
	assert.Equal(t, opened{order: stored, mode: storefront.ModeEdit}, view.last())

	svc.EXPECT().Save(gomock.Any(), barista, stored).Return(nil, domain.ErrConcurrentUpdate)
	_, ok := p.Save(context.Background())
	assert.False(t, ok)

	assert.Empty(t, view.notifications)
	require.Len(t, view.errors, 1)
	assert.Equal(t, presenter.CategoryConcurrentUpdate, view.errors[0].Category)
	assert.True(t, view.opened)
	assert.Same(t, stored, p.Entity().Entity())
}

func TestOrderPresenter_UpdateNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view, _ := newOrderPresenter(t, ctrl)
	stored := &domain.Order{Base: domain.Base{ID: 5, Version: 3}}
	svc.EXPECT().Load(gomock.Any(), int64(5)).Return(stored, nil)
	p.OnNavigation(context.Background(), 5, false)
	assert.Equal(t, storefront.ModeDetails, view.last().mode)

	p.Edit()
	assert.Equal(t, storefront.ModeEdit, view.last().mode)

	svc.EXPECT().Save(gomock.Any(), barista, stored).
		Return(&domain.Order{Base: domain.Base{ID: 5, Version: 4}}, nil)
	p.Save(context.Background())
	assert.Equal(t, []string{storefront.OrderUpdatedNotification}, view.notifications)
}

func TestOrderPresenter_CommentAndState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view, _ := newOrderPresenter(t, ctrl)
	stored := &domain.Order{Base: domain.Base{ID: 5, Version: 3}, State: domain.OrderStateNew}
	svc.EXPECT().Load(gomock.Any(), int64(5)).Return(stored, nil)
	p.OnNavigation(context.Background(), 5, false)

	commented := &domain.Order{Base: domain.Base{ID: 5, Version: 4}}
	svc.EXPECT().AddComment(gomock.Any(), barista, stored, "gluten free").Return(commented, nil)
	p.AddComment(context.Background(), "gluten free")
	assert.Equal(t, opened{order: commented, mode: storefront.ModeDetails}, view.last())

	illegal := domain.NewValidationError("state", domain.ErrIllegalStateTransition)
	svc.EXPECT().ChangeState(gomock.Any(), barista, commented, domain.OrderStateDelivered).Return(nil, illegal)
	p.ChangeState(context.Background(), domain.OrderStateDelivered)
	require.Len(t, view.errors, 1)
	assert.Equal(t, presenter.CategoryRequiredFields, view.errors[0].Category)
	assert.Same(t, commented, p.Entity().Entity())
}

func TestOrderPresenter_FailedStateChangeKeepsOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockOrderRepository(ctrl)
	svc, err := service.NewOrderService(repo, mock.NewMockPickupLocationService(ctrl),
		mock.NewMockOrderEventPublisher(ctrl), zap.NewNop())
	require.NoError(t, err)
	svc.WithClock(clock(now))

	users := mock.NewMockCurrentUser(ctrl)
	users.EXPECT().CurrentUser().Return(barista).AnyTimes()
	view := &fakeOrderView{}
	p := storefront.NewOrderPresenter(svc, storefront.NewSession(svc, clock(now)), users, view, zap.NewNop())

	stored := &domain.Order{
		Base:    domain.Base{ID: 5, Version: 3},
		State:   domain.OrderStateNew,
		History: []domain.HistoryItem{{ID: 1, Message: domain.OrderPlacedMessage}},
	}
	repo.EXPECT().ReadOrder(gomock.Any(), int64(5)).Return(stored, nil)
	p.OnNavigation(context.Background(), 5, false)

	repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConcurrentUpdate).Times(2)
	p.ChangeState(context.Background(), domain.OrderStateConfirmed)
	p.AddComment(context.Background(), "call first")

	require.Len(t, view.errors, 2)
	assert.Equal(t, presenter.CategoryConcurrentUpdate, view.errors[0].Category)
	current := p.Entity().Entity()
	assert.Same(t, stored, current)
	assert.Equal(t, domain.OrderStateNew, current.State)
	assert.Len(t, current.History, 1)
}

func TestOrderPresenter_CancelDirty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view, _ := newOrderPresenter(t, ctrl)
	svc.EXPECT().CreateNew(gomock.Any(), barista).Return(domain.NewOrder(barista, now))
	p.CreateNewOrder(context.Background())
	view.dirty = true

	p.Cancel()
	require.Len(t, view.confirmations, 1)
	assert.Equal(t, "There are unsaved modifications to the Order. Discard changes?",
		view.confirmations[0].Message.Message)

	view.confirmations[0].Cancel()
	assert.True(t, view.opened)
	assert.True(t, p.Entity().HasEntity())

	p.Cancel()
	view.confirmations[1].Confirm()
	assert.False(t, view.opened)
	assert.False(t, p.Entity().HasEntity())
}

func TestOrderPresenter_DeleteNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view, _ := newOrderPresenter(t, ctrl)
	stored := &domain.Order{Base: domain.Base{ID: 5}, State: domain.OrderStateNew}
	svc.EXPECT().Load(gomock.Any(), int64(5)).Return(stored, nil)
	p.OnNavigation(context.Background(), 5, false)

	p.Delete(context.Background())
	require.Len(t, view.confirmations, 1)

	friendly := domain.NewUserFriendlyError("Only administrators can delete orders")
	svc.EXPECT().Delete(gomock.Any(), barista, stored).Return(friendly)
	view.confirmations[0].Confirm()

	require.Len(t, view.errors, 1)
	assert.Equal(t, friendly.Message, view.errors[0].Message)
	assert.True(t, view.opened)
}

func TestOrderPresenter_FetchPageAssignsHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, _, session := newOrderPresenter(t, ctrl)
	yesterday := day(13)

	page := []*domain.Order{order(5, day(14), 9), order(6, day(14), 11), order(8, day(25), 9)}
	svc.EXPECT().FindAnyMatchingAfterDueDate(gomock.Any(), "jane", &yesterday, domain.NewPageRequest(0, 10)).
		Return(page, nil)
	svc.EXPECT().CountAnyMatchingAfterDueDate(gomock.Any(), "jane", &yesterday).Return(int64(3), nil)

	p.FilterChanged("jane", false)
	assert.Equal(t, storefront.OrderFilter{Filter: "jane"}, session.Filter())

	orders, err := p.FetchPage(context.Background(), domain.NewPageRequest(0, 10))
	require.NoError(t, err)
	assert.Len(t, orders, 3)

	n, err := p.Size(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	h, ok := p.HeaderByOrderID(5)
	require.True(t, ok)
	assert.Equal(t, "Today", h.Main)
	_, ok = p.HeaderByOrderID(6)
	assert.False(t, ok)
	h, ok = p.HeaderByOrderID(8)
	require.True(t, ok)
	assert.Equal(t, "Upcoming", h.Main)

	svc.EXPECT().FindAnyMatchingAfterDueDate(gomock.Any(), "", (*time.Time)(nil), domain.NewPageRequest(0, 10)).
		Return([]*domain.Order{order(1, day(1), 9)}, nil)
	p.FilterChanged("", true)
	_, ok = p.HeaderByOrderID(5)
	assert.False(t, ok)
	_, err = p.FetchPage(context.Background(), domain.NewPageRequest(0, 10))
	require.NoError(t, err)
	h, ok = p.HeaderByOrderID(1)
	require.True(t, ok)
	assert.Equal(t, "Recent", h.Main)
}

func TestSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockOrderService(ctrl)
	sessions := storefront.NewSessions(svc, clock(now))

	a := sessions.Get(1)
	assert.Same(t, a, sessions.Get(1))
	assert.NotSame(t, a, sessions.Get(2))
	assert.Equal(t, 2, sessions.Len())

	sessions.Drop(1)
	assert.Equal(t, 1, sessions.Len())
	assert.NotSame(t, a, sessions.Get(1))

	// A dropped session no longer receives pages.
	svc.EXPECT().FindAnyMatchingAfterDueDate(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*domain.Order{order(5, day(14), 9)}, nil)
	_, err := a.Provider().Fetch(context.Background(), storefront.OrderFilter{}, domain.NewPageRequest(0, 10))
	require.NoError(t, err)
	_, ok := a.Headers().Get(5)
	assert.False(t, ok)
}

func TestOrdersDataProvider_Observers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockOrderService(ctrl)
	provider := storefront.NewOrdersDataProvider(svc, clock(now))

	var seen int
	remove := provider.AddPageObserver(func(orders []*domain.Order) { seen += len(orders) })

	svc.EXPECT().FindAnyMatchingAfterDueDate(gomock.Any(), "", (*time.Time)(nil), gomock.Any()).
		Return([]*domain.Order{order(1, day(14), 9), order(2, day(14), 9)}, nil).Times(2)

	_, err := provider.Fetch(context.Background(), storefront.OrderFilter{ShowPrevious: true}, domain.NewPageRequest(0, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, seen)

	remove()
	_, err = provider.Fetch(context.Background(), storefront.OrderFilter{ShowPrevious: true}, domain.NewPageRequest(0, 5))
	require.NoError(t, err)
	assert.Equal(t, 2, seen)
}
