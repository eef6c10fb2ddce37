package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MikeRez0/bakery/internal/adapter/auth"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/port/mock"
	"github.com/MikeRez0/bakery/internal/core/service"
	"github.com/MikeRez0/bakery/internal/core/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestService_UserLogin(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger := zap.NewNop()

	hashedPass, _ := utils.HashPassword("test")
	user := domain.User{
		Base:     domain.Base{ID: 1},
		Email:    "baker@vaadin.com",
		Password: hashedPass,
		Role:     domain.RoleBaker,
	}

	tests := []struct {
		name     string
		email    string
		password string
		mock     func(repo *mock.MockUserRepository)
		expError error
	}{
		{
			name:     "Login good",
			email:    user.Email,
			password: "test",
			mock: func(repo *mock.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
		},
		{
			name:     "Password bad",
			email:    user.Email,
			password: "hacker",
			mock: func(repo *mock.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(&user, nil)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Login bad",
			email:    "hacker@vaadin.com",
			password: "test",
			mock: func(repo *mock.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), "hacker@vaadin.com").Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrInvalidCredentials,
		},
		{
			name:     "Storage failure",
			email:    user.Email,
			password: "test",
			mock: func(repo *mock.MockUserRepository) {
				repo.EXPECT().GetUserByEmail(gomock.Any(), user.Email).Return(nil, errors.New("connection refused"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockUserRepository(mockCtrl)
			ts, err := auth.New(time.Hour)
			require.NoError(t, err)
			test.mock(repo)

			s, err := service.NewUserService(repo, ts, logger)
			require.NoError(t, err)

			token, err := s.Login(context.Background(), test.email, test.password)
			assert.Equal(t, test.expError, err)

			if test.expError == nil {
				payload, err := ts.VerifyToken(token)
				require.NoError(t, err)
				assert.Equal(t, user.ID, payload.UserID)
				assert.Equal(t, domain.RoleBaker, payload.Role)
			}
		})
	}
}

func TestService_UserSaveDelete(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	admin := &domain.User{Base: domain.Base{ID: 1}, Role: domain.RoleAdmin}
	valid := func(id int64) *domain.User {
		return &domain.User{
			Base:      domain.Base{ID: id},
			Email:     "barista@vaadin.com",
			FirstName: "Malin",
			LastName:  "Castro",
			Password:  "hash",
			Role:      domain.RoleBarista,
		}
	}

	t.Run("Save locked user", func(t *testing.T) {
		repo := mock.NewMockUserRepository(mockCtrl)
		locked := valid(2)
		locked.Locked = true
		repo.EXPECT().ReadUser(gomock.Any(), int64(2)).Return(locked, nil)

		s, _ := service.NewUserService(repo, mock.NewMockTokenService(mockCtrl), zap.NewNop())
		incoming := valid(2)
		_, err := s.Save(context.Background(), admin, incoming)

		var friendly *domain.UserFriendlyError
		require.True(t, errors.As(err, &friendly))
		assert.Equal(t, "User has been locked and cannot be modified or deleted", friendly.Message)
	})

	t.Run("Save duplicate email", func(t *testing.T) {
		repo := mock.NewMockUserRepository(mockCtrl)
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConflictingData)

		s, _ := service.NewUserService(repo, mock.NewMockTokenService(mockCtrl), zap.NewNop())
		_, err := s.Save(context.Background(), admin, valid(0))

		var friendly *domain.UserFriendlyError
		require.True(t, errors.As(err, &friendly))
	})

	t.Run("Save invalid", func(t *testing.T) {
		repo := mock.NewMockUserRepository(mockCtrl)
		s, _ := service.NewUserService(repo, mock.NewMockTokenService(mockCtrl), zap.NewNop())
		u := valid(0)
		u.Email = ""
		_, err := s.Save(context.Background(), admin, u)

		assert.ErrorIs(t, err, domain.ErrRequiredFields)
	})

	t.Run("Delete self", func(t *testing.T) {
		repo := mock.NewMockUserRepository(mockCtrl)
		s, _ := service.NewUserService(repo, mock.NewMockTokenService(mockCtrl), zap.NewNop())
		err := s.Delete(context.Background(), admin, valid(1))

		var friendly *domain.UserFriendlyError
		require.True(t, errors.As(err, &friendly))
		assert.Equal(t, "You cannot delete your own account", friendly.Message)
	})

	t.Run("Delete good", func(t *testing.T) {
		repo := mock.NewMockUserRepository(mockCtrl)
		repo.EXPECT().ReadUser(gomock.Any(), int64(3)).Return(valid(3), nil)
		repo.EXPECT().DeleteUser(gomock.Any(), int64(3)).Return(nil)

		s, _ := service.NewUserService(repo, mock.NewMockTokenService(mockCtrl), zap.NewNop())
		assert.NoError(t, s.Delete(context.Background(), admin, valid(3)))
	})
}

func TestService_ProductSave(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	product := &domain.Product{Name: "Strawberry Bun", Price: 350}

	tests := []struct {
		name     string
		mock     func(repo *mock.MockProductRepository)
		expError error
		friendly string
	}{
		{
			name: "Create good",
			mock: func(repo *mock.MockProductRepository) {
				repo.EXPECT().CreateProduct(gomock.Any(), product).
					Return(&domain.Product{Base: domain.Base{ID: 1}, Name: product.Name, Price: product.Price}, nil)
			},
		},
		{
			name: "Name taken",
			mock: func(repo *mock.MockProductRepository) {
				repo.EXPECT().CreateProduct(gomock.Any(), product).Return(nil, domain.ErrConflictingData)
			},
			friendly: "There is already a product with that name. Please select a unique name for the product.",
		},
		{
			name: "Unexpected failure",
			mock: func(repo *mock.MockProductRepository) {
				repo.EXPECT().CreateProduct(gomock.Any(), product).Return(nil, errors.New("boom"))
			},
			expError: domain.ErrInternal,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockProductRepository(mockCtrl)
			test.mock(repo)
			s, err := service.NewProductService(repo, zap.NewNop())
			require.NoError(t, err)

			saved, err := s.Save(context.Background(), nil, product)
			switch {
			case test.friendly != "":
				var friendly *domain.UserFriendlyError
				require.True(t, errors.As(err, &friendly))
				assert.Equal(t, test.friendly, friendly.Message)
			case test.expError != nil:
				assert.Equal(t, test.expError, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(1), saved.ID)
			}
		})
	}
}

func TestService_ProductDeleteReferenced(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	repo := mock.NewMockProductRepository(mockCtrl)
	repo.EXPECT().DeleteProduct(gomock.Any(), int64(5)).Return(domain.ErrReferenced)

	s, _ := service.NewProductService(repo, zap.NewNop())
	err := s.Delete(context.Background(), nil, &domain.Product{Base: domain.Base{ID: 5}})
	assert.ErrorIs(t, err, domain.ErrReferenced)
}

func TestService_PickupLocationSave(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	store := &domain.PickupLocation{Base: domain.Base{ID: 1, Version: 2}, Name: "Store"}

	tests := []struct {
		name     string
		mock     func(repo *mock.MockPickupLocationRepository)
		expError error
		friendly string
	}{
		{
			name: "Update good",
			mock: func(repo *mock.MockPickupLocationRepository) {
				repo.EXPECT().UpdatePickupLocation(gomock.Any(), store).
					Return(&domain.PickupLocation{Base: domain.Base{ID: 1, Version: 3}, Name: "Store"}, nil)
			},
		},
		{
			name: "Name taken",
			mock: func(repo *mock.MockPickupLocationRepository) {
				repo.EXPECT().UpdatePickupLocation(gomock.Any(), store).Return(nil, domain.ErrConflictingData)
			},
			friendly: "There is already a pickup location with that name. Please select a unique name for the location.",
		},
		{
			name: "Stale version",
			mock: func(repo *mock.MockPickupLocationRepository) {
				repo.EXPECT().UpdatePickupLocation(gomock.Any(), store).Return(nil, domain.ErrConcurrentUpdate)
			},
			expError: domain.ErrConcurrentUpdate,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			repo := mock.NewMockPickupLocationRepository(mockCtrl)
			test.mock(repo)
			s, err := service.NewPickupLocationService(repo, zap.NewNop())
			require.NoError(t, err)

			saved, err := s.Save(context.Background(), nil, store)
			switch {
			case test.friendly != "":
				var friendly *domain.UserFriendlyError
				require.True(t, errors.As(err, &friendly))
				assert.Equal(t, test.friendly, friendly.Message)
			case test.expError != nil:
				assert.Equal(t, test.expError, err)
			default:
				require.NoError(t, err)
				assert.Equal(t, 3, saved.Version)
			}
		})
	}
}

func TestService_PickupLocationDefault(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	store := &domain.PickupLocation{Base: domain.Base{ID: 1}, Name: "Store"}

	repo := mock.NewMockPickupLocationRepository(mockCtrl)
	repo.EXPECT().ListPickupLocations(gomock.Any(), "", domain.NewPageRequest(0, 1)).
		Return([]*domain.PickupLocation{store}, nil)
	repo.EXPECT().ListPickupLocations(gomock.Any(), "", domain.NewPageRequest(0, 1)).
		Return(nil, nil)

	s, _ := service.NewPickupLocationService(repo, zap.NewNop())

	l, err := s.GetDefault(context.Background())
	require.NoError(t, err)
	assert.Equal(t, store, l)

	_, err = s.GetDefault(context.Background())
	assert.Equal(t, domain.ErrDataNotFound, err)
}

type orderMocks struct {
	repo      *mock.MockOrderRepository
	locations *mock.MockPickupLocationService
	events    *mock.MockOrderEventPublisher
}

func newOrderService(t *testing.T, ctrl *gomock.Controller, now time.Time) (*service.OrderService, orderMocks) {
	m := orderMocks{
		repo:      mock.NewMockOrderRepository(ctrl),
		locations: mock.NewMockPickupLocationService(ctrl),
		events:    mock.NewMockOrderEventPublisher(ctrl),
	}
	s, err := service.NewOrderService(m.repo, m.locations, m.events, zap.NewNop())
	require.NoError(t, err)
	return s.WithClock(func() time.Time { return now }), m
}

func validOrder(id int64, version int) *domain.Order {
	return &domain.Order{
		Base:           domain.Base{ID: id, Version: version},
		State:          domain.OrderStateNew,
		DueDate:        time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC),
		DueTime:        domain.NewTimeOfDay(10, 0),
		Customer:       domain.Customer{FullName: "Jane Roe", PhoneNumber: "+1 555 1234 567"},
		PickupLocation: &domain.PickupLocation{Base: domain.Base{ID: 1}, Name: "Store"},
		Items: []*domain.OrderItem{
			{Product: &domain.Product{Base: domain.Base{ID: 1}, Price: 100}, Quantity: 2},
		},
	}
}

func TestService_OrderCreateNew(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2024, 3, 14, 9, 15, 0, 0, time.UTC)
	actor := &domain.User{Base: domain.Base{ID: 4}, FirstName: "Bob"}
	store := &domain.PickupLocation{Base: domain.Base{ID: 1}, Name: "Store"}

	s, m := newOrderService(t, mockCtrl, now)
	m.locations.EXPECT().GetDefault(gomock.Any()).Return(store, nil)

	o := s.CreateNew(context.Background(), actor)
	assert.True(t, o.IsNew())
	assert.Equal(t, domain.OrderStateNew, o.State)
	assert.Equal(t, store, o.PickupLocation)
	assert.Equal(t, domain.DateOf(now), o.DueDate)
	require.Len(t, o.History, 1)
	assert.Equal(t, now, o.History[0].Timestamp)
	assert.Equal(t, int64(4), o.History[0].CreatedByID)
}

func TestService_OrderSave(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2024, 3, 14, 9, 15, 0, 0, time.UTC)

	tests := []struct {
		name     string
		order    *domain.Order
		mock     func(m orderMocks)
		expError error
	}{
		{
			name:  "Create publishes created",
			order: validOrder(0, 0),
			mock: func(m orderMocks) {
				created := validOrder(10, 0)
				m.repo.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(created, nil)
				m.events.EXPECT().PublishOrderEvent(gomock.Any(), port.OrderEventCreated, created)
			},
		},
		{
			name:  "Update publishes updated",
			order: validOrder(10, 1),
			mock: func(m orderMocks) {
				updated := validOrder(10, 2)
				m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(updated, nil)
				m.events.EXPECT().PublishOrderEvent(gomock.Any(), port.OrderEventUpdated, updated)
			},
		},
		{
			name:  "Stale version",
			order: validOrder(10, 1),
			mock: func(m orderMocks) {
				m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConcurrentUpdate)
			},
			expError: domain.ErrConcurrentUpdate,
		},
		{
			name: "Invalid order never reaches storage",
			order: func() *domain.Order {
				o := validOrder(0, 0)
				o.Items = nil
				return o
			}(),
			mock:     func(m orderMocks) {},
			expError: domain.ErrRequiredFields,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newOrderService(t, mockCtrl, now)
			test.mock(m)

			saved, err := s.Save(context.Background(), nil, test.order)
			if test.expError != nil {
				assert.ErrorIs(t, err, test.expError)
				assert.Nil(t, saved)
				return
			}
			require.NoError(t, err)
			assert.NotZero(t, saved.ID)
		})
	}
}

func TestService_OrderDelete(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	admin := &domain.User{Base: domain.Base{ID: 1}, Role: domain.RoleAdmin}
	baker := &domain.User{Base: domain.Base{ID: 2}, Role: domain.RoleBaker}

	tests := []struct {
		name     string
		actor    *domain.User
		state    domain.OrderState
		deleted  bool
		friendly string
	}{
		{name: "Admin deletes new", actor: admin, state: domain.OrderStateNew, deleted: true},
		{name: "Admin deletes cancelled", actor: admin, state: domain.OrderStateCancelled, deleted: true},
		{name: "Admin cannot delete ready", actor: admin, state: domain.OrderStateReady,
			friendly: "Order can not be deleted in its current state"},
		{name: "Baker cannot delete", actor: baker, state: domain.OrderStateNew,
			friendly: "Only administrators can delete orders"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, m := newOrderService(t, mockCtrl, time.Now())
			o := validOrder(10, 1)
			o.State = test.state
			if test.deleted {
				m.repo.EXPECT().DeleteOrder(gomock.Any(), int64(10)).Return(nil)
				m.events.EXPECT().PublishOrderEvent(gomock.Any(), port.OrderEventDeleted, o)
			}

			err := s.Delete(context.Background(), test.actor, o)
			if test.deleted {
				assert.NoError(t, err)
				return
			}
			var friendly *domain.UserFriendlyError
			require.True(t, errors.As(err, &friendly))
			assert.Equal(t, test.friendly, friendly.Message)
		})
	}
}

func TestService_OrderChangeStateAndComment(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2024, 3, 14, 9, 15, 0, 0, time.UTC)
	actor := &domain.User{Base: domain.Base{ID: 3}, FirstName: "Ann"}

	t.Run("Legal transition", func(t *testing.T) {
		s, m := newOrderService(t, mockCtrl, now)
		o := validOrder(10, 1)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) { return o, nil })
		m.events.EXPECT().PublishOrderEvent(gomock.Any(), port.OrderEventStateChanged, gomock.Any())

		saved, err := s.ChangeState(context.Background(), actor, o, domain.OrderStateConfirmed)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderStateConfirmed, saved.State)
		assert.Equal(t, now, saved.History[len(saved.History)-1].Timestamp)
	})

	t.Run("Stale state change", func(t *testing.T) {
		s, m := newOrderService(t, mockCtrl, now)
		o := validOrder(10, 1)
		o.History = []domain.HistoryItem{{ID: 1, Message: domain.OrderPlacedMessage}}
		m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil, domain.ErrConcurrentUpdate)

		_, err := s.ChangeState(context.Background(), actor, o, domain.OrderStateConfirmed)
		assert.ErrorIs(t, err, domain.ErrConcurrentUpdate)
		assert.Equal(t, domain.OrderStateNew, o.State)
		assert.Len(t, o.History, 1)
	})

	t.Run("Illegal transition", func(t *testing.T) {
		s, _ := newOrderService(t, mockCtrl, now)
		o := validOrder(10, 1)
		o.State = domain.OrderStateDelivered

		_, err := s.ChangeState(context.Background(), actor, o, domain.OrderStateNew)
		assert.ErrorIs(t, err, domain.ErrIllegalStateTransition)
		assert.Equal(t, domain.OrderStateDelivered, o.State)
	})

	t.Run("Comment", func(t *testing.T) {
		s, m := newOrderService(t, mockCtrl, now)
		o := validOrder(10, 1)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, o *domain.Order) (*domain.Order, error) { return o, nil })
		m.events.EXPECT().PublishOrderEvent(gomock.Any(), port.OrderEventCommented, gomock.Any())

		saved, err := s.AddComment(context.Background(), actor, o, "  extra frosting ")
		require.NoError(t, err)
		last := saved.History[len(saved.History)-1]
		assert.Equal(t, "extra frosting", last.Message)
		assert.Nil(t, last.NewState)
	})

	t.Run("Comment on failed update", func(t *testing.T) {
		s, m := newOrderService(t, mockCtrl, now)
		o := validOrder(10, 1)
		m.repo.EXPECT().UpdateOrder(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

		_, err := s.AddComment(context.Background(), actor, o, "extra frosting")
		assert.ErrorIs(t, err, domain.ErrInternal)
		assert.Empty(t, o.History)
	})

	t.Run("Empty comment", func(t *testing.T) {
		s, _ := newOrderService(t, mockCtrl, now)
		_, err := s.AddComment(context.Background(), actor, validOrder(10, 1), " ")
		assert.ErrorIs(t, err, domain.ErrRequiredFields)
	})
}

func TestService_DashboardData(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := time.Date(2024, 3, 14, 9, 15, 0, 0, time.UTC)
	today := domain.DateOf(now)
	s, m := newOrderService(t, mockCtrl, now)

	stats := &domain.DeliveryStats{DueToday: 10, DeliveredToday: 3}
	m.repo.EXPECT().DeliveryStats(gomock.Any(), today).Return(stats, nil)
	m.repo.EXPECT().DeliveriesPerDay(gomock.Any(), 2024, time.March).Return(make([]int, 31), nil)
	m.repo.EXPECT().DeliveriesPerMonth(gomock.Any(), 2024).Return(make([]int, 12), nil)
	m.repo.EXPECT().SalesPerMonth(gomock.Any(), 2024).Return(make([]int64, 12), nil)
	m.repo.EXPECT().SalesPerMonth(gomock.Any(), 2023).Return(make([]int64, 12), nil)
	m.repo.EXPECT().SalesPerMonth(gomock.Any(), 2022).Return(make([]int64, 12), nil)
	m.repo.EXPECT().ProductDeliveries(gomock.Any(), 2024, time.March).
		Return([]domain.ProductDeliveries{{ProductName: "Bun", Quantity: 4}}, nil)

	data, err := s.DashboardData(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, *stats, data.DeliveryStats)
	assert.Len(t, data.DeliveriesThisMonth, 31)
	assert.Len(t, data.SalesPerMonth, 3)
	assert.Equal(t, "Bun", data.ProductDeliveries[0].ProductName)
}
