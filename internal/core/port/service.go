package port

import (
	"context"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
)

// CrudService is the capability set the entity presenters drive.
//
//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock
type CrudService[T domain.Entity] interface {
	Load(ctx context.Context, id int64) (T, error)
	Save(ctx context.Context, actor *domain.User, entity T) (T, error)
	Delete(ctx context.Context, actor *domain.User, entity T) error
	CreateNew(ctx context.Context, actor *domain.User) T
}

type FilterableCrudService[T domain.Entity] interface {
	CrudService[T]
	FindAnyMatching(ctx context.Context, filter string, page domain.PageRequest) ([]T, error)
	CountAnyMatching(ctx context.Context, filter string) (int64, error)
}

type UserService interface {
	FilterableCrudService[*domain.User]
	Login(ctx context.Context, email string, password string) (string, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
}

type ProductService interface {
	FilterableCrudService[*domain.Product]
}

type PickupLocationService interface {
	FilterableCrudService[*domain.PickupLocation]
	GetDefault(ctx context.Context) (*domain.PickupLocation, error)
}

type OrderService interface {
	CrudService[*domain.Order]
	ChangeState(ctx context.Context, actor *domain.User, order *domain.Order, state domain.OrderState) (*domain.Order, error)
	AddComment(ctx context.Context, actor *domain.User, order *domain.Order, comment string) (*domain.Order, error)
	FindAnyMatchingAfterDueDate(ctx context.Context, filter string, after *time.Time,
		page domain.PageRequest) ([]*domain.Order, error)
	CountAnyMatchingAfterDueDate(ctx context.Context, filter string, after *time.Time) (int64, error)
	LastCreatedOrder(ctx context.Context) (*domain.Order, error)
	DashboardData(ctx context.Context, now time.Time) (*domain.DashboardData, error)
}
