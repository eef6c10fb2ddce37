package port

import (
	"context"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
	ReadUser(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context, filter string, page domain.PageRequest) ([]*domain.User, error)
	CountUsers(ctx context.Context, filter string) (int64, error)
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	ReadProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context, filter string, page domain.PageRequest) ([]*domain.Product, error)
	CountProducts(ctx context.Context, filter string) (int64, error)
}

type PickupLocationRepository interface {
	CreatePickupLocation(ctx context.Context, location *domain.PickupLocation) (*domain.PickupLocation, error)
	UpdatePickupLocation(ctx context.Context, location *domain.PickupLocation) (*domain.PickupLocation, error)
	DeletePickupLocation(ctx context.Context, id int64) error
	ReadPickupLocation(ctx context.Context, id int64) (*domain.PickupLocation, error)
	ListPickupLocations(ctx context.Context, filter string, page domain.PageRequest) ([]*domain.PickupLocation, error)
	CountPickupLocations(ctx context.Context, filter string) (int64, error)
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	// UpdateOrder fails with domain.ErrConcurrentUpdate when order.Version is stale.
	UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	ReadOrder(ctx context.Context, id int64) (*domain.Order, error)
	// ListOrders returns orders due strictly after dueAfter (when set) sorted by due date, due time and id.
	ListOrders(ctx context.Context, filter string, dueAfter *time.Time, page domain.PageRequest) ([]*domain.Order, error)
	CountOrders(ctx context.Context, filter string, dueAfter *time.Time) (int64, error)
	LastCreatedOrder(ctx context.Context) (*domain.Order, error)

	DeliveryStats(ctx context.Context, today time.Time) (*domain.DeliveryStats, error)
	DeliveriesPerDay(ctx context.Context, year int, month time.Month) ([]int, error)
	DeliveriesPerMonth(ctx context.Context, year int) ([]int, error)
	SalesPerMonth(ctx context.Context, year int) ([]int64, error)
	ProductDeliveries(ctx context.Context, year int, month time.Month) ([]domain.ProductDeliveries, error)
}
