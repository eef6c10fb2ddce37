package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"go.uber.org/zap"
)

const productNameTaken = "There is already a product with that name. Please select a unique name for the product."

type ProductService struct {
	repo   port.ProductRepository
	logger *zap.Logger
}

func NewProductService(repo port.ProductRepository, logger *zap.Logger) (*ProductService, error) {
	return &ProductService{repo: repo, logger: logger}, nil
}

func (s *ProductService) Load(ctx context.Context, id int64) (*domain.Product, error) {
	p, err := s.repo.ReadProduct(ctx, id)
	if err != nil {
		return nil, repoError(s.logger, "Read product", err)
	}
	return p, nil
}

func (s *ProductService) Save(ctx context.Context, actor *domain.User, product *domain.Product) (*domain.Product, error) {
	if err := product.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.Product
	var err error
	if product.IsNew() {
		saved, err = s.repo.CreateProduct(ctx, product)
	} else {
		saved, err = s.repo.UpdateProduct(ctx, product)
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.NewUserFriendlyError(productNameTaken)
		}
		return nil, repoError(s.logger, "Save product", err)
	}
	return saved, nil
}

func (s *ProductService) Delete(ctx context.Context, actor *domain.User, product *domain.Product) error {
	err := s.repo.DeleteProduct(ctx, product.ID)
	if err != nil {
		return repoError(s.logger, "Delete product", err)
	}
	return nil
}

func (s *ProductService) CreateNew(ctx context.Context, actor *domain.User) *domain.Product {
	return &domain.Product{}
}

func (s *ProductService) FindAnyMatching(ctx context.Context, filter string,
	page domain.PageRequest) ([]*domain.Product, error) {
	list, err := s.repo.ListProducts(ctx, filter, page)
	if err != nil {
		return nil, repoError(s.logger, "List products", err)
	}
	return list, nil
}

func (s *ProductService) CountAnyMatching(ctx context.Context, filter string) (int64, error) {
	n, err := s.repo.CountProducts(ctx, filter)
	if err != nil {
		return 0, repoError(s.logger, "Count products", err)
	}
	return n, nil
}
