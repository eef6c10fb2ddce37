package service

import (
	"context"
	"errors"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"go.uber.org/zap"
)

const locationNameTaken = "There is already a pickup location with that name. Please select a unique name for the location."

type PickupLocationService struct {
	repo   port.PickupLocationRepository
	logger *zap.Logger
}

func NewPickupLocationService(repo port.PickupLocationRepository, logger *zap.Logger) (*PickupLocationService, error) {
	return &PickupLocationService{repo: repo, logger: logger}, nil
}

func (s *PickupLocationService) Load(ctx context.Context, id int64) (*domain.PickupLocation, error) {
	l, err := s.repo.ReadPickupLocation(ctx, id)
	if err != nil {
		return nil, repoError(s.logger, "Read pickup location", err)
	}
	return l, nil
}

func (s *PickupLocationService) Save(ctx context.Context, actor *domain.User,
	location *domain.PickupLocation) (*domain.PickupLocation, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}

	var saved *domain.PickupLocation
	var err error
	if location.IsNew() {
		saved, err = s.repo.CreatePickupLocation(ctx, location)
	} else {
		saved, err = s.repo.UpdatePickupLocation(ctx, location)
	}
	if err != nil {
		if errors.Is(err, domain.ErrConflictingData) {
			return nil, domain.NewUserFriendlyError(locationNameTaken)
		}
		return nil, repoError(s.logger, "Save pickup location", err)
	}
	return saved, nil
}

func (s *PickupLocationService) Delete(ctx context.Context, actor *domain.User, location *domain.PickupLocation) error {
	if err := s.repo.DeletePickupLocation(ctx, location.ID); err != nil {
		return repoError(s.logger, "Delete pickup location", err)
	}
	return nil
}

func (s *PickupLocationService) CreateNew(ctx context.Context, actor *domain.User) *domain.PickupLocation {
	return &domain.PickupLocation{}
}

func (s *PickupLocationService) FindAnyMatching(ctx context.Context, filter string,
	page domain.PageRequest) ([]*domain.PickupLocation, error) {
	list, err := s.repo.ListPickupLocations(ctx, filter, page)
	if err != nil {
		return nil, repoError(s.logger, "List pickup locations", err)
	}
	return list, nil
}

func (s *PickupLocationService) CountAnyMatching(ctx context.Context, filter string) (int64, error) {
	n, err := s.repo.CountPickupLocations(ctx, filter)
	if err != nil {
		return 0, repoError(s.logger, "Count pickup locations", err)
	}
	return n, nil
}

// GetDefault returns the first pickup location.
func (s *PickupLocationService) GetDefault(ctx context.Context) (*domain.PickupLocation, error) {
	list, err := s.FindAnyMatching(ctx, "", domain.NewPageRequest(0, 1))
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, domain.ErrDataNotFound
	}
	return list[0], nil
}
