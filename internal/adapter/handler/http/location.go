package http

import (
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"go.uber.org/zap"
)

type PickupLocationRequest struct {
	Version int    `json:"version"`
	Name    string `json:"name" binding:"required"`
}

func applyPickupLocation(req *PickupLocationRequest, location *domain.PickupLocation) error {
	location.Version = req.Version
	location.Name = req.Name
	return nil
}

func NewPickupLocationHandler(service port.PickupLocationService,
	logger *zap.Logger) (*EntityHandler[*domain.PickupLocation, PickupLocationRequest], error) {
	return NewEntityHandler[*domain.PickupLocation](service, "PickupLocation", applyPickupLocation, nil, logger), nil
}
