package http

import (
	"errors"
	"time"

	"github.com/MikeRez0/bakery/internal/core/dashboard"
	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// upcomingOrdersLimit bounds the orders scanned for the next delivery subtitles.
const upcomingOrdersLimit = 500

type DashboardHandler struct {
	Handler
	service port.OrderService
	now     func() time.Time
}

type DashboardResp struct {
	Counters []domain.OrdersCountData `json:"counters"`
	*domain.DashboardData
}

func NewDashboardHandler(service port.OrderService, logger *zap.Logger) (*DashboardHandler, error) {
	return &DashboardHandler{
		Handler: *NewHandler(logger.Named("dashboard")),
		service: service,
		now:     time.Now,
	}, nil
}

func (dh *DashboardHandler) GetDashboard(ctx *gin.Context) {
	now := dh.now()

	data, err := dh.service.DashboardData(ctx, now)
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	yesterday := domain.DateOf(now).AddDate(0, 0, -1)
	orders, err := dh.service.FindAnyMatchingAfterDueDate(ctx, "", &yesterday,
		domain.NewPageRequest(0, upcomingOrdersLimit))
	if err != nil {
		dh.handleError(ctx, err)
		return
	}

	last, err := dh.service.LastCreatedOrder(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrDataNotFound) {
			dh.handleError(ctx, err)
			return
		}
		last = nil
	}

	dh.handleSuccess(ctx, DashboardResp{
		Counters:      dashboard.Counters(data.DeliveryStats, orders, last, now),
		DashboardData: data,
	})
}
