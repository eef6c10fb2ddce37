package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/presenter"
	"github.com/MikeRez0/bakery/internal/core/storefront"
	"github.com/MikeRez0/bakery/internal/core/utils"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service   port.OrderService
	products  port.ProductService
	locations port.PickupLocationService
	sessions  *storefront.Sessions
	now       func() time.Time
}

func NewOrderHandler(service port.OrderService, products port.ProductService, locations port.PickupLocationService,
	sessions *storefront.Sessions, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler:   *NewHandler(logger.Named("order")),
		service:   service,
		products:  products,
		locations: locations,
		sessions:  sessions,
		now:       time.Now,
	}, nil
}

type OrderItemRequest struct {
	ProductID int64  `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
	Comment   string `json:"comment"`
}

type OrderRequest struct {
	Version int `json:"version"`
	// DueDate is formatted as 2006-01-02.
	DueDate          string             `json:"due_date"`
	DueTime          *domain.TimeOfDay  `json:"due_time"`
	Customer         domain.Customer    `json:"customer"`
	PickupLocationID int64              `json:"pickup_location_id"`
	Paid             bool               `json:"paid"`
	Items            []OrderItemRequest `json:"items"`
}

type CommentRequest struct {
	Comment string `json:"comment"`
}

type StateRequest struct {
	State string `json:"state" binding:"required"`
}

type OrderResp struct {
	*domain.Order
	Mode         string   `json:"mode,omitempty"`
	New          bool     `json:"is_new"`
	DisplayTotal string   `json:"display_total"`
	Notification []string `json:"notifications,omitempty"`
}

// withPresenter runs fn on the storefront session of the user, holding the session for the whole request.
func (oh *OrderHandler) withPresenter(ctx *gin.Context, view *orderView,
	fn func(p *storefront.OrderPresenter, session *storefront.Session)) {
	session := oh.sessions.Get(getCurrentUser(ctx).ID)
	session.Lock()
	defer session.Unlock()

	p := storefront.NewOrderPresenter(oh.service, session, currentUser(ctx), view, oh.logger)
	view.draft = p.Entity().Entity
	fn(p, session)
}

func (oh *OrderHandler) ListOrders(ctx *gin.Context) {
	filter := ctx.Query("filter")
	showPrevious, _ := strconv.ParseBool(ctx.Query("showPrevious"))
	page := pageRequest(ctx)

	view := newOrderView(false, nil)
	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, session *storefront.Session) {
		requested := storefront.OrderFilter{Filter: filter, ShowPrevious: showPrevious}
		if page.Page == 0 || session.Filter() != requested {
			p.FilterChanged(filter, showPrevious)
		}

		orders, err := p.FetchPage(ctx, page)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}
		total, err := p.Size(ctx)
		if err != nil {
			oh.handleError(ctx, err)
			return
		}

		now := oh.now()
		cards := make([]storefront.OrderCard, 0, len(orders))
		for _, o := range orders {
			var header *domain.OrderCardHeader
			if h, ok := p.HeaderByOrderID(o.ID); ok {
				header = &h
			}
			cards = append(cards, storefront.NewOrderCard(o, header, now))
		}
		oh.handleSuccess(ctx, pageResponse[storefront.OrderCard]{Items: cards, Total: total})
	})
}

func (oh *OrderHandler) NewOrder(ctx *gin.Context) {
	view := newOrderView(false, nil)
	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, _ *storefront.Session) {
		p.CreateNewOrder(ctx)
		oh.respondOpened(ctx, view)
	})
}

func (oh *OrderHandler) GetOrder(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	view := newOrderView(false, nil)
	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, _ *storefront.Session) {
		p.OnNavigation(ctx, id, false)
		oh.respondOpened(ctx, view)
	})
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	view, ok := oh.bindOrder(ctx)
	if !ok {
		return
	}

	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, _ *storefront.Session) {
		p.CreateNewOrder(ctx)
		oh.reviewAndSave(ctx, p, view, http.StatusCreated)
	})
}

func (oh *OrderHandler) UpdateOrder(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	view, ok := oh.bindOrder(ctx)
	if !ok {
		return
	}

	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, _ *storefront.Session) {
		p.OnNavigation(ctx, id, true)
		if view.err != nil {
			oh.handleErrorMessage(ctx, *view.err)
			return
		}
		oh.reviewAndSave(ctx, p, view, http.StatusOK)
	})
}

// DeleteOrder needs the confirm=true query parameter, otherwise it answers with the confirmation to show.
func (oh *OrderHandler) DeleteOrder(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	view := newOrderView(confirmed(ctx), nil)
	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, _ *storefront.Session) {
		p.OnNavigation(ctx, id, false)
		if view.err != nil {
			oh.handleErrorMessage(ctx, *view.err)
			return
		}

		p.Delete(ctx)
		if c := view.awaitingConfirmation(); c != nil {
			p.CloseSilently()
			oh.handleConfirmationRequired(ctx, c)
			return
		}
		if view.err != nil {
			oh.handleErrorMessage(ctx, *view.err)
			return
		}
		oh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
	})
}

func (oh *OrderHandler) AddComment(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	req := CommentRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	view := newOrderView(false, nil)
	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, _ *storefront.Session) {
		p.OnNavigation(ctx, id, false)
		if view.err == nil {
			p.AddComment(ctx, req.Comment)
		}
		oh.respondOpened(ctx, view)
	})
}

func (oh *OrderHandler) ChangeState(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	req := StateRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return
	}
	state, err := domain.ParseOrderState(req.State)
	if err != nil {
		oh.respondInvalid(ctx, err)
		return
	}

	view := newOrderView(false, nil)
	oh.withPresenter(ctx, view, func(p *storefront.OrderPresenter, _ *storefront.Session) {
		p.OnNavigation(ctx, id, false)
		if view.err == nil {
			p.ChangeState(ctx, state)
		}
		oh.respondOpened(ctx, view)
	})
}

func (oh *OrderHandler) bindOrder(ctx *gin.Context) (*orderView, bool) {
	req := OrderRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, err)
		return nil, false
	}
	write, err := oh.orderWriter(ctx, &req)
	if err != nil {
		oh.respondInvalid(ctx, err)
		return nil, false
	}
	return newOrderView(false, write), true
}

func (oh *OrderHandler) reviewAndSave(ctx *gin.Context, p *storefront.OrderPresenter, view *orderView, status int) {
	if !p.Review() {
		if view.err != nil {
			oh.handleErrorMessage(ctx, *view.err)
			return
		}
		oh.handleErrorMessage(ctx, presenter.ErrorMessage{
			Category: presenter.CategoryRequiredFields,
			Message:  presenter.MsgRequiredFieldsMissing,
			Field:    view.focused,
		})
		return
	}

	saved, ok := p.Save(ctx)
	if !ok {
		oh.handleErrorMessage(ctx, *view.err)
		return
	}
	oh.handleSuccessWithStatus(ctx, OrderResp{
		Order:        saved,
		DisplayTotal: utils.FormatAsCurrency(saved.TotalPrice()),
		Notification: view.notifications,
	}, status)
}

func (oh *OrderHandler) respondOpened(ctx *gin.Context, view *orderView) {
	if view.err != nil {
		oh.handleErrorMessage(ctx, *view.err)
		return
	}
	if view.open == nil {
		oh.handleError(ctx, domain.ErrInternal)
		return
	}
	oh.handleSuccess(ctx, OrderResp{
		Order:        view.open.order,
		Mode:         view.open.mode.String(),
		New:          view.open.isNew,
		DisplayTotal: utils.FormatAsCurrency(view.open.order.TotalPrice()),
		Notification: view.notifications,
	})
}

func (oh *OrderHandler) respondInvalid(ctx *gin.Context, err error) {
	msg, ok := presenter.Classify(err)
	if !ok {
		oh.handleError(ctx, err)
		return
	}
	oh.handleErrorMessage(ctx, msg)
}

// orderWriter resolves the referenced products and location once and returns the function
// that copies the request onto an order.
func (oh *OrderHandler) orderWriter(ctx context.Context, req *OrderRequest) (func(*domain.Order) error, error) {
	var dueDate time.Time
	if req.DueDate != "" {
		d, err := time.Parse(time.DateOnly, req.DueDate)
		if err != nil {
			return nil, domain.NewValidationError("due_date", err)
		}
		dueDate = d
	}

	var location *domain.PickupLocation
	if req.PickupLocationID != 0 {
		l, err := oh.locations.Load(ctx, req.PickupLocationID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.NewValidationError("pickup_location", err)
			}
			return nil, err
		}
		location = l
	}

	products := make(map[int64]*domain.Product, len(req.Items))
	for i, item := range req.Items {
		if _, ok := products[item.ProductID]; ok {
			continue
		}
		product, err := oh.products.Load(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrDataNotFound) {
				return nil, domain.NewValidationError(fmt.Sprintf("items[%d].product", i), err)
			}
			return nil, err
		}
		products[item.ProductID] = product
	}

	return func(o *domain.Order) error {
		o.Version = req.Version
		if !dueDate.IsZero() {
			o.DueDate = dueDate
		}
		if req.DueTime != nil {
			o.DueTime = *req.DueTime
		}
		o.Customer = req.Customer
		if location != nil {
			o.PickupLocation = location
		}
		o.Paid = req.Paid

		items := make([]*domain.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, &domain.OrderItem{
				Product:  products[item.ProductID],
				Quantity: item.Quantity,
				Comment:  item.Comment,
			})
		}
		o.Items = items
		return nil
	}, nil
}
