package http

import (
	"net/http"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"github.com/MikeRez0/bakery/internal/core/presenter"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EntityHandler serves list, read, create, update and delete of one entity type over CrudPresenter.
// R is the request body, apply copies it onto the entity.
type EntityHandler[T domain.Entity, R any] struct {
	Handler
	service    port.FilterableCrudService[T]
	entityName string
	apply      func(req *R, entity T) error
	render     func(entity T) any
}

func NewEntityHandler[T domain.Entity, R any](service port.FilterableCrudService[T], entityName string,
	apply func(req *R, entity T) error, render func(entity T) any, logger *zap.Logger) *EntityHandler[T, R] {
	if render == nil {
		render = func(entity T) any { return entity }
	}
	return &EntityHandler[T, R]{
		Handler:    *NewHandler(logger.Named(entityName)),
		service:    service,
		entityName: entityName,
		apply:      apply,
		render:     render,
	}
}

func (eh *EntityHandler[T, R]) presenter(ctx *gin.Context, view presenter.Notifier) *presenter.CrudPresenter[T] {
	return presenter.NewCrudPresenter[T](eh.service, currentUser(ctx), view, eh.entityName, eh.logger)
}

func (eh *EntityHandler[T, R]) List(ctx *gin.Context) {
	filter := ctx.Query("filter")
	page := pageRequest(ctx)

	list, err := eh.service.FindAnyMatching(ctx, filter, page)
	if err != nil {
		eh.handleError(ctx, err)
		return
	}
	total, err := eh.service.CountAnyMatching(ctx, filter)
	if err != nil {
		eh.handleError(ctx, err)
		return
	}

	items := make([]any, 0, len(list))
	for _, e := range list {
		items = append(items, eh.render(e))
	}
	eh.handleSuccess(ctx, pageResponse[any]{Items: items, Total: total})
}

func (eh *EntityHandler[T, R]) Get(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		eh.handleValidationError(ctx, err)
		return
	}

	view := newRequestView[T](false, nil)
	eh.presenter(ctx, view).Load(ctx, id,
		func(entity T) { eh.handleSuccess(ctx, eh.render(entity)) },
		func(error) { eh.handleErrorMessage(ctx, *view.err) })
}

func (eh *EntityHandler[T, R]) Create(ctx *gin.Context) {
	req := new(R)
	if err := ctx.ShouldBindJSON(req); err != nil {
		eh.handleValidationError(ctx, err)
		return
	}

	view := newRequestView[T](false, nil)
	entity := eh.service.CreateNew(ctx, getCurrentUser(ctx))
	if err := eh.apply(req, entity); err != nil {
		eh.reportApplyError(ctx, view, err)
		return
	}

	eh.presenter(ctx, view).Save(ctx, entity,
		func(saved T) { eh.handleSuccessWithStatus(ctx, eh.render(saved), http.StatusCreated) },
		func(error) { eh.handleErrorMessage(ctx, *view.err) })
}

func (eh *EntityHandler[T, R]) Update(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		eh.handleValidationError(ctx, err)
		return
	}
	req := new(R)
	if err := ctx.ShouldBindJSON(req); err != nil {
		eh.handleValidationError(ctx, err)
		return
	}

	view := newRequestView[T](false, nil)
	p := eh.presenter(ctx, view)
	p.Load(ctx, id,
		func(entity T) {
			if err := eh.apply(req, entity); err != nil {
				eh.reportApplyError(ctx, view, err)
				return
			}
			p.Save(ctx, entity,
				func(saved T) { eh.handleSuccess(ctx, eh.render(saved)) },
				func(error) { eh.handleErrorMessage(ctx, *view.err) })
		},
		func(error) { eh.handleErrorMessage(ctx, *view.err) })
}

// Delete needs the confirm=true query parameter, otherwise it answers with the confirmation to show.
func (eh *EntityHandler[T, R]) Delete(ctx *gin.Context) {
	id, err := pathID(ctx)
	if err != nil {
		eh.handleValidationError(ctx, err)
		return
	}

	if !confirmed(ctx) {
		eh.handleSuccessWithStatus(ctx, confirmationResponse{Confirmation: presenter.ConfirmDelete},
			http.StatusPreconditionRequired)
		return
	}

	view := newRequestView[T](true, nil)
	p := eh.presenter(ctx, view)
	p.Load(ctx, id,
		func(entity T) {
			p.Delete(ctx, entity,
				func(T) { eh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent) },
				func(error) { eh.handleErrorMessage(ctx, *view.err) })
		},
		func(error) { eh.handleErrorMessage(ctx, *view.err) })
}

// reportApplyError classifies a request that could not be applied to the entity.
func (eh *EntityHandler[T, R]) reportApplyError(ctx *gin.Context, view *requestView[T], err error) {
	msg, ok := presenter.Classify(err)
	if !ok {
		eh.handleValidationError(ctx, err)
		return
	}
	view.ShowError(msg)
	eh.handleErrorMessage(ctx, msg)
}
