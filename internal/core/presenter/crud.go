package presenter

import (
	"context"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"go.uber.org/zap"
)

// CrudPresenter is the stateless variant used by list and edit screens that hold the entity themselves.
type CrudPresenter[T domain.Entity] struct {
	service    port.CrudService[T]
	users      port.CurrentUser
	notifier   Notifier
	entityName string
	logger     *zap.Logger
}

func NewCrudPresenter[T domain.Entity](service port.CrudService[T], users port.CurrentUser,
	notifier Notifier, entityName string, logger *zap.Logger) *CrudPresenter[T] {
	return &CrudPresenter[T]{
		service:    service,
		users:      users,
		notifier:   notifier,
		entityName: entityName,
		logger:     logger,
	}
}

func (p *CrudPresenter[T]) Load(ctx context.Context, id int64, onSuccess func(T), onFail func(error)) {
	entity, err := p.service.Load(ctx, id)
	p.finish(entity, err, onSuccess, onFail)
}

func (p *CrudPresenter[T]) Save(ctx context.Context, entity T, onSuccess func(T), onFail func(error)) {
	saved, err := p.service.Save(ctx, p.users.CurrentUser(), entity)
	p.finish(saved, err, onSuccess, onFail)
}

func (p *CrudPresenter[T]) Delete(ctx context.Context, entity T, onSuccess func(T), onFail func(error)) {
	err := p.service.Delete(ctx, p.users.CurrentUser(), entity)
	p.finish(entity, err, onSuccess, onFail)
}

func (p *CrudPresenter[T]) finish(entity T, err error, onSuccess func(T), onFail func(error)) {
	if err != nil {
		reportError(p.logger, p.notifier, p.entityName, err)
		if onFail != nil {
			onFail(err)
		}
		return
	}
	if onSuccess != nil {
		onSuccess(entity)
	}
}
