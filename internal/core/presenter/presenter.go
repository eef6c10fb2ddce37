package presenter

import (
	"context"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port"
	"go.uber.org/zap"
)

type entityState[T domain.Entity] struct {
	entity  T
	isNew   bool
	loaded  bool
	pending *Confirmation
}

// EntityPresenter runs the load, edit, save and delete workflow of a single entity.
// Failures never escape: they are classified and shown through the view.
// An EntityPresenter belongs to one editing session and is not safe for concurrent use.
type EntityPresenter[T domain.Entity] struct {
	service    port.CrudService[T]
	users      port.CurrentUser
	view       EntityView[T]
	entityName string
	logger     *zap.Logger
	state      entityState[T]
}

func NewEntityPresenter[T domain.Entity](service port.CrudService[T], users port.CurrentUser,
	view EntityView[T], entityName string, logger *zap.Logger) *EntityPresenter[T] {
	return &EntityPresenter[T]{
		service:    service,
		users:      users,
		view:       view,
		entityName: entityName,
		logger:     logger,
	}
}

func (p *EntityPresenter[T]) Entity() T {
	return p.state.entity
}

func (p *EntityPresenter[T]) IsNew() bool {
	return p.state.isNew
}

// HasEntity reports whether an entity was created or loaded since the last Close.
func (p *EntityPresenter[T]) HasEntity() bool {
	return p.state.loaded
}

func (p *EntityPresenter[T]) EntityName() string {
	return p.entityName
}

func (p *EntityPresenter[T]) CreateNew(ctx context.Context) T {
	entity := p.service.CreateNew(ctx, p.users.CurrentUser())
	p.refresh(entity, true)
	return entity
}

func (p *EntityPresenter[T]) LoadEntity(ctx context.Context, id int64, onSuccess func(T)) {
	entity, err := p.service.Load(ctx, id)
	if err != nil {
		p.report(err)
		return
	}
	p.refresh(entity, false)
	if onSuccess != nil {
		onSuccess(entity)
	}
}

// WriteEntity moves the view state into the current entity. Invalid input is reported and false is returned.
func (p *EntityPresenter[T]) WriteEntity() bool {
	if err := p.view.Write(p.state.entity); err != nil {
		p.report(err)
		return false
	}
	return true
}

// Save validates and persists the current entity. On success the persisted copy replaces the current one.
func (p *EntityPresenter[T]) Save(ctx context.Context, onSuccess func(T)) {
	if !p.WriteEntity() {
		return
	}
	saved, err := p.service.Save(ctx, p.users.CurrentUser(), p.state.entity)
	if err != nil {
		p.report(err)
		return
	}
	p.refresh(saved, false)
	if onSuccess != nil {
		onSuccess(saved)
	}
}

// ExecuteUpdate applies a server side update to the current entity, such as a state change.
func (p *EntityPresenter[T]) ExecuteUpdate(ctx context.Context,
	update func(ctx context.Context, actor *domain.User, entity T) (T, error), onSuccess func(T)) {
	updated, err := update(ctx, p.users.CurrentUser(), p.state.entity)
	if err != nil {
		p.report(err)
		return
	}
	p.refresh(updated, false)
	if onSuccess != nil {
		onSuccess(updated)
	}
}

// Delete asks for confirmation and deletes the current entity once confirmed.
// onSuccess receives the deleted entity.
func (p *EntityPresenter[T]) Delete(ctx context.Context, onSuccess func(T)) {
	p.requestConfirmation(ConfirmDelete, func() {
		p.DeleteConfirmed(ctx, onSuccess)
	}, nil)
}

// DeleteConfirmed deletes the current entity without asking.
func (p *EntityPresenter[T]) DeleteConfirmed(ctx context.Context, onSuccess func(T)) {
	entity := p.state.entity
	if err := p.service.Delete(ctx, p.users.CurrentUser(), entity); err != nil {
		p.report(err)
		return
	}
	if onSuccess != nil {
		onSuccess(entity)
	}
}

// Cancel runs onConfirmed right away when nothing was edited, otherwise after the user agrees to discard the changes.
func (p *EntityPresenter[T]) Cancel(onConfirmed func(), onCancelled func()) {
	if !p.view.IsDirty() {
		if onConfirmed != nil {
			onConfirmed()
		}
		return
	}
	p.requestConfirmation(UnsavedChanges.Format(p.entityName), onConfirmed, onCancelled)
}

// Close forgets the entity and drops a pending confirmation.
func (p *EntityPresenter[T]) Close() {
	p.disposePending()
	p.state = entityState[T]{}
	p.view.Clear()
}

// Pending returns the confirmation waiting for an answer, if any.
func (p *EntityPresenter[T]) Pending() *Confirmation {
	if p.state.pending == nil || !p.state.pending.Pending() {
		return nil
	}
	return p.state.pending
}

func (p *EntityPresenter[T]) requestConfirmation(msg Message, onConfirm func(), onCancel func()) {
	p.disposePending()
	var c *Confirmation
	c = newConfirmation(msg,
		func() {
			p.clearPending(c)
			if onConfirm != nil {
				onConfirm()
			}
		},
		func() {
			p.clearPending(c)
			if onCancel != nil {
				onCancel()
			}
		})
	p.state.pending = c
	p.view.Confirm(c)
}

func (p *EntityPresenter[T]) clearPending(c *Confirmation) {
	if p.state.pending == c {
		p.state.pending = nil
	}
}

func (p *EntityPresenter[T]) disposePending() {
	if p.state.pending != nil {
		p.state.pending.Dispose()
		p.state.pending = nil
	}
}

func (p *EntityPresenter[T]) refresh(entity T, isNew bool) {
	p.state.entity = entity
	p.state.isNew = isNew
	p.state.loaded = true
}

func (p *EntityPresenter[T]) report(err error) {
	reportError(p.logger, p.view, p.entityName, err)
}

func reportError(logger *zap.Logger, notifier Notifier, entityName string, err error) ErrorMessage {
	msg, ok := Classify(err)
	if !ok {
		logger.Error("Unexpected error", zap.String("entity", entityName), zap.Error(err))
		msg = internalError
	} else {
		logger.Debug("Operation failed",
			zap.String("entity", entityName),
			zap.Stringer("category", msg.Category),
			zap.Error(err))
	}
	notifier.ShowError(msg)
	return msg
}
