package presenter_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MikeRez0/bakery/internal/core/domain"
	"github.com/MikeRez0/bakery/internal/core/port/mock"
	"github.com/MikeRez0/bakery/internal/core/presenter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeView struct {
	dirty         bool
	writeErr      error
	written       int
	cleared       int
	errors        []presenter.ErrorMessage
	confirmations []*presenter.Confirmation
	newName       string
}

func (v *fakeView) ShowError(msg presenter.ErrorMessage) { v.errors = append(v.errors, msg) }
func (v *fakeView) Confirm(c *presenter.Confirmation)    { v.confirmations = append(v.confirmations, c) }
func (v *fakeView) IsDirty() bool                        { return v.dirty }
func (v *fakeView) Clear()                               { v.cleared++ }

func (v *fakeView) Write(p *domain.Product) error {
	v.written++
	if v.writeErr != nil {
		return v.writeErr
	}
	if v.newName != "" {
		p.Name = v.newName
	}
	return nil
}

var actor = &domain.User{Base: domain.Base{ID: 1}, Role: domain.RoleAdmin}

func newPresenter(t *testing.T, ctrl *gomock.Controller) (*presenter.EntityPresenter[*domain.Product],
	*mock.MockCrudService[*domain.Product], *fakeView) {
	t.Helper()
	svc := mock.NewMockCrudService[*domain.Product](ctrl)
	users := mock.NewMockCurrentUser(ctrl)
	users.EXPECT().CurrentUser().Return(actor).AnyTimes()
	view := &fakeView{}
	return presenter.NewEntityPresenter[*domain.Product](svc, users, view, "Product", zap.NewNop()), svc, view
}

func TestEntityPresenter_CreateNewAndSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view := newPresenter(t, ctrl)
	draft := &domain.Product{}
	svc.EXPECT().CreateNew(gomock.Any(), actor).Return(draft)

	e := p.CreateNew(context.Background())
	assert.Same(t, draft, e)
	assert.True(t, p.IsNew())

	view.newName = "Bun"
	persisted := &domain.Product{Base: domain.Base{ID: 9, Version: 1}, Name: "Bun"}
	svc.EXPECT().Save(gomock.Any(), actor, draft).Return(persisted, nil)

	var got *domain.Product
	p.Save(context.Background(), func(saved *domain.Product) { got = saved })

	assert.Same(t, persisted, got)
	assert.Same(t, persisted, p.Entity())
	assert.False(t, p.IsNew())
	assert.Equal(t, "Bun", draft.Name)
	assert.Equal(t, 1, view.written)
	assert.Empty(t, view.errors)
}

func TestEntityPresenter_SaveStaleVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view := newPresenter(t, ctrl)
	loaded := &domain.Product{Base: domain.Base{ID: 3, Version: 2}, Name: "Cake"}
	svc.EXPECT().Load(gomock.Any(), int64(3)).Return(loaded, nil)
	p.LoadEntity(context.Background(), 3, nil)

	svc.EXPECT().Save(gomock.Any(), actor, loaded).Return(nil, domain.ErrConcurrentUpdate)

	called := false
	p.Save(context.Background(), func(*domain.Product) { called = true })

	assert.False(t, called)
	assert.Same(t, loaded, p.Entity())
	assert.Equal(t, 2, p.Entity().Version)
	assert.False(t, p.IsNew())
	require.Len(t, view.errors, 1)
	assert.Equal(t, presenter.CategoryConcurrentUpdate, view.errors[0].Category)
	assert.Equal(t, presenter.MsgConcurrentUpdate, view.errors[0].Message)
	assert.True(t, view.errors[0].Persistent)
}

func TestEntityPresenter_SaveInvalidSkipsBackend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view := newPresenter(t, ctrl)
	svc.EXPECT().CreateNew(gomock.Any(), actor).Return(&domain.Product{})
	p.CreateNew(context.Background())

	view.writeErr = domain.NewValidationError("name", domain.ErrRequiredFields)
	p.Save(context.Background(), func(*domain.Product) { t.Fatal("must not succeed") })

	require.Len(t, view.errors, 1)
	assert.Equal(t, presenter.CategoryRequiredFields, view.errors[0].Category)
	assert.Equal(t, "name", view.errors[0].Field)
	assert.False(t, view.errors[0].Persistent)
	assert.True(t, p.IsNew())
}

func TestEntityPresenter_LoadNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view := newPresenter(t, ctrl)
	svc.EXPECT().Load(gomock.Any(), int64(404)).Return(nil, domain.ErrDataNotFound)

	p.LoadEntity(context.Background(), 404, func(*domain.Product) { t.Fatal("must not succeed") })

	require.Len(t, view.errors, 1)
	assert.Equal(t, presenter.CategoryNotFound, view.errors[0].Category)
	assert.False(t, view.errors[0].Persistent)
	assert.False(t, p.HasEntity())
}

func TestEntityPresenter_DeleteNeedsConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entity := &domain.Product{Base: domain.Base{ID: 5}}

	t.Run("confirmed", func(t *testing.T) {
		p, svc, view := newPresenter(t, ctrl)
		svc.EXPECT().Load(gomock.Any(), int64(5)).Return(entity, nil)
		p.LoadEntity(context.Background(), 5, nil)

		var deleted *domain.Product
		p.Delete(context.Background(), func(e *domain.Product) { deleted = e })

		require.Len(t, view.confirmations, 1)
		assert.Equal(t, presenter.ConfirmDelete, view.confirmations[0].Message)
		assert.Nil(t, deleted)
		assert.NotNil(t, p.Pending())

		svc.EXPECT().Delete(gomock.Any(), actor, entity).Return(nil)
		view.confirmations[0].Confirm()

		assert.Same(t, entity, deleted)
		assert.Nil(t, p.Pending())

		// A second answer has no effect.
		view.confirmations[0].Confirm()
	})

	t.Run("cancelled", func(t *testing.T) {
		p, svc, view := newPresenter(t, ctrl)
		svc.EXPECT().Load(gomock.Any(), int64(5)).Return(entity, nil)
		p.LoadEntity(context.Background(), 5, nil)

		p.Delete(context.Background(), func(*domain.Product) { t.Fatal("must not delete") })
		view.confirmations[0].Cancel()
		view.confirmations[0].Confirm()

		assert.Nil(t, p.Pending())
	})

	t.Run("referenced", func(t *testing.T) {
		p, svc, view := newPresenter(t, ctrl)
		svc.EXPECT().Load(gomock.Any(), int64(5)).Return(entity, nil)
		p.LoadEntity(context.Background(), 5, nil)

		svc.EXPECT().Delete(gomock.Any(), actor, entity).Return(fmt.Errorf("delete: %w", domain.ErrReferenced))
		p.DeleteConfirmed(context.Background(), func(*domain.Product) { t.Fatal("must not succeed") })

		require.Len(t, view.errors, 1)
		assert.Equal(t, presenter.CategoryReferences, view.errors[0].Category)
		assert.Equal(t, presenter.MsgPreventedByReferences, view.errors[0].Message)
		assert.True(t, view.errors[0].Persistent)
	})
}

func TestEntityPresenter_NewConfirmationDisposesPrevious(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view := newPresenter(t, ctrl)
	svc.EXPECT().CreateNew(gomock.Any(), actor).Return(&domain.Product{})
	p.CreateNew(context.Background())
	view.dirty = true

	firstDiscarded := false
	p.Cancel(func() { firstDiscarded = true }, nil)
	p.Delete(context.Background(), nil)

	require.Len(t, view.confirmations, 2)
	assert.False(t, view.confirmations[0].Pending())
	assert.Same(t, view.confirmations[1], p.Pending())

	view.confirmations[0].Confirm()
	assert.False(t, firstDiscarded)

	p.Close()
	assert.False(t, view.confirmations[1].Pending())
	assert.Nil(t, p.Pending())
	assert.False(t, p.HasEntity())
	assert.Equal(t, 1, view.cleared)
}

func TestEntityPresenter_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("clean", func(t *testing.T) {
		p, _, view := newPresenter(t, ctrl)
		done := false
		p.Cancel(func() { done = true }, nil)
		assert.True(t, done)
		assert.Empty(t, view.confirmations)
	})

	t.Run("dirty discard", func(t *testing.T) {
		p, _, view := newPresenter(t, ctrl)
		view.dirty = true
		done := false
		p.Cancel(func() { done = true }, nil)

		require.Len(t, view.confirmations, 1)
		msg := view.confirmations[0].Message
		assert.Equal(t, "Unsaved Changes", msg.Caption)
		assert.Equal(t, "There are unsaved modifications to the Product. Discard changes?", msg.Message)
		assert.False(t, done)

		view.confirmations[0].Confirm()
		assert.True(t, done)
	})

	t.Run("dirty keep editing", func(t *testing.T) {
		p, _, view := newPresenter(t, ctrl)
		view.dirty = true
		kept := false
		p.Cancel(func() { t.Fatal("must not discard") }, func() { kept = true })
		view.confirmations[0].Cancel()
		assert.True(t, kept)
	})
}

func TestEntityPresenter_ExecuteUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, svc, view := newPresenter(t, ctrl)
	entity := &domain.Product{Base: domain.Base{ID: 5, Version: 1}}
	svc.EXPECT().Load(gomock.Any(), int64(5)).Return(entity, nil)
	p.LoadEntity(context.Background(), 5, nil)

	updated := &domain.Product{Base: domain.Base{ID: 5, Version: 2}}
	p.ExecuteUpdate(context.Background(),
		func(_ context.Context, a *domain.User, e *domain.Product) (*domain.Product, error) {
			assert.Same(t, actor, a)
			assert.Same(t, entity, e)
			return updated, nil
		}, nil)
	assert.Same(t, updated, p.Entity())

	p.ExecuteUpdate(context.Background(),
		func(context.Context, *domain.User, *domain.Product) (*domain.Product, error) {
			return nil, errors.New("socket closed")
		}, func(*domain.Product) { t.Fatal("must not succeed") })

	require.Len(t, view.errors, 1)
	assert.Equal(t, presenter.CategoryApplication, view.errors[0].Category)
	assert.Equal(t, presenter.MsgUnexpectedInternalFail, view.errors[0].Message)
	assert.Same(t, updated, p.Entity())
}

type fakeNotifier struct {
	errors []presenter.ErrorMessage
}

func (n *fakeNotifier) ShowError(msg presenter.ErrorMessage) { n.errors = append(n.errors, msg) }

func TestCrudPresenter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := mock.NewMockCrudService[*domain.Product](ctrl)
	users := mock.NewMockCurrentUser(ctrl)
	users.EXPECT().CurrentUser().Return(actor).AnyTimes()
	notifier := &fakeNotifier{}
	p := presenter.NewCrudPresenter[*domain.Product](svc, users, notifier, "Product", zap.NewNop())

	product := &domain.Product{Name: "Bun"}
	friendly := domain.NewUserFriendlyError("There is already a product with that name.")
	svc.EXPECT().Save(gomock.Any(), actor, product).Return(nil, friendly)

	var failed error
	p.Save(context.Background(), product, func(*domain.Product) { t.Fatal("must not succeed") },
		func(err error) { failed = err })

	assert.Equal(t, friendly, failed)
	require.Len(t, notifier.errors, 1)
	assert.Equal(t, friendly.Message, notifier.errors[0].Message)
	assert.True(t, notifier.errors[0].Persistent)

	svc.EXPECT().Delete(gomock.Any(), actor, product).Return(nil)
	var deleted *domain.Product
	p.Delete(context.Background(), product, func(e *domain.Product) { deleted = e }, nil)
	assert.Same(t, product, deleted)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		category   presenter.Category
		persistent bool
		known      bool
	}{
		{name: "friendly", err: domain.NewUserFriendlyError("locked"), category: presenter.CategoryApplication,
			persistent: true, known: true},
		{name: "references", err: domain.ErrReferenced, category: presenter.CategoryReferences,
			persistent: true, known: true},
		{name: "concurrent", err: fmt.Errorf("update: %w", domain.ErrConcurrentUpdate),
			category: presenter.CategoryConcurrentUpdate, persistent: true, known: true},
		{name: "conflicting", err: fmt.Errorf("insert: %w", domain.ErrConflictingData),
			category: presenter.CategoryApplication, persistent: true, known: true},
		{name: "not found", err: domain.ErrDataNotFound, category: presenter.CategoryNotFound, known: true},
		{name: "validation", err: domain.NewValidationError("state", domain.ErrIllegalStateTransition),
			category: presenter.CategoryRequiredFields, known: true},
		{name: "required", err: domain.ErrRequiredFields, category: presenter.CategoryRequiredFields, known: true},
		{name: "unknown", err: errors.New("disk full")},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			msg, ok := presenter.Classify(test.err)
			assert.Equal(t, test.known, ok)
			if !ok {
				return
			}
			assert.Equal(t, test.category, msg.Category)
			assert.Equal(t, test.persistent, msg.Persistent)
			assert.NotEmpty(t, msg.Message)
		})
	}
}
