// Package crud is the validate, persist, publish pipeline shared by every entity.
package crud

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

type Usecase[E Entity, C any, U Identified, F any] struct {
	Options[E, C, U, F]
}

func New[E Entity, C any, U Identified, F any](opts Options[E, C, U, F]) (*Usecase[E, C, U, F], error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate %s usecase options: %v", opts.Name, err)
	}

	if opts.Publisher == nil {
		opts.Publisher = noopPublisher{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Usecase[E, C, U, F]{Options: opts}, nil
}

func (u *Usecase[E, C, U, F]) Create(ctx context.Context, in C) (E, error) {
	var zero E

	in, err := u.Schema.ValidateCreate(in)
	if err != nil {
		return zero, u.fail(ctx, "create", 0, err)
	}

	var created E
	err = u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		created, err = u.Store.Insert(ctx, in)
		return err
	})
	if err != nil {
		return zero, u.fail(ctx, "create", 0, err)
	}

	u.publish(ctx, entity.ActionCreated, created.EntityID(), created)

	slogx.Info(ctx, "success to create "+u.Name, slogx.EntityID(created.EntityID()))

	return created, nil
}

func (u *Usecase[E, C, U, F]) Get(ctx context.Context, id int64) (E, error) {
	var zero E

	if err := u.Schema.ValidateID(id); err != nil {
		return zero, u.fail(ctx, "get", id, err)
	}

	item, err := u.Store.SelectByID(ctx, id)
	if err != nil {
		return zero, u.fail(ctx, "get", id, err)
	}

	return item, nil
}

// List never returns a nil slice on success.
func (u *Usecase[E, C, U, F]) List(ctx context.Context, f F) ([]E, error) {
	items, err := u.Store.SelectMany(ctx, u.Schema.ValidateFilter(f))
	if err != nil {
		return nil, u.fail(ctx, "list", 0, err)
	}

	if items == nil {
		items = []E{}
	}

	return items, nil
}

func (u *Usecase[E, C, U, F]) Update(ctx context.Context, in U) (E, error) {
	var zero E

	id := in.TargetID()

	in, err := u.Schema.ValidateUpdate(in)
	if err != nil {
		return zero, u.fail(ctx, "update", id, err)
	}

	var updated E
	err = u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		updated, err = u.Store.UpdateByID(ctx, id, in)
		return err
	})
	if err != nil {
		return zero, u.fail(ctx, "update", id, err)
	}

	u.publish(ctx, entity.ActionUpdated, updated.EntityID(), updated)

	return updated, nil
}

// Delete reports entity.ErrNotFound when no row was removed.
func (u *Usecase[E, C, U, F]) Delete(ctx context.Context, id int64) error {
	if err := u.Schema.ValidateID(id); err != nil {
		return u.fail(ctx, "delete", id, err)
	}

	var removed bool
	err := u.Tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		removed, err = u.Store.DeleteByID(ctx, id)
		return err
	})
	if err != nil {
		return u.fail(ctx, "delete", id, err)
	}

	if !removed {
		return u.fail(ctx, "delete", id, entity.ErrNotFound)
	}

	u.publish(ctx, entity.ActionDeleted, id, nil)

	return nil
}

func (u *Usecase[E, C, U, F]) publish(ctx context.Context, action entity.ChangeAction, id int64, payload any) {
	ev := entity.ChangeEvent{
		Entity:     u.Name,
		Action:     action,
		ID:         id,
		OccurredAt: u.Now().UTC(),
		Payload:    payload,
	}

	if err := u.Publisher.Publish(ctx, ev); err != nil {
		slogx.Warn(ctx, "publish change event", slogx.Err(err), slog.String("event", ev.Type()), slogx.EntityID(id))
	}
}

func (u *Usecase[E, C, U, F]) fail(ctx context.Context, op string, id int64, err error) error {
	err = fmt.Errorf("usecase %s %s: %w", op, u.Name, err)

	level := slog.LevelError
	switch entity.Classify(err) {
	case entity.OutcomeNotFound, entity.OutcomeValidationFailed:
		level = slog.LevelDebug
	case entity.OutcomeConflict:
		level = slog.LevelWarn
	}

	slogx.Log(ctx, level, "operation failed",
		slogx.Op(op),
		slogx.EntityName(u.Name),
		slogx.EntityID(id),
		slogx.Err(err),
	)

	return err
}
