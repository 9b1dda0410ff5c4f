package crud

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type Entity interface {
	EntityID() int64
}

type Identified interface {
	TargetID() int64
}

type Store[E Entity, C any, U Identified, F any] interface {
	Insert(ctx context.Context, in C) (E, error)
	SelectByID(ctx context.Context, id int64) (E, error)
	SelectMany(ctx context.Context, f F) ([]E, error)
	UpdateByID(ctx context.Context, id int64, in U) (E, error)
	DeleteByID(ctx context.Context, id int64) (bool, error)
}

type Schema[C any, U Identified, F any] interface {
	ValidateCreate(in C) (C, error)
	ValidateUpdate(in U) (U, error)
	ValidateFilter(f F) F
	ValidateID(id int64) error
}

type TxRunner interface {
	RunInTx(ctx context.Context, f func(context.Context) error) error
}

type Publisher interface {
	Publish(ctx context.Context, ev entity.ChangeEvent) error
}

type Options[E Entity, C any, U Identified, F any] struct {
	Name   string
	Store  Store[E, C, U, F]
	Schema Schema[C, U, F]
	Tx     TxRunner

	// Publisher and Now are optional.
	Publisher Publisher
	Now       func() time.Time
}

func (o *Options[E, C, U, F]) Validate() error {
	var errs []error

	check := func(name string, value any) {
		if err := validate.Var(value, "required"); err != nil {
			errs = append(errs, fmt.Errorf("%s: %v", name, err))
		}
	}

	check("name", o.Name)
	check("store", o.Store)
	check("schema", o.Schema)
	check("tx", o.Tx)

	return errors.Join(errs...)
}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, entity.ChangeEvent) error { return nil }
