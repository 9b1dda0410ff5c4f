// Package events delivers committed entity changes to interested parties.
package events

import (
	"context"
	"errors"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

type Publisher interface {
	Publish(ctx context.Context, ev entity.ChangeEvent) error
}

type Noop struct{}

func (Noop) Publish(context.Context, entity.ChangeEvent) error { return nil }

// Fanout hands every event to all publishers and joins their errors.
type Fanout []Publisher

func (f Fanout) Publish(ctx context.Context, ev entity.ChangeEvent) error {
	var errs []error
	for _, p := range f {
		if err := p.Publish(ctx, ev); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
