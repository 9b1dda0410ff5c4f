package events

import (
	"context"

	"github.com/imkira/go-observer"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

// Feed broadcasts events to in-process subscribers.
type Feed struct {
	prop observer.Property
}

func NewFeed() *Feed {
	return &Feed{prop: observer.NewProperty(entity.ChangeEvent{})}
}

func (f *Feed) Publish(_ context.Context, ev entity.ChangeEvent) error {
	f.prop.Update(ev)

	return nil
}

// Subscribe streams events published after the call until ctx is done.
// When entityName is not empty only that entity's events are sent.
func (f *Feed) Subscribe(ctx context.Context, entityName string) <-chan entity.ChangeEvent {
	stream := f.prop.Observe()

	result := make(chan entity.ChangeEvent)
	go func() {
		defer close(result)
		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				ev := stream.Next().(entity.ChangeEvent)
				if entityName != "" && ev.Entity != entityName {
					continue
				}

				select {
				case <-ctx.Done():
					return
				case result <- ev:
				}
			}
		}
	}()

	return result
}
