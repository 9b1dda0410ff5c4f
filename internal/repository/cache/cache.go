// Package cache serves single-entity reads from Redis in front of a store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/usecase/crud"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

// Store is a read-through decorator. Any Redis failure falls back to the inner store.
type Store[E crud.Entity, C any, U crud.Identified, F any] struct {
	inner  crud.Store[E, C, U, F]
	client redis.Cmdable
	name   string
	prefix string
	ttl    time.Duration
}

func New[E crud.Entity, C any, U crud.Identified, F any](
	inner crud.Store[E, C, U, F],
	client redis.Cmdable,
	name string,
	ttl time.Duration,
) *Store[E, C, U, F] {
	return &Store[E, C, U, F]{
		inner:  inner,
		client: client,
		name:   name,
		prefix: "bookshelf:" + name + ":",
		ttl:    ttl,
	}
}

func (s *Store[E, C, U, F]) Key(id int64) string {
	return s.prefix + strconv.FormatInt(id, 10)
}

func (s *Store[E, C, U, F]) Insert(ctx context.Context, in C) (E, error) {
	return s.inner.Insert(ctx, in)
}

func (s *Store[E, C, U, F]) SelectByID(ctx context.Context, id int64) (E, error) {
	key := s.Key(id)

	cached, found, err := s.get(ctx, key)
	if err != nil {
		slogx.Warn(ctx, "cache read failed", slog.String("key", key), slogx.Err(err))
	}
	if found {
		return cached, nil
	}

	item, err := s.inner.SelectByID(ctx, id)
	if err != nil {
		return item, err
	}

	s.set(ctx, key, item)

	return item, nil
}

func (s *Store[E, C, U, F]) SelectMany(ctx context.Context, f F) ([]E, error) {
	return s.inner.SelectMany(ctx, f)
}

func (s *Store[E, C, U, F]) UpdateByID(ctx context.Context, id int64, in U) (E, error) {
	s.invalidate(ctx, id)

	return s.inner.UpdateByID(ctx, id, in)
}

func (s *Store[E, C, U, F]) DeleteByID(ctx context.Context, id int64) (bool, error) {
	s.invalidate(ctx, id)

	return s.inner.DeleteByID(ctx, id)
}

// Publish drops the cached copy once a mutation of this entity is committed.
// A read racing the transaction could have cached the old row again.
func (s *Store[E, C, U, F]) Publish(ctx context.Context, ev entity.ChangeEvent) error {
	if ev.Entity == s.name && ev.Action != entity.ActionCreated {
		s.invalidate(ctx, ev.ID)
	}

	return nil
}

func (s *Store[E, C, U, F]) get(ctx context.Context, key string) (E, bool, error) {
	var item E

	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return item, false, nil
	}
	if err != nil {
		return item, false, err
	}

	if err := json.Unmarshal(raw, &item); err != nil {
		return item, false, fmt.Errorf("unmarshal cached %s: %w", key, err)
	}

	return item, true, nil
}

func (s *Store[E, C, U, F]) set(ctx context.Context, key string, item E) {
	raw, err := json.Marshal(item)
	if err != nil {
		slogx.Warn(ctx, "cache marshal failed", slog.String("key", key), slogx.Err(err))
		return
	}

	if err := s.client.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		slogx.Warn(ctx, "cache write failed", slog.String("key", key), slogx.Err(err))
	}
}

func (s *Store[E, C, U, F]) invalidate(ctx context.Context, id int64) {
	key := s.Key(id)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		slogx.Warn(ctx, "cache invalidate failed", slog.String("key", key), slogx.Err(err))
	}
}
