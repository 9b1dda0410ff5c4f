// Package memstore keeps entities in memory with the ordering and timestamp
// rules of the Postgres stores. Relations between entities are not enforced.
package memstore

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

type Funcs[E any, C any, U any, F any] struct {
	Create func(id int64, in C, now time.Time) E
	Update func(cur E, in U, now time.Time) E
	Match  func(e E, f F) bool
	Page   func(f F) (limit, offset int)
	Stamps func(e E) (createdAt, updatedAt time.Time)
}

type Store[E any, C any, U any, F any] struct {
	mu   sync.Mutex
	seq  int64
	rows map[int64]E
	fn   Funcs[E, C, U, F]
}

func New[E any, C any, U any, F any](fn Funcs[E, C, U, F]) *Store[E, C, U, F] {
	return &Store[E, C, U, F]{rows: make(map[int64]E), fn: fn}
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (s *Store[E, C, U, F]) Insert(_ context.Context, in C) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	e := s.fn.Create(s.seq, in, now())
	s.rows[s.seq] = e

	return e, nil
}

func (s *Store[E, C, U, F]) SelectByID(_ context.Context, id int64) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.rows[id]
	if !ok {
		var zero E
		return zero, entity.ErrNotFound
	}

	return e, nil
}

func (s *Store[E, C, U, F]) SelectMany(_ context.Context, f F) ([]E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	type row struct {
		id int64
		e  E
	}

	var matched []row
	for id, e := range s.rows {
		if s.fn.Match(e, f) {
			matched = append(matched, row{id: id, e: e})
		}
	}

	slices.SortFunc(matched, func(a, b row) int {
		ca, _ := s.fn.Stamps(a.e)
		cb, _ := s.fn.Stamps(b.e)
		if c := cb.Compare(ca); c != 0 {
			return c
		}
		return int(b.id - a.id)
	})

	limit, offset := s.fn.Page(f)
	if offset > len(matched) {
		offset = len(matched)
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}

	out := make([]E, 0, len(matched))
	for _, r := range matched {
		out = append(out, r.e)
	}

	return out, nil
}

func (s *Store[E, C, U, F]) UpdateByID(_ context.Context, id int64, in U) (E, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.rows[id]
	if !ok {
		var zero E
		return zero, entity.ErrNotFound
	}

	ts := now()
	if _, prev := s.fn.Stamps(cur); !ts.After(prev) {
		ts = prev.Add(time.Microsecond)
	}

	e := s.fn.Update(cur, in, ts)
	s.rows[id] = e

	return e, nil
}

func (s *Store[E, C, U, F]) DeleteByID(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)

	return true, nil
}

func (s *Store[E, C, U, F]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.rows)
}

// Tx runs the function directly.
type Tx struct{}

func (Tx) RunInTx(ctx context.Context, f func(context.Context) error) error {
	return f(ctx)
}
