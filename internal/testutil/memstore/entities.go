package memstore

import (
	"strings"
	"time"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

type (
	Books   = Store[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]
	Shelves = Store[entity.Shelf, entity.ShelfCreateInput, entity.ShelfUpdateInput, entity.ShelfFilter]
)

func NewBooks() *Books {
	return New(Funcs[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]{
		Create: func(id int64, in entity.BookCreateInput, now time.Time) entity.Book {
			return entity.Book{
				ID:        id,
				Title:     in.Title,
				Author:    in.Author,
				Genre:     in.Genre,
				Status:    in.Status,
				Rating:    in.Rating,
				ShelfID:   in.ShelfID,
				CreatedAt: now,
				UpdatedAt: now,
			}
		},
		Update: func(b entity.Book, in entity.BookUpdateInput, now time.Time) entity.Book {
			if v, ok := in.Title.Get(); ok {
				b.Title = v
			}
			if v, ok := in.Author.Get(); ok {
				b.Author = v
			}
			if v, ok := in.Genre.Get(); ok {
				b.Genre = v
			}
			if v, ok := in.Status.Get(); ok {
				b.Status = v
			}
			if v, ok := in.Rating.Get(); ok {
				b.Rating = v
			}
			if v, ok := in.ShelfID.Get(); ok {
				b.ShelfID = v
			}
			b.UpdatedAt = now

			return b
		},
		Match: func(b entity.Book, f entity.BookFilter) bool {
			switch {
			case f.Search != nil && !containsFold(*f.Search, b.Title, b.Author):
				return false
			case f.Genre != nil && !strings.EqualFold(*f.Genre, b.Genre):
				return false
			case f.Status != nil && *f.Status != b.Status:
				return false
			case f.ShelfID != nil && (b.ShelfID == nil || *b.ShelfID != *f.ShelfID):
				return false
			case f.CreatedFrom != nil && b.CreatedAt.Before(*f.CreatedFrom):
				return false
			case f.CreatedTo != nil && !b.CreatedAt.Before(*f.CreatedTo):
				return false
			}

			return true
		},
		Page: func(f entity.BookFilter) (int, int) { return f.Limit, f.Offset },
		Stamps: func(b entity.Book) (time.Time, time.Time) {
			return b.CreatedAt, b.UpdatedAt
		},
	})
}

func NewShelves() *Shelves {
	return New(Funcs[entity.Shelf, entity.ShelfCreateInput, entity.ShelfUpdateInput, entity.ShelfFilter]{
		Create: func(id int64, in entity.ShelfCreateInput, now time.Time) entity.Shelf {
			return entity.Shelf{
				ID:          id,
				Name:        in.Name,
				Description: in.Description,
				Capacity:    in.Capacity,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
		},
		Update: func(s entity.Shelf, in entity.ShelfUpdateInput, now time.Time) entity.Shelf {
			if v, ok := in.Name.Get(); ok {
				s.Name = v
			}
			if v, ok := in.Description.Get(); ok {
				s.Description = v
			}
			if v, ok := in.Capacity.Get(); ok {
				s.Capacity = v
			}
			s.UpdatedAt = now

			return s
		},
		Match: func(s entity.Shelf, f entity.ShelfFilter) bool {
			if f.Search == nil {
				return true
			}

			desc := ""
			if s.Description != nil {
				desc = *s.Description
			}

			return containsFold(*f.Search, s.Name, desc)
		},
		Page: func(f entity.ShelfFilter) (int, int) { return f.Limit, f.Offset },
		Stamps: func(s entity.Shelf) (time.Time, time.Time) {
			return s.CreatedAt, s.UpdatedAt
		},
	})
}

func containsFold(term string, fields ...string) bool {
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}

	return false
}
