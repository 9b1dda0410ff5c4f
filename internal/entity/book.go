package entity

import (
	"time"
)

type BookStatus string

const (
	BookStatusToRead  BookStatus = "to-read"
	BookStatusReading BookStatus = "reading"
	BookStatusRead    BookStatus = "read"
)

func (s BookStatus) Valid() bool {
	switch s {
	case BookStatusToRead, BookStatusReading, BookStatusRead:
		return true
	}

	return false
}

type Book struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Genre     string     `json:"genre"`
	Status    BookStatus `json:"status"`
	Rating    *float64   `json:"rating"`
	ShelfID   *int64     `json:"shelf_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (b Book) EntityID() int64 { return b.ID }

type BookCreateInput struct {
	Title   string     `json:"title" validate:"required,max=255"`
	Author  string     `json:"author" validate:"required,max=255"`
	Genre   string     `json:"genre" validate:"required,max=100"`
	Status  BookStatus `json:"status" validate:"required,book_status"`
	Rating  *float64   `json:"rating,omitempty" validate:"omitempty,gte=0,lte=10"`
	ShelfID *int64     `json:"shelf_id,omitempty" validate:"omitempty,gt=0"`
}

// BookUpdateInput mutates only the fields that are Set.
type BookUpdateInput struct {
	ID      int64                `json:"id"`
	Title   Optional[string]     `json:"title,omitzero"`
	Author  Optional[string]     `json:"author,omitzero"`
	Genre   Optional[string]     `json:"genre,omitzero"`
	Status  Optional[BookStatus] `json:"status,omitzero"`
	Rating  Optional[*float64]   `json:"rating,omitzero"`
	ShelfID Optional[*int64]     `json:"shelf_id,omitzero"`
}

func (in BookUpdateInput) TargetID() int64 { return in.ID }

type BookFilter struct {
	Search      *string     `json:"search,omitempty"`
	Genre       *string     `json:"genre,omitempty"`
	Status      *BookStatus `json:"status,omitempty"`
	ShelfID     *int64      `json:"shelf_id,omitempty"`
	CreatedFrom *time.Time  `json:"created_from,omitempty"`
	CreatedTo   *time.Time  `json:"created_to,omitempty"`
	Limit       int         `json:"limit,omitempty"`
	Offset      int         `json:"offset,omitempty"`
}
