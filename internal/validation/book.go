package validation

import (
	"strings"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

type BookSchema struct {
	*Validator
}

func NewBookSchema(v *Validator) BookSchema {
	return BookSchema{Validator: v}
}

func (s BookSchema) ValidateCreate(in entity.BookCreateInput) (entity.BookCreateInput, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Author = strings.TrimSpace(in.Author)
	in.Genre = strings.TrimSpace(in.Genre)

	if err := s.structFull(in); err != nil {
		return entity.BookCreateInput{}, err
	}

	return in, nil
}

func (s BookSchema) ValidateUpdate(in entity.BookUpdateInput) (entity.BookUpdateInput, error) {
	if err := s.ValidateID(in.ID); err != nil {
		return entity.BookUpdateInput{}, err
	}

	var (
		candidate entity.BookCreateInput
		present   []string
	)

	if in.Title.Set {
		in.Title.Value = strings.TrimSpace(in.Title.Value)
		candidate.Title = in.Title.Value
		present = append(present, "Title")
	}
	if in.Author.Set {
		in.Author.Value = strings.TrimSpace(in.Author.Value)
		candidate.Author = in.Author.Value
		present = append(present, "Author")
	}
	if in.Genre.Set {
		in.Genre.Value = strings.TrimSpace(in.Genre.Value)
		candidate.Genre = in.Genre.Value
		present = append(present, "Genre")
	}
	if in.Status.Set {
		candidate.Status = in.Status.Value
		present = append(present, "Status")
	}
	if in.Rating.Set {
		candidate.Rating = in.Rating.Value
		present = append(present, "Rating")
	}
	if in.ShelfID.Set {
		candidate.ShelfID = in.ShelfID.Value
		present = append(present, "ShelfID")
	}

	if err := s.structPartial(candidate, present...); err != nil {
		return entity.BookUpdateInput{}, err
	}

	return in, nil
}

func (s BookSchema) ValidateFilter(in entity.BookFilter) entity.BookFilter {
	in.Search = termOrNil(in.Search)
	in.Genre = termOrNil(in.Genre)

	if in.Status != nil && !in.Status.Valid() {
		in.Status = nil
	}
	if in.ShelfID != nil && *in.ShelfID <= 0 {
		in.ShelfID = nil
	}

	in.Limit, in.Offset = clampPage(in.Limit, in.Offset)

	return in
}
