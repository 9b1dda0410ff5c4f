package validation

import (
	"strings"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

type ShelfSchema struct {
	*Validator
}

func NewShelfSchema(v *Validator) ShelfSchema {
	return ShelfSchema{Validator: v}
}

func (s ShelfSchema) ValidateCreate(in entity.ShelfCreateInput) (entity.ShelfCreateInput, error) {
	in.Name = strings.TrimSpace(in.Name)

	if err := s.structFull(in); err != nil {
		return entity.ShelfCreateInput{}, err
	}

	return in, nil
}

func (s ShelfSchema) ValidateUpdate(in entity.ShelfUpdateInput) (entity.ShelfUpdateInput, error) {
	if err := s.ValidateID(in.ID); err != nil {
		return entity.ShelfUpdateInput{}, err
	}

	var (
		candidate entity.ShelfCreateInput
		present   []string
	)

	if in.Name.Set {
		in.Name.Value = strings.TrimSpace(in.Name.Value)
		candidate.Name = in.Name.Value
		present = append(present, "Name")
	}
	if in.Description.Set {
		candidate.Description = in.Description.Value
		present = append(present, "Description")
	}
	if in.Capacity.Set {
		candidate.Capacity = in.Capacity.Value
		present = append(present, "Capacity")
	}

	if err := s.structPartial(candidate, present...); err != nil {
		return entity.ShelfUpdateInput{}, err
	}

	return in, nil
}

func (s ShelfSchema) ValidateFilter(in entity.ShelfFilter) entity.ShelfFilter {
	in.Search = termOrNil(in.Search)
	in.Limit, in.Offset = clampPage(in.Limit, in.Offset)

	return in
}
