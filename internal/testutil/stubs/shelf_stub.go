package stubs

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

type ShelfStub struct {
	in entity.ShelfCreateInput
}

func NewShelfStub() ShelfStub {
	return ShelfStub{in: entity.ShelfCreateInput{
		Name: gofakeit.Color() + " " + gofakeit.Noun(),
	}}
}

func (ss ShelfStub) WithName(name string) ShelfStub {
	ss.in.Name = name
	return ss
}

func (ss ShelfStub) WithDescription(description string) ShelfStub {
	ss.in.Description = &description
	return ss
}

func (ss ShelfStub) WithCapacity(capacity int32) ShelfStub {
	ss.in.Capacity = &capacity
	return ss
}

func (ss ShelfStub) Get() entity.ShelfCreateInput {
	return ss.in
}
