package stubs

import (
	"github.com/brianvoe/gofakeit/v6"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

var statuses = []entity.BookStatus{entity.BookStatusToRead, entity.BookStatusReading, entity.BookStatusRead}

type BookStub struct {
	in entity.BookCreateInput
}

func NewBookStub() BookStub {
	return BookStub{in: entity.BookCreateInput{
		Title:  gofakeit.BookTitle(),
		Author: gofakeit.BookAuthor(),
		Genre:  gofakeit.BookGenre(),
		Status: statuses[gofakeit.Number(0, len(statuses)-1)],
	}}
}

func (bs BookStub) WithTitle(title string) BookStub {
	bs.in.Title = title
	return bs
}

func (bs BookStub) WithAuthor(author string) BookStub {
	bs.in.Author = author
	return bs
}

func (bs BookStub) WithGenre(genre string) BookStub {
	bs.in.Genre = genre
	return bs
}

func (bs BookStub) WithStatus(status entity.BookStatus) BookStub {
	bs.in.Status = status
	return bs
}

func (bs BookStub) WithRating(rating float64) BookStub {
	bs.in.Rating = &rating
	return bs
}

func (bs BookStub) WithShelfID(id int64) BookStub {
	bs.in.ShelfID = &id
	return bs
}

func (bs BookStub) Get() entity.BookCreateInput {
	return bs.in
}
