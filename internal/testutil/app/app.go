// Package app assembles the usecases over in-memory stores for transport tests.
package app

import (
	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/events"
	"github.com/evgeniy-krivenko/bookshelf/internal/testutil/memstore"
	"github.com/evgeniy-krivenko/bookshelf/internal/usecase/crud"
	"github.com/evgeniy-krivenko/bookshelf/internal/validation"
)

type (
	BookUsecase  = crud.Usecase[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]
	ShelfUsecase = crud.Usecase[entity.Shelf, entity.ShelfCreateInput, entity.ShelfUpdateInput, entity.ShelfFilter]
)

type App struct {
	Books   *BookUsecase
	Shelves *ShelfUsecase
	Feed    *events.Feed

	BookStore  *memstore.Books
	ShelfStore *memstore.Shelves
}

func New() *App {
	v := validation.New()
	feed := events.NewFeed()
	bookStore := memstore.NewBooks()
	shelfStore := memstore.NewShelves()

	books, err := crud.New(crud.Options[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]{
		Name:      "book",
		Store:     bookStore,
		Schema:    validation.NewBookSchema(v),
		Tx:        memstore.Tx{},
		Publisher: feed,
	})
	if err != nil {
		panic(err)
	}

	shelves, err := crud.New(crud.Options[entity.Shelf, entity.ShelfCreateInput, entity.ShelfUpdateInput, entity.ShelfFilter]{
		Name:      "shelf",
		Store:     shelfStore,
		Schema:    validation.NewShelfSchema(v),
		Tx:        memstore.Tx{},
		Publisher: feed,
	})
	if err != nil {
		panic(err)
	}

	return &App{
		Books:      books,
		Shelves:    shelves,
		Feed:       feed,
		BookStore:  bookStore,
		ShelfStore: shelfStore,
	}
}
