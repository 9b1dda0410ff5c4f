package repository

import (
	"github.com/evgeniy-krivenko/bookshelf/pkg/database"
)

type Repo struct {
	Books   *Books
	Shelves *Shelves
}

func New(db database.Tx) *Repo {
	return &Repo{
		Books:   NewBooks(db),
		Shelves: NewShelves(db),
	}
}
