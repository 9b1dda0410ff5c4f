package main

import (
	"google.golang.org/protobuf/proto"

	v1 "github.com/evgeniy-krivenko/bookshelf/pkg/api/library/v1"
)

func sampleShelf() *v1.CreateShelfRequest {
	return &v1.CreateShelfRequest{
		Name:        "Dystopias",
		Description: proto.String("novels about broken futures"),
		Capacity:    proto.Int32(40),
	}
}

func sampleBooks(shelfID int64) []*v1.CreateBookRequest {
	return []*v1.CreateBookRequest{
		{
			Title:   "1984",
			Author:  "George Orwell",
			Genre:   "Dystopia",
			Status:  v1.BookStatus_BOOK_STATUS_TO_READ,
			ShelfId: proto.Int64(shelfID),
		},
		{
			Title:   "Brave New World",
			Author:  "Aldous Huxley",
			Genre:   "Dystopia",
			Status:  v1.BookStatus_BOOK_STATUS_READ,
			Rating:  proto.Float64(9.5),
			ShelfId: proto.Int64(shelfID),
		},
	}
}
