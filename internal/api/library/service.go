package library

import (
	"context"
	"log/slog"

	"google.golang.org/grpc"

	"github.com/evgeniy-krivenko/bookshelf/internal/api/library/converter"
	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	v1 "github.com/evgeniy-krivenko/bookshelf/pkg/api/library/v1"
	"github.com/evgeniy-krivenko/bookshelf/pkg/grpcx"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

var (
	_ grpcx.Service       = (*Service)(nil)
	_ v1.LibraryAPIServer = (*Service)(nil)
)

type usecase[E any, C any, U any, F any] interface {
	Create(ctx context.Context, in C) (E, error)
	Get(ctx context.Context, id int64) (E, error)
	List(ctx context.Context, f F) ([]E, error)
	Update(ctx context.Context, in U) (E, error)
	Delete(ctx context.Context, id int64) error
}

type (
	bookUsecase  = usecase[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]
	shelfUsecase = usecase[entity.Shelf, entity.ShelfCreateInput, entity.ShelfUpdateInput, entity.ShelfFilter]
)

type changeFeed interface {
	Subscribe(ctx context.Context, entityName string) <-chan entity.ChangeEvent
}

type Service struct {
	v1.UnimplementedLibraryAPIServer

	books   bookUsecase
	shelves shelfUsecase
	feed    changeFeed
}

func New(books bookUsecase, shelves shelfUsecase, feed changeFeed) *Service {
	return &Service{books: books, shelves: shelves, feed: feed}
}

// RegisterService implements grpcx.Service.
func (s *Service) RegisterService(r grpc.ServiceRegistrar) {
	v1.RegisterLibraryAPIServer(r, s)
}

func (s *Service) CreateBook(ctx context.Context, req *v1.CreateBookRequest) (*v1.BookResponse, error) {
	book, err := s.books.Create(ctx, converter.ConvertCreateBookToEntity(req))
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.BookResponse{Book: converter.ConvertBookToProto(book)}, nil
}

func (s *Service) GetBooks(ctx context.Context, req *v1.GetBooksRequest) (*v1.BooksResponse, error) {
	filter, err := converter.ConvertGetBooksToEntity(req)
	if err != nil {
		return nil, toStatus(err)
	}

	books, err := s.books.List(ctx, filter)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.BooksResponse{Books: converter.ConvertBooksToProto(books)}, nil
}

func (s *Service) GetBook(ctx context.Context, req *v1.GetByIDRequest) (*v1.BookResponse, error) {
	book, err := s.books.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.BookResponse{Book: converter.ConvertBookToProto(book)}, nil
}

func (s *Service) UpdateBook(ctx context.Context, req *v1.UpdateBookRequest) (*v1.BookResponse, error) {
	in, err := converter.ConvertUpdateBookToEntity(req)
	if err != nil {
		return nil, toStatus(err)
	}

	book, err := s.books.Update(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.BookResponse{Book: converter.ConvertBookToProto(book)}, nil
}

func (s *Service) DeleteBook(ctx context.Context, req *v1.DeleteRequest) (*v1.DeleteResponse, error) {
	return deleteResponse(s.books.Delete(ctx, req.GetId()))
}

func (s *Service) CreateShelf(ctx context.Context, req *v1.CreateShelfRequest) (*v1.ShelfResponse, error) {
	shelf, err := s.shelves.Create(ctx, converter.ConvertCreateShelfToEntity(req))
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.ShelfResponse{Shelf: converter.ConvertShelfToProto(shelf)}, nil
}

func (s *Service) GetShelves(ctx context.Context, req *v1.GetShelvesRequest) (*v1.ShelvesResponse, error) {
	shelves, err := s.shelves.List(ctx, converter.ConvertGetShelvesToEntity(req))
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.ShelvesResponse{Shelves: converter.ConvertShelvesToProto(shelves)}, nil
}

func (s *Service) GetShelf(ctx context.Context, req *v1.GetByIDRequest) (*v1.ShelfResponse, error) {
	shelf, err := s.shelves.Get(ctx, req.GetId())
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.ShelfResponse{Shelf: converter.ConvertShelfToProto(shelf)}, nil
}

func (s *Service) UpdateShelf(ctx context.Context, req *v1.UpdateShelfRequest) (*v1.ShelfResponse, error) {
	in, err := converter.ConvertUpdateShelfToEntity(req)
	if err != nil {
		return nil, toStatus(err)
	}

	shelf, err := s.shelves.Update(ctx, in)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.ShelfResponse{Shelf: converter.ConvertShelfToProto(shelf)}, nil
}

func (s *Service) DeleteShelf(ctx context.Context, req *v1.DeleteRequest) (*v1.DeleteResponse, error) {
	return deleteResponse(s.shelves.Delete(ctx, req.GetId()))
}

// WatchChanges streams committed changes until the client goes away.
func (s *Service) WatchChanges(req *v1.WatchChangesRequest, stream grpc.ServerStreamingServer[v1.ChangeEvent]) error {
	ctx := stream.Context()

	slogx.Info(ctx, "start watching changes", slog.String("entity", req.GetEntity()))

	for ev := range s.feed.Subscribe(ctx, req.GetEntity()) {
		if err := stream.Send(converter.ConvertChangeEventToProto(ev)); err != nil {
			return err
		}
	}

	slogx.Info(ctx, "stop watching changes", slog.String("entity", req.GetEntity()))

	return nil
}

func deleteResponse(err error) (*v1.DeleteResponse, error) {
	if entity.Classify(err) == entity.OutcomeNotFound {
		return &v1.DeleteResponse{Success: false}, nil
	}
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.DeleteResponse{Success: true}, nil
}
