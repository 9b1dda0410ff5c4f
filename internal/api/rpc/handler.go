// Package rpc exposes the usecases as JSON procedures over HTTP.
package rpc

import (
	"context"
	"net/http"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
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

// HealthFunc reports whether the service can reach its dependencies.
type HealthFunc func(ctx context.Context) error

type IDInput struct {
	ID int64 `json:"id"`
}

type DeleteResult struct {
	Success bool `json:"success"`
}

func New(books bookUsecase, shelves shelfUsecase, health HealthFunc) http.Handler {
	mux := http.NewServeMux()

	register(mux, "createBook", false, books.Create)
	register(mux, "getBooks", true, books.List)
	register(mux, "getBook", true, byID(books.Get))
	register(mux, "updateBook", false, books.Update)
	register(mux, "deleteBook", false, deleteByID(books.Delete))

	register(mux, "createShelf", false, shelves.Create)
	register(mux, "getShelves", true, shelves.List)
	register(mux, "getShelf", true, byID(shelves.Get))
	register(mux, "updateShelf", false, shelves.Update)
	register(mux, "deleteShelf", false, deleteByID(shelves.Delete))

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			if err := health(r.Context()); err != nil {
				writeJSON(w, r, http.StatusServiceUnavailable, envelope{Error: &Error{Code: CodeInternal, Message: "unavailable"}})
				return
			}
		}

		writeResult(w, r, map[string]string{"status": "ok"})
	})

	return mux
}

// register mounts a procedure at /rpc/<name>. Queries also answer GET with ?input=.
func register[In, Out any](mux *http.ServeMux, name string, query bool, call func(context.Context, In) (Out, error)) {
	h := procedure(call)

	mux.Handle("POST /rpc/"+name, h)
	if query {
		mux.Handle("GET /rpc/"+name, h)
	}
}

func procedure[In, Out any](call func(context.Context, In) (Out, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeInput(r, &in); err != nil {
			writeError(w, r, err)
			return
		}

		out, err := call(r.Context(), in)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeResult(w, r, out)
	}
}

func byID[E any](get func(context.Context, int64) (E, error)) func(context.Context, IDInput) (E, error) {
	return func(ctx context.Context, in IDInput) (E, error) {
		return get(ctx, in.ID)
	}
}

func deleteByID(del func(context.Context, int64) error) func(context.Context, IDInput) (DeleteResult, error) {
	return func(ctx context.Context, in IDInput) (DeleteResult, error) {
		err := del(ctx, in.ID)
		switch {
		case entity.Classify(err) == entity.OutcomeNotFound:
			return DeleteResult{Success: false}, nil
		case err != nil:
			return DeleteResult{}, err
		}

		return DeleteResult{Success: true}, nil
	}
}
