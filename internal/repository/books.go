package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/repository/converter"
	"github.com/evgeniy-krivenko/bookshelf/pkg/database"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

const bookColumns = "id, title, author, genre, status, rating::text, shelf_id, created_at, updated_at"

type Books struct {
	db database.Tx
}

func NewBooks(db database.Tx) *Books {
	return &Books{db: db}
}

func (r *Books) Insert(ctx context.Context, in entity.BookCreateInput) (entity.Book, error) {
	if in.ShelfID != nil {
		if err := r.lockShelf(ctx, *in.ShelfID); err != nil {
			return entity.Book{}, err
		}
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO books (title, author, genre, status, rating, shelf_id)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6)
		RETURNING `+bookColumns,
		in.Title,
		in.Author,
		in.Genre,
		string(in.Status),
		converter.Rating.EncodeNullable(in.Rating),
		converter.Int8FromPtr(in.ShelfID),
	)

	book, err := scanBook(row)
	if err != nil {
		return entity.Book{}, mapError("insert book", err)
	}

	slogx.Debug(ctx, "book inserted", slogx.EntityID(book.ID))

	return book, nil
}

func (r *Books) SelectByID(ctx context.Context, id int64) (entity.Book, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookColumns+` FROM books WHERE id = $1`, id)

	book, err := scanBook(row)
	if err != nil {
		return entity.Book{}, mapError("select book", err)
	}

	return book, nil
}

func (r *Books) SelectMany(ctx context.Context, f entity.BookFilter) ([]entity.Book, error) {
	var q query

	if f.Search != nil {
		q.search(*f.Search, "title", "author")
	}
	if f.Genre != nil {
		q.and("lower(genre) = lower(" + q.arg(*f.Genre) + ")")
	}
	if f.Status != nil {
		q.and("status = " + q.arg(string(*f.Status)))
	}
	if f.ShelfID != nil {
		q.and("shelf_id = " + q.arg(*f.ShelfID))
	}
	if f.CreatedFrom != nil {
		q.and("created_at >= " + q.arg(converter.ConvertTimeToTimestampz(*f.CreatedFrom)))
	}
	if f.CreatedTo != nil {
		q.and("created_at < " + q.arg(converter.ConvertTimeToTimestampz(*f.CreatedTo)))
	}

	sql := `SELECT ` + bookColumns + ` FROM books` + q.where() + q.page(f.Limit, f.Offset)

	rows, err := r.db.Query(ctx, sql, q.args...)
	if err != nil {
		return nil, mapError("select books", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Book, error) {
		return scanBook(row)
	})
	if err != nil {
		return nil, mapError("collect books", err)
	}

	return books, nil
}

func (r *Books) UpdateByID(ctx context.Context, id int64, in entity.BookUpdateInput) (entity.Book, error) {
	if v, ok := in.ShelfID.Get(); ok && v != nil {
		// A missing book wins over a missing shelf.
		var found int64
		if err := r.db.QueryRow(ctx, `SELECT id FROM books WHERE id = $1 FOR UPDATE`, id).Scan(&found); err != nil {
			return entity.Book{}, mapError("lock book", err)
		}

		if err := r.lockShelf(ctx, *v); err != nil {
			return entity.Book{}, err
		}
	}

	var q query
	set := setList{q: &q}

	if v, ok := in.Title.Get(); ok {
		set.add("title", v)
	}
	if v, ok := in.Author.Get(); ok {
		set.add("author", v)
	}
	if v, ok := in.Genre.Get(); ok {
		set.add("genre", v)
	}
	if v, ok := in.Status.Get(); ok {
		set.add("status", string(v))
	}
	if v, ok := in.Rating.Get(); ok {
		set.addCast("rating", converter.Rating.EncodeNullable(v), "::text::numeric")
	}
	if v, ok := in.ShelfID.Get(); ok {
		set.add("shelf_id", converter.Int8FromPtr(v))
	}

	sql := `UPDATE books SET ` + set.String() + ` WHERE id = ` + q.arg(id) + ` RETURNING ` + bookColumns

	book, err := scanBook(r.db.QueryRow(ctx, sql, q.args...))
	if err != nil {
		return entity.Book{}, mapError("update book", err)
	}

	slogx.Debug(ctx, "book updated", slogx.EntityID(book.ID))

	return book, nil
}

func (r *Books) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return false, mapError("delete book", err)
	}

	return tag.RowsAffected() > 0, nil
}

// lockShelf holds the referenced shelf for the rest of the caller's transaction.
func (r *Books) lockShelf(ctx context.Context, shelfID int64) error {
	var id int64

	err := r.db.QueryRow(ctx, `SELECT id FROM shelves WHERE id = $1 FOR SHARE`, shelfID).Scan(&id)
	if err != nil {
		err = mapError("lock shelf", err)
		if entity.Classify(err) == entity.OutcomeNotFound {
			return entity.NewValidationError("shelf_id", fmt.Sprintf("shelf %d does not exist", shelfID))
		}
		return err
	}

	return nil
}

func scanBook(row pgx.Row) (entity.Book, error) {
	var r converter.BookRow
	if err := row.Scan(r.Targets()...); err != nil {
		return entity.Book{}, err
	}

	return converter.ConvertBookToEntity(r)
}
