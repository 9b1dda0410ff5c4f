package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/repository/converter"
	"github.com/evgeniy-krivenko/bookshelf/pkg/database"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

const shelfColumns = "id, name, description, capacity, created_at, updated_at"

type Shelves struct {
	db database.Tx
}

func NewShelves(db database.Tx) *Shelves {
	return &Shelves{db: db}
}

func (r *Shelves) Insert(ctx context.Context, in entity.ShelfCreateInput) (entity.Shelf, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO shelves (name, description, capacity)
		VALUES ($1, $2, $3)
		RETURNING `+shelfColumns,
		in.Name,
		converter.TextFromPtr(in.Description),
		converter.Int4FromPtr(in.Capacity),
	)

	shelf, err := scanShelf(row)
	if err != nil {
		return entity.Shelf{}, mapError("insert shelf", err)
	}

	slogx.Debug(ctx, "shelf inserted", slogx.EntityID(shelf.ID))

	return shelf, nil
}

func (r *Shelves) SelectByID(ctx context.Context, id int64) (entity.Shelf, error) {
	shelf, err := scanShelf(r.db.QueryRow(ctx, `SELECT `+shelfColumns+` FROM shelves WHERE id = $1`, id))
	if err != nil {
		return entity.Shelf{}, mapError("select shelf", err)
	}

	return shelf, nil
}

func (r *Shelves) SelectMany(ctx context.Context, f entity.ShelfFilter) ([]entity.Shelf, error) {
	var q query

	if f.Search != nil {
		q.search(*f.Search, "name", "description")
	}

	rows, err := r.db.Query(ctx, `SELECT `+shelfColumns+` FROM shelves`+q.where()+q.page(f.Limit, f.Offset), q.args...)
	if err != nil {
		return nil, mapError("select shelves", err)
	}

	shelves, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entity.Shelf, error) {
		return scanShelf(row)
	})
	if err != nil {
		return nil, mapError("collect shelves", err)
	}

	return shelves, nil
}

func (r *Shelves) UpdateByID(ctx context.Context, id int64, in entity.ShelfUpdateInput) (entity.Shelf, error) {
	var q query
	set := setList{q: &q}

	if v, ok := in.Name.Get(); ok {
		set.add("name", v)
	}
	if v, ok := in.Description.Get(); ok {
		set.add("description", converter.TextFromPtr(v))
	}
	if v, ok := in.Capacity.Get(); ok {
		set.add("capacity", converter.Int4FromPtr(v))
	}

	sql := `UPDATE shelves SET ` + set.String() + ` WHERE id = ` + q.arg(id) + ` RETURNING ` + shelfColumns

	shelf, err := scanShelf(r.db.QueryRow(ctx, sql, q.args...))
	if err != nil {
		return entity.Shelf{}, mapError("update shelf", err)
	}

	slogx.Debug(ctx, "shelf updated", slogx.EntityID(shelf.ID))

	return shelf, nil
}

// DeleteByID fails with ErrConflict while books still reference the shelf.
func (r *Shelves) DeleteByID(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM shelves WHERE id = $1`, id)
	if err != nil {
		return false, mapError("delete shelf", err)
	}

	return tag.RowsAffected() > 0, nil
}

func scanShelf(row pgx.Row) (entity.Shelf, error) {
	var r converter.ShelfRow
	if err := row.Scan(r.Targets()...); err != nil {
		return entity.Shelf{}, err
	}

	return converter.ConvertShelfToEntity(r), nil
}
