// Package converter translates between stored column values and entity fields.
package converter

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

// Rating matches the NUMERIC(3,1) column.
var Rating = Decimal{Scale: 1}

// Decimal is the codec between float64 values and fixed-scale decimal text.
type Decimal struct {
	Scale int32
}

func (d Decimal) Encode(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(d.Scale)
}

func (d Decimal) Decode(s string) (float64, error) {
	dec, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("decode decimal %q: %w", s, err)
	}

	f, _ := dec.Round(d.Scale).Float64()

	return f, nil
}

func (d Decimal) EncodeNullable(v *float64) pgtype.Text {
	if v == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: d.Encode(*v), Valid: true}
}

func (d Decimal) DecodeNullable(t pgtype.Text) (*float64, error) {
	if !t.Valid {
		return nil, nil
	}

	f, err := d.Decode(t.String)
	if err != nil {
		return nil, err
	}

	return &f, nil
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time.UTC()
}

func ConvertTimeToTimestampz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func TextFromPtr(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}

	return pgtype.Text{String: *s, Valid: true}
}

func TextToPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}

	return &t.String
}

func Int8FromPtr(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}

	return pgtype.Int8{Int64: *v, Valid: true}
}

func Int8ToPtr(v pgtype.Int8) *int64 {
	if !v.Valid {
		return nil
	}

	return &v.Int64
}

func Int4FromPtr(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}

	return pgtype.Int4{Int32: *v, Valid: true}
}

func Int4ToPtr(v pgtype.Int4) *int32 {
	if !v.Valid {
		return nil
	}

	return &v.Int32
}

// BookRow is the scan target for the books column list.
type BookRow struct {
	ID        int64
	Title     string
	Author    string
	Genre     string
	Status    string
	Rating    pgtype.Text
	ShelfID   pgtype.Int8
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

func (r *BookRow) Targets() []any {
	return []any{&r.ID, &r.Title, &r.Author, &r.Genre, &r.Status, &r.Rating, &r.ShelfID, &r.CreatedAt, &r.UpdatedAt}
}

func ConvertBookToEntity(row BookRow) (entity.Book, error) {
	rating, err := Rating.DecodeNullable(row.Rating)
	if err != nil {
		return entity.Book{}, fmt.Errorf("book %d rating: %w", row.ID, err)
	}

	return entity.Book{
		ID:        row.ID,
		Title:     row.Title,
		Author:    row.Author,
		Genre:     row.Genre,
		Status:    entity.BookStatus(row.Status),
		Rating:    rating,
		ShelfID:   Int8ToPtr(row.ShelfID),
		CreatedAt: ConvertTimestampzToTime(row.CreatedAt),
		UpdatedAt: ConvertTimestampzToTime(row.UpdatedAt),
	}, nil
}

// ShelfRow is the scan target for the shelves column list.
type ShelfRow struct {
	ID          int64
	Name        string
	Description pgtype.Text
	Capacity    pgtype.Int4
	CreatedAt   pgtype.Timestamptz
	UpdatedAt   pgtype.Timestamptz
}

func (r *ShelfRow) Targets() []any {
	return []any{&r.ID, &r.Name, &r.Description, &r.Capacity, &r.CreatedAt, &r.UpdatedAt}
}

func ConvertShelfToEntity(row ShelfRow) entity.Shelf {
	return entity.Shelf{
		ID:          row.ID,
		Name:        row.Name,
		Description: TextToPtr(row.Description),
		Capacity:    Int4ToPtr(row.Capacity),
		CreatedAt:   ConvertTimestampzToTime(row.CreatedAt),
		UpdatedAt:   ConvertTimestampzToTime(row.UpdatedAt),
	}
}
