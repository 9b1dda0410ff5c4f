package converter

import (
	"fmt"
	"time"

	"google.golang.org/genproto/googleapis/type/datetime"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	v1 "github.com/evgeniy-krivenko/bookshelf/pkg/api/library/v1"
)

func ConvertTimeToDateTime(t time.Time) *datetime.DateTime {
	if t.IsZero() {
		return nil
	}

	t = t.UTC()

	return &datetime.DateTime{
		Year:       int32(t.Year()),
		Month:      int32(t.Month()),
		Day:        int32(t.Day()),
		Hours:      int32(t.Hour()),
		Minutes:    int32(t.Minute()),
		Seconds:    int32(t.Second()),
		Nanos:      int32(t.Nanosecond()),
		TimeOffset: &datetime.DateTime_UtcOffset{UtcOffset: durationpb.New(0)},
	}
}

// ConvertDateTimeToTime treats a DateTime without an offset as UTC.
func ConvertDateTimeToTime(dt *datetime.DateTime) (time.Time, error) {
	if dt == nil {
		return time.Time{}, nil
	}

	loc := time.UTC
	switch off := dt.GetTimeOffset().(type) {
	case *datetime.DateTime_UtcOffset:
		loc = time.FixedZone("", int(off.UtcOffset.AsDuration().Seconds()))
	case *datetime.DateTime_TimeZone:
		var err error
		if loc, err = time.LoadLocation(off.TimeZone.GetId()); err != nil {
			return time.Time{}, fmt.Errorf("load time zone %q: %w", off.TimeZone.GetId(), err)
		}
	}

	return time.Date(
		int(dt.Year),
		time.Month(dt.Month),
		int(dt.Day),
		int(dt.Hours),
		int(dt.Minutes),
		int(dt.Seconds),
		int(dt.Nanos),
		loc,
	).UTC(), nil
}

var (
	statusToProto = map[entity.BookStatus]v1.BookStatus{
		entity.BookStatusToRead:  v1.BookStatus_BOOK_STATUS_TO_READ,
		entity.BookStatusReading: v1.BookStatus_BOOK_STATUS_READING,
		entity.BookStatusRead:    v1.BookStatus_BOOK_STATUS_READ,
	}
	statusToEntity = map[v1.BookStatus]entity.BookStatus{
		v1.BookStatus_BOOK_STATUS_TO_READ: entity.BookStatusToRead,
		v1.BookStatus_BOOK_STATUS_READING: entity.BookStatusReading,
		v1.BookStatus_BOOK_STATUS_READ:    entity.BookStatusRead,
	}
)

func ConvertBookStatusToProto(s entity.BookStatus) v1.BookStatus {
	return statusToProto[s]
}

// ConvertBookStatusToEntity maps unspecified and unknown values to an empty
// status, which the book schema rejects.
func ConvertBookStatusToEntity(s v1.BookStatus) entity.BookStatus {
	return statusToEntity[s]
}

func ConvertBookToProto(b entity.Book) *v1.Book {
	return &v1.Book{
		Id:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Status:    ConvertBookStatusToProto(b.Status),
		Rating:    b.Rating,
		ShelfId:   b.ShelfID,
		CreatedAt: ConvertTimeToDateTime(b.CreatedAt),
		UpdatedAt: ConvertTimeToDateTime(b.UpdatedAt),
	}
}

func ConvertBooksToProto(books []entity.Book) []*v1.Book {
	out := make([]*v1.Book, 0, len(books))
	for _, b := range books {
		out = append(out, ConvertBookToProto(b))
	}

	return out
}

func ConvertShelfToProto(s entity.Shelf) *v1.Shelf {
	return &v1.Shelf{
		Id:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		Capacity:    s.Capacity,
		CreatedAt:   ConvertTimeToDateTime(s.CreatedAt),
		UpdatedAt:   ConvertTimeToDateTime(s.UpdatedAt),
	}
}

func ConvertShelvesToProto(shelves []entity.Shelf) []*v1.Shelf {
	out := make([]*v1.Shelf, 0, len(shelves))
	for _, s := range shelves {
		out = append(out, ConvertShelfToProto(s))
	}

	return out
}

func ConvertChangeEventToProto(ev entity.ChangeEvent) *v1.ChangeEvent {
	return &v1.ChangeEvent{
		Entity:     ev.Entity,
		Action:     string(ev.Action),
		Id:         ev.ID,
		OccurredAt: ConvertTimeToDateTime(ev.OccurredAt),
	}
}

func ConvertCreateBookToEntity(req *v1.CreateBookRequest) entity.BookCreateInput {
	return entity.BookCreateInput{
		Title:   req.GetTitle(),
		Author:  req.GetAuthor(),
		Genre:   req.GetGenre(),
		Status:  ConvertBookStatusToEntity(req.GetStatus()),
		Rating:  req.Rating,
		ShelfID: req.ShelfId,
	}
}

// ConvertUpdateBookToEntity keeps omitted fields unset and turns
// clear_fields entries into explicit nulls.
func ConvertUpdateBookToEntity(req *v1.UpdateBookRequest) (entity.BookUpdateInput, error) {
	in := entity.BookUpdateInput{ID: req.GetId()}

	if req.Title != nil {
		in.Title = entity.Some(*req.Title)
	}
	if req.Author != nil {
		in.Author = entity.Some(*req.Author)
	}
	if req.Genre != nil {
		in.Genre = entity.Some(*req.Genre)
	}
	if req.Status != nil {
		in.Status = entity.Some(ConvertBookStatusToEntity(*req.Status))
	}
	if req.Rating != nil {
		in.Rating = entity.Some(req.Rating)
	}
	if req.ShelfId != nil {
		in.ShelfID = entity.Some(req.ShelfId)
	}

	verr := &entity.ValidationError{}
	for _, name := range req.GetClearFields() {
		switch {
		case name == "rating" && req.Rating == nil:
			in.Rating = entity.Some[*float64](nil)
		case name == "shelf_id" && req.ShelfId == nil:
			in.ShelfID = entity.Some[*int64](nil)
		case name == "rating" || name == "shelf_id":
			verr.Add(name, "cannot be set and cleared at once")
		default:
			verr.Add("clear_fields", fmt.Sprintf("%q is not a nullable field", name))
		}
	}
	if !verr.Empty() {
		return entity.BookUpdateInput{}, verr
	}

	return in, nil
}

func ConvertGetBooksToEntity(req *v1.GetBooksRequest) (entity.BookFilter, error) {
	f := entity.BookFilter{
		Search:  req.Search,
		Genre:   req.Genre,
		ShelfID: req.ShelfId,
		Limit:   int(req.GetLimit()),
		Offset:  int(req.GetOffset()),
	}

	if req.Status != nil {
		s := ConvertBookStatusToEntity(*req.Status)
		f.Status = &s
	}

	var err error
	if f.CreatedFrom, err = timeBound("created_from", req.GetCreatedFrom()); err != nil {
		return entity.BookFilter{}, err
	}
	if f.CreatedTo, err = timeBound("created_to", req.GetCreatedTo()); err != nil {
		return entity.BookFilter{}, err
	}

	return f, nil
}

func ConvertCreateShelfToEntity(req *v1.CreateShelfRequest) entity.ShelfCreateInput {
	return entity.ShelfCreateInput{
		Name:        req.GetName(),
		Description: req.Description,
		Capacity:    req.Capacity,
	}
}

// ConvertUpdateShelfToEntity mirrors ConvertUpdateBookToEntity for shelves.
func ConvertUpdateShelfToEntity(req *v1.UpdateShelfRequest) (entity.ShelfUpdateInput, error) {
	in := entity.ShelfUpdateInput{ID: req.GetId()}

	if req.Name != nil {
		in.Name = entity.Some(*req.Name)
	}
	if req.Description != nil {
		in.Description = entity.Some(req.Description)
	}
	if req.Capacity != nil {
		in.Capacity = entity.Some(req.Capacity)
	}

	verr := &entity.ValidationError{}
	for _, name := range req.GetClearFields() {
		switch {
		case name == "description" && req.Description == nil:
			in.Description = entity.Some[*string](nil)
		case name == "capacity" && req.Capacity == nil:
			in.Capacity = entity.Some[*int32](nil)
		case name == "description" || name == "capacity":
			verr.Add(name, "cannot be set and cleared at once")
		default:
			verr.Add("clear_fields", fmt.Sprintf("%q is not a nullable field", name))
		}
	}
	if !verr.Empty() {
		return entity.ShelfUpdateInput{}, verr
	}

	return in, nil
}

func ConvertGetShelvesToEntity(req *v1.GetShelvesRequest) entity.ShelfFilter {
	return entity.ShelfFilter{
		Search: req.Search,
		Limit:  int(req.GetLimit()),
		Offset: int(req.GetOffset()),
	}
}

func timeBound(field string, dt *datetime.DateTime) (*time.Time, error) {
	if dt == nil {
		return nil, nil
	}

	t, err := ConvertDateTimeToTime(dt)
	if err != nil {
		return nil, entity.NewValidationError(field, err.Error())
	}

	return &t, nil
}
