package converter_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/genproto/googleapis/type/datetime"
	"google.golang.org/protobuf/proto"

	"github.com/evgeniy-krivenko/bookshelf/internal/api/library/converter"
	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	v1 "github.com/evgeniy-krivenko/bookshelf/pkg/api/library/v1"
)

var _ = Describe("DateTime", func() {
	It("should survive the wire format", func() {
		now := time.Date(2025, 6, 7, 8, 9, 10, 123456000, time.FixedZone("MSK", 3*3600))
		rating := 7.5

		data, err := proto.Marshal(converter.ConvertBookToProto(entity.Book{
			ID: 1, Status: entity.BookStatusRead, Rating: &rating, CreatedAt: now, UpdatedAt: now,
		}))
		Expect(err).NotTo(HaveOccurred())

		var decoded v1.Book
		Expect(proto.Unmarshal(data, &decoded)).To(Succeed())
		Expect(decoded.GetStatus()).To(Equal(v1.BookStatus_BOOK_STATUS_READ))
		Expect(decoded.GetRating()).To(Equal(7.5))
		Expect(decoded.ShelfId).To(BeNil())

		back, err := converter.ConvertDateTimeToTime(decoded.GetCreatedAt())
		Expect(err).NotTo(HaveOccurred())
		Expect(back.Equal(now)).To(BeTrue())
		Expect(back.Location()).To(Equal(time.UTC))
	})

	It("should keep zero times unset", func() {
		Expect(converter.ConvertTimeToDateTime(time.Time{})).To(BeNil())
		Expect(converter.ConvertChangeEventToProto(entity.ChangeEvent{}).GetOccurredAt()).To(BeNil())
	})

	It("should honour an explicit time zone", func() {
		t, err := converter.ConvertDateTimeToTime(&datetime.DateTime{
			Year: 2025, Month: 1, Day: 1, Hours: 12,
			TimeOffset: &datetime.DateTime_TimeZone{TimeZone: &datetime.TimeZone{Id: "UTC"}},
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(t).To(Equal(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)))
	})
})

var _ = Describe("BookStatus", func() {
	It("should map every known status both ways", func() {
		for _, s := range []entity.BookStatus{entity.BookStatusToRead, entity.BookStatusReading, entity.BookStatusRead} {
			Expect(converter.ConvertBookStatusToEntity(converter.ConvertBookStatusToProto(s))).To(Equal(s))
		}
	})

	It("should leave an unspecified status empty", func() {
		Expect(converter.ConvertBookStatusToEntity(v1.BookStatus_BOOK_STATUS_UNSPECIFIED)).To(BeEmpty())
		Expect(converter.ConvertBookStatusToEntity(v1.BookStatus(42))).To(BeEmpty())
	})
})

var _ = Describe("Requests", func() {
	Context("UpdateBook", func() {
		It("should leave omitted fields unset", func() {
			in, err := converter.ConvertUpdateBookToEntity(&v1.UpdateBookRequest{Id: 3, Title: proto.String("Emma")})

			Expect(err).NotTo(HaveOccurred())
			Expect(in.ID).To(BeEquivalentTo(3))
			Expect(in.Title).To(Equal(entity.Some("Emma")))
			Expect(in.Author.Set).To(BeFalse())
			Expect(in.Rating.Set).To(BeFalse())
			Expect(in.ShelfID.Set).To(BeFalse())
		})

		It("should turn cleared fields into nulls", func() {
			in, err := converter.ConvertUpdateBookToEntity(&v1.UpdateBookRequest{
				Id:          3,
				ClearFields: []string{"rating", "shelf_id"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(in.Rating).To(Equal(entity.Some[*float64](nil)))
			Expect(in.ShelfID).To(Equal(entity.Some[*int64](nil)))
		})

		It("should reject unknown and conflicting clears", func() {
			_, err := converter.ConvertUpdateBookToEntity(&v1.UpdateBookRequest{
				Id:          3,
				ShelfId:     proto.Int64(2),
				ClearFields: []string{"shelf_id", "title"},
			})

			verr, ok := entity.AsValidationError(err)
			Expect(ok).To(BeTrue())
			Expect(verr.Violations).To(ConsistOf(
				HaveField("Field", "shelf_id"),
				HaveField("Field", "clear_fields"),
			))
		})
	})

	Context("UpdateShelf", func() {
		It("should clear description and capacity", func() {
			in, err := converter.ConvertUpdateShelfToEntity(&v1.UpdateShelfRequest{
				Id:          1,
				Name:        proto.String("Classics"),
				ClearFields: []string{"description", "capacity"},
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(in.Name).To(Equal(entity.Some("Classics")))
			Expect(in.Description).To(Equal(entity.Some[*string](nil)))
			Expect(in.Capacity).To(Equal(entity.Some[*int32](nil)))
		})
	})

	Context("GetBooks", func() {
		It("should convert creation bounds to UTC instants", func() {
			f, err := converter.ConvertGetBooksToEntity(&v1.GetBooksRequest{
				Status: v1.BookStatus_BOOK_STATUS_READING.Enum(),
				CreatedFrom: &datetime.DateTime{
					Year: 2025, Month: 3, Day: 1, Hours: 3,
					TimeOffset: &datetime.DateTime_TimeZone{TimeZone: &datetime.TimeZone{Id: "Europe/Moscow"}},
				},
				Limit: 10,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(*f.Status).To(Equal(entity.BookStatusReading))
			Expect(*f.CreatedFrom).To(Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
			Expect(f.CreatedTo).To(BeNil())
			Expect(f.Limit).To(Equal(10))
		})

		It("should report an unknown time zone against its field", func() {
			_, err := converter.ConvertGetBooksToEntity(&v1.GetBooksRequest{
				CreatedTo: &datetime.DateTime{
					Year: 2025, Month: 3, Day: 1,
					TimeOffset: &datetime.DateTime_TimeZone{TimeZone: &datetime.TimeZone{Id: "Mars/Olympus"}},
				},
			})

			Expect(entity.Classify(err)).To(Equal(entity.OutcomeValidationFailed))
			verr, _ := entity.AsValidationError(err)
			Expect(verr.Violations[0].Field).To(Equal("created_to"))
		})
	})
})
