package validation_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/validation"
)

func fields(err error) []string {
	verr, ok := entity.AsValidationError(err)
	Expect(ok).To(BeTrue(), "expected a validation error, got %v", err)

	out := make([]string, 0, len(verr.Violations))
	for _, v := range verr.Violations {
		out = append(out, v.Field)
	}

	return out
}

var _ = Describe("BookSchema", func() {
	var schema validation.BookSchema

	BeforeEach(func() {
		schema = validation.NewBookSchema(validation.New())
	})

	valid := func() entity.BookCreateInput {
		return entity.BookCreateInput{
			Title:  "  Dune ",
			Author: "Frank Herbert",
			Genre:  "sci-fi",
			Status: entity.BookStatusToRead,
		}
	}

	Context("create", func() {
		It("should trim and accept a valid input", func() {
			out, err := schema.ValidateCreate(valid())

			Expect(err).NotTo(HaveOccurred())
			Expect(out.Title).To(Equal("Dune"))
		})

		It("should report every broken field by its wire name", func() {
			in := valid()
			in.Title = "   "
			in.Status = "lost"
			rating := 10.5
			in.Rating = &rating
			shelf := int64(0)
			in.ShelfID = &shelf

			_, err := schema.ValidateCreate(in)

			Expect(entity.Classify(err)).To(Equal(entity.OutcomeValidationFailed))
			Expect(fields(err)).To(ConsistOf("title", "status", "rating", "shelf_id"))
		})

		It("should accept rating boundaries", func() {
			for _, r := range []float64{0, 10} {
				in := valid()
				in.Rating = &r

				_, err := schema.ValidateCreate(in)
				Expect(err).NotTo(HaveOccurred())
			}
		})
	})

	Context("update", func() {
		It("should require a positive id", func() {
			_, err := schema.ValidateUpdate(entity.BookUpdateInput{})

			Expect(fields(err)).To(ConsistOf("id"))
		})

		It("should only check present fields", func() {
			out, err := schema.ValidateUpdate(entity.BookUpdateInput{
				ID:    1,
				Title: entity.Some(" New "),
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(out.Title.Value).To(Equal("New"))
		})

		It("should allow clearing nullable fields", func() {
			_, err := schema.ValidateUpdate(entity.BookUpdateInput{
				ID:      1,
				Rating:  entity.Some[*float64](nil),
				ShelfID: entity.Some[*int64](nil),
			})

			Expect(err).NotTo(HaveOccurred())
		})

		It("should reject blank required fields that are present", func() {
			_, err := schema.ValidateUpdate(entity.BookUpdateInput{
				ID:     1,
				Author: entity.Some(""),
				Status: entity.Some(entity.BookStatus("done")),
			})

			Expect(fields(err)).To(ConsistOf("author", "status"))
		})

		It("should accept an empty patch", func() {
			_, err := schema.ValidateUpdate(entity.BookUpdateInput{ID: 4})

			Expect(err).NotTo(HaveOccurred())
		})
	})

	Context("filter", func() {
		It("should default and clamp paging", func() {
			Expect(schema.ValidateFilter(entity.BookFilter{}).Limit).To(Equal(50))
			Expect(schema.ValidateFilter(entity.BookFilter{Limit: 9000}).Limit).To(Equal(500))
			Expect(schema.ValidateFilter(entity.BookFilter{Offset: -3}).Offset).To(Equal(0))
		})

		It("should drop unusable predicates", func() {
			empty := ""
			status := entity.BookStatus("unknown")
			shelf := int64(-1)

			out := schema.ValidateFilter(entity.BookFilter{Search: &empty, Genre: &empty, Status: &status, ShelfID: &shelf})

			Expect(out.Search).To(BeNil())
			Expect(out.Genre).To(BeNil())
			Expect(out.Status).To(BeNil())
			Expect(out.ShelfID).To(BeNil())
		})

		It("should keep the search term verbatim", func() {
			search := "Farm "

			Expect(*schema.ValidateFilter(entity.BookFilter{Search: &search}).Search).To(Equal("Farm "))
		})

		It("should keep a whitespace-only search term", func() {
			search := " "

			out := schema.ValidateFilter(entity.BookFilter{Search: &search})

			Expect(out.Search).NotTo(BeNil())
			Expect(*out.Search).To(Equal(" "))
		})
	})
})
