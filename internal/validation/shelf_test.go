package validation_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/validation"
)

var _ = Describe("ShelfSchema", func() {
	var schema validation.ShelfSchema

	BeforeEach(func() {
		schema = validation.NewShelfSchema(validation.New())
	})

	It("should accept a minimal shelf", func() {
		out, err := schema.ValidateCreate(entity.ShelfCreateInput{Name: " Fiction "})

		Expect(err).NotTo(HaveOccurred())
		Expect(out.Name).To(Equal("Fiction"))
	})

	It("should bound capacity and text lengths", func() {
		capacity := int32(0)
		desc := strings.Repeat("x", 1001)

		_, err := schema.ValidateCreate(entity.ShelfCreateInput{
			Name:        strings.Repeat("n", 101),
			Description: &desc,
			Capacity:    &capacity,
		})

		Expect(fields(err)).To(ConsistOf("name", "description", "capacity"))
	})

	It("should describe the broken bound", func() {
		capacity := int32(10001)

		_, err := schema.ValidateCreate(entity.ShelfCreateInput{Name: "a", Capacity: &capacity})

		verr, ok := entity.AsValidationError(err)
		Expect(ok).To(BeTrue())
		Expect(verr.Violations).To(ConsistOf(entity.FieldViolation{Field: "capacity", Reason: "must be at most 10000"}))
	})

	It("should validate only present update fields", func() {
		capacity := int32(5)

		_, err := schema.ValidateUpdate(entity.ShelfUpdateInput{ID: 2, Capacity: entity.Some(&capacity)})
		Expect(err).NotTo(HaveOccurred())

		_, err = schema.ValidateUpdate(entity.ShelfUpdateInput{ID: 2, Name: entity.Some(" ")})
		Expect(fields(err)).To(ConsistOf("name"))
	})

	It("should clamp filter paging", func() {
		out := schema.ValidateFilter(entity.ShelfFilter{Limit: -1, Offset: -1})

		Expect(out.Limit).To(Equal(50))
		Expect(out.Offset).To(Equal(0))
	})
})
