package entity_test

import (
	"errors"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

var _ = Describe("Classify", func() {
	DescribeTable("should map errors to a single outcome",
		func(err error, expected entity.Outcome) {
			Expect(entity.Classify(err)).To(Equal(expected))
		},
		Entry("nil", nil, entity.OutcomeOK),
		Entry("wrapped not found", fmt.Errorf("usecase get book: %w", entity.ErrNotFound), entity.OutcomeNotFound),
		Entry("validation", fmt.Errorf("usecase create: %w", entity.NewValidationError("title", "required")), entity.OutcomeValidationFailed),
		Entry("conflict", fmt.Errorf("delete shelf: %w", entity.ErrConflict), entity.OutcomeConflict),
		Entry("anything else", errors.New("connection reset"), entity.OutcomeFailed),
	)

	It("should render every violation", func() {
		verr := entity.NewValidationError("title", "is required")
		verr.Add("status", "must be one of to-read reading read")

		Expect(verr.Error()).To(Equal("validation failed: title: is required; status: must be one of to-read reading read"))
		Expect(verr.Empty()).To(BeFalse())
	})
})
