package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
)

var _ = Describe("query", func() {
	It("should number arguments in order", func() {
		var q query
		q.and("status = " + q.arg("read"))
		q.and("shelf_id = " + q.arg(int64(3)))

		Expect(q.where()).To(Equal(" WHERE status = $1 AND shelf_id = $2"))
		Expect(q.args).To(Equal([]any{"read", int64(3)}))
	})

	It("should render no WHERE without predicates", func() {
		var q query
		Expect(q.where()).To(BeEmpty())
	})

	It("should escape LIKE wildcards in the search term", func() {
		var q query
		q.search(`50%_off\`, "title", "author")

		Expect(q.where()).To(Equal(` WHERE (title ILIKE $1 ESCAPE '\' OR author ILIKE $1 ESCAPE '\')`))
		Expect(q.args).To(Equal([]any{`%50\%\_off\\%`}))
	})

	It("should page newest first and skip zero bounds", func() {
		var q query
		Expect(q.page(0, 0)).To(Equal(" ORDER BY created_at DESC, id DESC"))

		q = query{}
		Expect(q.page(10, 20)).To(Equal(" ORDER BY created_at DESC, id DESC LIMIT $1 OFFSET $2"))
		Expect(q.args).To(Equal([]any{10, 20}))
	})

	It("should always bump updated_at in a set list", func() {
		q := &query{}
		set := setList{q: q}
		set.add("title", "Dune")
		set.addCast("rating", "8.5", "::text::numeric")

		Expect(set.String()).To(Equal(
			"title = $1, rating = $2::text::numeric, " +
				"updated_at = GREATEST(clock_timestamp(), updated_at + interval '1 microsecond')",
		))
		Expect(set.cols).To(HaveLen(2))
	})
})

var _ = Describe("mapError", func() {
	It("should map missing rows to not found", func() {
		Expect(mapError("select book", pgx.ErrNoRows)).To(MatchError(entity.ErrNotFound))
	})

	DescribeTable("should map integrity violations to conflict",
		func(code string) {
			err := mapError("delete shelf", &pgconn.PgError{Code: code, Detail: "still referenced"})
			Expect(err).To(MatchError(entity.ErrConflict))
			Expect(err.Error()).To(ContainSubstring("still referenced"))
		},
		Entry("foreign key", pgForeignKeyViolation),
		Entry("unique", pgUniqueViolation),
	)

	It("should wrap anything else untouched", func() {
		cause := errors.New("connection reset")
		err := mapError("insert book", cause)
		Expect(err).To(MatchError(cause))
		Expect(errors.Is(err, entity.ErrNotFound)).To(BeFalse())
	})
})
