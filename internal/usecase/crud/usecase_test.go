package crud_test

import (
	"context"
	"errors"
	"sync"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/testutil/comparer"
	"github.com/evgeniy-krivenko/bookshelf/internal/testutil/memstore"
	"github.com/evgeniy-krivenko/bookshelf/internal/testutil/stubs"
	"github.com/evgeniy-krivenko/bookshelf/internal/usecase/crud"
	"github.com/evgeniy-krivenko/bookshelf/internal/validation"
)

type recorder struct {
	mu     sync.Mutex
	events []entity.ChangeEvent
	err    error
}

func (r *recorder) Publish(_ context.Context, ev entity.ChangeEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events = append(r.events, ev)
	return r.err
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Type())
	}
	return out
}

type failingTx struct{ err error }

func (f failingTx) RunInTx(context.Context, func(context.Context) error) error { return f.err }

type bookUsecase = crud.Usecase[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]

var _ = Describe("Usecase", func() {
	var (
		ctx   context.Context
		store *memstore.Books
		pub   *recorder
		uc    *bookUsecase
	)

	BeforeEach(func() {
		ctx = context.Background()
		store = memstore.NewBooks()
		pub = &recorder{}

		var err error
		uc, err = crud.New(crud.Options[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]{
			Name:      "book",
			Store:     store,
			Schema:    validation.NewBookSchema(validation.New()),
			Tx:        memstore.Tx{},
			Publisher: pub,
		})
		Expect(err).NotTo(HaveOccurred())
	})

	It("should refuse incomplete options", func() {
		_, err := crud.New(crud.Options[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]{
			Name: "book",
		})

		Expect(err).To(MatchError(ContainSubstring("store")))
	})

	Context("create", func() {
		It("should round-trip a created entity", func() {
			in := stubs.NewBookStub().WithRating(7.5).Get()

			created, err := uc.Create(ctx, in)
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
			Expect(created.CreatedAt).To(Equal(created.UpdatedAt))

			fetched, err := uc.Get(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmp.Diff(created, fetched)).To(BeEmpty())
			Expect(*fetched.Rating).To(Equal(7.5))

			Expect(pub.types()).To(Equal([]string{"book.created"}))
		})

		It("should not touch the store on invalid input", func() {
			_, err := uc.Create(ctx, stubs.NewBookStub().WithStatus("lost").Get())

			Expect(entity.Classify(err)).To(Equal(entity.OutcomeValidationFailed))
			Expect(store.Len()).To(BeZero())
			Expect(pub.types()).To(BeEmpty())
		})

		It("should propagate persistence failures", func() {
			boom := errors.New("connection reset")
			uc.Tx = failingTx{err: boom}

			_, err := uc.Create(ctx, stubs.NewBookStub().Get())

			Expect(err).To(MatchError(boom))
			Expect(entity.Classify(err)).To(Equal(entity.OutcomeFailed))
		})

		It("should keep the result when publishing fails", func() {
			pub.err = errors.New("broker down")

			created, err := uc.Create(ctx, stubs.NewBookStub().Get())

			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeNumerically(">", 0))
		})
	})

	Context("update", func() {
		It("should change exactly the supplied fields", func() {
			created, err := uc.Create(ctx, stubs.NewBookStub().WithStatus(entity.BookStatusToRead).WithRating(4).Get())
			Expect(err).NotTo(HaveOccurred())

			updated, err := uc.Update(ctx, entity.BookUpdateInput{
				ID:     created.ID,
				Status: entity.Some(entity.BookStatusReading),
				Rating: entity.Some[*float64](nil),
			})
			Expect(err).NotTo(HaveOccurred())

			expected := created
			expected.Status = entity.BookStatusReading
			expected.Rating = nil

			Expect(cmp.Diff(expected, updated, comparer.IgnoreStamps[entity.Book]())).To(BeEmpty())
			Expect(updated.CreatedAt).To(Equal(created.CreatedAt))
			Expect(updated.UpdatedAt.After(created.UpdatedAt)).To(BeTrue())
		})

		It("should bump updated_at on an empty patch", func() {
			created, err := uc.Create(ctx, stubs.NewBookStub().Get())
			Expect(err).NotTo(HaveOccurred())

			first, err := uc.Update(ctx, entity.BookUpdateInput{ID: created.ID})
			Expect(err).NotTo(HaveOccurred())
			second, err := uc.Update(ctx, entity.BookUpdateInput{ID: created.ID})
			Expect(err).NotTo(HaveOccurred())

			Expect(first.UpdatedAt.After(created.UpdatedAt)).To(BeTrue())
			Expect(second.UpdatedAt.After(first.UpdatedAt)).To(BeTrue())
		})

		It("should report a missing target", func() {
			_, err := uc.Update(ctx, entity.BookUpdateInput{ID: 404, Title: entity.Some("x")})

			Expect(err).To(MatchError(entity.ErrNotFound))
		})
	})

	Context("delete", func() {
		It("should remove exactly once", func() {
			created, err := uc.Create(ctx, stubs.NewBookStub().Get())
			Expect(err).NotTo(HaveOccurred())

			Expect(uc.Delete(ctx, created.ID)).To(Succeed())
			Expect(uc.Delete(ctx, created.ID)).To(MatchError(entity.ErrNotFound))
			Expect(uc.Delete(ctx, 999)).To(MatchError(entity.ErrNotFound))

			_, err = uc.Get(ctx, created.ID)
			Expect(err).To(MatchError(entity.ErrNotFound))

			Expect(pub.types()).To(Equal([]string{"book.created", "book.deleted"}))
		})

		It("should reject non positive ids", func() {
			Expect(entity.Classify(uc.Delete(ctx, 0))).To(Equal(entity.OutcomeValidationFailed))
		})
	})

	Context("list", func() {
		BeforeEach(func() {
			for _, in := range []entity.BookCreateInput{
				stubs.NewBookStub().WithTitle("Brave New World").WithAuthor("Aldous Huxley").Get(),
				stubs.NewBookStub().WithTitle("1984").WithAuthor("George Orwell").Get(),
				stubs.NewBookStub().WithTitle("Animal Farm").WithAuthor("George ORWELL").Get(),
			} {
				_, err := uc.Create(ctx, in)
				Expect(err).NotTo(HaveOccurred())
			}
		})

		It("should match search case-insensitively over title or author", func() {
			q := "orwell"

			books, err := uc.List(ctx, entity.BookFilter{Search: &q})
			Expect(err).NotTo(HaveOccurred())

			titles := make([]string, 0, len(books))
			for _, b := range books {
				titles = append(titles, b.Title)
			}
			Expect(titles).To(Equal([]string{"Animal Farm", "1984"}))
		})

		It("should return an empty slice when nothing matches", func() {
			q := "tolkien"

			books, err := uc.List(ctx, entity.BookFilter{Search: &q})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).NotTo(BeNil())
			Expect(books).To(BeEmpty())
		})

		It("should page newest first", func() {
			books, err := uc.List(ctx, entity.BookFilter{Limit: 1, Offset: 1})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(1))
			Expect(books[0].Title).To(Equal("1984"))
		})
	})

	It("should run the library scenario", func() {
		created, err := uc.Create(ctx, entity.BookCreateInput{
			Title:  "1984",
			Author: "George Orwell",
			Genre:  "Dystopian",
			Status: entity.BookStatusToRead,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(created.ID).To(BeNumerically(">", 0))
		Expect(created.Status).To(Equal(entity.BookStatusToRead))

		updated, err := uc.Update(ctx, entity.BookUpdateInput{ID: created.ID, Status: entity.Some(entity.BookStatusReading)})
		Expect(err).NotTo(HaveOccurred())
		Expect(updated.Status).To(Equal(entity.BookStatusReading))
		Expect(updated.Title).To(Equal("1984"))
		Expect(updated.Author).To(Equal("George Orwell"))
		Expect(updated.Genre).To(Equal("Dystopian"))

		Expect(uc.Delete(ctx, created.ID)).To(Succeed())
		Expect(entity.Classify(uc.Delete(ctx, created.ID))).To(Equal(entity.OutcomeNotFound))
	})
})
