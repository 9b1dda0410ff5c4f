package repository_test

import (
	"context"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/migrations"
	"github.com/evgeniy-krivenko/bookshelf/internal/repository"
	"github.com/evgeniy-krivenko/bookshelf/internal/testutil/seeder"
	"github.com/evgeniy-krivenko/bookshelf/internal/testutil/stubs"
	"github.com/evgeniy-krivenko/bookshelf/pkg/database"
)

// Runs against a real postgres when TEST_DB_URL is set.
var _ = Describe("Repository", Ordered, func() {
	var (
		ctx  context.Context
		pool *pgxpool.Pool
		db   *database.Database
		repo *repository.Repo
	)

	BeforeAll(func() {
		dsn := os.Getenv("TEST_DB_URL")
		if dsn == "" {
			Skip("TEST_DB_URL is not set")
		}

		var err error
		pool, err = database.NewPGX(context.Background(), database.NewOptions("", "", "", "",
			database.WithDsn(dsn),
			database.WithRetry(false),
		))
		Expect(err).NotTo(HaveOccurred())

		_, err = migrations.Up(context.Background(), pool)
		Expect(err).NotTo(HaveOccurred())

		db = database.NewDatabase(pool)
		repo = repository.New(db)
	})

	AfterAll(func() {
		if db != nil {
			db.Close()
		}
	})

	BeforeEach(func() {
		ctx = context.Background()
		seeder.New(pool).TruncateTables(ctx)
	})

	Context("Books", func() {
		It("should round-trip a book with a rating", func() {
			created, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithTitle("1984").WithRating(7.5).Get())
			Expect(err).NotTo(HaveOccurred())
			Expect(created.ID).To(BeEquivalentTo(1))
			Expect(*created.Rating).To(Equal(7.5))
			Expect(created.ShelfID).To(BeNil())

			got, err := repo.Books.SelectByID(ctx, created.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(created))
		})

		It("should report a missing book", func() {
			_, err := repo.Books.SelectByID(ctx, 404)
			Expect(err).To(MatchError(entity.ErrNotFound))

			deleted, err := repo.Books.DeleteByID(ctx, 404)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeFalse())
		})

		It("should advance updated_at on every update", func() {
			created, err := repo.Books.Insert(ctx, stubs.NewBookStub().Get())
			Expect(err).NotTo(HaveOccurred())

			first, err := repo.Books.UpdateByID(ctx, created.ID, entity.BookUpdateInput{Status: entity.Some(entity.BookStatusReading)})
			Expect(err).NotTo(HaveOccurred())
			second, err := repo.Books.UpdateByID(ctx, created.ID, entity.BookUpdateInput{Status: entity.Some(entity.BookStatusRead)})
			Expect(err).NotTo(HaveOccurred())

			Expect(first.UpdatedAt).To(BeTemporally(">", created.UpdatedAt))
			Expect(second.UpdatedAt).To(BeTemporally(">", first.UpdatedAt))
			Expect(second.CreatedAt).To(Equal(created.CreatedAt))
			Expect(second.Status).To(Equal(entity.BookStatusRead))
		})

		It("should clear a nullable column set to null", func() {
			created, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithRating(9).Get())
			Expect(err).NotTo(HaveOccurred())

			updated, err := repo.Books.UpdateByID(ctx, created.ID, entity.BookUpdateInput{Rating: entity.Some[*float64](nil)})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Rating).To(BeNil())
		})

		It("should reject an unknown shelf", func() {
			_, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithShelfID(99).Get())
			Expect(entity.Classify(err)).To(Equal(entity.OutcomeValidationFailed))
		})

		It("should match search terms literally", func() {
			_, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithTitle("100% Dune").Get())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Books.Insert(ctx, stubs.NewBookStub().WithTitle("1000 Dunes").Get())
			Expect(err).NotTo(HaveOccurred())

			term := "100%"
			books, err := repo.Books.SelectMany(ctx, entity.BookFilter{Search: &term})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(1))
			Expect(books[0].Title).To(Equal("100% Dune"))
		})

		It("should search title or author ignoring case", func() {
			_, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithTitle("Animal Farm").WithAuthor("George Orwell").Get())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Books.Insert(ctx, stubs.NewBookStub().WithTitle("Wolf Hall").WithAuthor("Hilary Mantel").Get())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Books.Insert(ctx, stubs.NewBookStub().WithTitle("Dune").WithAuthor("Frank Herbert").Get())
			Expect(err).NotTo(HaveOccurred())

			term := "ORWELL"
			books, err := repo.Books.SelectMany(ctx, entity.BookFilter{Search: &term})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(1))
			Expect(books[0].Title).To(Equal("Animal Farm"))

			term = "fArM"
			books, err = repo.Books.SelectMany(ctx, entity.BookFilter{Search: &term})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(1))
			Expect(books[0].Author).To(Equal("George Orwell"))

			term = "ll"
			books, err = repo.Books.SelectMany(ctx, entity.BookFilter{Search: &term})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(2))
		})

		It("should keep trailing spaces in the search term", func() {
			_, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithTitle("Animal Farm").WithAuthor("George Orwell").Get())
			Expect(err).NotTo(HaveOccurred())

			term := "Farm "
			books, err := repo.Books.SelectMany(ctx, entity.BookFilter{Search: &term})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(BeEmpty())
		})

		It("should match genre exactly ignoring case", func() {
			_, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithGenre("Science Fiction").Get())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Books.Insert(ctx, stubs.NewBookStub().WithGenre("Science").Get())
			Expect(err).NotTo(HaveOccurred())

			genre := "science"
			books, err := repo.Books.SelectMany(ctx, entity.BookFilter{Genre: &genre})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(1))
			Expect(books[0].Genre).To(Equal("Science"))
		})

		It("should bound creation time from inclusive to exclusive", func() {
			var created []entity.Book
			for range 3 {
				book, err := repo.Books.Insert(ctx, stubs.NewBookStub().Get())
				Expect(err).NotTo(HaveOccurred())
				created = append(created, book)
			}

			from, to := created[1].CreatedAt, created[2].CreatedAt
			books, err := repo.Books.SelectMany(ctx, entity.BookFilter{CreatedFrom: &from, CreatedTo: &to})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(1))
			Expect(books[0].ID).To(Equal(created[1].ID))

			books, err = repo.Books.SelectMany(ctx, entity.BookFilter{CreatedFrom: &from})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(2))
		})

		It("should report a missing book before an unknown shelf", func() {
			shelf := int64(99)

			_, err := repo.Books.UpdateByID(ctx, 404, entity.BookUpdateInput{ShelfID: entity.Some(&shelf)})
			Expect(err).To(MatchError(entity.ErrNotFound))
		})

		It("should reject moving a book to an unknown shelf", func() {
			created, err := repo.Books.Insert(ctx, stubs.NewBookStub().Get())
			Expect(err).NotTo(HaveOccurred())

			shelf := int64(99)
			_, err = repo.Books.UpdateByID(ctx, created.ID, entity.BookUpdateInput{ShelfID: entity.Some(&shelf)})
			Expect(entity.Classify(err)).To(Equal(entity.OutcomeValidationFailed))
		})

		It("should filter by shelf and list newest first", func() {
			shelf, err := repo.Shelves.Insert(ctx, stubs.NewShelfStub().Get())
			Expect(err).NotTo(HaveOccurred())

			for range 3 {
				_, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithShelfID(shelf.ID).Get())
				Expect(err).NotTo(HaveOccurred())
			}
			_, err = repo.Books.Insert(ctx, stubs.NewBookStub().Get())
			Expect(err).NotTo(HaveOccurred())

			books, err := repo.Books.SelectMany(ctx, entity.BookFilter{ShelfID: &shelf.ID, Limit: 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(HaveLen(2))
			Expect(books[0].ID).To(BeNumerically(">", books[1].ID))
		})
	})

	Context("Shelves", func() {
		It("should refuse to delete a referenced shelf", func() {
			shelf, err := repo.Shelves.Insert(ctx, stubs.NewShelfStub().WithCapacity(10).Get())
			Expect(err).NotTo(HaveOccurred())
			_, err = repo.Books.Insert(ctx, stubs.NewBookStub().WithShelfID(shelf.ID).Get())
			Expect(err).NotTo(HaveOccurred())

			_, err = repo.Shelves.DeleteByID(ctx, shelf.ID)
			Expect(err).To(MatchError(entity.ErrConflict))
		})

		It("should update only the given fields", func() {
			shelf, err := repo.Shelves.Insert(ctx, stubs.NewShelfStub().WithDescription("classics").Get())
			Expect(err).NotTo(HaveOccurred())

			updated, err := repo.Shelves.UpdateByID(ctx, shelf.ID, entity.ShelfUpdateInput{Name: entity.Some("Favourites")})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Favourites"))
			Expect(*updated.Description).To(Equal("classics"))
		})
	})

	Context("transactions", func() {
		It("should roll back writes of a failed transaction", func() {
			err := db.RunInTx(ctx, func(ctx context.Context) error {
				if _, err := repo.Books.Insert(ctx, stubs.NewBookStub().Get()); err != nil {
					return err
				}
				_, err := repo.Books.Insert(ctx, stubs.NewBookStub().WithShelfID(7).Get())
				return err
			})
			Expect(err).To(HaveOccurred())

			books, err := repo.Books.SelectMany(ctx, entity.BookFilter{})
			Expect(err).NotTo(HaveOccurred())
			Expect(books).To(BeEmpty())
		})
	})
})
