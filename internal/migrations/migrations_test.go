package migrations_test

import (
	"io/fs"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/migrations"
)

var _ = Describe("Embedded schema", func() {
	It("should ship goose annotated sql files", func() {
		names, err := fs.Glob(migrations.FS(), "*.sql")
		Expect(err).NotTo(HaveOccurred())
		Expect(names).To(ContainElement("00001_init.sql"))

		body, err := fs.ReadFile(migrations.FS(), "00001_init.sql")
		Expect(err).NotTo(HaveOccurred())
		Expect(string(body)).To(ContainSubstring("-- +goose Up"))
		Expect(string(body)).To(ContainSubstring("ON DELETE RESTRICT"))
	})
})
