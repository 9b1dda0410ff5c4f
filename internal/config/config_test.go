package config_test

import (
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/evgeniy-krivenko/bookshelf/internal/config"
)

var _ = Describe("Parse", func() {
	It("should apply defaults", func() {
		cfg, err := config.Parse(filepath.Join(GinkgoT().TempDir(), "missing.env"))

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.App.Name).To(Equal("bookshelf"))
		Expect(cfg.GRPC.Addr).To(Equal(":50051"))
		Expect(cfg.Database.Address()).To(Equal("localhost:5432"))
		Expect(cfg.Redis.TTL).To(Equal(5 * time.Minute))
		Expect(cfg.Kafka.Topic).To(Equal("library.changes"))
	})

	It("should read overrides from the environment and env files", func() {
		GinkgoT().Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
		GinkgoT().Setenv("DB_MIGRATE", "false")

		file := filepath.Join(GinkgoT().TempDir(), "test.env")
		Expect(os.WriteFile(file, []byte("REDIS_ADDR=redis:6379\nREDIS_TTL=30s\n"), 0o600)).To(Succeed())
		DeferCleanup(os.Unsetenv, "REDIS_ADDR")
		DeferCleanup(os.Unsetenv, "REDIS_TTL")

		cfg, err := config.Parse(file)

		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Kafka.Brokers).To(Equal([]string{"k1:9092", "k2:9092"}))
		Expect(cfg.Database.Migrate).To(BeFalse())
		Expect(cfg.Redis.Addr).To(Equal("redis:6379"))
		Expect(cfg.Redis.TTL).To(Equal(30 * time.Second))
	})
})
