package slogx_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

var _ = Describe("Logger", func() {
	var (
		buf  *bytes.Buffer
		prev *slogx.Logger
		ctx  context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		buf = &bytes.Buffer{}
		prev = slogx.Default()
	})

	AfterEach(func() {
		slogx.SetDefault(prev)
	})

	decodeLast := func() map[string]any {
		lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
		var out map[string]any
		Expect(json.Unmarshal(lines[len(lines)-1], &out)).To(Succeed())
		return out
	}

	Context("ParseLevel", func() {
		It("should parse known levels case-insensitively", func() {
			level, err := slogx.ParseLevel("DEBUG")
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(slog.LevelDebug))

			level, err = slogx.ParseLevel("warning")
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(slog.LevelWarn))
		})

		It("should reject unknown levels", func() {
			_, err := slogx.ParseLevel("verbose")
			Expect(err).To(HaveOccurred())
		})
	})

	Context("InitGlobal", func() {
		It("should write JSON records with typed attributes", func() {
			Expect(slogx.InitGlobal(buf, "info", false)).To(Succeed())

			slogx.Info(ctx, "book created", slogx.EntityID(42), slogx.EntityName("book"))

			record := decodeLast()
			Expect(record).To(HaveKeyWithValue("msg", "book created"))
			Expect(record).To(HaveKeyWithValue("entity_id", BeNumerically("==", 42)))
			Expect(record).To(HaveKeyWithValue("entity", "book"))
		})

		It("should drop records below the configured level", func() {
			Expect(slogx.InitGlobal(buf, "warn", false)).To(Succeed())

			slogx.Info(ctx, "hidden")
			Expect(buf.Len()).To(BeZero())

			slogx.Error(ctx, "shown", slogx.Err(errors.New("boom")))
			Expect(decodeLast()).To(HaveKeyWithValue("err", "boom"))
		})

		It("should apply extra handlers in order", func() {
			tag := func(h slog.Handler) slog.Handler {
				return h.WithAttrs([]slog.Attr{slog.String("service", "bookshelf")})
			}
			Expect(slogx.InitGlobal(buf, "info", false, tag)).To(Succeed())

			slogx.Info(ctx, "hello")
			Expect(decodeLast()).To(HaveKeyWithValue("service", "bookshelf"))
		})

		It("should fail on an invalid level", func() {
			Expect(slogx.InitGlobal(buf, "loud", false)).NotTo(Succeed())
		})
	})

	Context("HTTPMiddleware", func() {
		It("should log the captured status code", func() {
			Expect(slogx.InitGlobal(buf, "info", false)).To(Succeed())

			h := slogx.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusTeapot)
			}))

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rpc/getBooks", nil))

			record := decodeLast()
			Expect(record).To(HaveKeyWithValue("status", BeNumerically("==", http.StatusTeapot)))
			Expect(record).To(HaveKeyWithValue("path", "/rpc/getBooks"))
		})
	})

	Context("LoggingInterceptor", func() {
		info := &grpc.UnaryServerInfo{FullMethod: "/library.v1.LibraryAPI/GetBook"}

		call := func(err error) map[string]any {
			_, _ = slogx.LoggingInterceptor(ctx, nil, info, func(context.Context, any) (any, error) {
				return nil, err
			})
			return decodeLast()
		}

		BeforeEach(func() {
			Expect(slogx.InitGlobal(buf, "info", false)).To(Succeed())
		})

		It("should log client errors at warn", func() {
			record := call(status.Error(codes.NotFound, "book not found"))
			Expect(record).To(HaveKeyWithValue("level", "WARN"))
			Expect(record).To(HaveKeyWithValue("code", "NotFound"))
		})

		It("should log server failures at error", func() {
			record := call(status.Error(codes.Internal, "internal error"))
			Expect(record).To(HaveKeyWithValue("level", "ERROR"))
			Expect(record).To(HaveKeyWithValue("method", info.FullMethod))
		})

		It("should log success at info", func() {
			Expect(call(nil)).To(HaveKeyWithValue("msg", "finish success"))
		})
	})
})
