package ctxtr_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/evgeniy-krivenko/bookshelf/internal/ctxtr"
)

var _ = Describe("Request id", func() {
	It("should be absent on a bare context", func() {
		_, ok := ctxtr.RequestID(context.Background())
		Expect(ok).To(BeFalse())
	})

	It("should reuse the incoming grpc metadata", func() {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(ctxtr.RequestIDHeader, "req-1"))

		var seen string
		_, err := ctxtr.RequestIDInterceptor(ctx, nil, &grpc.UnaryServerInfo{}, func(ctx context.Context, _ any) (any, error) {
			seen, _ = ctxtr.RequestID(ctx)
			return nil, nil
		})

		Expect(err).NotTo(HaveOccurred())
		Expect(seen).To(Equal("req-1"))
	})

	It("should generate one for http requests and echo it", func() {
		var seen string
		h := ctxtr.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen, _ = ctxtr.RequestID(r.Context())
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		Expect(seen).NotTo(BeEmpty())
		Expect(rec.Header().Get(ctxtr.RequestIDHeader)).To(Equal(seen))
	})

	It("should attach the id to log records", func() {
		var buf bytes.Buffer
		logger := slog.New(ctxtr.LogHandler(slog.NewJSONHandler(&buf, nil))).With("svc", "test")

		logger.InfoContext(ctxtr.WithRequestID(context.Background(), "abc"), "hello")

		var rec map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &rec)).To(Succeed())
		Expect(rec).To(HaveKeyWithValue("request_id", "abc"))
		Expect(rec).To(HaveKeyWithValue("svc", "test"))
	})
})
