package grpcx_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"google.golang.org/grpc"

	"github.com/evgeniy-krivenko/bookshelf/pkg/grpcx"
)

type stubService struct{ registered bool }

func (s *stubService) RegisterService(grpc.ServiceRegistrar) { s.registered = true }

var _ = Describe("Server", func() {
	It("should register every service", func() {
		svc := &stubService{}

		_, err := grpcx.New(grpcx.NewOptions(":50051", grpcx.WithServices(svc)))

		Expect(err).NotTo(HaveOccurred())
		Expect(svc.registered).To(BeTrue())
	})

	It("should require at least one service", func() {
		_, err := grpcx.New(grpcx.NewOptions(":50051"))
		Expect(err).To(MatchError(ContainSubstring("services")))
	})

	It("should reject non-positive keepalive settings", func() {
		_, err := grpcx.New(grpcx.NewOptions(
			":50051",
			grpcx.WithServices(&stubService{}),
			grpcx.WithKeepaliveTime(0),
			grpcx.WithKeepaliveTimeout(time.Second),
		))
		Expect(err).To(MatchError(ContainSubstring("keepaliveTime")))
	})

	It("should reject a zero stream limit", func() {
		_, err := grpcx.New(grpcx.NewOptions(
			":50051",
			grpcx.WithServices(&stubService{}),
			grpcx.WithMaxConcurrentStreams(0),
		))
		Expect(err).To(MatchError(ContainSubstring("maxConcurrentStreams")))
	})
})
