package grpcx

import (
	"context"
	"log/slog"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func RecoveryInterceptor(l logger) grpc.UnaryServerInterceptor {
	return recovery.UnaryServerInterceptor(recoveryHandler(l))
}

func StreamRecoveryInterceptor(l logger) grpc.StreamServerInterceptor {
	return recovery.StreamServerInterceptor(recoveryHandler(l))
}

func recoveryHandler(l logger) recovery.Option {
	return recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		l.Error(ctx, "recovered from panic", slog.Any("panic", p))

		return status.Error(codes.Internal, "internal error")
	})
}
