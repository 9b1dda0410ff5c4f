package slogx

import (
	"context"
	"log/slog"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func LoggingInterceptor(
	ctx context.Context,
	req any,
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (resp any, err error) {
	start := time.Now()
	logger := Default()

	method := slog.String("method", info.FullMethod)
	logger.Debug(ctx, "start handling grpc method", method)

	resp, err = handler(ctx, req)

	durAttr := slog.Duration("duration", time.Since(start))
	if err != nil {
		code := status.Code(err)

		level := slog.LevelWarn
		switch code {
		case codes.Internal, codes.Unknown, codes.Unavailable, codes.DataLoss:
			level = slog.LevelError
		}

		logger.Log(
			ctx,
			level,
			"finish with error",
			method,
			durAttr,
			slog.String("code", code.String()),
			Err(err),
		)
	} else {
		logger.Info(ctx, "finish success", method, durAttr)
	}

	return
}
