package grpcx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

type logger interface {
	Info(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)
}

type Service interface {
	RegisterService(grpc.ServiceRegistrar)
}

//go:generate options-gen -out-filename=server_options.gen.go -from-struct=Options -all-variadic true
type Options struct {
	addr     string    `option:"mandatory" validate:"required,hostname_port"`
	services []Service `validate:"required,min=1"`

	logger logger

	grpcOptions        []grpc.ServerOption
	unaryInterceptors  []grpc.UnaryServerInterceptor
	streamInterceptors []grpc.StreamServerInterceptor

	maxConnIdle          time.Duration `default:"5m"`
	keepaliveTime        time.Duration `default:"2h" validate:"gt=0"`
	keepaliveTimeout     time.Duration `default:"20s" validate:"gt=0"`
	maxConcurrentStreams uint32        `default:"50" validate:"min=1"`
}

type Server struct {
	opts Options
	srv  *grpc.Server
}

func New(opts Options) (*Server, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("grpc server validate: %v", err)
	}

	if opts.logger == nil {
		opts.logger = &noopLogger{}
	}

	interceptors := append(
		[]grpc.UnaryServerInterceptor{RecoveryInterceptor(opts.logger)},
		opts.unaryInterceptors...,
	)
	streamInterceptors := append(
		[]grpc.StreamServerInterceptor{StreamRecoveryInterceptor(opts.logger)},
		opts.streamInterceptors...,
	)

	grpcOptions := append(opts.grpcOptions,
		grpc.KeepaliveParams(keepalive.ServerParameters{
			MaxConnectionIdle: opts.maxConnIdle,
			Time:              opts.keepaliveTime,
			Timeout:           opts.keepaliveTimeout,
		}),
		grpc.MaxConcurrentStreams(opts.maxConcurrentStreams),
		grpc.ChainUnaryInterceptor(interceptors...),
		grpc.ChainStreamInterceptor(streamInterceptors...),
	)

	srv := grpc.NewServer(grpcOptions...)

	for _, svc := range opts.services {
		svc.RegisterService(srv)
	}

	return &Server{opts: opts, srv: srv}, nil
}

func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.opts.addr)
	if err != nil {
		return fmt.Errorf("run grpc: %v", err)
	}

	return s.Serve(ctx, listener)
}

// Serve blocks on the given listener until ctx is done.
func (s *Server) Serve(ctx context.Context, listener net.Listener) error {
	go func() {
		<-ctx.Done()
		s.srv.GracefulStop()
	}()

	s.opts.logger.Info(
		ctx,
		"run grpc server",
		slog.String("addr", listener.Addr().String()),
	)

	if err := s.srv.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("listen and serve: %v", err)
	}

	return nil
}

type noopLogger struct{}

func (n *noopLogger) Info(context.Context, string, ...slog.Attr)  {}
func (n *noopLogger) Error(context.Context, string, ...slog.Attr) {}
