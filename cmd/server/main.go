package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"buf.build/go/protovalidate"
	protovalidate_middleware "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/protovalidate"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/bookshelf/internal/api/library"
	"github.com/evgeniy-krivenko/bookshelf/internal/api/rpc"
	"github.com/evgeniy-krivenko/bookshelf/internal/config"
	"github.com/evgeniy-krivenko/bookshelf/internal/ctxtr"
	"github.com/evgeniy-krivenko/bookshelf/internal/entity"
	"github.com/evgeniy-krivenko/bookshelf/internal/events"
	"github.com/evgeniy-krivenko/bookshelf/internal/migrations"
	"github.com/evgeniy-krivenko/bookshelf/internal/repository"
	"github.com/evgeniy-krivenko/bookshelf/internal/repository/cache"
	"github.com/evgeniy-krivenko/bookshelf/internal/usecase/crud"
	"github.com/evgeniy-krivenko/bookshelf/internal/validation"
	"github.com/evgeniy-krivenko/bookshelf/pkg/database"
	"github.com/evgeniy-krivenko/bookshelf/pkg/grpcx"
	"github.com/evgeniy-krivenko/bookshelf/pkg/gwserver"
	"github.com/evgeniy-krivenko/bookshelf/pkg/logger/slogx"
)

const startTimeout = 30 * time.Second

type (
	bookUsecase  = crud.Usecase[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter]
	shelfUsecase = crud.Usecase[entity.Shelf, entity.ShelfCreateInput, entity.ShelfUpdateInput, entity.ShelfFilter]
)

func main() {
	app := fx.New(
		fx.StartTimeout(startTimeout),
		fx.WithLogger(func(l *slogx.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: slog.New(l.Handler())}
		}),
		fx.Provide(
			newConfig,
			newLogger,
			newDatabase,
			newRedis,
			newPublisher,
			events.NewFeed,
			validation.New,
			newRepo,
			newBookUsecase,
			newShelfUsecase,
			newRequestValidator,
			newGRPCServer,
			newHTTPServer,
		),
		fx.Invoke(migrate, runServers),
	)

	if err := app.Err(); err != nil {
		log.Fatalf("build app: %v", err)
	}

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Parse()
}

func newLogger(cfg config.Config) (*slogx.Logger, error) {
	if err := slogx.InitGlobal(os.Stdout, cfg.App.LogLevel, cfg.App.Pretty, ctxtr.LogHandler); err != nil {
		return nil, err
	}

	return slogx.Default().With(slog.String("app", cfg.App.Name)), nil
}

func newDatabase(lc fx.Lifecycle, cfg config.Config, logger *slogx.Logger) (*database.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	db := cfg.Database
	pool, err := database.NewPGX(ctx, database.NewOptions(
		db.Address(),
		db.User,
		db.Password,
		db.Name,
		database.WithDsn(db.URL),
		database.WithSslMode(db.SSLMode),
		database.WithMaxConns(db.MaxConns),
		database.WithRetryAttempts(db.RetryAttempts),
		database.WithRetryDelay(db.RetryDelay),
		database.WithLogger(logger),
	))
	if err != nil {
		return nil, fmt.Errorf("connect database: %v", err)
	}

	d := database.NewDatabase(pool)
	lc.Append(fx.StopHook(d.Close))

	return d, nil
}

// newRedis returns a nil client when the cache is disabled.
func newRedis(lc fx.Lifecycle, cfg config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	client, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))

	return client, nil
}

func newPublisher(lc fx.Lifecycle, cfg config.Config, logger *slogx.Logger) (events.Publisher, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info(context.Background(), "kafka brokers not set, change events stay in process")
		return events.Noop{}, nil
	}

	k, err := events.NewKafka(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.App.Name)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(k.Close))

	return k, nil
}

func newRepo(db *database.Database) *repository.Repo {
	return repository.New(db)
}

type usecaseDeps struct {
	fx.In

	Config    config.Config
	DB        *database.Database
	Repo      *repository.Repo
	Validator *validation.Validator
	Redis     *redis.Client
	Kafka     events.Publisher
	Feed      *events.Feed
}

func newBookUsecase(d usecaseDeps) (*bookUsecase, error) {
	return newUsecase[entity.Book, entity.BookCreateInput, entity.BookUpdateInput, entity.BookFilter](
		d, "book", d.Repo.Books, validation.NewBookSchema(d.Validator),
	)
}

func newShelfUsecase(d usecaseDeps) (*shelfUsecase, error) {
	return newUsecase[entity.Shelf, entity.ShelfCreateInput, entity.ShelfUpdateInput, entity.ShelfFilter](
		d, "shelf", d.Repo.Shelves, validation.NewShelfSchema(d.Validator),
	)
}

func newUsecase[E crud.Entity, C any, U crud.Identified, F any](
	d usecaseDeps,
	name string,
	store crud.Store[E, C, U, F],
	schema crud.Schema[C, U, F],
) (*crud.Usecase[E, C, U, F], error) {
	publishers := events.Fanout{}

	if d.Redis != nil {
		cached := cache.New(store, d.Redis, name, d.Config.Redis.TTL)
		store = cached
		publishers = append(publishers, cached)
	}

	publishers = append(publishers, d.Feed, d.Kafka)

	return crud.New(crud.Options[E, C, U, F]{
		Name:      name,
		Store:     store,
		Schema:    schema,
		Tx:        d.DB,
		Publisher: publishers,
	})
}

func newRequestValidator() (protovalidate.Validator, error) {
	v, err := protovalidate.New()
	if err != nil {
		return nil, fmt.Errorf("create request validator: %w", err)
	}

	return v, nil
}

func newGRPCServer(
	cfg config.Config,
	logger *slogx.Logger,
	validator protovalidate.Validator,
	books *bookUsecase,
	shelves *shelfUsecase,
	feed *events.Feed,
) (*grpcx.Server, error) {
	return grpcx.New(grpcx.NewOptions(
		cfg.GRPC.Addr,
		grpcx.WithServices(library.New(books, shelves, feed)),
		grpcx.WithLogger(logger),
		grpcx.WithKeepaliveTime(cfg.GRPC.KeepaliveTime),
		grpcx.WithKeepaliveTimeout(cfg.GRPC.KeepaliveTimeout),
		grpcx.WithMaxConcurrentStreams(cfg.GRPC.MaxConcurrentStreams),
		grpcx.WithUnaryInterceptors(
			ctxtr.RequestIDInterceptor,
			slogx.LoggingInterceptor,
			protovalidate_middleware.UnaryServerInterceptor(validator),
		),
		grpcx.WithStreamInterceptors(
			ctxtr.RequestIDStreamInterceptor,
			protovalidate_middleware.StreamServerInterceptor(validator),
		),
	))
}

func newHTTPServer(
	cfg config.Config,
	logger *slogx.Logger,
	db *database.Database,
	books *bookUsecase,
	shelves *shelfUsecase,
) (*gwserver.Server, error) {
	return gwserver.New(gwserver.NewOptions(
		cfg.HTTP.Addr,
		rpc.New(books, shelves, db.Ping),
		gwserver.WithLogger(logger),
		gwserver.WithReadTimeout(cfg.HTTP.ReadTimeout),
		gwserver.WithWriteTimeout(cfg.HTTP.WriteTimeout),
		// the last middleware is outermost, so the access log sees the request id
		gwserver.WithMiddlewares(slogx.HTTPMiddleware, ctxtr.HTTPMiddleware),
	))
}

func migrate(cfg config.Config, db *database.Database) error {
	if !cfg.Database.Migrate {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), startTimeout)
	defer cancel()

	if _, err := migrations.Up(ctx, db.Pool()); err != nil {
		return fmt.Errorf("migrate: %v", err)
	}

	return nil
}

func runServers(lc fx.Lifecycle, sd fx.Shutdowner, grpcSrv *grpcx.Server, httpSrv *gwserver.Server) {
	ctx, cancel := context.WithCancel(context.Background())
	eg, egCtx := errgroup.WithContext(ctx)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			eg.Go(func() error { return grpcSrv.Run(egCtx) })
			eg.Go(func() error { return httpSrv.Run(egCtx) })

			go func() {
				<-egCtx.Done()
				if ctx.Err() == nil {
					// a server failed on its own
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("wait app stop: %v", err)
			}

			return nil
		},
	})
}
