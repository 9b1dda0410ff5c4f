package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5/pgxpool"
)

type logger interface {
	Warn(context.Context, string, ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	address  string `option:"mandatory" validate:"omitempty,hostname_port"`
	username string `option:"mandatory"`
	password string `option:"mandatory"`
	database string `option:"mandatory"`

	// dsn overrides the parts above when set.
	dsn     string `validate:"omitempty,url"`
	sslMode string `default:"disable" validate:"oneof=disable allow prefer require verify-ca verify-full"`

	retry         bool          `default:"true"`
	retryAttempts uint          `default:"1" validate:"min=1,max=10"`
	retryDelay    time.Duration `default:"300ms"`

	maxConns int32 `default:"5" validate:"min=1,max=100"`

	logger logger
}

// validate adds the rule the generated Validate cannot express:
// without a dsn the connection parts are mandatory.
func (o *Options) validate() error {
	if err := o.Validate(); err != nil {
		return err
	}

	if o.dsn != "" {
		return nil
	}

	var missing []string
	for name, v := range map[string]string{"address": o.address, "username": o.username, "database": o.database} {
		if v == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("%s required without dsn", strings.Join(missing, ", "))
	}

	return nil
}

func NewPGX(ctx context.Context, opts Options) (*pgxpool.Pool, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("validate options for pgx: %v", err)
	}

	if opts.logger == nil {
		opts.logger = noopLogger{}
	}

	cfg, err := pgxpool.ParseConfig(opts.connString())
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %v", err)
	}

	cfg.MaxConns = opts.maxConns
	cfg.MinConns = 1
	cfg.MaxConnIdleTime = 5 * time.Minute
	cfg.MaxConnLifetime = 30 * time.Minute
	cfg.ConnConfig.RuntimeParams["timezone"] = "UTC"

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open new pgx pool: %v", err)
	}

	if !opts.retry {
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("ping to database: %v", err)
		}
		return pool, nil
	}

	if err := retry.Do(
		func() error { return pool.Ping(ctx) },
		retry.Context(ctx),
		retry.Delay(opts.retryDelay),
		retry.Attempts(opts.retryAttempts),
		retry.OnRetry(func(attempt uint, err error) {
			opts.logger.Warn(
				ctx,
				"failed ping to database",
				slog.Any("err", err),
				slog.Uint64("attempt", uint64(attempt)),
			)
		}),
	); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping to database: %v", err)
	}

	return pool, nil
}

func (o Options) connString() string {
	if o.dsn != "" {
		return o.dsn
	}

	ds := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(o.username, o.password),
		Host:     o.address,
		Path:     o.database,
		RawQuery: url.Values{"sslmode": []string{o.sslMode}}.Encode(),
	}

	return ds.String()
}

type noopLogger struct{}

func (n noopLogger) Warn(context.Context, string, ...slog.Attr) {}
