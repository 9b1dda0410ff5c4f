package seeder

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// truncated children first, so RESTART IDENTITY never trips a foreign key
var tables = []string{
	"books",
	"shelves",
}

type Seeder struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) Seeder {
	return Seeder{pool: pool}
}

func (s Seeder) TruncateTables(ctx context.Context) {
	for _, table := range tables {
		_, err := s.pool.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table))
		if err != nil {
			panic(fmt.Sprintf("truncate %s: %v", table, err))
		}
	}
}
