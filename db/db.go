// Package db owns the database connection pool and schema migrations.
package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"
)

//go:embed migrations/*.sql
var migrations embed.FS

// newBackoff returns the startup retry schedule. Both Connect and Migrate
// use it, so a database that comes up slightly later than the service does
// not kill the process whichever of the two runs first. Replaced in tests.
var newBackoff = func() retry.Backoff {
	return retry.WithMaxRetries(5, retry.NewExponential(time.Second))
}

// Connect opens a pgx connection pool, retrying with exponential backoff.
// The pool is safe for concurrent use by the handlers and the job poller.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool

	err := retry.Do(ctx, newBackoff(), func(ctx context.Context) error {
		var err error
		pool, err = pgxpool.Connect(ctx, dsn)
		if err != nil {
			log.Printf("Database not reachable yet, retrying: %v", err)
			return retry.RetryableError(err)
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			log.Printf("Database not reachable yet, retrying: %v", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return pool, nil
}

// Migrate applies the embedded goose migrations, with the same backoff as
// Connect since it may be the first thing to reach the database.
func Migrate(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("opening migration connection: %w", err)
	}
	defer sqlDB.Close()

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	err = retry.Do(ctx, newBackoff(), func(ctx context.Context) error {
		if err := goose.Up(sqlDB, "migrations"); err != nil {
			log.Printf("Migrations not applied yet, retrying: %v", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	return nil
}
