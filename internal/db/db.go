package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// Open returns the process-wide connection pool. The caller owns it and
// closes it on shutdown.
func Open(ctx context.Context, databaseURL string, maxOpenConns int) (*sqlx.DB, error) {
	conn, err := sqlx.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	conn.SetMaxOpenConns(maxOpenConns)
	conn.SetConnMaxLifetime(2 * time.Hour)
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return conn, nil
}
