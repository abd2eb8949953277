package db

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// RunMigrations creates the entries table. entry_date holds noon UTC of the
// calendar day; the (user_id, entry_date) unique constraint is the upsert key.
func RunMigrations(ctx context.Context, db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    entry_date TIMESTAMPTZ NOT NULL,
    weight_kg DOUBLE PRECISION CHECK (weight_kg > 0),
    trained_bjj BOOLEAN NOT NULL DEFAULT false,
    went_gym BOOLEAN NOT NULL DEFAULT false,
    bjj_rating_stars SMALLINT CHECK (bjj_rating_stars BETWEEN 1 AND 5),
    gym_rating_stars SMALLINT CHECK (gym_rating_stars BETWEEN 1 AND 5),
    rating_stars SMALLINT CHECK (rating_stars BETWEEN 1 AND 5),
    bjj_comment TEXT,
    gym_comment TEXT,
    rating_comment TEXT,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE(user_id, entry_date)
);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}
