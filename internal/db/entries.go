package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"dojolog/internal/dates"
	"dojolog/internal/models"
)

const entryColumns = `id, user_id, entry_date, weight_kg, trained_bjj, went_gym,
	bjj_rating_stars, gym_rating_stars, rating_stars,
	bjj_comment, gym_comment, rating_comment, created_at, updated_at`

// EntryRepository reads and writes entries. Every statement is scoped by user_id.
type EntryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) *EntryRepository {
	return &EntryRepository{db: db}
}

func (r *EntryRepository) ListAscending(ctx context.Context, userID string) ([]models.Entry, error) {
	var out []models.Entry
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+entryColumns+` FROM entries WHERE user_id = $1 ORDER BY entry_date ASC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return canonicalize(out), nil
}

func (r *EntryRepository) ListRecent(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	var out []models.Entry
	err := r.db.SelectContext(ctx, &out,
		`SELECT `+entryColumns+` FROM entries WHERE user_id = $1 ORDER BY entry_date DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent entries: %w", err)
	}
	return canonicalize(out), nil
}

func (r *EntryRepository) CountTraining(ctx context.Context, userID string) (models.TrainingCounts, error) {
	var c models.TrainingCounts
	err := r.db.GetContext(ctx, &c, `
		SELECT
			COUNT(*) FILTER (WHERE went_gym) AS gym_count,
			COUNT(*) FILTER (WHERE trained_bjj) AS bjj_count
		FROM entries
		WHERE user_id = $1`, userID)
	if err != nil {
		return models.TrainingCounts{}, fmt.Errorf("count entries: %w", err)
	}
	return c, nil
}

// Upsert inserts e or overwrites every mutable column of the row with the
// same (user_id, entry_date). e.ID is set to the stored id. The returned bool
// is true when a new row was inserted.
func (r *EntryRepository) Upsert(ctx context.Context, e *models.Entry) (bool, error) {
	var inserted bool
	err := r.db.QueryRowxContext(ctx, `
		INSERT INTO entries (id, user_id, entry_date, weight_kg, trained_bjj, went_gym,
		                     bjj_rating_stars, gym_rating_stars, rating_stars,
		                     bjj_comment, gym_comment, rating_comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT (user_id, entry_date)
		DO UPDATE SET
			weight_kg = EXCLUDED.weight_kg,
			trained_bjj = EXCLUDED.trained_bjj,
			went_gym = EXCLUDED.went_gym,
			bjj_rating_stars = EXCLUDED.bjj_rating_stars,
			gym_rating_stars = EXCLUDED.gym_rating_stars,
			rating_stars = EXCLUDED.rating_stars,
			bjj_comment = EXCLUDED.bjj_comment,
			gym_comment = EXCLUDED.gym_comment,
			rating_comment = EXCLUDED.rating_comment,
			updated_at = NOW()
		RETURNING id, (xmax = 0)`,
		uuid.NewString(), e.UserID, dates.Canonical(e.Date), e.WeightKg, e.TrainedBjj, e.WentGym,
		e.BjjRatingStars, e.GymRatingStars, e.RatingStars,
		e.BjjComment, e.GymComment, e.RatingComment,
	).Scan(&e.ID, &inserted)
	if err != nil {
		return false, fmt.Errorf("upsert entry: %w", err)
	}
	return inserted, nil
}

// Delete removes the entry only if it belongs to userID and reports how many
// rows went away.
func (r *EntryRepository) Delete(ctx context.Context, userID, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete entry: %w", err)
	}
	return n, nil
}

func (r *EntryRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func canonicalize(entries []models.Entry) []models.Entry {
	for i := range entries {
		entries[i].Date = dates.Canonical(entries[i].Date)
	}
	return entries
}
