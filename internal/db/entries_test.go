package db

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dojolog/internal/models"
)

var entryColumnNames = []string{
	"id", "user_id", "entry_date", "weight_kg", "trained_bjj", "went_gym",
	"bjj_rating_stars", "gym_rating_stars", "rating_stars",
	"bjj_comment", "gym_comment", "rating_comment", "created_at", "updated_at",
}

func newMockRepo(t *testing.T) (*EntryRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewEntryRepository(sqlx.NewDb(conn, "pgx")), mock
}

func Test_ListAscending_ScopesAndCanonicalizes(t *testing.T) {
	repo, mock := newMockRepo(t)

	// what a driver in a non-UTC session zone could hand back
	tokyo := time.FixedZone("JST", 9*60*60)
	stored := time.Date(2024, time.May, 2, 21, 0, 0, 0, tokyo)
	now := time.Now()

	rows := sqlmock.NewRows(entryColumnNames).
		AddRow("e1", "user-1", stored, 81.5, true, false, 4, nil, 3, "good", nil, nil, now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM entries WHERE user_id = $1 ORDER BY entry_date ASC")).
		WithArgs("user-1").
		WillReturnRows(rows)

	out, err := repo.ListAscending(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	e := out[0]
	assert.Equal(t, "e1", e.ID)
	assert.Equal(t, time.Date(2024, time.May, 2, 12, 0, 0, 0, time.UTC), e.Date)
	require.NotNil(t, e.WeightKg)
	assert.Equal(t, 81.5, *e.WeightKg)
	require.NotNil(t, e.BjjRatingStars)
	assert.Equal(t, 4, *e.BjjRatingStars)
	assert.Nil(t, e.GymRatingStars)
	require.NotNil(t, e.BjjComment)
	assert.Equal(t, "good", *e.BjjComment)
	assert.Nil(t, e.GymComment)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_ListRecent_PassesLimit(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY entry_date DESC LIMIT $2")).
		WithArgs("user-1", 14).
		WillReturnRows(sqlmock.NewRows(entryColumnNames))

	out, err := repo.ListRecent(context.Background(), "user-1", 14)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_CountTraining(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta("COUNT(*) FILTER (WHERE went_gym)")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"gym_count", "bjj_count"}).AddRow(7, 12))

	c, err := repo.CountTraining(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Equal(t, models.TrainingCounts{Gym: 7, Bjj: 12}, c)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Upsert(t *testing.T) {
	repo, mock := newMockRepo(t)
	day := time.Date(2024, time.February, 29, 12, 0, 0, 0, time.UTC)
	weight := 80.2

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, entry_date)")).
		WithArgs(sqlmock.AnyArg(), "user-1", day, weight, true, false,
			nil, nil, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "inserted"}).AddRow("existing-id", false))

	e := &models.Entry{UserID: "user-1", Date: day, WeightKg: &weight, TrainedBjj: true}
	inserted, err := repo.Upsert(context.Background(), e)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.Equal(t, "existing-id", e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func Test_Upsert_Error(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectQuery("INSERT INTO entries").WillReturnError(errors.New("connection reset"))

	_, err := repo.Upsert(context.Background(), &models.Entry{UserID: "user-1", Date: time.Now()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upsert entry")
}

func Test_Delete_ScopedToOwner(t *testing.T) {
	repo, mock := newMockRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM entries WHERE id = $1 AND user_id = $2")).
		WithArgs("e1", "intruder").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM entries WHERE id = $1 AND user_id = $2")).
		WithArgs("e1", "owner").
		WillReturnResult(sqlmock.NewResult(0, 1))

	n, err := repo.Delete(context.Background(), "intruder", "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = repo.Delete(context.Background(), "owner", "e1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
