package db

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"dojolog/internal/dates"
	"dojolog/internal/models"
)

type entryKey struct {
	userID string
	date   time.Time
}

// MemoryEntryRepository keeps entries in process memory. It backs local runs
// without DATABASE_URL and the handler tests; contents vanish on restart.
type MemoryEntryRepository struct {
	mu    sync.Mutex
	byKey map[entryKey]*models.Entry
	now   func() time.Time
}

func NewMemoryEntryRepository() *MemoryEntryRepository {
	return &MemoryEntryRepository{byKey: map[entryKey]*models.Entry{}, now: time.Now}
}

func (r *MemoryEntryRepository) ListAscending(_ context.Context, userID string) ([]models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.userEntries(userID)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out, nil
}

func (r *MemoryEntryRepository) ListRecent(_ context.Context, userID string, limit int) ([]models.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.userEntries(userID)
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryEntryRepository) CountTraining(_ context.Context, userID string) (models.TrainingCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var c models.TrainingCounts
	for _, e := range r.userEntries(userID) {
		if e.WentGym {
			c.Gym++
		}
		if e.TrainedBjj {
			c.Bjj++
		}
	}
	return c, nil
}

func (r *MemoryEntryRepository) Upsert(_ context.Context, e *models.Entry) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := r.now()
	key := entryKey{userID: e.UserID, date: dates.Canonical(e.Date)}
	if existing, ok := r.byKey[key]; ok {
		stored := *e
		stored.ID = existing.ID
		stored.Date = key.date
		stored.CreatedAt = existing.CreatedAt
		stored.UpdatedAt = now
		r.byKey[key] = &stored
		e.ID = existing.ID
		return false, nil
	}
	stored := *e
	stored.ID = uuid.NewString()
	stored.Date = key.date
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.byKey[key] = &stored
	e.ID = stored.ID
	return true, nil
}

func (r *MemoryEntryRepository) Delete(_ context.Context, userID, id string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for key, e := range r.byKey {
		if e.ID == id && e.UserID == userID {
			delete(r.byKey, key)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *MemoryEntryRepository) Ping(context.Context) error { return nil }

// userEntries copies the caller's rows so callers can't alias stored state.
func (r *MemoryEntryRepository) userEntries(userID string) []models.Entry {
	out := []models.Entry{}
	for _, e := range r.byKey {
		if e.UserID == userID {
			out = append(out, *e)
		}
	}
	return out
}
