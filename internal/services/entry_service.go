package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"dojolog/internal/dates"
	"dojolog/internal/models"
	"dojolog/internal/validation"
)

// RecentWindow is how many entries the recent view shows.
const RecentWindow = 14

var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("entry not found")
)

// AuthError carries the message shown to a caller without an identity.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func (e *AuthError) Is(target error) bool { return target == ErrUnauthenticated }

// EntryStore is the persistence the service needs. Implementations must
// scope every call to userID and make Upsert atomic on (user, date).
type EntryStore interface {
	ListAscending(ctx context.Context, userID string) ([]models.Entry, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]models.Entry, error)
	CountTraining(ctx context.Context, userID string) (models.TrainingCounts, error)
	Upsert(ctx context.Context, e *models.Entry) (inserted bool, err error)
	Delete(ctx context.Context, userID, id string) (int64, error)
}

// SaveForm holds raw form values. A nil field was not submitted.
type SaveForm struct {
	Date           *string
	WeightKg       *string
	TrainedBjj     *string
	WentGym        *string
	BjjRatingStars *string
	GymRatingStars *string
	RatingStars    *string
	BjjComment     *string
	GymComment     *string
	RatingComment  *string
}

// Overview is everything the journal page shows.
type Overview struct {
	SignedIn      bool
	EntriesAsc    []models.Entry
	EntriesRecent []models.Entry
	Today         time.Time
	Counts        models.TrainingCounts
}

// SaveOutcome is reported to the metrics layer.
type SaveOutcome struct {
	Entry    models.Entry
	Inserted bool
}

type EntryService struct {
	store  EntryStore
	encSvc *EncryptionService
	logger *zap.Logger
	loc    *time.Location
	now    func() time.Time
}

// NewEntryService wires the service. encSvc may be nil, in which case
// comments are stored as submitted. loc decides which day "today" is.
func NewEntryService(store EntryStore, encSvc *EncryptionService, logger *zap.Logger, loc *time.Location) *EntryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &EntryService{store: store, encSvc: encSvc, logger: logger, loc: loc, now: time.Now}
}

// Overview loads the caller's history. An empty userID yields the signed-out
// view rather than an error.
func (s *EntryService) Overview(ctx context.Context, userID string) (Overview, error) {
	out := Overview{
		EntriesAsc:    []models.Entry{},
		EntriesRecent: []models.Entry{},
		Today:         dates.Today(s.now(), s.loc),
	}
	if userID == "" {
		return out, nil
	}
	out.SignedIn = true

	asc, err := s.store.ListAscending(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	recent, err := s.store.ListRecent(ctx, userID, RecentWindow)
	if err != nil {
		return Overview{}, err
	}
	counts, err := s.store.CountTraining(ctx, userID)
	if err != nil {
		return Overview{}, err
	}
	if err := s.decryptAll(asc); err != nil {
		return Overview{}, err
	}
	if err := s.decryptAll(recent); err != nil {
		return Overview{}, err
	}
	if asc != nil {
		out.EntriesAsc = asc
	}
	if recent != nil {
		out.EntriesRecent = recent
	}
	out.Counts = counts
	return out, nil
}

// Save validates form and upserts it as the caller's entry for its date.
// Validation stops at the first failing field and nothing is written.
func (s *EntryService) Save(ctx context.Context, userID string, form SaveForm) (SaveOutcome, error) {
	if userID == "" {
		return SaveOutcome{}, &AuthError{Message: "Please sign in to save entries."}
	}
	entry, err := buildEntry(userID, form)
	if err != nil {
		return SaveOutcome{}, err
	}
	if err := s.encSvc.EncryptEntry(&entry); err != nil {
		return SaveOutcome{}, fmt.Errorf("encrypt entry: %w", err)
	}
	inserted, err := s.store.Upsert(ctx, &entry)
	if err != nil {
		return SaveOutcome{}, err
	}
	s.logger.Debug("entry saved",
		zap.String("user_id", userID),
		zap.String("entry_id", entry.ID),
		zap.String("date", dates.Format(entry.Date)),
		zap.Bool("inserted", inserted),
	)
	return SaveOutcome{Entry: entry, Inserted: inserted}, nil
}

// Delete removes one of the caller's entries. An id that does not exist and
// an id owned by someone else both yield ErrNotFound.
func (s *EntryService) Delete(ctx context.Context, userID, id string) error {
	if userID == "" {
		return &AuthError{Message: "Please sign in to delete entries."}
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return validation.Errorf("Missing entry id.")
	}
	n, err := s.store.Delete(ctx, userID, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func buildEntry(userID string, form SaveForm) (models.Entry, error) {
	rawDate := ""
	if form.Date != nil {
		rawDate = strings.TrimSpace(*form.Date)
	}
	if rawDate == "" {
		return models.Entry{}, validation.Errorf("Date is required.")
	}
	date, ok := dates.Parse(rawDate)
	if !ok {
		return models.Entry{}, validation.Errorf("Date must be in dd/MM/yyyy format.")
	}

	weight, err := validation.ParseOptionalNumber(form.WeightKg, "Weight")
	if err != nil {
		return models.Entry{}, err
	}
	if v, ok := weight.Get(); ok && v <= 0 {
		return models.Entry{}, validation.Errorf("Weight must be a positive number.")
	}

	bjjRating, err := parseRating(form.BjjRatingStars, "BJJ rating")
	if err != nil {
		return models.Entry{}, err
	}
	gymRating, err := parseRating(form.GymRatingStars, "Gym rating")
	if err != nil {
		return models.Entry{}, err
	}
	rating, err := parseRating(form.RatingStars, "Rating")
	if err != nil {
		return models.Entry{}, err
	}

	return models.Entry{
		UserID:         userID,
		Date:           date,
		WeightKg:       weight.Float64Ptr(),
		TrainedBjj:     validation.Checkbox(form.TrainedBjj),
		WentGym:        validation.Checkbox(form.WentGym),
		BjjRatingStars: bjjRating.IntPtr(),
		GymRatingStars: gymRating.IntPtr(),
		RatingStars:    rating.IntPtr(),
		BjjComment:     validation.NullableString(form.BjjComment),
		GymComment:     validation.NullableString(form.GymComment),
		RatingComment:  validation.NullableString(form.RatingComment),
	}, nil
}

func parseRating(raw *string, label string) (validation.OptionalNumber, error) {
	n, err := validation.ParseOptionalNumber(raw, label)
	if err != nil {
		return validation.OptionalNumber{}, err
	}
	if err := validation.ValidateStarRating(n, label); err != nil {
		return validation.OptionalNumber{}, err
	}
	return n, nil
}

func (s *EntryService) decryptAll(entries []models.Entry) error {
	for i := range entries {
		if err := s.encSvc.DecryptEntry(&entries[i]); err != nil {
			return fmt.Errorf("decrypt entry %s: %w", entries[i].ID, err)
		}
	}
	return nil
}
