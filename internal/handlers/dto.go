package handlers

import (
	"time"

	"dojolog/internal/dates"
	"dojolog/internal/models"
	"dojolog/internal/services"
)

// EntryDTO renders the entry date as dd/MM/yyyy and timestamps as RFC3339.
type EntryDTO struct {
	ID             string   `json:"id"`
	Date           string   `json:"date"`
	WeightKg       *float64 `json:"weight_kg"`
	TrainedBjj     bool     `json:"trained_bjj"`
	WentGym        bool     `json:"went_gym"`
	BjjRatingStars *int     `json:"bjj_rating_stars"`
	GymRatingStars *int     `json:"gym_rating_stars"`
	RatingStars    *int     `json:"rating_stars"`
	BjjComment     *string  `json:"bjj_comment"`
	GymComment     *string  `json:"gym_comment"`
	RatingComment  *string  `json:"rating_comment"`
	CreatedAt      string   `json:"created_at"`
	UpdatedAt      string   `json:"updated_at"`
}

type OverviewDTO struct {
	SignedIn      bool       `json:"signed_in"`
	EntriesAsc    []EntryDTO `json:"entries_asc"`
	EntriesRecent []EntryDTO `json:"entries_recent"`
	Today         string     `json:"today"`
	GymCount      int        `json:"gym_count"`
	BjjCount      int        `json:"bjj_count"`
}

func ToEntryDTO(e models.Entry) EntryDTO {
	return EntryDTO{
		ID:             e.ID,
		Date:           dates.Format(e.Date),
		WeightKg:       e.WeightKg,
		TrainedBjj:     e.TrainedBjj,
		WentGym:        e.WentGym,
		BjjRatingStars: e.BjjRatingStars,
		GymRatingStars: e.GymRatingStars,
		RatingStars:    e.RatingStars,
		BjjComment:     e.BjjComment,
		GymComment:     e.GymComment,
		RatingComment:  e.RatingComment,
		CreatedAt:      e.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toEntryDTOs(entries []models.Entry) []EntryDTO {
	out := make([]EntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToEntryDTO(e))
	}
	return out
}

func ToOverviewDTO(o services.Overview) OverviewDTO {
	return OverviewDTO{
		SignedIn:      o.SignedIn,
		EntriesAsc:    toEntryDTOs(o.EntriesAsc),
		EntriesRecent: toEntryDTOs(o.EntriesRecent),
		Today:         dates.Format(o.Today),
		GymCount:      o.Counts.Gym,
		BjjCount:      o.Counts.Bjj,
	}
}
