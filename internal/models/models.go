package models

import "time"

type Entry struct {
	ID             string    `db:"id" json:"id"`
	UserID         string    `db:"user_id" json:"user_id"`
	Date           time.Time `db:"entry_date" json:"date"` // noon UTC of the calendar day
	WeightKg       *float64  `db:"weight_kg" json:"weight_kg,omitempty"`
	TrainedBjj     bool      `db:"trained_bjj" json:"trained_bjj"`
	WentGym        bool      `db:"went_gym" json:"went_gym"`
	BjjRatingStars *int      `db:"bjj_rating_stars" json:"bjj_rating_stars,omitempty"`
	GymRatingStars *int      `db:"gym_rating_stars" json:"gym_rating_stars,omitempty"`
	RatingStars    *int      `db:"rating_stars" json:"rating_stars,omitempty"`
	BjjComment     *string   `db:"bjj_comment" json:"bjj_comment,omitempty"`       // Encrypted in DB when a secret is configured
	GymComment     *string   `db:"gym_comment" json:"gym_comment,omitempty"`       // Encrypted in DB when a secret is configured
	RatingComment  *string   `db:"rating_comment" json:"rating_comment,omitempty"` // Encrypted in DB when a secret is configured
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// TrainingCounts are lifetime totals over all of a user's entries.
type TrainingCounts struct {
	Gym int `db:"gym_count" json:"gym_count"`
	Bjj int `db:"bjj_count" json:"bjj_count"`
}
