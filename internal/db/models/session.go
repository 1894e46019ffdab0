package models

import "time"

// Session represents a scheduled, time-boxed training session that
// participants can reserve. The engine only reads the time window;
// everything else is directory metadata.
type Session struct {
	ID          int        `db:"id" json:"id"`
	Title       string     `db:"title" json:"title"`
	Description string     `db:"description" json:"description"`
	Online      bool       `db:"online" json:"online"`
	Location    string     `db:"location" json:"location,omitempty"`
	MeetLink    string     `db:"meet_link" json:"meet_link,omitempty"`
	TrainerID   int        `db:"trainer_id" json:"trainer_id"`
	StartTime   *time.Time `db:"start_time" json:"start_time"`
	EndTime     *time.Time `db:"end_time" json:"end_time"`
	PublishedAt time.Time  `db:"published_at" json:"published_at"`
}
