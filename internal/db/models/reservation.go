package models

import "time"

// Status is the closed set of reservation lifecycle states.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusRejected  Status = "REJECTED"
)

// ParseStatus validates a raw status string against the closed set.
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusRejected:
		return Status(s), true
	}
	return "", false
}

// Blocking reports whether a reservation in this status counts against
// the participant's non-overlap rule. Rejected reservations are inert
// history.
func (s Status) Blocking() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Reservation represents one participant's claim on one session.
type Reservation struct {
	ID            int       `db:"id" json:"id"`
	ParticipantID int       `db:"participant_id" json:"participant_id"`
	SessionID     int       `db:"session_id" json:"session_id"`
	Status        Status    `db:"status" json:"status"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

// BlockingReservation is a blocking-set row joined with its session's
// time window. The window fields are nil when the referenced session is
// missing or has incomplete times; such rows are skipped during
// conflict checks.
type BlockingReservation struct {
	Reservation
	SessionStart *time.Time `db:"session_start"`
	SessionEnd   *time.Time `db:"session_end"`
}
