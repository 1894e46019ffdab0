package service

// Routing keys for reservation lifecycle events.
const (
	RKReservationCreated       = "reservation.created"
	RKReservationStatusChanged = "reservation.status_changed"
)

// ReservationCreated is published on successful admission.
type ReservationCreated struct {
	EventID       string `json:"event_id"`
	ReservationID int    `json:"reservation_id"`
	ParticipantID int    `json:"participant_id"`
	SessionID     int    `json:"session_id"`
	Start         int64  `json:"start"` // unix seconds
	End           int64  `json:"end"`
}

// ReservationStatusChanged is published on every status update.
type ReservationStatusChanged struct {
	EventID       string `json:"event_id"`
	ReservationID int    `json:"reservation_id"`
	Status        string `json:"status"`
}
