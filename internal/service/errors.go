package service

import (
	"errors"
	"fmt"
	"time"
)

// Caller-visible failures of the reservation engine. All are recoverable
// outcomes of a single call; the engine never retries internally.
var (
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidSchedule     = errors.New("session start and end times must be set")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrInvalidStatus       = errors.New("invalid reservation status")
)

// ConflictError is returned when the requested session overlaps one of
// the participant's pending or confirmed reservations. It carries the
// conflicting window for diagnostics.
type ConflictError struct {
	Start time.Time
	End   time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("participant already has a session scheduled between %s and %s",
		e.Start.Format(time.RFC3339), e.End.Format(time.RFC3339))
}
