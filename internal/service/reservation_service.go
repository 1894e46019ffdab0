package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"formation-service/internal/db/models"

	"github.com/google/uuid"
)

// SessionDirectory resolves session scheduling facts. A nil session with
// a nil error means the session does not exist.
type SessionDirectory interface {
	GetSessionByID(ctx context.Context, id int) (*models.Session, error)
}

// ReservationStore is the persistence contract the engine drives.
// Update and lookup methods return nil, nil for a missing row.
type ReservationStore interface {
	CreateReservation(ctx context.Context, r *models.Reservation) (*models.Reservation, error)
	GetReservationByID(ctx context.Context, id int) (*models.Reservation, error)
	UpdateReservationStatus(ctx context.Context, id int, status models.Status) (*models.Reservation, error)
	GetBlockingByParticipant(ctx context.Context, participantID int) ([]models.BlockingReservation, error)
	GetAllReservations(ctx context.Context) ([]models.Reservation, error)
	GetReservationsByParticipant(ctx context.Context, participantID int) ([]models.Reservation, error)
	GetReservationsBySession(ctx context.Context, sessionID int) ([]models.Reservation, error)
}

// Publisher emits reservation lifecycle events. A publish failure never
// affects the reservation it describes.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, message any) error
}

// ReservationService admits reservation requests and drives the
// reservation status lifecycle. A participant's pending and confirmed
// reservations must keep pairwise non-overlapping session windows.
type ReservationService struct {
	sessions  SessionDirectory
	store     ReservationStore
	pub       Publisher
	admission *keyedMutex
	now       func() time.Time
}

// NewReservationService creates a new ReservationService. pub may be nil
// when no broker is configured.
func NewReservationService(sessions SessionDirectory, store ReservationStore, pub Publisher) *ReservationService {
	return &ReservationService{
		sessions:  sessions,
		store:     store,
		pub:       pub,
		admission: newKeyedMutex(),
		now:       time.Now,
	}
}

// RequestReservation admits a new reservation for participantID on
// sessionID, provided the session's window does not overlap any of the
// participant's pending or confirmed reservations. On success the
// reservation is persisted with status PENDING.
func (s *ReservationService) RequestReservation(ctx context.Context, participantID, sessionID int) (*models.Reservation, error) {
	target, err := s.sessions.GetSessionByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if target == nil {
		return nil, ErrSessionNotFound
	}
	if target.StartTime == nil || target.EndTime == nil {
		return nil, ErrInvalidSchedule
	}

	// Serialize the check-then-insert per participant so two concurrent
	// requests cannot both pass the conflict check.
	mu := s.admission.get(participantID)
	mu.Lock()
	defer mu.Unlock()

	blocking, err := s.store.GetBlockingByParticipant(ctx, participantID)
	if err != nil {
		return nil, fmt.Errorf("load blocking reservations: %w", err)
	}
	for _, b := range blocking {
		// A dangling or incomplete session in history must not block
		// new admissions.
		if b.SessionStart == nil || b.SessionEnd == nil {
			continue
		}
		if windowsOverlap(*target.StartTime, *target.EndTime, *b.SessionStart, *b.SessionEnd) {
			return nil, &ConflictError{Start: *b.SessionStart, End: *b.SessionEnd}
		}
	}

	created, err := s.store.CreateReservation(ctx, &models.Reservation{
		ParticipantID: participantID,
		SessionID:     sessionID,
		Status:        models.StatusPending,
		CreatedAt:     s.now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.publish(ctx, RKReservationCreated, ReservationCreated{
		EventID:       uuid.NewString(),
		ReservationID: created.ID,
		ParticipantID: created.ParticipantID,
		SessionID:     created.SessionID,
		Start:         target.StartTime.Unix(),
		End:           target.EndTime.Unix(),
	})
	return created, nil
}

// windowsOverlap is the boundary-inclusive overlap test: two windows
// conflict unless one ends strictly before the other starts, so windows
// that merely touch at an endpoint conflict.
func windowsOverlap(start, end, exStart, exEnd time.Time) bool {
	return !(end.Before(exStart) || start.After(exEnd))
}

// UpdateStatus moves a reservation to newStatus. Moving PENDING to
// CONFIRMED does not re-run the overlap check: confirmation is treated
// as an administrative override of the admission-time decision.
func (s *ReservationService) UpdateStatus(ctx context.Context, reservationID int, newStatus string) (*models.Reservation, error) {
	status, ok := models.ParseStatus(newStatus)
	if !ok {
		return nil, ErrInvalidStatus
	}

	updated, err := s.store.UpdateReservationStatus(ctx, reservationID, status)
	if err != nil {
		return nil, fmt.Errorf("update reservation status: %w", err)
	}
	if updated == nil {
		return nil, ErrReservationNotFound
	}

	s.publish(ctx, RKReservationStatusChanged, ReservationStatusChanged{
		EventID:       uuid.NewString(),
		ReservationID: updated.ID,
		Status:        string(updated.Status),
	})
	return updated, nil
}

// ListAll returns every reservation.
func (s *ReservationService) ListAll(ctx context.Context) ([]models.Reservation, error) {
	return s.store.GetAllReservations(ctx)
}

// ListByParticipant returns a participant's reservations, all statuses
// included.
func (s *ReservationService) ListByParticipant(ctx context.Context, participantID int) ([]models.Reservation, error) {
	return s.store.GetReservationsByParticipant(ctx, participantID)
}

// ListBySession returns a session's reservations, all statuses included.
func (s *ReservationService) ListBySession(ctx context.Context, sessionID int) ([]models.Reservation, error) {
	return s.store.GetReservationsBySession(ctx, sessionID)
}

func (s *ReservationService) publish(ctx context.Context, key string, message any) {
	if s.pub == nil {
		return
	}
	if err := s.pub.Publish(ctx, key, message); err != nil {
		log.Printf("Failed to publish %s: %v", key, err)
	}
}
