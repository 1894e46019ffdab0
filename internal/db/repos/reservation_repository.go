package repos

import (
	"context"
	"database/sql"

	"formation-service/internal/db/models"

	"github.com/jmoiron/sqlx"
)

// ReservationRepository handles database operations for session
// reservations.
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// CreateReservation inserts a new reservation and returns the persisted
// row including its assigned ID.
func (r *ReservationRepository) CreateReservation(ctx context.Context, res *models.Reservation) (*models.Reservation, error) {
	var created models.Reservation
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO reservations (participant_id, session_id, status, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING *`,
		res.ParticipantID, res.SessionID, res.Status, res.CreatedAt,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetReservationByID retrieves a reservation by ID. Returns nil, nil when
// the reservation does not exist.
func (r *ReservationRepository) GetReservationByID(ctx context.Context, id int) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.GetContext(ctx, &res, `SELECT * FROM reservations WHERE id=$1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

// UpdateReservationStatus persists a new status and returns the updated
// row. Returns nil, nil when the reservation does not exist.
func (r *ReservationRepository) UpdateReservationStatus(ctx context.Context, id int, status models.Status) (*models.Reservation, error) {
	var updated models.Reservation
	err := r.db.QueryRowxContext(ctx,
		`UPDATE reservations SET status=$1 WHERE id=$2 RETURNING *`,
		status, id,
	).StructScan(&updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// GetBlockingByParticipant returns the participant's pending and
// confirmed reservations, each joined with its session's time window.
// The join is a LEFT JOIN so a reservation whose session has gone
// missing still comes back, with nil window fields.
func (r *ReservationRepository) GetBlockingByParticipant(ctx context.Context, participantID int) ([]models.BlockingReservation, error) {
	blocking := []models.BlockingReservation{}
	err := r.db.SelectContext(ctx, &blocking,
		`SELECT r.id, r.participant_id, r.session_id, r.status, r.created_at,
		        s.start_time AS session_start, s.end_time AS session_end
		 FROM reservations r
		 LEFT JOIN sessions s ON s.id = r.session_id
		 WHERE r.participant_id=$1 AND r.status IN ($2, $3)`,
		participantID, models.StatusPending, models.StatusConfirmed,
	)
	if err != nil {
		return nil, err
	}
	return blocking, nil
}

// GetAllReservations retrieves every reservation.
func (r *ReservationRepository) GetAllReservations(ctx context.Context) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := r.db.SelectContext(ctx, &reservations, `SELECT * FROM reservations`)
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservationsByParticipant retrieves a participant's reservations,
// all statuses included.
func (r *ReservationRepository) GetReservationsByParticipant(ctx context.Context, participantID int) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := r.db.SelectContext(ctx, &reservations,
		`SELECT * FROM reservations WHERE participant_id=$1`, participantID)
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservationsBySession retrieves a session's reservations, all
// statuses included.
func (r *ReservationRepository) GetReservationsBySession(ctx context.Context, sessionID int) ([]models.Reservation, error) {
	reservations := []models.Reservation{}
	err := r.db.SelectContext(ctx, &reservations,
		`SELECT * FROM reservations WHERE session_id=$1`, sessionID)
	if err != nil {
		return nil, err
	}
	return reservations, nil
}
