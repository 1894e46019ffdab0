package repos

import (
	"context"
	"database/sql"
	"time"

	"formation-service/internal/db/models"

	"github.com/jmoiron/sqlx"
)

// SessionRepository handles database operations for training sessions.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// GetSessionByID retrieves a session by its ID. Returns nil, nil when the
// session does not exist.
func (r *SessionRepository) GetSessionByID(ctx context.Context, id int) (*models.Session, error) {
	var s models.Session
	err := r.db.GetContext(ctx, &s, `SELECT * FROM sessions WHERE id=$1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// GetAllSessions retrieves every session in the directory.
func (r *SessionRepository) GetAllSessions(ctx context.Context) ([]models.Session, error) {
	sessions := []models.Session{}
	err := r.db.SelectContext(ctx, &sessions, `SELECT * FROM sessions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// CreateSession creates a new session record.
func (r *SessionRepository) CreateSession(ctx context.Context, s *models.Session) (*models.Session, error) {
	var created models.Session
	err := r.db.QueryRowxContext(ctx,
		`INSERT INTO sessions (title, description, online, location, meet_link, trainer_id, start_time, end_time, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING *`,
		s.Title, s.Description, s.Online, s.Location, s.MeetLink, s.TrainerID,
		s.StartTime, s.EndTime, time.Now().UTC(),
	).StructScan(&created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateSession updates an existing session. Returns nil, nil when the
// session does not exist.
func (r *SessionRepository) UpdateSession(ctx context.Context, s *models.Session) (*models.Session, error) {
	var updated models.Session
	err := r.db.QueryRowxContext(ctx,
		`UPDATE sessions
		 SET title=$1, description=$2, online=$3, location=$4, meet_link=$5, trainer_id=$6, start_time=$7, end_time=$8
		 WHERE id=$9
		 RETURNING *`,
		s.Title, s.Description, s.Online, s.Location, s.MeetLink, s.TrainerID,
		s.StartTime, s.EndTime, s.ID,
	).StructScan(&updated)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &updated, nil
}

// DeleteSession removes a session from the directory.
func (r *SessionRepository) DeleteSession(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	return err
}
