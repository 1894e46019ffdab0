package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"formation-service/internal/db/models"
	"formation-service/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservationEngine is the part of the reservation service the HTTP
// layer drives.
type ReservationEngine interface {
	RequestReservation(ctx context.Context, participantID, sessionID int) (*models.Reservation, error)
	UpdateStatus(ctx context.Context, reservationID int, status string) (*models.Reservation, error)
	ListAll(ctx context.Context) ([]models.Reservation, error)
	ListByParticipant(ctx context.Context, participantID int) ([]models.Reservation, error)
	ListBySession(ctx context.Context, sessionID int) ([]models.Reservation, error)
}

// SessionStore is the session directory surface exposed over HTTP.
type SessionStore interface {
	CreateSession(ctx context.Context, s *models.Session) (*models.Session, error)
	GetSessionByID(ctx context.Context, id int) (*models.Session, error)
	GetAllSessions(ctx context.Context) ([]models.Session, error)
	UpdateSession(ctx context.Context, s *models.Session) (*models.Session, error)
	DeleteSession(ctx context.Context, id int) error
}

// Handler holds dependencies for API handlers.
type Handler struct {
	engine   ReservationEngine
	sessions SessionStore
}

// NewHandler creates a new Handler with dependencies.
func NewHandler(engine ReservationEngine, sessions SessionStore) *Handler {
	return &Handler{engine: engine, sessions: sessions}
}

// CreateReservation requests admission of a new reservation.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req struct {
		ParticipantID int `json:"participant_id" binding:"required"`
		SessionID     int `json:"session_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	reservation, err := h.engine.RequestReservation(c.Request.Context(), req.ParticipantID, req.SessionID)
	if err != nil {
		var conflict *service.ConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{
				"error":          conflict.Error(),
				"conflict_start": conflict.Start.UTC().Format(time.RFC3339),
				"conflict_end":   conflict.End.UTC().Format(time.RFC3339),
			})
		case errors.Is(err, service.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidSchedule):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, reservation)
}

// GetReservations lists every reservation.
func (h *Handler) GetReservations(c *gin.Context) {
	reservations, err := h.engine.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservationsByParticipant lists a participant's reservations.
func (h *Handler) GetReservationsByParticipant(c *gin.Context) {
	participantID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid participant ID"})
		return
	}

	reservations, err := h.engine.ListByParticipant(c.Request.Context(), participantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// GetReservationsBySession lists a session's reservations.
func (h *Handler) GetReservationsBySession(c *gin.Context) {
	sessionID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	reservations, err := h.engine.ListBySession(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// UpdateReservationStatus moves a reservation to the status given in the
// "status" query parameter.
func (h *Handler) UpdateReservationStatus(c *gin.Context) {
	reservationID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid reservation ID"})
		return
	}
	status := c.Query("status")
	if status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing status parameter"})
		return
	}

	reservation, err := h.engine.UpdateStatus(c.Request.Context(), reservationID, status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrReservationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// defaultMeetLink is used for online sessions created without one.
const defaultMeetLink = "https://meet.google.com/new"

// CreateSession creates a new session in the directory.
func (h *Handler) CreateSession(c *gin.Context) {
	var req struct {
		Title       string     `json:"title" binding:"required"`
		Description string     `json:"description"`
		Online      bool       `json:"online"`
		Location    string     `json:"location"`
		MeetLink    string     `json:"meet_link"`
		TrainerID   int        `json:"trainer_id"`
		StartTime   *time.Time `json:"start_time" binding:"required"`
		EndTime     *time.Time `json:"end_time" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session := &models.Session{
		Title:       req.Title,
		Description: req.Description,
		Online:      req.Online,
		Location:    req.Location,
		MeetLink:    req.MeetLink,
		TrainerID:   req.TrainerID,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}
	if session.Online && session.MeetLink == "" {
		session.MeetLink = defaultMeetLink
	}

	created, err := h.sessions.CreateSession(c.Request.Context(), session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetSessions lists every session in the directory.
func (h *Handler) GetSessions(c *gin.Context) {
	sessions, err := h.sessions.GetAllSessions(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// GetSessionByID retrieves a session by its ID.
func (h *Handler) GetSessionByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	session, err := h.sessions.GetSessionByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if session == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession updates a session's directory record.
func (h *Handler) UpdateSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	var session models.Session
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	session.ID = id

	updated, err := h.sessions.UpdateSession(c.Request.Context(), &session)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteSession removes a session from the directory.
func (h *Handler) DeleteSession(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID"})
		return
	}

	if err := h.sessions.DeleteSession(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}
