package api

import "github.com/gin-gonic/gin"

func SetupRoutes(r *gin.Engine, h *Handler) {
	v1 := r.Group("/v1")
	{
		res := v1.Group("/reservations")
		{
			res.POST("", h.CreateReservation)
			res.GET("", h.GetReservations)
			res.GET("/participant/:id", h.GetReservationsByParticipant)
			res.GET("/session/:id", h.GetReservationsBySession)
			res.PUT("/:id/status", h.UpdateReservationStatus)
		}

		ses := v1.Group("/sessions")
		{
			ses.POST("", h.CreateSession)
			ses.GET("", h.GetSessions)
			ses.GET("/:id", h.GetSessionByID)
			ses.PUT("/:id", h.UpdateSession)
			ses.DELETE("/:id", h.DeleteSession)
		}
	}
}
