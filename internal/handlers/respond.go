package handlers

import (
	"errors"
	"log"
	"net/http"

	"emoquiz-service/internal/service"

	"github.com/gin-gonic/gin"
)

// respondError maps the service error taxonomy onto HTTP statuses.
// Validation problems carry their message to the user; upstream failures
// surface as a generic retryable error.
func respondError(c *gin.Context, err error) {
	var validation *service.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": validation.Message,
			"field": validation.Field,
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrExerciseNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionNotOwned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSessionIncomplete):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			log.Printf("Upstream failure (%s): %v", upstream.Op, upstream.Err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error":     "La acción no se pudo completar. Intenta nuevamente.",
				"retryable": true,
			})
			return
		}
		log.Printf("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
