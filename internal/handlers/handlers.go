package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bioskop/internal/cache"
	apperrors "bioskop/internal/errors"
	"bioskop/internal/service"

	"github.com/gin-gonic/gin"
)

type Handlers struct {
	services *service.Services
	cache    *cache.Client
	cacheTTL time.Duration
}

func NewHandlers(services *service.Services, cacheClient *cache.Client, cacheTTL time.Duration) *Handlers {
	return &Handlers{
		services: services,
		cache:    cacheClient,
		cacheTTL: cacheTTL,
	}
}

// handleServiceError translates domain errors into HTTP responses. Seat
// conflicts are 409 wherever they surface; validation and settlement
// problems are 400; unknown references are 404. Anything unexpected is
// logged and reported as a plain 500.
func (h *Handlers) handleServiceError(c *gin.Context, err error, logMsg string) {
	if conflict, ok := apperrors.AsSeatConflict(err); ok {
		c.JSON(http.StatusConflict, gin.H{
			"error":       "seat already sold",
			"seat":        conflict.Seat(),
			"schedule_id": conflict.ScheduleID,
		})
		return
	}

	if short, ok := apperrors.AsInsufficientCash(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "insufficient cash",
			"required":  short.Required,
			"given":     short.Given,
			"shortfall": short.Shortfall(),
		})
		return
	}

	switch {
	case isNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrEmptyCart),
		errors.Is(err, apperrors.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		slog.Error(logMsg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": logMsg})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrMovieNotFound) ||
		errors.Is(err, apperrors.ErrStudioNotFound) ||
		errors.Is(err, apperrors.ErrScheduleNotFound) ||
		errors.Is(err, apperrors.ErrMemberNotFound) ||
		errors.Is(err, apperrors.ErrCartItemNotFound) ||
		errors.Is(err, apperrors.ErrOrderNotFound)
}
