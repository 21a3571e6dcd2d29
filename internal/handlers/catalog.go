package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Catalog handlers

// NowPlaying - GET /api/movies/now-playing
// The listing is identical for every caller, so it is served cache-aside
// as raw JSON when a cache client is configured.
func (h *Handlers) NowPlaying(c *gin.Context) {
	if h.cache != nil {
		rawJSON, err := h.cache.GetNowPlayingRaw(c.Request.Context())
		if err == nil {
			c.Data(http.StatusOK, "application/json", rawJSON)
			return
		}
	}

	response, err := h.services.Catalog.NowPlaying(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to list now playing")
		return
	}

	if h.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := h.cache.SetNowPlayingRaw(c.Request.Context(), payload, h.cacheTTL); err != nil {
				slog.Error("Failed to cache now playing", "error", err)
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetMovie - GET /api/movies/:code
func (h *Handlers) GetMovie(c *gin.Context) {
	response, err := h.services.Catalog.MovieDetails(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleServiceError(c, err, "Failed to get movie")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSeatMap - GET /api/schedules/:code/seats
func (h *Handlers) GetSeatMap(c *gin.Context) {
	response, err := h.services.Catalog.SeatMap(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleServiceError(c, err, "Failed to get seat map")
		return
	}

	c.JSON(http.StatusOK, response)
}
