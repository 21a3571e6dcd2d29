package handlers

import (
	"net/http"
	"strconv"

	"bioskop/internal/models"

	"github.com/gin-gonic/gin"
)

// Admin CRUD handlers. These mutate reference data only; orders and the
// seat ledger are never touched here.

// Movies

// ListMovies - GET /api/admin/movies
func (h *Handlers) ListMovies(c *gin.Context) {
	movies, err := h.services.Admin.ListMovies(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to list movies")
		return
	}
	c.JSON(http.StatusOK, movies)
}

// CreateMovie - POST /api/admin/movies
func (h *Handlers) CreateMovie(c *gin.Context) {
	var input models.MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	movie, err := h.services.Admin.CreateMovie(c.Request.Context(), &input)
	if err != nil {
		h.handleServiceError(c, err, "Failed to create movie")
		return
	}
	c.JSON(http.StatusCreated, movie)
}

// UpdateMovie - PUT /api/admin/movies/:id
func (h *Handlers) UpdateMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.MovieInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Admin.UpdateMovie(c.Request.Context(), id, &input); err != nil {
		h.handleServiceError(c, err, "Failed to update movie")
		return
	}
	c.Status(http.StatusOK)
}

// DeleteMovie - DELETE /api/admin/movies/:id
func (h *Handlers) DeleteMovie(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Admin.DeleteMovie(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Failed to delete movie")
		return
	}
	c.Status(http.StatusNoContent)
}

// Studios

// ListStudios - GET /api/admin/studios
func (h *Handlers) ListStudios(c *gin.Context) {
	studios, err := h.services.Admin.ListStudios(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to list studios")
		return
	}
	c.JSON(http.StatusOK, studios)
}

// CreateStudio - POST /api/admin/studios
func (h *Handlers) CreateStudio(c *gin.Context) {
	var input models.StudioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	studio, err := h.services.Admin.CreateStudio(c.Request.Context(), &input)
	if err != nil {
		h.handleServiceError(c, err, "Failed to create studio")
		return
	}
	c.JSON(http.StatusCreated, studio)
}

// UpdateStudio - PUT /api/admin/studios/:id
func (h *Handlers) UpdateStudio(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.StudioInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Admin.UpdateStudio(c.Request.Context(), id, &input); err != nil {
		h.handleServiceError(c, err, "Failed to update studio")
		return
	}
	c.Status(http.StatusOK)
}

// DeleteStudio - DELETE /api/admin/studios/:id
func (h *Handlers) DeleteStudio(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Admin.DeleteStudio(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Failed to delete studio")
		return
	}
	c.Status(http.StatusNoContent)
}

// Memberships

// ListMembers - GET /api/admin/members
func (h *Handlers) ListMembers(c *gin.Context) {
	members, err := h.services.Admin.ListMembers(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to list members")
		return
	}
	c.JSON(http.StatusOK, members)
}

// CreateMember - POST /api/admin/members
func (h *Handlers) CreateMember(c *gin.Context) {
	var input models.MembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.services.Admin.CreateMember(c.Request.Context(), &input)
	if err != nil {
		h.handleServiceError(c, err, "Failed to create member")
		return
	}
	c.JSON(http.StatusCreated, member)
}

// UpdateMember - PUT /api/admin/members/:id
func (h *Handlers) UpdateMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var input models.MembershipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.services.Admin.UpdateMember(c.Request.Context(), id, &input); err != nil {
		h.handleServiceError(c, err, "Failed to update member")
		return
	}
	c.Status(http.StatusOK)
}

// DeleteMember - DELETE /api/admin/members/:id
func (h *Handlers) DeleteMember(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.services.Admin.DeleteMember(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err, "Failed to delete member")
		return
	}
	c.Status(http.StatusNoContent)
}

// Schedules

// ListSchedules - GET /api/admin/schedules
func (h *Handlers) ListSchedules(c *gin.Context) {
	schedules, err := h.services.Admin.ListSchedules(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err, "Failed to list schedules")
		return
	}
	c.JSON(http.StatusOK, schedules)
}

// CreateSchedule - POST /api/admin/schedules
func (h *Handlers) CreateSchedule(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.services.Admin.CreateSchedule(c.Request.Context(), &input)
	if err != nil {
		h.handleServiceError(c, err, "Failed to create schedule")
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

// UpdateSchedule - PUT /api/admin/schedules/:code
func (h *Handlers) UpdateSchedule(c *gin.Context) {
	var input models.ScheduleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := h.services.Admin.UpdateSchedule(c.Request.Context(), c.Param("code"), &input)
	if err != nil {
		h.handleServiceError(c, err, "Failed to update schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// DeleteSchedule - DELETE /api/admin/schedules/:code
func (h *Handlers) DeleteSchedule(c *gin.Context) {
	if err := h.services.Admin.DeleteSchedule(c.Request.Context(), c.Param("code")); err != nil {
		h.handleServiceError(c, err, "Failed to delete schedule")
		return
	}
	c.Status(http.StatusNoContent)
}

// pathID parses the numeric :id path parameter, answering 400 itself on
// bad input.
func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}
