package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bioskop/internal/errors"
)

func TestHandleServiceErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(nil, nil, 0)

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"movie not found", apperrors.ErrMovieNotFound, http.StatusNotFound},
		{"schedule not found", apperrors.ErrScheduleNotFound, http.StatusNotFound},
		{"member not found", apperrors.ErrMemberNotFound, http.StatusNotFound},
		{"cart item not found", apperrors.ErrCartItemNotFound, http.StatusNotFound},
		{"order not found", apperrors.ErrOrderNotFound, http.StatusNotFound},
		{"empty cart", apperrors.ErrEmptyCart, http.StatusBadRequest},
		{"invalid input", fmt.Errorf("%w: row Z", apperrors.ErrInvalidInput), http.StatusBadRequest},
		{"seat conflict", &apperrors.SeatConflictError{ScheduleID: 1, Row: "A", Col: 2}, http.StatusConflict},
		{"insufficient cash", &apperrors.InsufficientCashError{Required: 80000, Given: 50000}, http.StatusBadRequest},
		{"unexpected", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest("GET", "/", nil)

			h.handleServiceError(c, tc.err, "test failure")

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestHandleServiceErrorSeatConflictBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(nil, nil, 0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/checkout", nil)

	h.handleServiceError(c, &apperrors.SeatConflictError{ScheduleID: 7, Row: "C", Col: 4}, "checkout failed")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "C4", body["seat"])
	assert.Equal(t, float64(7), body["schedule_id"])
}

func TestHandleServiceErrorInsufficientCashBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHandlers(nil, nil, 0)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/api/checkout", nil)

	h.handleServiceError(c, &apperrors.InsufficientCashError{Required: 90000, Given: 60000}, "checkout failed")

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(30000), body["shortfall"])
}
