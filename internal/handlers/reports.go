package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Reporting handlers

// DailyReport - GET /api/reports/movies/daily?date=YYYY-MM-DD
func (h *Handlers) DailyReport(c *gin.Context) {
	date := c.DefaultQuery("date", time.Now().Format("2006-01-02"))

	report, err := h.services.Reports.Daily(c.Request.Context(), date)
	if err != nil {
		h.handleServiceError(c, err, "Failed to build daily report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// WeeklyReport - GET /api/reports/movies/weekly?year=YYYY&month=M
func (h *Handlers) WeeklyReport(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	report, err := h.services.Reports.Weekly(c.Request.Context(), year, month)
	if err != nil {
		h.handleServiceError(c, err, "Failed to build weekly report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// MonthlyReport - GET /api/reports/movies/monthly?year=YYYY&month=M
func (h *Handlers) MonthlyReport(c *gin.Context) {
	year, month, ok := yearMonth(c)
	if !ok {
		return
	}

	report, err := h.services.Reports.Monthly(c.Request.Context(), year, month)
	if err != nil {
		h.handleServiceError(c, err, "Failed to build monthly report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// GenreReport - GET /api/reports/genres?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handlers) GenreReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}

	rows, err := h.services.Reports.GenreShares(c.Request.Context(), from, to)
	if err != nil {
		h.handleServiceError(c, err, "Failed to build genre report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "data": rows})
}

// PaymentMethodReport - GET /api/reports/payment-methods?from=...&to=...
func (h *Handlers) PaymentMethodReport(c *gin.Context) {
	from, to, ok := dateRange(c)
	if !ok {
		return
	}

	rows, err := h.services.Reports.PaymentMethodShares(c.Request.Context(), from, to)
	if err != nil {
		h.handleServiceError(c, err, "Failed to build payment method report")
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": from, "to": to, "data": rows})
}

func yearMonth(c *gin.Context) (int, int, bool) {
	now := time.Now()

	year, err := strconv.Atoi(c.DefaultQuery("year", strconv.Itoa(now.Year())))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
		return 0, 0, false
	}

	month, err := strconv.Atoi(c.DefaultQuery("month", strconv.Itoa(int(now.Month()))))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid month"})
		return 0, 0, false
	}

	return year, month, true
}

func dateRange(c *gin.Context) (string, string, bool) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to are required"})
		return "", "", false
	}
	return from, to, true
}
