package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minhvu/go-taiga-tracker/internal/service"
)

type DashboardHandler struct {
	Svc *service.DashboardService
}

func NewDashboardHandler(svc *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{Svc: svc}
}

// parseDay reads a YYYY-MM-DD query value in the server's location.
// Plain time.Parse would yield a UTC instant while the implicit "now"
// anchor is local, putting explicit dates on a shifted period grid.
func parseDay(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

func parseMonth(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01", s, time.Local)
}

// Weekly serves GET /dashboard/weekly?week=YYYY-MM-DD. Without a week
// parameter it shows the current week.
func (h *DashboardHandler) Weekly(c *gin.Context) {
	now := time.Now()
	ref := now
	if weekS := c.Query("week"); weekS != "" {
		parsed, err := parseDay(weekS)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid week, use YYYY-MM-DD"})
			return
		}
		ref = parsed
	}

	resp, err := h.Svc.WeeklySnapshot(c.Request.Context(), ref, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Weeks serves GET /dashboard/weeks?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *DashboardHandler) Weeks(c *gin.Context) {
	fromS := c.Query("from")
	toS := c.Query("to")
	if fromS == "" || toS == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to query params required"})
		return
	}
	from, err := parseDay(fromS)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date"})
		return
	}
	to, err := parseDay(toS)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to date"})
		return
	}

	weeks, err := h.Svc.WeekRange(c.Request.Context(), from, to, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, weeks)
}

// Ranking serves GET /dashboard/ranking?from=YYYY-MM&to=YYYY-MM.
// Both default to the current month.
func (h *DashboardHandler) Ranking(c *gin.Context) {
	now := time.Now()
	from, to := now, now

	if fromS := c.Query("from"); fromS != "" {
		parsed, err := parseMonth(fromS)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from month, use YYYY-MM"})
			return
		}
		from = parsed
	}
	if toS := c.Query("to"); toS != "" {
		parsed, err := parseMonth(toS)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid to month, use YYYY-MM"})
			return
		}
		to = parsed
	}

	resp, err := h.Svc.MonthlyRanking(c.Request.Context(), from, to, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Yearly serves GET /dashboard/yearly?year=YYYY, defaulting to the
// current year.
func (h *DashboardHandler) Yearly(c *gin.Context) {
	year := time.Now().Year()
	if yearS := c.Query("year"); yearS != "" {
		parsed, err := strconv.Atoi(yearS)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	resp, err := h.Svc.Yearly(c.Request.Context(), year)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Team serves GET /dashboard/team, the current-week team stats.
func (h *DashboardHandler) Team(c *gin.Context) {
	resp, err := h.Svc.TeamStats(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
