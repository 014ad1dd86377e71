package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/car_rental_backend/internal/core/domain"
	portssvc "github.com/SscSPs/car_rental_backend/internal/core/ports/services"
	"github.com/SscSPs/car_rental_backend/internal/dto"
	"github.com/SscSPs/car_rental_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

const (
	reportDateLayout  = "2006-01-02"
	defaultRankLimit  = 5
	maxRankLimit      = 100
	endOfDayIncrement = 24*time.Hour - time.Nanosecond
)

// reportingHandler handles HTTP requests related to financial and fleet reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers routes related to reports
func RegisterReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboardStats)
		reportingGroup.GET("/revenue", h.getRevenueStats)
		reportingGroup.GET("/popular-cars", h.getPopularCars)
		reportingGroup.GET("/top-clients", h.getTopClients)
		reportingGroup.GET("/financial", h.getFinancialReport)
		reportingGroup.GET("/occupancy", h.getOccupancyReport)
	}
}

// parseWindow reads startDate and endDate (YYYY-MM-DD, UTC). The end date
// covers its whole day.
func parseWindow(c *gin.Context) (domain.DateWindow, error) {
	var w domain.DateWindow
	if s := c.Query("startDate"); s != "" {
		start, err := time.Parse(reportDateLayout, s)
		if err != nil {
			return w, fmt.Errorf("invalid startDate %q, expected YYYY-MM-DD", s)
		}
		w.Start = &start
	}
	if s := c.Query("endDate"); s != "" {
		end, err := time.Parse(reportDateLayout, s)
		if err != nil {
			return w, fmt.Errorf("invalid endDate %q, expected YYYY-MM-DD", s)
		}
		end = end.Add(endOfDayIncrement)
		w.End = &end
	}
	if w.Start != nil && w.End != nil && w.End.Before(*w.Start) {
		return w, fmt.Errorf("endDate must not be before startDate")
	}
	return w, nil
}

// parseLimit reads the ranking size, defaulting to 5 and capped at 100.
func parseLimit(c *gin.Context) (int, error) {
	s := c.Query("limit")
	if s == "" {
		return defaultRankLimit, nil
	}
	limit, err := strconv.Atoi(s)
	if err != nil || limit < 1 {
		return 0, fmt.Errorf("invalid limit %q, expected a positive integer", s)
	}
	return min(limit, maxRankLimit), nil
}

// windowFromQuery parses the report window, answering 400 on bad input.
func windowFromQuery(c *gin.Context, logger *slog.Logger) (domain.DateWindow, bool) {
	w, err := parseWindow(c)
	if err != nil {
		logger.Warn("Invalid report window", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return w, false
	}
	return w, true
}

// getDashboardStats godoc
// @Summary Dashboard statistics
// @Description Fleet status counts, rental counts, revenue, occupancy and average rental length
// @Tags reports
// @Produce json
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.DashboardStatsResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboardStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	window, ok := windowFromQuery(c, logger)
	if !ok {
		return
	}

	stats, err := h.reportingService.GetDashboardStats(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate dashboard stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardStatsResponse(stats, window))
}

// getRevenueStats godoc
// @Summary Revenue statistics
// @Description Revenue by rental status and by month
// @Tags reports
// @Produce json
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.RevenueStatsResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/revenue [get]
func (h *reportingHandler) getRevenueStats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	window, ok := windowFromQuery(c, logger)
	if !ok {
		return
	}

	stats, err := h.reportingService.GetRevenueStats(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate revenue stats")
		return
	}
	c.JSON(http.StatusOK, dto.ToRevenueStatsResponse(stats, window))
}

// getPopularCars godoc
// @Summary Most rented cars
// @Tags reports
// @Produce json
// @Param limit query int false "Number of cars (max 100)" default(5)
// @Success 200 {array} dto.PopularCarResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/popular-cars [get]
func (h *reportingHandler) getPopularCars(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	limit, err := parseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cars, err := h.reportingService.GetPopularCars(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, logger, err, "Failed to rank cars")
		return
	}
	c.JSON(http.StatusOK, dto.ToPopularCarsResponse(cars))
}

// getTopClients godoc
// @Summary Clients ranked by net revenue
// @Tags reports
// @Produce json
// @Param limit query int false "Number of clients (max 100)" default(5)
// @Success 200 {array} dto.TopClientResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/top-clients [get]
func (h *reportingHandler) getTopClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	limit, err := parseLimit(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	clients, err := h.reportingService.GetTopClients(c.Request.Context(), limit)
	if err != nil {
		respondWithError(c, logger, err, "Failed to rank clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToTopClientsResponse(clients))
}

// getFinancialReport godoc
// @Summary Financial report
// @Description Reconciled figures for every rental in the window, with totals per status
// @Tags reports
// @Produce json
// @Param startDate query string false "Window start (YYYY-MM-DD)"
// @Param endDate query string false "Window end, inclusive (YYYY-MM-DD)"
// @Success 200 {object} dto.FinancialReportResponse
// @Failure 400 {object} map[string]string "Invalid date"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/financial [get]
func (h *reportingHandler) getFinancialReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}
	window, ok := windowFromQuery(c, logger)
	if !ok {
		return
	}

	report, err := h.reportingService.GenerateFinancialReport(c.Request.Context(), window)
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate financial report")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialReportResponse(report))
}

// getOccupancyReport godoc
// @Summary Occupancy report
// @Description Current fleet utilisation with the active rental holding each car
// @Tags reports
// @Produce json
// @Success 200 {object} dto.OccupancyReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Security BearerAuth
// @Router /reports/occupancy [get]
func (h *reportingHandler) getOccupancyReport(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if _, ok := requireUserID(c, logger); !ok {
		return
	}

	report, err := h.reportingService.GenerateOccupancyReport(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to generate occupancy report")
		return
	}
	c.JSON(http.StatusOK, dto.ToOccupancyReportResponse(report))
}
