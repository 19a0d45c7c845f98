package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/printshop_pos/internal/core/domain"
	portssvc "github.com/SscSPs/printshop_pos/internal/core/ports/services"
	"github.com/SscSPs/printshop_pos/internal/dto"
	"github.com/SscSPs/printshop_pos/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to the revenue dashboard
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/dashboard", h.getDashboard)
		reportingGroup.GET("/time-series", h.getTimeSeries)
		reportingGroup.GET("/employees", h.getEmployeeRanking)
	}
}

// bucketParam reads ?bucket=day|month, defaulting to day.
func bucketParam(c *gin.Context) (domain.Bucket, bool) {
	bucket := domain.Bucket(c.DefaultQuery("bucket", string(domain.BucketDay)))
	return bucket, bucket.Valid()
}

// getDashboard godoc
// @Summary Dashboard report
// @Description Revenue, expense and profit for today and this month, payment method split, chart series and employee ranking
// @Tags reports
// @Produce json
// @Param bucket query string false "Chart granularity (day or month)" default(day)
// @Success 200 {object} dto.DashboardResponse
// @Failure 400 {object} ErrorResponse "Invalid bucket"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	bucket, ok := bucketParam(c)
	if !ok {
		logger.Warn("Invalid bucket parameter", slog.String("bucket", string(bucket)))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bucket must be day or month"})
		return
	}

	report, err := h.reportingService.Dashboard(c.Request.Context(), actor, bucket)
	if err != nil {
		respondError(c, logger, err, "Failed to generate dashboard")
		return
	}

	logger.Info("Dashboard generated", slog.String("bucket", string(bucket)), slog.Int("order_count", report.OrderCount))
	c.JSON(http.StatusOK, dto.ToDashboardResponse(report))
}

// getTimeSeries godoc
// @Summary Revenue and expense chart
// @Description Trailing 7 days or trailing 6 months, oldest first
// @Tags reports
// @Produce json
// @Param bucket query string false "Chart granularity (day or month)" default(day)
// @Success 200 {object} dto.TimeSeriesResponse
// @Failure 400 {object} ErrorResponse "Invalid bucket"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /reports/time-series [get]
func (h *reportingHandler) getTimeSeries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}
	bucket, ok := bucketParam(c)
	if !ok {
		logger.Warn("Invalid bucket parameter", slog.String("bucket", string(bucket)))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "bucket must be day or month"})
		return
	}

	points, err := h.reportingService.TimeSeries(c.Request.Context(), actor, bucket)
	if err != nil {
		respondError(c, logger, err, "Failed to generate time series")
		return
	}
	c.JSON(http.StatusOK, dto.ToTimeSeriesResponse(bucket, points))
}

// getEmployeeRanking godoc
// @Summary Employee revenue ranking
// @Description Paid revenue per employee, highest first
// @Tags reports
// @Produce json
// @Success 200 {object} dto.EmployeeRankingResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /reports/employees [get]
func (h *reportingHandler) getEmployeeRanking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	actor, ok := requireActor(c, logger)
	if !ok {
		return
	}

	ranking, err := h.reportingService.EmployeeRanking(c.Request.Context(), actor)
	if err != nil {
		respondError(c, logger, err, "Failed to rank employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeRankingResponse(ranking))
}
