package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/services"
)

// ReportHandler handles aggregate report requests
type ReportHandler struct {
	reports services.ReportServicer
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports services.ReportServicer) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// GetSummaries returns per-day spending totals
// @Summary     Daily spending summaries
// @Description Total spend per calendar date, most recent date first
// @Tags        reports
// @Produce     json
// @Success     200 {array} services.DailySummary "Per-day totals"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /api/summaries [get]
func (h *ReportHandler) GetSummaries(c *gin.Context) {
	summaries, err := h.reports.DailySummaries()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"summaries": summaries})
}

// GetInsights returns ledger-wide spending statistics
// @Summary     Spending insights
// @Description Average spend, highest expense, and most common category
// @Tags        reports
// @Produce     json
// @Success     200 {object} services.Insights "Ledger statistics"
// @Failure     500 {object} ErrorResponse "Storage failure"
// @Router      /api/insights [get]
func (h *ReportHandler) GetInsights(c *gin.Context) {
	insights, err := h.reports.Insights()
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"insights": insights})
}
