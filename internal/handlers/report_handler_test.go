package handlers

import (
	"net/http"
	"testing"

	apperrors "tally/internal/errors"
	"tally/internal/models"
	"tally/internal/services"

	"github.com/gin-gonic/gin"
)

// --- mock report service ---

type mockReportService struct {
	dailySummariesFn func() ([]services.DailySummary, error)
	insightsFn       func() (*services.Insights, error)
}

func (m *mockReportService) DailySummaries() ([]services.DailySummary, error) {
	if m.dailySummariesFn != nil {
		return m.dailySummariesFn()
	}
	return []services.DailySummary{}, nil
}

func (m *mockReportService) Insights() (*services.Insights, error) {
	if m.insightsFn != nil {
		return m.insightsFn()
	}
	return &services.Insights{}, nil
}

var _ services.ReportServicer = (*mockReportService)(nil)

func setupReportRouter(handler *ReportHandler) *gin.Engine {
	r := gin.New()
	r.GET("/api/summaries", handler.GetSummaries)
	r.GET("/api/insights", handler.GetInsights)
	return r
}

func TestReportHandler_GetSummaries(t *testing.T) {
	t.Run("returns 200 with summaries", func(t *testing.T) {
		newer, _ := models.ParseDate("2024-01-02")
		older, _ := models.ParseDate("2024-01-01")
		svc := &mockReportService{
			dailySummariesFn: func() ([]services.DailySummary, error) {
				return []services.DailySummary{
					{Date: newer, Total: 5.00},
					{Date: older, Total: 25.50},
				}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/api/summaries", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		body := parseBody(t, rec)
		summaries := body["summaries"].([]interface{})
		if len(summaries) != 2 {
			t.Fatalf("expected 2 summaries, got %d", len(summaries))
		}
		first := summaries[0].(map[string]interface{})
		if first["date"] != "2024-01-02" || first["total"].(float64) != 5.00 {
			t.Errorf("unexpected first summary: %v", first)
		}
	})

	t.Run("returns 500 on storage failure", func(t *testing.T) {
		svc := &mockReportService{
			dailySummariesFn: func() ([]services.DailySummary, error) {
				return nil, apperrors.ErrStorageFailure
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/api/summaries", "")
		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestReportHandler_GetInsights(t *testing.T) {
	t.Run("returns 200 with insights", func(t *testing.T) {
		svc := &mockReportService{
			insightsFn: func() (*services.Insights, error) {
				return &services.Insights{
					AverageSpending:    11.67,
					HighestExpense:     20.00,
					MostCommonCategory: "Food",
					CategoryCount:      2,
				}, nil
			},
		}
		r := setupReportRouter(NewReportHandler(svc))

		rec := doRequest(r, "GET", "/api/insights", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		body := parseBody(t, rec)
		insights := body["insights"].(map[string]interface{})
		if insights["most_common_category"] != "Food" {
			t.Errorf("expected Food, got %v", insights["most_common_category"])
		}
		if insights["category_count"].(float64) != 2 {
			t.Errorf("expected count 2, got %v", insights["category_count"])
		}
	})

	t.Run("empty ledger yields zero-valued insights", func(t *testing.T) {
		r := setupReportRouter(NewReportHandler(&mockReportService{}))

		rec := doRequest(r, "GET", "/api/insights", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		body := parseBody(t, rec)
		insights := body["insights"].(map[string]interface{})
		if insights["average_spending"].(float64) != 0 {
			t.Errorf("expected zero average, got %v", insights["average_spending"])
		}
		if insights["most_common_category"] != "" {
			t.Errorf("expected empty category, got %v", insights["most_common_category"])
		}
	})
}
