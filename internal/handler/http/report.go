package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/report"
	"github.com/MotionPhix/workhub-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	// GetProductivityReport returns the monthly productivity report
	GetProductivityReport(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetProductivityReport handles GET /reports/productivity
func (h *reportHandlerImpl) GetProductivityReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	req := report.ProductivityReportRequest{
		Month: int(now.Month()),
		Year:  now.Year(),
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "month must be an integer", nil)
			return
		}
		req.Month = parsed
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.BadRequest(w, "year must be an integer", nil)
			return
		}
		req.Year = parsed
	}
	if userID := r.URL.Query().Get("user_id"); userID != "" {
		req.UserID = &userID
	}

	result, err := h.reportService.GenerateProductivityReport(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
