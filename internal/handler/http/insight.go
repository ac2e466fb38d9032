package http

import (
	"net/http"
	"strconv"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/insight"
	"github.com/MotionPhix/workhub-backend-go/internal/handler/http/response"
)

type InsightHandler interface {
	// GetProductivity returns a user's composite productivity score
	GetProductivity(w http.ResponseWriter, r *http.Request)
	// GetTrend returns a user's weekly productivity trend
	GetTrend(w http.ResponseWriter, r *http.Request)
	// GetBurnoutRisk returns a user's burnout risk assessment
	GetBurnoutRisk(w http.ResponseWriter, r *http.Request)
	// GetTeamWorkload returns per-member workload scores and their spread
	GetTeamWorkload(w http.ResponseWriter, r *http.Request)
	// GetCollaboration returns collaboration groups and the interaction score
	GetCollaboration(w http.ResponseWriter, r *http.Request)
	// GetDepartmentRollups returns per-department activity rollups
	GetDepartmentRollups(w http.ResponseWriter, r *http.Request)
	// GetProjectRollups returns per-project activity rollups
	GetProjectRollups(w http.ResponseWriter, r *http.Request)
	// GetPersonalDashboard returns combined personal insights
	GetPersonalDashboard(w http.ResponseWriter, r *http.Request)
	// GetTeamDashboard returns combined team insights
	GetTeamDashboard(w http.ResponseWriter, r *http.Request)
}

type insightHandlerImpl struct {
	insightService insight.InsightService
}

func NewInsightHandler(insightService insight.InsightService) InsightHandler {
	return &insightHandlerImpl{insightService: insightService}
}

// GetProductivity handles GET /insights/productivity
func (h *insightHandlerImpl) GetProductivity(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")       // default: authenticated user
	startDate := r.URL.Query().Get("start_date") // format: YYYY-MM-DD, default: current month
	endDate := r.URL.Query().Get("end_date")     // format: YYYY-MM-DD

	result, err := h.insightService.GetPersonalProductivity(r.Context(), userID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTrend handles GET /insights/trend
func (h *insightHandlerImpl) GetTrend(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	weeks := 0
	if raw := r.URL.Query().Get("weeks"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.BadRequest(w, "weeks must be a positive integer", nil)
			return
		}
		weeks = parsed
	}

	result, err := h.insightService.GetProductivityTrend(r.Context(), userID, weeks)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetBurnoutRisk handles GET /insights/burnout-risk
func (h *insightHandlerImpl) GetBurnoutRisk(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	result, err := h.insightService.GetBurnoutRisk(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamWorkload handles GET /insights/team/workload
func (h *insightHandlerImpl) GetTeamWorkload(w http.ResponseWriter, r *http.Request) {
	departmentID := r.URL.Query().Get("department_id") // default: whole company
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	result, err := h.insightService.GetTeamWorkload(r.Context(), departmentID, startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetCollaboration handles GET /insights/team/collaboration
func (h *insightHandlerImpl) GetCollaboration(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	result, err := h.insightService.GetCollaboration(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetDepartmentRollups handles GET /insights/team/departments
func (h *insightHandlerImpl) GetDepartmentRollups(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	result, err := h.insightService.GetDepartmentRollups(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetProjectRollups handles GET /insights/team/projects
func (h *insightHandlerImpl) GetProjectRollups(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	result, err := h.insightService.GetProjectRollups(r.Context(), startDate, endDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPersonalDashboard handles GET /insights/dashboard
func (h *insightHandlerImpl) GetPersonalDashboard(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")

	result, err := h.insightService.GetPersonalDashboard(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeamDashboard handles GET /insights/team/dashboard
func (h *insightHandlerImpl) GetTeamDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.insightService.GetTeamDashboard(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
