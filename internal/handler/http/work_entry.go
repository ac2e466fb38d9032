package http

import (
	"encoding/json"
	"net/http"

	"github.com/MotionPhix/workhub-backend-go/internal/domain/workentry"
	"github.com/MotionPhix/workhub-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type WorkEntryHandler interface {
	// Create logs a new work entry for the authenticated user
	Create(w http.ResponseWriter, r *http.Request)
	// Get returns one work entry by id
	Get(w http.ResponseWriter, r *http.Request)
	// List returns entries for a user and date range
	List(w http.ResponseWriter, r *http.Request)
}

type workEntryHandlerImpl struct {
	entryService workentry.WorkEntryService
}

func NewWorkEntryHandler(entryService workentry.WorkEntryService) WorkEntryHandler {
	return &workEntryHandlerImpl{entryService: entryService}
}

// Create handles POST /work-entries
func (h *workEntryHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req workentry.CreateWorkEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.entryService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work entry created", result)
}

// Get handles GET /work-entries/{id}
func (h *workEntryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.entryService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List handles GET /work-entries
func (h *workEntryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	req := workentry.ListWorkEntriesRequest{
		UserID:    r.URL.Query().Get("user_id"),    // default: authenticated user
		StartDate: r.URL.Query().Get("start_date"), // format: YYYY-MM-DD, default: current month
		EndDate:   r.URL.Query().Get("end_date"),   // format: YYYY-MM-DD
	}

	result, err := h.entryService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
