package handlers

import (
	"net/http"

	"github.com/examstack/exam-bff/internal/adapters/http/dto"
	"github.com/examstack/exam-bff/internal/ports"
)

// DashboardHandler handles HTTP requests for the aggregated user dashboard.
type DashboardHandler struct {
	svc ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given service port.
func NewDashboardHandler(svc ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GetDashboard handles GET /api/v1/users/{id}/dashboard.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	userID, err := pathParam(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	dash, err := h.svc.GetDashboard(r.Context(), userID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(dash))
}
