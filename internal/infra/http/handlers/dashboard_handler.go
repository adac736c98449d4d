package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/infra/http/middleware"
)

type DashboardService interface {
	Execute(ctx context.Context, tenantID string) (dashboard.View, error)
}

type DashboardHandler struct {
	UC DashboardService
}

func NewDashboardHandler(uc DashboardService) *DashboardHandler {
	return &DashboardHandler{UC: uc}
}

func (h *DashboardHandler) view(w http.ResponseWriter, r *http.Request) (dashboard.View, bool) {
	start := time.Now()
	view, err := h.UC.Execute(r.Context(), middleware.TenantFromContext(r.Context()))
	if err != nil {
		writeUseCaseError(w, err)
		return dashboard.View{}, false
	}

	middleware.RecordDashboardBuild(time.Since(start))
	if view.FollowUpsError != "" {
		middleware.RecordFollowUpFetchError()
	}
	return view, true
}

// Handle GET /api/dashboard
func (h *DashboardHandler) Handle(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// HandlePendencies GET /api/dashboard/pendencies
func (h *DashboardHandler) HandlePendencies(w http.ResponseWriter, r *http.Request) {
	view, ok := h.view(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, struct {
		dashboard.Pendencies
		FollowUpsError string `json:"follow_ups_error,omitempty"`
	}{view.Pendencies, view.FollowUpsError})
}
