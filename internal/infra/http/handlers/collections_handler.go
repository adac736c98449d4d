package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/infra/http/middleware"
	"github.com/xavierca1/imobi/internal/usecase"
)

// CollectionsHandler expõe, somente leitura, as coleções que alimentam o painel.
type CollectionsHandler struct {
	Source usecase.SnapshotProvider
	Log    *zap.Logger
}

func NewCollectionsHandler(source usecase.SnapshotProvider, logger *zap.Logger) *CollectionsHandler {
	return &CollectionsHandler{Source: source, Log: logger}
}

func serveList[T any](h *CollectionsHandler, name string, list func(ctx context.Context, tenantID string) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := middleware.TenantFromContext(r.Context())
		items, err := list(r.Context(), tenantID)
		if err != nil {
			h.Log.Error("❌ erro ao listar "+name, zap.String("tenant_id", tenantID), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "erro ao listar "+name)
			return
		}
		if items == nil {
			items = []T{}
		}
		writeJSON(w, http.StatusOK, items)
	}
}

func (h *CollectionsHandler) HandleLeads() http.HandlerFunc {
	return serveList(h, "leads", h.Source.ListLeads)
}

func (h *CollectionsHandler) HandleVisits() http.HandlerFunc {
	return serveList(h, "visitas", h.Source.ListVisits)
}

func (h *CollectionsHandler) HandleContracts() http.HandlerFunc {
	return serveList(h, "contratos", h.Source.ListContracts)
}

func (h *CollectionsHandler) HandleProperties() http.HandlerFunc {
	return serveList(h, "imóveis", h.Source.ListProperties)
}
