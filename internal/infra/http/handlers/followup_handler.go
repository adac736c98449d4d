package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/entity"
	"github.com/xavierca1/imobi/internal/infra/http/middleware"
	"github.com/xavierca1/imobi/internal/usecase"
)

type CreateFollowUpService interface {
	Execute(ctx context.Context, input usecase.CreateFollowUpInput) (*entity.FollowUp, error)
}

type CompleteFollowUpService interface {
	Execute(ctx context.Context, tenantID, id string) (*entity.FollowUp, error)
}

type FollowUpHandler struct {
	Repo       entity.FollowUpRepositoryInterface
	CreateUC   CreateFollowUpService
	CompleteUC CompleteFollowUpService
	Log        *zap.Logger
}

func NewFollowUpHandler(repo entity.FollowUpRepositoryInterface, create CreateFollowUpService, complete CompleteFollowUpService, logger *zap.Logger) *FollowUpHandler {
	return &FollowUpHandler{Repo: repo, CreateUC: create, CompleteUC: complete, Log: logger}
}

// HandleList GET /api/follow-ups?status=pending
func (h *FollowUpHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := entity.FollowUpStatus(r.URL.Query().Get("status"))
	if status != "" && !status.Valid() {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_STATUS", "status deve ser pending, completed ou cancelled")
		return
	}

	tenantID := middleware.TenantFromContext(r.Context())
	items, err := h.Repo.ListByStatus(r.Context(), tenantID, status)
	if err != nil {
		h.Log.Error("❌ erro ao listar lembretes", zap.String("tenant_id", tenantID), zap.Error(err))
		writeErrorResponse(w, http.StatusInternalServerError, "DATABASE_ERROR", "erro ao listar lembretes")
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// HandleCreate POST /api/follow-ups
func (h *FollowUpHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateFollowUpInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}
	input.TenantID = middleware.TenantFromContext(r.Context())

	f, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			h.Log.Error("❌ erro ao criar lembrete", zap.String("tenant_id", input.TenantID), zap.Error(err))
		}
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, f)
}

// HandleComplete POST /api/follow-ups/{id}/complete
func (h *FollowUpHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	tenantID := middleware.TenantFromContext(r.Context())

	f, err := h.CompleteUC.Execute(r.Context(), tenantID, id)
	if err != nil {
		if usecase.IsTechnicalError(err) {
			h.Log.Error("❌ erro ao concluir lembrete", zap.String("follow_up_id", id), zap.Error(err))
		}
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, f)
}
