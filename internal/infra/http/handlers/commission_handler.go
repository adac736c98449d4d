package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/imobi/internal/usecase"
)

type CommissionHandler struct{}

func NewCommissionHandler() *CommissionHandler {
	return &CommissionHandler{}
}

// Handle POST /api/commissions/calculate
func (h *CommissionHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.CalculateCommissionInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := usecase.CalculateCommission(input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
