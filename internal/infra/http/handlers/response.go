package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/xavierca1/imobi/internal/usecase"
)

type ErrorResponse struct {
	Error   string                    `json:"error"`
	Message string                    `json:"message"`
	Details []usecase.ValidationError `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: message})
}

// writeUseCaseError traduz os erros da camada de usecase para HTTP.
func writeUseCaseError(w http.ResponseWriter, err error) {
	var (
		verrs usecase.ValidationErrors
		de    *usecase.DomainError
		te    *usecase.TechnicalError
	)

	switch {
	case errors.As(err, &verrs):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   "VALIDATION_ERROR",
			Message: verrs.Error(),
			Details: verrs,
		})
	case errors.As(err, &de):
		writeErrorResponse(w, domainStatus(de.Code), de.Code, de.Message)
	case errors.As(err, &te):
		writeErrorResponse(w, http.StatusInternalServerError, te.Code, te.Message)
	default:
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", "erro interno")
	}
}

func domainStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "_NOT_FOUND"):
		return http.StatusNotFound
	case code == "FOLLOWUP_NOT_PENDING":
		return http.StatusConflict
	case code == "TENANT_REQUIRED":
		return http.StatusUnauthorized
	default:
		return http.StatusUnprocessableEntity
	}
}
