package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/xavierca1/imobi/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCreateFollowUpInput(input CreateFollowUpInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}

	if strings.TrimSpace(input.DueAt) == "" {
		errors = append(errors, ValidationError{"due_at", "is required"})
	} else if _, err := time.Parse(time.RFC3339, input.DueAt); err != nil {
		errors = append(errors, ValidationError{"due_at", "must be a valid ISO8601 datetime"})
	}

	if input.Type == "" {
		errors = append(errors, ValidationError{"type", "is required"})
	} else if !entity.FollowUpType(input.Type).Valid() {
		errors = append(errors, ValidationError{"type", "must be call, whatsapp, email, visit or other"})
	}

	if len(input.Notes) > 2000 {
		errors = append(errors, ValidationError{"notes", "must not exceed 2000 characters"})
	}

	return errors
}

func ValidateCommissionInput(input CalculateCommissionInput) []ValidationError {
	var errors []ValidationError

	if input.DealValueCents <= 0 {
		errors = append(errors, ValidationError{"deal_value_cents", "must be greater than zero"})
	}
	if input.RatePercent <= 0 || input.RatePercent > 100 {
		errors = append(errors, ValidationError{"rate_percent", "must be between 0 and 100"})
	}
	if input.BrokerSharePercent < 0 || input.BrokerSharePercent > 100 {
		errors = append(errors, ValidationError{"broker_share_percent", "must be between 0 and 100"})
	}
	if input.TaxPercent < 0 || input.TaxPercent >= 100 {
		errors = append(errors, ValidationError{"tax_percent", "must be between 0 and 100"})
	}

	return errors
}
