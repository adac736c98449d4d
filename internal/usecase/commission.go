package usecase

import "math"

type CalculateCommissionInput struct {
	DealValueCents     int64   `json:"deal_value_cents"`
	RatePercent        float64 `json:"rate_percent"`
	BrokerSharePercent float64 `json:"broker_share_percent"`
	TaxPercent         float64 `json:"tax_percent"`
}

type CalculateCommissionOutput struct {
	GrossCents  int64 `json:"gross_cents"`
	TaxCents    int64 `json:"tax_cents"`
	NetCents    int64 `json:"net_cents"`
	BrokerCents int64 `json:"broker_cents"`
	AgencyCents int64 `json:"agency_cents"`
}

// CalculateCommission divide a comissão de um negócio entre corretor e imobiliária.
// Os impostos saem do bruto antes da divisão; o arredondamento fica com a
// imobiliária, então BrokerCents+AgencyCents == NetCents sempre.
func CalculateCommission(input CalculateCommissionInput) (CalculateCommissionOutput, error) {
	if errs := ValidateCommissionInput(input); len(errs) > 0 {
		return CalculateCommissionOutput{}, ValidationErrors(errs)
	}

	gross := int64(math.Round(float64(input.DealValueCents) * input.RatePercent / 100))
	tax := int64(math.Round(float64(gross) * input.TaxPercent / 100))
	net := gross - tax
	broker := int64(math.Round(float64(net) * input.BrokerSharePercent / 100))

	return CalculateCommissionOutput{
		GrossCents:  gross,
		TaxCents:    tax,
		NetCents:    net,
		BrokerCents: broker,
		AgencyCents: net - broker,
	}, nil
}
