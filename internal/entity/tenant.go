package entity

import "context"

// Tenant é uma imobiliária cliente da plataforma.
type Tenant struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	NotifyEmail string `json:"notify_email"`
}

type TenantRepositoryInterface interface {
	ListActive(ctx context.Context) ([]Tenant, error)
}
