package entity

import "context"

type PropertyStatus string

const (
	PropertyStatusAvailable PropertyStatus = "available"
	PropertyStatusReserved  PropertyStatus = "reserved"
	PropertyStatusRented    PropertyStatus = "rented"
	PropertyStatusSold      PropertyStatus = "sold"
	PropertyStatusInactive  PropertyStatus = "inactive"
)

type PropertyCategory string

const (
	PropertyCategoryRent PropertyCategory = "rent"
	PropertyCategorySale PropertyCategory = "sale"
)

// Tipos conhecidos; o campo Type aceita texto livre vindo do cadastro.
const (
	PropertyTypeHouse      = "house"
	PropertyTypeApartment  = "apartment"
	PropertyTypeLand       = "land"
	PropertyTypeCommercial = "commercial"
)

type Property struct {
	ID          string           `json:"id"`
	TenantID    string           `json:"tenant_id"`
	Title       string           `json:"title"`
	Type        string           `json:"type"`
	Category    PropertyCategory `json:"category"`
	Status      PropertyStatus   `json:"status"`
	Featured    bool             `json:"featured"`
	Images      []string         `json:"images"`
	Description string           `json:"description"`
	PriceCents  int64            `json:"price_cents"`
}

type PropertyRepositoryInterface interface {
	ListByTenant(ctx context.Context, tenantID string) ([]Property, error)
}
