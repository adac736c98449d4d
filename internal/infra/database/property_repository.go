package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/xavierca1/imobi/internal/entity"
)

type PropertyRepository struct {
	DB *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

func (r *PropertyRepository) ListByTenant(ctx context.Context, tenantID string) ([]entity.Property, error) {
	query := `
		SELECT id, tenant_id, title, type, category, status, featured, images, description, price_cents
		FROM properties
		WHERE tenant_id = $1
	`

	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar imóveis: %w", err)
	}
	defer rows.Close()

	properties := []entity.Property{}
	for rows.Next() {
		var p entity.Property
		// text[] chega pelo pgx como string literal; pq.Array faz o parse.
		if err := rows.Scan(&p.ID, &p.TenantID, &p.Title, &p.Type, &p.Category, &p.Status,
			&p.Featured, pq.Array(&p.Images), &p.Description, &p.PriceCents); err != nil {
			return nil, fmt.Errorf("erro ao ler imóvel: %w", err)
		}
		properties = append(properties, p)
	}
	return properties, rows.Err()
}
