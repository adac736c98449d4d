package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/imobi/internal/entity"
)

type ContractRepository struct {
	DB *sql.DB
}

func NewContractRepository(db *sql.DB) *ContractRepository {
	return &ContractRepository{DB: db}
}

func (r *ContractRepository) ListByTenant(ctx context.Context, tenantID string) ([]entity.Contract, error) {
	query := `
		SELECT id, tenant_id, lead_id, property_id, status, value_cents, created_at
		FROM contracts
		WHERE tenant_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contratos: %w", err)
	}
	defer rows.Close()

	contracts := []entity.Contract{}
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.TenantID, &c.LeadID, &c.PropertyID, &c.Status, &c.ValueCents, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao ler contrato: %w", err)
		}
		contracts = append(contracts, c)
	}
	return contracts, rows.Err()
}
