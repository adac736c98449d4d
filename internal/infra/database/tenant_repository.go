package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/imobi/internal/entity"
)

type TenantRepository struct {
	DB *sql.DB
}

func NewTenantRepository(db *sql.DB) *TenantRepository {
	return &TenantRepository{DB: db}
}

func (r *TenantRepository) ListActive(ctx context.Context) ([]entity.Tenant, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, notify_email FROM tenants WHERE active ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar tenants: %w", err)
	}
	defer rows.Close()

	tenants := []entity.Tenant{}
	for rows.Next() {
		var t entity.Tenant
		if err := rows.Scan(&t.ID, &t.Name, &t.NotifyEmail); err != nil {
			return nil, fmt.Errorf("erro ao ler tenant: %w", err)
		}
		tenants = append(tenants, t)
	}
	return tenants, rows.Err()
}
