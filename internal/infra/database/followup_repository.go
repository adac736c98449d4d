package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/xavierca1/imobi/internal/entity"
)

const foreignKeyViolation = "23503"

type FollowUpRepository struct {
	DB *sql.DB
}

func NewFollowUpRepository(db *sql.DB) *FollowUpRepository {
	return &FollowUpRepository{DB: db}
}

const followUpColumns = `id, tenant_id, lead_id, assigned_to, due_at, type, status, notes, completed_at, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFollowUp(row rowScanner) (entity.FollowUp, error) {
	var (
		f           entity.FollowUp
		completedAt sql.NullTime
	)
	err := row.Scan(&f.ID, &f.TenantID, &f.LeadID, &f.AssignedTo, &f.DueAt, &f.Type, &f.Status, &f.Notes, &completedAt, &f.CreatedAt)
	if completedAt.Valid {
		f.CompletedAt = &completedAt.Time
	}
	return f, err
}

func (r *FollowUpRepository) ListByStatus(ctx context.Context, tenantID string, status entity.FollowUpStatus) ([]entity.FollowUp, error) {
	query := `SELECT ` + followUpColumns + ` FROM follow_ups WHERE tenant_id = $1`
	args := []any{tenantID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY due_at`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar lembretes: %w", err)
	}
	defer rows.Close()

	followUps := []entity.FollowUp{}
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao ler lembrete: %w", err)
		}
		followUps = append(followUps, f)
	}
	return followUps, rows.Err()
}

func (r *FollowUpRepository) FindByID(ctx context.Context, tenantID, id string) (*entity.FollowUp, error) {
	row := r.DB.QueryRowContext(ctx,
		`SELECT `+followUpColumns+` FROM follow_ups WHERE tenant_id = $1 AND id = $2`,
		tenantID, id,
	)

	f, err := scanFollowUp(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrFollowUpNotFound
		}
		return nil, fmt.Errorf("erro ao buscar lembrete: %w", err)
	}
	return &f, nil
}

func (r *FollowUpRepository) Create(ctx context.Context, f *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, tenant_id, lead_id, assigned_to, due_at, type, status, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID,
		f.TenantID,
		f.LeadID,
		f.AssignedTo,
		f.DueAt,
		f.Type,
		f.Status,
		f.Notes,
		f.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.ErrLeadNotFound
		}
		return fmt.Errorf("erro ao criar lembrete: %w", err)
	}
	return nil
}

// Complete só altera lembretes ainda pendentes; se outro request concluiu antes,
// devolve ErrFollowUpNotPending.
func (r *FollowUpRepository) Complete(ctx context.Context, f *entity.FollowUp) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE follow_ups SET status = $1, completed_at = $2 WHERE tenant_id = $3 AND id = $4 AND status = 'pending'`,
		f.Status, f.CompletedAt, f.TenantID, f.ID,
	)
	if err != nil {
		return fmt.Errorf("erro ao concluir lembrete: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao concluir lembrete: %w", err)
	}
	if n == 0 {
		return entity.ErrFollowUpNotPending
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation
}
