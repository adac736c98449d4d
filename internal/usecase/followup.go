package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/entity"
)

type CreateFollowUpInput struct {
	TenantID   string `json:"-"`
	LeadID     string `json:"lead_id"`
	AssignedTo string `json:"assigned_to"`
	DueAt      string `json:"due_at"`
	Type       string `json:"type"`
	Notes      string `json:"notes"`
}

type CreateFollowUpUseCase struct {
	Repo     entity.FollowUpRepositoryInterface
	LeadRepo entity.LeadRepositoryInterface
	Logger   *zap.Logger
}

func NewCreateFollowUpUseCase(repo entity.FollowUpRepositoryInterface, leadRepo entity.LeadRepositoryInterface, logger *zap.Logger) *CreateFollowUpUseCase {
	return &CreateFollowUpUseCase{Repo: repo, LeadRepo: leadRepo, Logger: logger}
}

func (uc *CreateFollowUpUseCase) Execute(ctx context.Context, input CreateFollowUpInput) (*entity.FollowUp, error) {
	if errs := ValidateCreateFollowUpInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	exists, err := uc.LeadRepo.Exists(ctx, input.TenantID, input.LeadID)
	if err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao buscar lead", Err: err}
	}
	if !exists {
		return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: entity.ErrLeadNotFound.Error()}
	}

	dueAt, _ := time.Parse(time.RFC3339, input.DueAt)
	f, err := entity.NewFollowUp(input.TenantID, input.LeadID, input.AssignedTo, dueAt, entity.FollowUpType(input.Type), input.Notes)
	if err != nil {
		return nil, &DomainError{Code: "INVALID_FOLLOWUP", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, f); err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao salvar lembrete", Err: err}
	}

	uc.Logger.Info("📝 lembrete criado",
		zap.String("tenant_id", f.TenantID),
		zap.String("follow_up_id", f.ID),
		zap.Time("due_at", f.DueAt))
	return f, nil
}

type CompleteFollowUpUseCase struct {
	Repo   entity.FollowUpRepositoryInterface
	Logger *zap.Logger
	Now    func() time.Time
}

func NewCompleteFollowUpUseCase(repo entity.FollowUpRepositoryInterface, logger *zap.Logger) *CompleteFollowUpUseCase {
	return &CompleteFollowUpUseCase{Repo: repo, Logger: logger, Now: time.Now}
}

func (uc *CompleteFollowUpUseCase) Execute(ctx context.Context, tenantID, id string) (*entity.FollowUp, error) {
	f, err := uc.Repo.FindByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, entity.ErrFollowUpNotFound) {
			return nil, &DomainError{Code: "FOLLOWUP_NOT_FOUND", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao buscar lembrete", Err: err}
	}

	if err := f.Complete(uc.Now()); err != nil {
		return nil, &DomainError{Code: "FOLLOWUP_NOT_PENDING", Message: err.Error()}
	}

	if err := uc.Repo.Complete(ctx, f); err != nil {
		if errors.Is(err, entity.ErrFollowUpNotPending) {
			return nil, &DomainError{Code: "FOLLOWUP_NOT_PENDING", Message: err.Error()}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "erro ao concluir lembrete", Err: err}
	}

	uc.Logger.Info("✅ lembrete concluído", zap.String("tenant_id", tenantID), zap.String("follow_up_id", id))
	return f, nil
}
