package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
)

// issued numera as buscas de lembretes; stored é o número da busca cuja lista
// está em followUps.
type tenantDashboard struct {
	memo      *dashboard.Memo
	followUps []entity.FollowUp
	issued    uint64
	stored    uint64
}

// GetDashboardUseCase monta o painel de um tenant. Mantém um Memo por tenant e
// a última lista de lembretes carregada com sucesso, que continua sendo exibida
// quando uma nova busca falha.
type GetDashboardUseCase struct {
	Provider  SnapshotProvider
	FollowUps FollowUpSource
	Logger    *zap.Logger
	Now       func() time.Time

	mu      sync.Mutex
	tenants map[string]*tenantDashboard
}

func NewGetDashboardUseCase(provider SnapshotProvider, followUps FollowUpSource, logger *zap.Logger) *GetDashboardUseCase {
	return &GetDashboardUseCase{
		Provider:  provider,
		FollowUps: followUps,
		Logger:    logger,
		Now:       time.Now,
		tenants:   make(map[string]*tenantDashboard),
	}
}

// tenant devolve o estado do tenant e o número da nova busca de lembretes.
func (uc *GetDashboardUseCase) tenant(tenantID string) (*tenantDashboard, uint64) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	td, ok := uc.tenants[tenantID]
	if !ok {
		td = &tenantDashboard{memo: dashboard.NewMemo()}
		uc.tenants[tenantID] = td
	}
	td.issued++
	return td, td.issued
}

func (uc *GetDashboardUseCase) Execute(ctx context.Context, tenantID string) (dashboard.View, error) {
	if tenantID == "" {
		return dashboard.View{}, &DomainError{Code: "TENANT_REQUIRED", Message: "tenant é obrigatório"}
	}

	td, seq := uc.tenant(tenantID)

	var (
		snapshot    dashboard.Snapshot
		followUps   []entity.FollowUp
		followUpErr error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		snapshot.Leads, err = uc.Provider.ListLeads(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Visits, err = uc.Provider.ListVisits(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Contracts, err = uc.Provider.ListContracts(gctx, tenantID)
		return err
	})
	g.Go(func() (err error) {
		snapshot.Properties, err = uc.Provider.ListProperties(gctx, tenantID)
		return err
	})

	// A falha dos lembretes não derruba o painel, por isso fica fora do errgroup.
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		followUps, followUpErr = uc.FollowUps.PendingFollowUps(ctx, tenantID)
	}()

	err := g.Wait()
	wg.Wait()
	if err != nil {
		uc.Logger.Error("❌ erro ao carregar dados do painel", zap.String("tenant_id", tenantID), zap.Error(err))
		return dashboard.View{}, &TechnicalError{Code: "SNAPSHOT_LOAD_FAILED", Message: "erro ao carregar dados do painel", Err: err}
	}

	uc.mu.Lock()
	switch {
	case followUpErr != nil:
		uc.Logger.Warn("⚠️ erro ao carregar lembretes, usando a última lista", zap.String("tenant_id", tenantID), zap.Error(followUpErr))
	case seq > td.stored:
		td.followUps = followUps
		td.stored = seq
	}
	snapshot.FollowUps = td.followUps
	uc.mu.Unlock()

	view := td.memo.View(snapshot, uc.Now())
	if followUpErr != nil {
		view.FollowUpsError = dashboard.LoadFollowUpsMessage
	}

	return view, nil
}
