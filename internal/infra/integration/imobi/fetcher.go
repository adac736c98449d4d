package imobi

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
)

// ErrLoadFollowUps é o único erro exposto pelo fetcher; a causa real vai pro log.
var ErrLoadFollowUps = errors.New(dashboard.LoadFollowUpsMessage)

type FollowUpState struct {
	Items   []entity.FollowUp
	Loading bool
	Err     error
}

// FollowUpFetcher busca os lembretes pendentes de um tenant e guarda o resultado.
// Start dispara uma única busca; Refetch dispara outra e descarta a anterior.
// Depois de Stop, nenhuma resposta em voo altera o estado. Todos os métodos
// podem ser chamados de goroutines diferentes.
type FollowUpFetcher struct {
	client   *Client
	tenantID string
	logger   *zap.Logger

	mu       sync.Mutex
	idle     *sync.Cond
	inFlight int
	state    FollowUpState
	mounted  bool
	gen      uint64
	cancel   context.CancelFunc
}

func NewFollowUpFetcher(client *Client, tenantID string, logger *zap.Logger) *FollowUpFetcher {
	f := &FollowUpFetcher{client: client, tenantID: tenantID, logger: logger}
	f.idle = sync.NewCond(&f.mu)
	return f
}

func (f *FollowUpFetcher) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.mounted {
		return
	}
	f.mounted = true
	f.fetchLocked(ctx)
}

func (f *FollowUpFetcher) Refetch(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.mounted {
		return
	}
	f.fetchLocked(ctx)
}

// Stop cancela a busca em andamento e espera ela terminar.
func (f *FollowUpFetcher) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.mounted = false
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.state.Loading = false
	f.waitLocked()
}

// Wait bloqueia até que não haja busca em andamento.
func (f *FollowUpFetcher) Wait() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waitLocked()
}

func (f *FollowUpFetcher) waitLocked() {
	for f.inFlight > 0 {
		f.idle.Wait()
	}
}

func (f *FollowUpFetcher) State() FollowUpState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *FollowUpFetcher) fetchLocked(ctx context.Context) {
	if f.cancel != nil {
		f.cancel()
	}

	reqCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.gen++
	gen := f.gen
	f.state.Loading = true

	f.inFlight++
	go func() {
		defer cancel()

		items, err := f.client.PendingFollowUps(reqCtx, f.tenantID)

		f.mu.Lock()
		defer f.mu.Unlock()
		defer func() {
			f.inFlight--
			f.idle.Broadcast()
		}()

		if !f.mounted || gen != f.gen {
			return
		}
		f.state.Loading = false
		f.cancel = nil

		if err != nil {
			f.logger.Error("❌ erro ao carregar lembretes",
				zap.String("tenant_id", f.tenantID),
				zap.Error(err))
			f.state.Err = ErrLoadFollowUps
			return
		}
		f.state.Items = items
		f.state.Err = nil
	}()
}
