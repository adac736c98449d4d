package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
	"github.com/xavierca1/imobi/internal/infra/http/middleware"
	"github.com/xavierca1/imobi/internal/infra/queue"
)

type DashboardService interface {
	Execute(ctx context.Context, tenantID string) (dashboard.View, error)
}

type alertMark struct {
	day    string
	urgent int
}

// DigestWorker percorre os tenants ativos a cada tick e publica um alerta
// quando há pendências urgentes. No mesmo dia, só publica de novo se o total
// urgente crescer.
type DigestWorker struct {
	tenants      entity.TenantRepositoryInterface
	dashboard    DashboardService
	publisher    queue.AlertPublisherInterface
	logger       *zap.Logger
	tickInterval time.Duration

	mu   sync.Mutex
	sent map[string]alertMark
}

func NewDigestWorker(tenants entity.TenantRepositoryInterface, dash DashboardService, publisher queue.AlertPublisherInterface, interval time.Duration, logger *zap.Logger) *DigestWorker {
	return &DigestWorker{
		tenants:      tenants,
		dashboard:    dash,
		publisher:    publisher,
		logger:       logger,
		tickInterval: interval,
		sent:         make(map[string]alertMark),
	}
}

func (w *DigestWorker) Start(ctx context.Context) {
	w.logger.Info("🕒 Digest Worker iniciado", zap.Duration("interval", w.tickInterval))

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.RunOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("⚠️ Digest Worker encerrado")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce devolve quantos alertas foram publicados.
func (w *DigestWorker) RunOnce(ctx context.Context) int {
	tenants, err := w.tenants.ListActive(ctx)
	if err != nil {
		w.logger.Error("❌ erro ao listar tenants", zap.Error(err))
		return 0
	}

	published := 0
	for _, t := range tenants {
		if ctx.Err() != nil {
			break
		}

		view, err := w.dashboard.Execute(ctx, t.ID)
		if err != nil {
			w.logger.Error("❌ erro ao montar painel", zap.String("tenant_id", t.ID), zap.Error(err))
			continue
		}

		urgent := view.Pendencies.TotalUrgent
		if urgent == 0 || !w.shouldAlert(t.ID, view.GeneratedAt, urgent) {
			continue
		}

		if err := w.publisher.PublishPendencyAlert(ctx, queue.NewPendencyAlert(t, view)); err != nil {
			middleware.RecordIntegrationError("rabbitmq")
			w.logger.Error("❌ erro ao publicar alerta", zap.String("tenant_id", t.ID), zap.Error(err))
			continue
		}

		w.markSent(t.ID, view.GeneratedAt, urgent)
		middleware.RecordPendencyAlert()
		published++
	}

	if published > 0 {
		w.logger.Info("✅ alertas de pendências publicados", zap.Int("count", published))
	}
	return published
}

func dayOf(t time.Time) string {
	return dashboard.StartOfDay(t).Format("2006-01-02")
}

func (w *DigestWorker) shouldAlert(tenantID string, now time.Time, urgent int) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	mark, ok := w.sent[tenantID]
	return !ok || mark.day != dayOf(now) || urgent > mark.urgent
}

func (w *DigestWorker) markSent(tenantID string, now time.Time, urgent int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sent[tenantID] = alertMark{day: dayOf(now), urgent: urgent}
}
