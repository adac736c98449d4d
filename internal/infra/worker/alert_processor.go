package worker

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/infra/mail"
	"github.com/xavierca1/imobi/internal/infra/queue"
	"github.com/xavierca1/imobi/internal/usecase"
)

type DigestMailer interface {
	SendDigest(to string, data mail.DigestEmailData) error
}

type ReminderSender interface {
	Execute(ctx context.Context, tenantID string) (usecase.SendRemindersOutput, error)
}

// AlertProcessor consome os alertas da fila: manda o resumo por e-mail ao
// gestor do tenant e os lembretes do dia por WhatsApp aos leads.
type AlertProcessor struct {
	Mailer       DigestMailer
	Reminders    ReminderSender
	DashboardURL string
	Logger       *zap.Logger
}

func NewAlertProcessor(mailer DigestMailer, reminders ReminderSender, dashboardURL string, logger *zap.Logger) *AlertProcessor {
	return &AlertProcessor{Mailer: mailer, Reminders: reminders, DashboardURL: dashboardURL, Logger: logger}
}

func (p *AlertProcessor) HandlePendencyAlert(ctx context.Context, alert queue.PendencyAlert) error {
	if alert.NotifyEmail != "" {
		data := mail.DigestEmailData{
			TenantName:          alert.TenantName,
			Date:                alert.GeneratedAt.Format("02/01/2006"),
			TotalUrgent:         alert.TotalUrgent,
			OverdueFollowUps:    alert.OverdueFollowUps,
			TodayFollowUps:      alert.TodayFollowUps,
			TodayVisits:         alert.TodayVisits,
			LeadsWithoutContact: alert.LeadsWithoutContact,
			DashboardURL:        p.DashboardURL,
		}
		if err := p.Mailer.SendDigest(alert.NotifyEmail, data); err != nil {
			return fmt.Errorf("erro ao enviar resumo por e-mail: %w", err)
		}
		p.Logger.Info("📧 resumo de pendências enviado",
			zap.String("tenant_id", alert.TenantID),
			zap.String("to", alert.NotifyEmail))
	}

	out, err := p.Reminders.Execute(ctx, alert.TenantID)
	if err != nil {
		return fmt.Errorf("erro ao enviar lembretes: %w", err)
	}
	if out.Failed > 0 {
		p.Logger.Warn("⚠️ lembretes com falha de envio",
			zap.String("tenant_id", alert.TenantID),
			zap.Int("failed", out.Failed))
	}
	return nil
}
