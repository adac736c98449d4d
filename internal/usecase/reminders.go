package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
)

const (
	TemplateFollowUpReminder = "lembrete_followup"
	TemplateVisitReminder    = "lembrete_visita"
)

// SendRemindersUseCase manda aos leads, por WhatsApp, a confirmação das visitas de
// hoje e os lembretes do tipo whatsapp que vencem hoje. Cada lembrete sai no
// máximo uma vez por dia, mesmo com vários alertas ou reinícios do processo.
type SendRemindersUseCase struct {
	Dashboard *GetDashboardUseCase
	WhatsApp  WhatsAppService
	Log       entity.ReminderLogRepositoryInterface
	Logger    *zap.Logger
}

func NewSendRemindersUseCase(dash *GetDashboardUseCase, whatsapp WhatsAppService, log entity.ReminderLogRepositoryInterface, logger *zap.Logger) *SendRemindersUseCase {
	return &SendRemindersUseCase{Dashboard: dash, WhatsApp: whatsapp, Log: log, Logger: logger}
}

type SendRemindersOutput struct {
	Sent        int `json:"sent"`
	AlreadySent int `json:"already_sent"`
	Skipped     int `json:"skipped"`
	Failed      int `json:"failed"`
}

// Execute não para no primeiro erro de envio: cada falha é registrada e contada.
func (uc *SendRemindersUseCase) Execute(ctx context.Context, tenantID string) (SendRemindersOutput, error) {
	view, err := uc.Dashboard.Execute(ctx, tenantID)
	if err != nil {
		return SendRemindersOutput{}, err
	}
	return uc.send(ctx, tenantID, view), nil
}

func (uc *SendRemindersUseCase) send(ctx context.Context, tenantID string, view dashboard.View) SendRemindersOutput {
	var out SendRemindersOutput

	day := view.GeneratedAt

	deliver := func(kind entity.ReminderKind, refID, phone, template string, params []string) {
		if phone == "" {
			out.Skipped++
			return
		}

		claimed, err := uc.Log.Claim(ctx, tenantID, kind, refID, day)
		if err != nil {
			uc.Logger.Warn("⚠️ erro ao reservar lembrete",
				zap.String("tenant_id", tenantID),
				zap.String("ref_id", refID),
				zap.Error(err))
			out.Failed++
			return
		}
		if !claimed {
			out.AlreadySent++
			return
		}

		if err := uc.WhatsApp.SendTemplate(ctx, phone, template, params); err != nil {
			uc.Logger.Warn("⚠️ falha ao enviar lembrete por WhatsApp",
				zap.String("tenant_id", tenantID),
				zap.String("template", template),
				zap.Error(err))
			if err := uc.Log.Release(ctx, tenantID, kind, refID, day); err != nil {
				uc.Logger.Error("❌ erro ao liberar lembrete", zap.String("ref_id", refID), zap.Error(err))
			}
			out.Failed++
			return
		}
		out.Sent++
	}

	for _, f := range view.Pendencies.TodayFollowUps {
		if f.Type != entity.FollowUpTypeWhatsApp {
			continue
		}
		if f.Lead == nil {
			out.Skipped++
			continue
		}
		deliver(entity.ReminderKindFollowUp, f.ID, f.Lead.Phone, TemplateFollowUpReminder, []string{f.Lead.Name, f.DueAt.Format("15:04")})
	}

	for _, v := range view.Pendencies.TodayVisitsList {
		if v.Lead == nil || v.Property == nil {
			out.Skipped++
			continue
		}
		deliver(entity.ReminderKindVisit, v.ID, v.Lead.Phone, TemplateVisitReminder, []string{v.Lead.Name, v.Property.Title, v.ScheduledFor.Format("15:04")})
	}

	uc.Logger.Info("📲 lembretes do dia processados",
		zap.String("tenant_id", tenantID),
		zap.Int("sent", out.Sent),
		zap.Int("already_sent", out.AlreadySent),
		zap.Int("skipped", out.Skipped),
		zap.Int("failed", out.Failed))
	return out
}
