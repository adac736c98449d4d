package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/xavierca1/imobi/internal/dashboard"
	"github.com/xavierca1/imobi/internal/entity"
)

// PendencyAlert é o resumo das pendências de um tenant publicado pelo DigestWorker.
type PendencyAlert struct {
	TenantID    string    `json:"tenant_id"`
	TenantName  string    `json:"tenant_name"`
	NotifyEmail string    `json:"notify_email"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalUrgent         int `json:"total_urgent"`
	OverdueFollowUps    int `json:"overdue_follow_ups"`
	TodayFollowUps      int `json:"today_follow_ups"`
	TodayVisits         int `json:"today_visits"`
	LeadsWithoutContact int `json:"leads_without_contact"`
}

func NewPendencyAlert(t entity.Tenant, view dashboard.View) PendencyAlert {
	p := view.Pendencies
	return PendencyAlert{
		TenantID:            t.ID,
		TenantName:          t.Name,
		NotifyEmail:         t.NotifyEmail,
		GeneratedAt:         view.GeneratedAt,
		TotalUrgent:         p.TotalUrgent,
		OverdueFollowUps:    len(p.OverdueFollowUps),
		TodayFollowUps:      len(p.TodayFollowUps),
		TodayVisits:         len(p.TodayVisitsList),
		LeadsWithoutContact: len(p.LeadsWithoutContact),
	}
}

type AlertPublisherInterface interface {
	PublishPendencyAlert(ctx context.Context, alert PendencyAlert) error
}

type RabbitMQProducer struct {
	Ch publisher
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Ch: ch}
}

func (p *RabbitMQProducer) PublishPendencyAlert(ctx context.Context, alert PendencyAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.dashboard
		RoutingKey,   // k.pendency-alert
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			MessageId:    alert.TenantID + ":" + alert.GeneratedAt.Format(time.RFC3339),
			Timestamp:    alert.GeneratedAt,
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %w", err)
	}

	return nil
}
