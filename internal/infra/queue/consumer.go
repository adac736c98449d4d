package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type AlertHandler interface {
	HandlePendencyAlert(ctx context.Context, alert PendencyAlert) error
}

type deliverySource interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

var ErrDeliveriesClosed = errors.New("canal de entregas do RabbitMQ fechado")

type Consumer struct {
	Channel deliverySource
	Handler AlertHandler
	Logger  *zap.Logger
}

func NewConsumer(ch *amqp.Channel, handler AlertHandler, logger *zap.Logger) *Consumer {
	return &Consumer{Channel: ch, Handler: handler, Logger: logger}
}

// Start consome a fila até o ctx ser cancelado ou o canal fechar.
func (c *Consumer) Start(ctx context.Context, queueName string) error {
	msgs, err := c.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		return fmt.Errorf("falha ao registrar consumidor RabbitMQ: %w", err)
	}

	c.Logger.Info("📡 consumidor aguardando alertas", zap.String("queue", queueName))

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("⚠️ consumidor encerrado")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return ErrDeliveriesClosed
			}
			c.process(ctx, d)
		}
	}
}

func (c *Consumer) process(ctx context.Context, d amqp.Delivery) {
	var alert PendencyAlert
	if err := json.Unmarshal(d.Body, &alert); err != nil {
		c.Logger.Error("❌ alerta com JSON inválido", zap.Error(err))
		// Mensagem malformada vai direto pra DLQ.
		d.Nack(false, false)
		return
	}

	if err := c.Handler.HandlePendencyAlert(ctx, alert); err != nil {
		c.Logger.Error("❌ erro ao processar alerta",
			zap.String("tenant_id", alert.TenantID),
			zap.Error(err))
		d.Nack(false, false)
		return
	}

	c.Logger.Info("✅ alerta processado",
		zap.String("tenant_id", alert.TenantID),
		zap.Int("total_urgent", alert.TotalUrgent))
	d.Ack(false)
}
