// Package alert pushes operational events onto a durable queue so a human
// follows up on orders the automatic path could not fully settle.
package alert

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"adornia-be/internal/inventory"
	"adornia-be/internal/logger"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
)

const queueName = "reconciliation_alerts"

type Publisher interface {
	PublishReconciliationAlert(ctx context.Context, report inventory.Report) error
	Close() error
}

type amqpPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewAMQPPublisher connects and declares the alert queue up front, so a
// misconfigured broker fails at startup instead of at the first alert.
func NewAMQPPublisher(url string) (Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		queueName,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", queueName, err)
	}

	return &amqpPublisher{conn: conn, channel: ch}, nil
}

type reconciliationAlert struct {
	OrderNumber string           `json:"orderNumber"`
	Report      inventory.Report `json:"report"`
	OccurredAt  time.Time        `json:"occurredAt"`
}

func (p *amqpPublisher) PublishReconciliationAlert(ctx context.Context, report inventory.Report) error {
	body, err := json.Marshal(reconciliationAlert{
		OrderNumber: report.OrderNumber,
		Report:      report,
		OccurredAt:  time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal alert: %w", err)
	}

	err = p.channel.Publish(
		"",        // default exchange
		queueName, // routing key
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}

	logger.FromCtx(ctx).Info("reconciliation alert published",
		zap.String("order_number", report.OrderNumber),
		zap.String("status", string(report.Status)),
	)
	return nil
}

func (p *amqpPublisher) Close() error {
	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("closing AMQP publisher: %v", errs)
	}
	return nil
}

// noopPublisher logs alerts instead of queueing them. Used when no broker
// is configured, so the orchestrator does not need a nil check.
type noopPublisher struct{}

func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) PublishReconciliationAlert(ctx context.Context, report inventory.Report) error {
	logger.FromCtx(ctx).Warn("no alert broker configured, reconciliation alert logged only",
		zap.String("order_number", report.OrderNumber),
		zap.String("status", string(report.Status)),
	)
	return nil
}

func (noopPublisher) Close() error { return nil }
