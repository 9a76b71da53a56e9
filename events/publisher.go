package events

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const lifecycleQueueName = "hotel.lifecycle"

// Publisher pushes lifecycle events to RabbitMQ. Publishing is strictly
// best-effort: errors are logged and returned, and callers ignore them so a
// broker outage never fails the originating request. A nil Publisher is a
// valid no-op.
type Publisher struct {
	url string
}

// NewPublisherFromEnv builds a publisher from RABBITMQ_URL/AMQP_URL.
// Returns nil when neither is set, which disables publishing.
func NewPublisherFromEnv() *Publisher {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		url = os.Getenv("AMQP_URL")
	}
	if url == "" {
		return nil
	}
	return &Publisher{url: url}
}

// Publish sends one event to the hotel.lifecycle queue. Messages are
// persistent so they survive broker restarts.
func (p *Publisher) Publish(ctx context.Context, event LifecycleEvent) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		log.Printf("rabbitmq: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("rabbitmq: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(lifecycleQueueName, true, false, false, false, nil); err != nil {
		log.Printf("rabbitmq: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("rabbitmq: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", lifecycleQueueName, false, false, pub); err != nil {
		log.Printf("rabbitmq: publish failed: %v", err)
		return err
	}
	return nil
}
