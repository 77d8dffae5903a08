package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/streadway/amqp"
)

// UpdatesExchange is the topic exchange job status updates are published on.
const UpdatesExchange = "job_updates"

// StatusUpdate is broadcast whenever a job changes status.
type StatusUpdate struct {
	JobID     uuid.UUID `json:"job_id"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	OutputKey string    `json:"output_key,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// RoutingKey is the topic a job's updates are published under.
func RoutingKey(jobID uuid.UUID) string {
	return fmt.Sprintf("job.%s", jobID)
}

// Publisher broadcasts status updates.
type Publisher interface {
	Publish(ctx context.Context, update StatusUpdate) error
}

// AMQPPublisher publishes status updates to RabbitMQ.
type AMQPPublisher struct {
	conn *amqp.Connection
}

// NewAMQPPublisher declares the updates exchange on conn.
func NewAMQPPublisher(conn *amqp.Connection) (*AMQPPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	err = ch.ExchangeDeclare(
		UpdatesExchange, // name
		"topic",         // kind
		true,            // durable
		false,           // auto-delete
		false,           // internal
		false,           // no-wait
		nil,             // arguments
	)
	if err != nil {
		return nil, fmt.Errorf("failed to declare exchange %s: %w", UpdatesExchange, err)
	}
	return &AMQPPublisher{conn: conn}, nil
}

// Publish sends one update. A channel is opened per update; channels are not
// safe for concurrent use and workers publish concurrently.
func (p *AMQPPublisher) Publish(_ context.Context, update StatusUpdate) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	body, err := json.Marshal(update)
	if err != nil {
		return err
	}

	return ch.Publish(
		UpdatesExchange,
		RoutingKey(update.JobID),
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Timestamp:   update.Timestamp,
			Body:        body,
		},
	)
}
