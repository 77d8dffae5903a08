package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/streadway/amqp"
)

// JobsQueue is the durable queue job messages are consumed from.
const JobsQueue = "format_jobs"

// ErrDeliveriesClosed is returned by a worker whose delivery channel closed
// before shutdown, usually because the broker dropped the connection.
var ErrDeliveriesClosed = errors.New("delivery channel closed")

// Delivery is the part of an AMQP delivery a worker needs.
type Delivery interface {
	Body() []byte
	Ack() error
	Reject(requeue bool) error
}

type amqpDelivery struct{ d amqp.Delivery }

func (a amqpDelivery) Body() []byte { return a.d.Body }

func (a amqpDelivery) Ack() error { return a.d.Ack(false) }

func (a amqpDelivery) Reject(requeue bool) error { return a.d.Reject(requeue) }

// Pool runs workers that each consume the jobs queue over their own connection.
type Pool struct {
	URL       string
	Workers   int
	Processor *Processor
	Logger    *slog.Logger
}

// Run starts the workers and blocks until all of them stop. Workers stop when
// ctx is cancelled or their connection closes; a closed connection is
// reported as ErrDeliveriesClosed.
func (p *Pool) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	errs := make(chan error, p.Workers)

	for i := range p.Workers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			p.Logger.Info("worker started", "worker", id)
			if err := p.consume(ctx, id); err != nil {
				errs <- fmt.Errorf("worker %d: %w", id, err)
			}
		}(i + 1)
	}

	wg.Wait()
	close(errs)
	return <-errs
}

func (p *Pool) consume(ctx context.Context, id int) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error connecting to rabbitmq channel: %w", err)
	}
	defer ch.Close()

	_, err = ch.QueueDeclare(
		JobsQueue, // queue name
		true,      // durable (survives broker restarts)
		false,     // auto-delete when unused
		false,     // exclusive
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	msgs, err := ch.Consume(
		JobsQueue, // queue name
		"",        // consumer tag
		false,     // auto-ack
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // arguments
	)
	if err != nil {
		return fmt.Errorf("error consuming rabbitmq message: %w", err)
	}

	deliveries := make(chan Delivery)
	go func() {
		defer close(deliveries)
		for msg := range msgs {
			select {
			case deliveries <- amqpDelivery{msg}:
			case <-ctx.Done():
				return
			}
		}
	}()

	return p.serve(ctx, id, deliveries)
}

// serve processes deliveries until the channel closes or ctx is done.
// Processed jobs are acked whatever their outcome, since failures are recorded
// on the job itself. Undecodable messages are rejected. A job interrupted by
// shutdown goes back on the queue. serve returns nil once ctx is done and
// ErrDeliveriesClosed when the channel closes first.
func (p *Pool) serve(ctx context.Context, id int, deliveries <-chan Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return ErrDeliveriesClosed
			}
			p.Logger.Info("processing job", "worker", id)
			err := p.Processor.Handle(ctx, d.Body())

			var ackErr error
			switch {
			case err == nil:
				ackErr = d.Ack()
			case ctx.Err() != nil:
				p.Logger.Warn("requeueing interrupted job", "worker", id, "error", err)
				ackErr = d.Reject(true)
			case errors.Is(err, ErrBadMessage):
				p.Logger.Error("rejecting message", "worker", id, "error", err)
				ackErr = d.Reject(false)
			default:
				ackErr = d.Ack()
			}
			if ackErr != nil {
				p.Logger.Warn("failed to acknowledge message", "worker", id, "error", ackErr)
			}
		}
	}
}
