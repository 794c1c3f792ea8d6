package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// setupConsumer configures QoS and opens the delivery stream
func (w *Worker) setupConsumer() (<-chan amqp.Delivery, error) {
	if err := w.rabbitClient.Qos(w.prefetchCount); err != nil {
		return nil, fmt.Errorf("failed to set QoS: %w", err)
	}

	deliveries, err := w.rabbitClient.Consume(w.workerID)
	if err != nil {
		return nil, fmt.Errorf("failed to start consuming: %w", err)
	}

	w.logger.Info("Listening for messages on booking queue",
		slog.String("worker_id", w.workerID),
	)

	return deliveries, nil
}

// consumeLoop blocks for up to the wait window per iteration, fully handling
// one message before receiving the next. A closed delivery channel means the
// broker went away and the supervisor must restart the consumer.
func (w *Worker) consumeLoop(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case <-w.stopChan:
			return nil

		case delivery, ok := <-deliveries:
			if !ok {
				return ErrDeliveryChannelClosed
			}
			w.handleDelivery(ctx, delivery)

		case <-time.After(w.waitWindow):
			w.logger.Debug("No messages within wait window",
				slog.Duration("wait_window", w.waitWindow),
			)
		}
	}
}
