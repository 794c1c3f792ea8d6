package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/thatsomint/pawfectfind-be/shared/rabbitmq"
)

// ErrDeliveryChannelClosed signals that the broker closed the delivery
// stream underneath the consumer, which triggers a supervised restart.
var ErrDeliveryChannelClosed = errors.New("rabbitmq delivery channel closed")

// BookingConfirmer applies the status update for a consumed booking message.
// It reports how many rows the update touched so the caller can spot
// messages referencing unknown bookings.
type BookingConfirmer interface {
	ConfirmBooking(ctx context.Context, bookingID int64) (int64, error)
}

// Config holds worker configuration
type Config struct {
	Logger         *slog.Logger
	Store          BookingConfirmer
	RabbitClient   *rabbitmq.Client
	WaitWindow     time.Duration
	RestartBackoff time.Duration
	PrefetchCount  int
}

// Worker consumes booking confirmation messages and updates booking rows.
// Messages are processed strictly one at a time; scaling out means running
// more worker processes against the same queue.
type Worker struct {
	logger         *slog.Logger
	store          BookingConfirmer
	rabbitClient   *rabbitmq.Client
	waitWindow     time.Duration
	restartBackoff time.Duration
	prefetchCount  int
	workerID       string
	stopChan       chan struct{}

	// receiveFn is swapped out by tests
	receiveFn func(ctx context.Context) error
}

// NewWorker creates a new worker instance
func NewWorker(cfg *Config) *Worker {
	w := &Worker{
		logger:         cfg.Logger,
		store:          cfg.Store,
		rabbitClient:   cfg.RabbitClient,
		waitWindow:     cfg.WaitWindow,
		restartBackoff: cfg.RestartBackoff,
		prefetchCount:  cfg.PrefetchCount,
		workerID:       fmt.Sprintf("booking-worker-%s", uuid.NewString()[:8]),
		stopChan:       make(chan struct{}),
	}
	w.receiveFn = w.receive

	return w
}

// Start runs the supervised receive loop until the context is canceled or
// Stop is called. Broker-level failures do not terminate the worker: the
// fault is logged and the loop restarts after a fixed backoff, indefinitely.
func (w *Worker) Start(ctx context.Context) error {
	w.logger.Info("Starting booking confirmation consumer",
		slog.String("worker_id", w.workerID),
		slog.Duration("wait_window", w.waitWindow),
		slog.Duration("restart_backoff", w.restartBackoff),
	)

	for {
		err := w.receiveFn(ctx)

		if ctx.Err() != nil || w.stopped() {
			w.logger.Info("Consumer stopped",
				slog.String("worker_id", w.workerID),
			)
			return nil
		}

		if err != nil {
			w.logger.Error("Consumer error",
				slog.String("worker_id", w.workerID),
				slog.String("error", err.Error()),
			)
		}

		w.logger.Info("Restarting receive loop",
			slog.Duration("backoff", w.restartBackoff),
		)

		select {
		case <-ctx.Done():
			return nil
		case <-w.stopChan:
			return nil
		case <-time.After(w.restartBackoff):
		}
	}
}

// Stop signals the worker to exit its receive loop
func (w *Worker) Stop() {
	w.logger.Info("Stopping worker...")

	select {
	case <-w.stopChan:
	default:
		close(w.stopChan)
	}
}

func (w *Worker) stopped() bool {
	select {
	case <-w.stopChan:
		return true
	default:
		return false
	}
}

// receive establishes the consumer and drains deliveries until the context
// is canceled or the broker fails
func (w *Worker) receive(ctx context.Context) error {
	if err := w.rabbitClient.Reconnect(); err != nil {
		return fmt.Errorf("broker connection failed: %w", err)
	}

	deliveries, err := w.setupConsumer()
	if err != nil {
		return err
	}

	return w.consumeLoop(ctx, deliveries)
}
