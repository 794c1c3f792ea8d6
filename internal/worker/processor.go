package worker

import (
	"context"
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/thatsomint/pawfectfind-be/internal/events"
)

// handleDelivery processes a single booking message. Success acknowledges
// the message, removing it from the queue; any failure abandons it so the
// broker can redeliver up to its delivery-count ceiling. Either way the
// consumer moves on to the next message.
func (w *Worker) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var msg events.BookingMessage
	if err := json.Unmarshal(delivery.Body, &msg); err != nil {
		w.logger.Error("Failed to parse booking message",
			slog.String("message_id", delivery.MessageId),
			slog.String("error", err.Error()),
			slog.String("body", string(delivery.Body)),
		)
		w.abandon(delivery)
		return
	}

	if msg.BookingID <= 0 {
		w.logger.Error("Booking message missing booking_id",
			slog.String("message_id", delivery.MessageId),
		)
		w.abandon(delivery)
		return
	}

	w.logger.Info("Processing booking",
		slog.Int64("booking_id", msg.BookingID),
		slog.String("service_type", msg.ServiceType),
		slog.String("vendor_id", msg.VendorID),
	)

	rows, err := w.store.ConfirmBooking(ctx, msg.BookingID)
	if err != nil {
		w.logger.Error("Failed to confirm booking",
			slog.Int64("booking_id", msg.BookingID),
			slog.String("error", err.Error()),
		)
		w.abandon(delivery)
		return
	}

	if rows == 0 {
		// No matching row. The message still gets acknowledged: redelivery
		// cannot make the row appear, since rows are committed before publish.
		w.logger.Warn("Booking message matched no rows",
			slog.Int64("booking_id", msg.BookingID),
			slog.String("message_id", delivery.MessageId),
		)
	}

	if err := delivery.Ack(false); err != nil {
		w.logger.Error("Failed to ACK message",
			slog.Int64("booking_id", msg.BookingID),
			slog.String("error", err.Error()),
		)
		return
	}

	w.logger.Info("Booking confirmed",
		slog.Int64("booking_id", msg.BookingID),
	)
}

// abandon releases the message back to the queue for redelivery
func (w *Worker) abandon(delivery amqp.Delivery) {
	if err := delivery.Nack(false, true); err != nil {
		w.logger.Error("Failed to NACK message",
			slog.String("message_id", delivery.MessageId),
			slog.String("error", err.Error()),
		)
		return
	}

	w.logger.Info("Message abandoned, will be redelivered",
		slog.String("message_id", delivery.MessageId),
	)
}
