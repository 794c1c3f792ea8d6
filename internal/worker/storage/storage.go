package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"github.com/thatsomint/pawfectfind-be/internal/events"
)

// Storage handles all database operations for the confirmation worker
type Storage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStorage creates a new Storage instance
func NewStorage(db *sqlx.DB, logger *slog.Logger) *Storage {
	return &Storage{
		db:     db,
		logger: logger,
	}
}

// ConfirmBooking sets the booking's status to confirmed and returns the
// number of rows touched. The update is idempotent: redelivered messages
// re-apply the same terminal value.
func (s *Storage) ConfirmBooking(ctx context.Context, bookingID int64) (int64, error) {
	query := `
		UPDATE bookings
		SET status = $1
		WHERE id = $2
	`

	result, err := s.db.ExecContext(ctx, query, events.StatusConfirmed, bookingID)
	if err != nil {
		return 0, fmt.Errorf("failed to confirm booking: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	s.logger.Debug("Booking status updated",
		slog.Int64("booking_id", bookingID),
		slog.Int64("rows_affected", rows),
	)

	return rows, nil
}
