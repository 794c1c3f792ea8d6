// Package events defines the wire contract between the API service and the
// booking confirmation worker. The queue only ever carries a snapshot of a
// booking row; the row itself stays the source of truth.
package events

// BookingQueue is the durable queue carrying booking confirmation hand-offs
const BookingQueue = "booking-queue"

// Booking status values, shared by the database rows and the queue messages
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
)

// BookingMessage is the JSON body published when a booking row is created.
// It references an already-committed row by BookingID.
type BookingMessage struct {
	BookingID   int64  `json:"booking_id"`
	UserID      int64  `json:"user_id"`
	ServiceType string `json:"service_type"`
	VendorID    string `json:"vendor_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Status      string `json:"status"`
}
