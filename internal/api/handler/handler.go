package handler

import (
	"context"
	"log/slog"

	"github.com/thatsomint/pawfectfind-be/internal/api/auth"
	"github.com/thatsomint/pawfectfind-be/internal/api/model"
	"github.com/thatsomint/pawfectfind-be/internal/api/storage"
)

// ContextUserIDKey is the gin context key carrying the authenticated user id
const ContextUserIDKey = "user_id"

// Publisher publishes serialized messages to the booking queue
type Publisher interface {
	Publish(ctx context.Context, body []byte, contentType string) error
}

// UserStore persists and looks up user accounts
type UserStore interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
}

// PetStore persists and lists pet records
type PetStore interface {
	CreatePet(ctx context.Context, pet *model.Pet) error
	ListPetsByUser(ctx context.Context, userID int64) ([]model.Pet, error)
}

// VendorStore reads vendor listings and availability
type VendorStore interface {
	ListVendors(ctx context.Context) ([]model.Vendor, error)
	GetVendorAvailability(ctx context.Context, vendorID, date string) ([]string, error)
}

// BookingStore persists and looks up bookings
type BookingStore interface {
	CreateBooking(ctx context.Context, booking *model.Booking) error
	GetBookingByID(ctx context.Context, bookingID int64) (*model.Booking, error)
	ListBookingsByUser(ctx context.Context, userID int64) ([]model.Booking, error)
}

// HealthChecker reports database liveness
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// BrokerStatus reports message broker connectivity
type BrokerStatus interface {
	IsConnected() bool
}

// Dependencies holds all dependencies needed by handlers
type Dependencies struct {
	Logger    *slog.Logger
	Store     *storage.Storage
	Publisher Publisher
	Tokens    *auth.TokenManager
	DBHealth  HealthChecker
	Broker    BrokerStatus
}
