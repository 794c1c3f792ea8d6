package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/thatsomint/pawfectfind-be/internal/api/domain"
	"github.com/thatsomint/pawfectfind-be/internal/api/model"
	"github.com/thatsomint/pawfectfind-be/shared/postgresql"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(pg *postgresql.Client) *Storage {
	return &Storage{
		db: pg.GetDB(),
	}
}

// ===== users =====

func (s *Storage) CreateUser(ctx context.Context, user *model.User) error {
	query := `
		INSERT INTO users (email, password_hash, full_name, phone_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.PhoneNumber,
	).Scan(&user.ID, &user.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	query := `
		SELECT id, email, password_hash, full_name,
		       COALESCE(phone_number, '') AS phone_number, created_at
		FROM users
		WHERE email = $1
	`

	err := s.db.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// ===== pets =====

func (s *Storage) CreatePet(ctx context.Context, pet *model.Pet) error {
	query := `
		INSERT INTO pets (user_id, name, type, breed, age)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		pet.UserID,
		pet.Name,
		pet.Type,
		pet.Breed,
		pet.Age,
	).Scan(&pet.ID, &pet.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}

	return nil
}

func (s *Storage) ListPetsByUser(ctx context.Context, userID int64) ([]model.Pet, error) {
	var pets []model.Pet
	query := `
		SELECT id, user_id, name, type, COALESCE(breed, '') AS breed,
		       COALESCE(age, 0) AS age, created_at
		FROM pets
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	err := s.db.SelectContext(ctx, &pets, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}

	return pets, nil
}

// ===== vendors =====

func (s *Storage) ListVendors(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	query := `
		SELECT id, name, rating, price, services
		FROM vendors
		ORDER BY rating DESC
	`

	err := s.db.SelectContext(ctx, &vendors, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list vendors: %w", err)
	}

	return vendors, nil
}

// GetVendorAvailability returns the open slots for a vendor on a given day.
// For a known vendor, a day with no availability row is a day with no slots,
// not an error; an unknown vendor is ErrVendorNotFound.
func (s *Storage) GetVendorAvailability(ctx context.Context, vendorID, date string) ([]string, error) {
	var avail model.VendorAvailability
	query := `
		SELECT vendor_id, date, available_slots
		FROM vendor_availability
		WHERE vendor_id = $1 AND date = $2
	`

	err := s.db.GetContext(ctx, &avail, query, vendorID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			var exists bool
			existsQuery := `SELECT EXISTS (SELECT 1 FROM vendors WHERE id = $1)`
			if err := s.db.GetContext(ctx, &exists, existsQuery, vendorID); err != nil {
				return nil, fmt.Errorf("failed to check vendor: %w", err)
			}
			if !exists {
				return nil, domain.ErrVendorNotFound
			}
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to get vendor availability: %w", err)
	}

	return avail.AvailableSlots, nil
}

// ===== bookings =====

// CreateBooking inserts a booking row and fills in the generated id and
// creation timestamp. The row must exist before any message referencing it
// is published.
func (s *Storage) CreateBooking(ctx context.Context, booking *model.Booking) error {
	query := `
		INSERT INTO bookings (user_id, pet_id, service_type, vendor_id, booking_date, booking_time, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := s.db.QueryRowContext(
		ctx,
		query,
		booking.UserID,
		booking.PetID,
		booking.ServiceType,
		booking.VendorID,
		booking.BookingDate,
		booking.BookingTime,
		booking.Status,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqForeignKeyViolation {
			return domain.ErrPetNotFound
		}
		return fmt.Errorf("failed to create booking: %w", err)
	}

	return nil
}

func (s *Storage) GetBookingByID(ctx context.Context, bookingID int64) (*model.Booking, error) {
	var booking model.Booking
	query := `
		SELECT id, user_id, pet_id, service_type, vendor_id,
		       booking_date, booking_time, status, created_at
		FROM bookings
		WHERE id = $1
	`

	err := s.db.GetContext(ctx, &booking, query, bookingID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}

	return &booking, nil
}

func (s *Storage) ListBookingsByUser(ctx context.Context, userID int64) ([]model.Booking, error) {
	var bookings []model.Booking
	query := `
		SELECT id, user_id, pet_id, service_type, vendor_id,
		       booking_date, booking_time, status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	err := s.db.SelectContext(ctx, &bookings, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return bookings, nil
}
