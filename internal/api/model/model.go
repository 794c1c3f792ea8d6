package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type User struct {
	ID           int64     `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	PhoneNumber  string    `db:"phone_number"`
	CreatedAt    time.Time `db:"created_at"`
}

type Pet struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Breed     string    `db:"breed"`
	Age       int       `db:"age"`
	CreatedAt time.Time `db:"created_at"`
}

type Booking struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	PetID       int64     `db:"pet_id"`
	ServiceType string    `db:"service_type"`
	VendorID    string    `db:"vendor_id"`
	BookingDate time.Time `db:"booking_date"`
	BookingTime string    `db:"booking_time"`
	Status      string    `db:"status"`
	CreatedAt   time.Time `db:"created_at"`
}

type Vendor struct {
	ID       string     `db:"id"`
	Name     string     `db:"name"`
	Rating   float64    `db:"rating"`
	Price    string     `db:"price"`
	Services StringList `db:"services"`
}

type VendorAvailability struct {
	VendorID       string     `db:"vendor_id"`
	Date           time.Time  `db:"date"`
	AvailableSlots StringList `db:"available_slots"`
}

// StringList maps a jsonb column to a slice of strings
type StringList []string

func (s *StringList) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	return json.Unmarshal(data, s)
}

func (s StringList) Value() (driver.Value, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}
