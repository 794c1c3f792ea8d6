package dto

type CreateBookingRequest struct {
	PetID       int64  `json:"pet_id" binding:"required"`
	ServiceType string `json:"service_type" binding:"required"`
	VendorID    string `json:"vendor_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" binding:"required"`
}

type BookingDTO struct {
	BookingID   int64  `json:"booking_id"`
	UserID      int64  `json:"user_id"`
	PetID       int64  `json:"pet_id"`
	ServiceType string `json:"service_type"`
	VendorID    string `json:"vendor_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

type ListBookingsResponse struct {
	Bookings []BookingDTO `json:"bookings"`
}
