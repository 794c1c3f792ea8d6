package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatsomint/pawfectfind-be/internal/api/domain"
	"github.com/thatsomint/pawfectfind-be/internal/api/dto"
	"github.com/thatsomint/pawfectfind-be/internal/api/model"
	"github.com/thatsomint/pawfectfind-be/internal/events"
)

// BookingHandler handles booking-related HTTP requests
type BookingHandler struct {
	logger    *slog.Logger
	store     BookingStore
	publisher Publisher
}

// NewBookingHandler creates a new BookingHandler instance
func NewBookingHandler(logger *slog.Logger, store BookingStore, publisher Publisher) *BookingHandler {
	return &BookingHandler{
		logger:    logger,
		store:     store,
		publisher: publisher,
	}
}

// CreateBooking handles POST /api/bookings.
//
// The booking row is committed first; only then is a confirmation message
// published. A publish failure is logged but never surfaced to the caller:
// the booking exists with status pending and the asynchronous confirmation
// is simply delayed. There is no synchronous publish retry on this path.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID := c.GetInt64(ContextUserIDKey)

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	bookingDate, err := time.Parse(domain.DateLayout, req.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}

	booking := model.Booking{
		UserID:      userID,
		PetID:       req.PetID,
		ServiceType: req.ServiceType,
		VendorID:    req.VendorID,
		BookingDate: bookingDate,
		BookingTime: req.BookingTime,
		Status:      events.StatusPending,
	}

	if err := h.store.CreateBooking(c.Request.Context(), &booking); err != nil {
		if errors.Is(err, domain.ErrPetNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Pet does not exist",
			})
			return
		}

		h.logger.Error("Failed to create booking",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create booking",
		})
		return
	}

	h.publishConfirmation(c, &booking)

	c.JSON(http.StatusCreated, toBookingDTO(&booking))
}

// publishConfirmation hands the committed booking off to the queue.
// Best effort: the row already exists, so failures are log-only.
func (h *BookingHandler) publishConfirmation(c *gin.Context, booking *model.Booking) {
	msg := events.BookingMessage{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ServiceType: booking.ServiceType,
		VendorID:    booking.VendorID,
		BookingDate: booking.BookingDate.Format(domain.DateLayout),
		BookingTime: booking.BookingTime,
		Status:      booking.Status,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("Failed to serialize booking message",
			slog.Int64("booking_id", booking.ID),
			slog.String("error", err.Error()),
		)
		return
	}

	if err := h.publisher.Publish(c.Request.Context(), body, "application/json"); err != nil {
		h.logger.Error("Failed to publish booking confirmation message",
			slog.Int64("booking_id", booking.ID),
			slog.String("error", err.Error()),
		)
		return
	}

	h.logger.Info("Booking confirmation message published",
		slog.Int64("booking_id", booking.ID),
	)
}

// GetBooking handles GET /api/bookings/:booking_id
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID := c.GetInt64(ContextUserIDKey)

	bookingID, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "booking_id must be an integer",
		})
		return
	}

	booking, err := h.store.GetBookingByID(c.Request.Context(), bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
			return
		}

		h.logger.Error("Failed to get booking",
			slog.Int64("booking_id", bookingID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get booking",
		})
		return
	}

	if booking.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
		return
	}

	c.JSON(http.StatusOK, toBookingDTO(booking))
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.GetInt64(ContextUserIDKey)

	bookings, err := h.store.ListBookingsByUser(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to list bookings",
			slog.Int64("user_id", userID),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list bookings",
		})
		return
	}

	response := dto.ListBookingsResponse{
		Bookings: make([]dto.BookingDTO, len(bookings)),
	}
	for i := range bookings {
		response.Bookings[i] = toBookingDTO(&bookings[i])
	}

	c.JSON(http.StatusOK, response)
}

func toBookingDTO(booking *model.Booking) dto.BookingDTO {
	return dto.BookingDTO{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		PetID:       booking.PetID,
		ServiceType: booking.ServiceType,
		VendorID:    booking.VendorID,
		BookingDate: booking.BookingDate.Format(domain.DateLayout),
		BookingTime: booking.BookingTime,
		Status:      booking.Status,
		CreatedAt:   booking.CreatedAt.Format(time.RFC3339),
	}
}
