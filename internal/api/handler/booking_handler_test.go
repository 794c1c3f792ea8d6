package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thatsomint/pawfectfind-be/internal/api/domain"
	"github.com/thatsomint/pawfectfind-be/internal/api/dto"
	"github.com/thatsomint/pawfectfind-be/internal/api/model"
	"github.com/thatsomint/pawfectfind-be/internal/events"
)

type fakeBookingStore struct {
	createErr error
	created   []*model.Booking
	bookings  map[int64]*model.Booking
	listErr   error
}

func (f *fakeBookingStore) CreateBooking(_ context.Context, booking *model.Booking) error {
	if f.createErr != nil {
		return f.createErr
	}

	booking.ID = int64(len(f.created) + 1)
	booking.CreatedAt = time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	f.created = append(f.created, booking)
	return nil
}

func (f *fakeBookingStore) GetBookingByID(_ context.Context, bookingID int64) (*model.Booking, error) {
	booking, ok := f.bookings[bookingID]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return booking, nil
}

func (f *fakeBookingStore) ListBookingsByUser(_ context.Context, userID int64) ([]model.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}

	var out []model.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakePublisher struct {
	err       error
	published [][]byte
}

func (f *fakePublisher) Publish(_ context.Context, body []byte, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, body)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func bookingRouter(userID int64, store BookingStore, publisher Publisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBookingHandler(discardLogger(), store, publisher)

	r := gin.New()
	authed := r.Group("/api", func(c *gin.Context) {
		c.Set(ContextUserIDKey, userID)
	})
	authed.POST("/bookings", h.CreateBooking)
	authed.GET("/bookings", h.ListBookings)
	authed.GET("/bookings/:booking_id", h.GetBooking)

	return r
}

func performRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PetID:       3,
		ServiceType: "grooming",
		VendorID:    "vendor-1",
		BookingDate: "2026-09-01",
		BookingTime: "10:00",
	}
}

func TestBookingHandler_CreateBooking(t *testing.T) {
	t.Run("creates booking and publishes confirmation message", func(t *testing.T) {
		store := &fakeBookingStore{}
		publisher := &fakePublisher{}
		r := bookingRouter(7, store, publisher)

		w := performRequest(r, http.MethodPost, "/api/bookings", validCreateRequest())

		require.Equal(t, http.StatusCreated, w.Code)

		var resp dto.BookingDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(1), resp.BookingID)
		assert.Equal(t, int64(7), resp.UserID)
		assert.Equal(t, events.StatusPending, resp.Status)
		assert.Equal(t, "2026-09-01", resp.BookingDate)

		require.Len(t, store.created, 1)
		assert.Equal(t, events.StatusPending, store.created[0].Status)

		require.Len(t, publisher.published, 1)
		var msg events.BookingMessage
		require.NoError(t, json.Unmarshal(publisher.published[0], &msg))
		assert.Equal(t, int64(1), msg.BookingID)
		assert.Equal(t, int64(7), msg.UserID)
		assert.Equal(t, "grooming", msg.ServiceType)
		assert.Equal(t, "vendor-1", msg.VendorID)
		assert.Equal(t, "2026-09-01", msg.BookingDate)
		assert.Equal(t, "10:00", msg.BookingTime)
		assert.Equal(t, events.StatusPending, msg.Status)
	})

	t.Run("publish failure still returns 201", func(t *testing.T) {
		store := &fakeBookingStore{}
		publisher := &fakePublisher{err: errors.New("broker unavailable")}
		r := bookingRouter(7, store, publisher)

		w := performRequest(r, http.MethodPost, "/api/bookings", validCreateRequest())

		// The row is committed; the confirmation is merely delayed.
		require.Equal(t, http.StatusCreated, w.Code)
		require.Len(t, store.created, 1)
		assert.Empty(t, publisher.published)
	})

	t.Run("store failure returns 500 and nothing is published", func(t *testing.T) {
		store := &fakeBookingStore{createErr: errors.New("connection refused")}
		publisher := &fakePublisher{}
		r := bookingRouter(7, store, publisher)

		w := performRequest(r, http.MethodPost, "/api/bookings", validCreateRequest())

		require.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Empty(t, publisher.published)
	})

	t.Run("unknown pet returns 400", func(t *testing.T) {
		store := &fakeBookingStore{createErr: domain.ErrPetNotFound}
		publisher := &fakePublisher{}
		r := bookingRouter(7, store, publisher)

		w := performRequest(r, http.MethodPost, "/api/bookings", validCreateRequest())

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, publisher.published)
	})

	t.Run("invalid date format returns 400", func(t *testing.T) {
		store := &fakeBookingStore{}
		publisher := &fakePublisher{}
		r := bookingRouter(7, store, publisher)

		req := validCreateRequest()
		req.BookingDate = "09/01/2026"
		w := performRequest(r, http.MethodPost, "/api/bookings", req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.created)
		assert.Empty(t, publisher.published)
	})

	t.Run("missing required fields returns 400", func(t *testing.T) {
		store := &fakeBookingStore{}
		publisher := &fakePublisher{}
		r := bookingRouter(7, store, publisher)

		w := performRequest(r, http.MethodPost, "/api/bookings", map[string]any{
			"pet_id": 3,
		})

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, store.created)
	})
}

func TestBookingHandler_GetBooking(t *testing.T) {
	booking := &model.Booking{
		ID:          10,
		UserID:      7,
		PetID:       3,
		ServiceType: "grooming",
		VendorID:    "vendor-1",
		BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		BookingTime: "10:00",
		Status:      events.StatusConfirmed,
	}
	store := &fakeBookingStore{bookings: map[int64]*model.Booking{10: booking}}

	t.Run("returns own booking", func(t *testing.T) {
		r := bookingRouter(7, store, &fakePublisher{})

		w := performRequest(r, http.MethodGet, "/api/bookings/10", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.BookingDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, int64(10), resp.BookingID)
		assert.Equal(t, events.StatusConfirmed, resp.Status)
	})

	t.Run("other user's booking reads as not found", func(t *testing.T) {
		r := bookingRouter(99, store, &fakePublisher{})

		w := performRequest(r, http.MethodGet, "/api/bookings/10", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown booking returns 404", func(t *testing.T) {
		r := bookingRouter(7, store, &fakePublisher{})

		w := performRequest(r, http.MethodGet, "/api/bookings/12345", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("non-numeric booking id returns 400", func(t *testing.T) {
		r := bookingRouter(7, store, &fakePublisher{})

		w := performRequest(r, http.MethodGet, "/api/bookings/abc", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookingHandler_ListBookings(t *testing.T) {
	store := &fakeBookingStore{bookings: map[int64]*model.Booking{
		10: {ID: 10, UserID: 7, Status: events.StatusPending, BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		11: {ID: 11, UserID: 8, Status: events.StatusPending, BookingDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
	}}

	t.Run("lists only the caller's bookings", func(t *testing.T) {
		r := bookingRouter(7, store, &fakePublisher{})

		w := performRequest(r, http.MethodGet, "/api/bookings", nil)

		require.Equal(t, http.StatusOK, w.Code)

		var resp dto.ListBookingsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Bookings, 1)
		assert.Equal(t, int64(10), resp.Bookings[0].BookingID)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		failing := &fakeBookingStore{listErr: errors.New("connection refused")}
		r := bookingRouter(7, failing, &fakePublisher{})

		w := performRequest(r, http.MethodGet, "/api/bookings", nil)

		require.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
