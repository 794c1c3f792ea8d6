package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thatsomint/pawfectfind-be/internal/api/domain"
	"github.com/thatsomint/pawfectfind-be/internal/api/dto"
)

// VendorHandler handles vendor listing and availability requests
type VendorHandler struct {
	logger  *slog.Logger
	vendors VendorStore
}

// NewVendorHandler creates a new VendorHandler instance
func NewVendorHandler(logger *slog.Logger, vendors VendorStore) *VendorHandler {
	return &VendorHandler{
		logger:  logger,
		vendors: vendors,
	}
}

// ListVendors handles GET /api/vendors
func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendors.ListVendors(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list vendors", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list vendors",
		})
		return
	}

	response := make([]dto.VendorDTO, len(vendors))
	for i, vendor := range vendors {
		response[i] = dto.VendorDTO{
			ID:       vendor.ID,
			Name:     vendor.Name,
			Rating:   vendor.Rating,
			Price:    vendor.Price,
			Services: vendor.Services,
		}
	}

	c.JSON(http.StatusOK, response)
}

// GetAvailability handles GET /api/vendors/:vendor_id/availability/:date
func (h *VendorHandler) GetAvailability(c *gin.Context) {
	vendorID := c.Param("vendor_id")
	date := c.Param("date")

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format. Use YYYY-MM-DD",
		})
		return
	}

	slots, err := h.vendors.GetVendorAvailability(c.Request.Context(), vendorID, date)
	if err != nil {
		if errors.Is(err, domain.ErrVendorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Vendor not found",
			})
			return
		}

		h.logger.Error("Failed to get vendor availability",
			slog.String("vendor_id", vendorID),
			slog.String("date", date),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to get vendor availability",
		})
		return
	}

	c.JSON(http.StatusOK, dto.AvailabilityResponse{
		VendorID:       vendorID,
		Date:           date,
		AvailableSlots: slots,
	})
}

// GetServices handles GET /api/services with the static service catalog
func (h *VendorHandler) GetServices(c *gin.Context) {
	services := []dto.ServiceDTO{
		{
			ID:          1,
			Name:        "Premium Pet Grooming",
			Description: "Professional grooming services with certified groomers across Singapore.",
			Price:       "From $45",
			Features:    []string{"Full wash & dry service", "Nail trimming & ear cleaning", "Professional styling"},
		},
		{
			ID:          2,
			Name:        "Reliable Pet Sitting",
			Description: "Experienced pet sitters for day care or overnight stays in your home.",
			Price:       "From $30/day",
			Features:    []string{"Background-checked sitters", "Daily photo updates", "Exercise & playtime"},
		},
		{
			ID:          3,
			Name:        "Premium Pet Hotels",
			Description: "5-star boarding facilities with round-the-clock care and supervision.",
			Price:       "From $60/night",
			Features:    []string{"Climate-controlled suites", "24/7 veterinary support", "Daily exercise programs"},
		},
		{
			ID:          4,
			Name:        "Professional Pet Training",
			Description: "Certified trainers for obedience training and behavioral modification.",
			Price:       "From $75/session",
			Features:    []string{"Obedience training", "Puppy classes", "Behavioral consultation"},
		},
	}

	c.JSON(http.StatusOK, services)
}
