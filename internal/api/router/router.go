package router

import (
	"github.com/gin-gonic/gin"

	"github.com/thatsomint/pawfectfind-be/internal/api/handler"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	r := gin.New()

	// Middleware
	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(CORSMiddleware())

	authHandler := handler.NewAuthHandler(deps.Logger, deps.Store, deps.Tokens)
	petHandler := handler.NewPetHandler(deps.Logger, deps.Store)
	vendorHandler := handler.NewVendorHandler(deps.Logger, deps.Store)
	bookingHandler := handler.NewBookingHandler(deps.Logger, deps.Store, deps.Publisher)
	healthHandler := handler.NewHealthHandler(deps.Logger, deps.DBHealth, deps.Broker)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/services", vendorHandler.GetServices)
		api.GET("/vendors", vendorHandler.ListVendors)
		api.GET("/vendors/:vendor_id/availability/:date", vendorHandler.GetAvailability)

		authed := api.Group("")
		authed.Use(AuthMiddleware(deps.Tokens, deps.Logger))
		{
			authed.POST("/pets", petHandler.CreatePet)
			authed.GET("/pets", petHandler.ListPets)

			authed.POST("/bookings", bookingHandler.CreateBooking)
			authed.GET("/bookings", bookingHandler.ListBookings)
			authed.GET("/bookings/:booking_id", bookingHandler.GetBooking)
		}
	}

	return r
}
