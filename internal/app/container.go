package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/banquetdesk/banquet-backend/internal/api"
	"github.com/banquetdesk/banquet-backend/internal/booking"
	"github.com/banquetdesk/banquet-backend/internal/enquiry"
	"github.com/banquetdesk/banquet-backend/internal/menu"
	"github.com/banquetdesk/banquet-backend/internal/quotation"
	"github.com/banquetdesk/banquet-backend/internal/venue"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction          bool
	ProdOrigins           string
	DBPool                *pgxpool.Pool
	PricingApplyDeduction bool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Venue Module
	venueRepo := venue.NewPgxRepository(cfg.DBPool)
	venueService := venue.NewService(venueRepo)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo)

	// Enquiry Module
	enquiryRepo := enquiry.NewPgxRepository(cfg.DBPool)
	enquiryService := enquiry.NewService(enquiryRepo, bookingService)

	// Menu Module
	menuRepo := menu.NewPgxRepository(cfg.DBPool)
	menuService := menu.NewService(menuRepo)

	// Quotation Module
	quotationRepo := quotation.NewPgxRepository(cfg.DBPool)
	quotationService := quotation.NewService(quotationRepo, bookingService, menuService, cfg.PricingApplyDeduction)

	router := api.NewRouter(api.Config{
		IsProduction:     cfg.IsProduction,
		ProdOrigins:      cfg.ProdOrigins,
		VenueService:     venueService,
		BookingService:   bookingService,
		EnquiryService:   enquiryService,
		MenuService:      menuService,
		QuotationService: quotationService,
	})

	return &Container{Router: router}
}
