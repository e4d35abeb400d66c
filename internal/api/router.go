package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/banquetdesk/banquet-backend/internal/booking"
	bookingHttp "github.com/banquetdesk/banquet-backend/internal/booking/http"
	"github.com/banquetdesk/banquet-backend/internal/enquiry"
	enquiryHttp "github.com/banquetdesk/banquet-backend/internal/enquiry/http"
	"github.com/banquetdesk/banquet-backend/internal/menu"
	menuHttp "github.com/banquetdesk/banquet-backend/internal/menu/http"
	"github.com/banquetdesk/banquet-backend/internal/quotation"
	quotationHttp "github.com/banquetdesk/banquet-backend/internal/quotation/http"
	"github.com/banquetdesk/banquet-backend/internal/venue"
	venueHttp "github.com/banquetdesk/banquet-backend/internal/venue/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction bool
	ProdOrigins  string

	VenueService     venue.Service
	BookingService   booking.Service
	EnquiryService   enquiry.Service
	MenuService      menu.Service
	QuotationService quotation.Service
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (CORS, Logger, Recovery) and registers routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Logger prints request info to the console; Recovery turns panics into 500s.
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = splitOrigins(cfg.ProdOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	venueHandler := venueHttp.NewHandler(cfg.VenueService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	enquiryHandler := enquiryHttp.NewHandler(cfg.EnquiryService)
	menuHandler := menuHttp.NewHandler(cfg.MenuService)
	quotationHandler := quotationHttp.NewHandler(cfg.QuotationService)

	v1 := r.Group("/v1")
	{
		venueHttp.RegisterRoutes(v1, venueHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		enquiryHttp.RegisterRoutes(v1, enquiryHandler)
		menuHttp.RegisterRoutes(v1, menuHandler)
		quotationHttp.RegisterRoutes(v1, quotationHandler)
	}

	return r
}

func splitOrigins(origins string) []string {
	parts := strings.Split(origins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
