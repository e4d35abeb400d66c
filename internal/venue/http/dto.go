package http

import (
	"time"

	"github.com/banquetdesk/banquet-backend/internal/venue"
)

type VenueResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Floor       string    `json:"floor,omitempty"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewVenueResponse(v *venue.Venue) VenueResponse {
	return VenueResponse{
		ID:          v.ID,
		Name:        v.Name,
		Floor:       v.Floor,
		Capacity:    v.Capacity,
		Description: v.Description,
		Active:      v.Active,
		CreatedAt:   v.CreatedAt,
	}
}

type CreateVenueBody struct {
	Name        string `json:"name" binding:"required"`
	Floor       string `json:"floor"`
	Capacity    int    `json:"capacity" binding:"omitempty,min=0"`
	Description string `json:"description"`
}

type UpdateVenueBody struct {
	Name        *string `json:"name"`
	Floor       *string `json:"floor"`
	Capacity    *int    `json:"capacity" binding:"omitempty,min=0"`
	Description *string `json:"description"`
	Active      *bool   `json:"active"`
}
