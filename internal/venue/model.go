package venue

import (
	"net/http"
	"time"

	"github.com/banquetdesk/banquet-backend/internal/pkg/apperror"
)

var (
	ErrNotFound  = apperror.New(http.StatusNotFound, "venue not found")
	ErrNameTaken = apperror.New(http.StatusConflict, "venue name already in use")
	ErrEmptyName = apperror.New(http.StatusBadRequest, "venue name cannot be empty")
)

// Venue is a bookable banquet space (e.g. Hall A, Poolside Lawn).
// Sessions reference venues by name, so names are unique.
type Venue struct {
	ID          string
	Name        string
	Floor       string
	Capacity    int
	Description string
	Active      bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing venues.
type Filter struct {
	Keyword    string // matches name or description
	ActiveOnly bool
	Page       int
	PageSize   int
}
