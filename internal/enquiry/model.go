package enquiry

import (
	"net/http"
	"time"

	"github.com/banquetdesk/banquet-backend/internal/pkg/apperror"
)

var (
	ErrNotFound           = apperror.New(http.StatusNotFound, "enquiry not found")
	ErrAlreadyClosed      = apperror.New(http.StatusConflict, "enquiry already converted or lost")
	ErrClientNameRequired = apperror.New(http.StatusBadRequest, "client name is required")
	ErrInvalidStatus      = apperror.New(http.StatusBadRequest, "invalid enquiry status")
)

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusConverted  Status = "converted"
	StatusLost       Status = "lost"
)

func ValidStatus(s Status) bool {
	switch s {
	case StatusNew, StatusInProgress, StatusConverted, StatusLost:
		return true
	}
	return false
}

// Closed enquiries cannot be converted again.
func (s Status) Closed() bool {
	return s == StatusConverted || s == StatusLost
}

type Enquiry struct {
	ID          string
	ClientName  string
	ClientPhone string
	ClientEmail string
	EventDate   time.Time
	ExpectedPax int
	Occasion    string
	Notes       string
	Status      Status
	BookingID   *string // set once the enquiry is converted
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Filter struct {
	Status   Status
	Keyword  string
	Page     int
	PageSize int
}
