package quotation

import (
	"net/http"
	"time"

	"github.com/banquetdesk/banquet-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "quotation not found")
	ErrBookingNotFound  = apperror.New(http.StatusNotFound, "booking not found")
	ErrPackageNotFound  = apperror.New(http.StatusNotFound, "menu package not found")
	ErrItemNotFound     = apperror.New(http.StatusNotFound, "menu item not found")
	ErrInvalidSelection = apperror.New(http.StatusBadRequest, "selected package item does not belong to the quotation's package")
)

// Quotation is a booking-scoped customization of a menu package: which
// package items are kept, which extra items are added, and an optional
// override of the package price. The underlying package is never mutated.
type Quotation struct {
	ID                 string
	BookingID          string
	PackageID          string
	CustomPackagePrice *float64 // nil falls back to the package's base price
	Lines              []Line
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Line is one selected item on a quotation. Package items count toward
// the included selection; non-package items are charged separately at
// their additional price. Name and unit price are snapshotted from the
// menu item at authoring time.
type Line struct {
	ID                  string
	QuotationID         string
	ItemID              string
	Name                string
	IsPackageItem       bool
	UnitAdditionalPrice float64
	Quantity            int
}

// Totals is the computed pricing summary for a quotation.
type Totals struct {
	PackagePrice         float64 `json:"package_price"`
	AdditionalItemsTotal float64 `json:"additional_items_total"`
	TotalDeduction       float64 `json:"total_deduction"`
	ExcludedItemCount    int     `json:"excluded_item_count"`
	TotalPrice           float64 `json:"total_price"`
}
