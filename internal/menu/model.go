package menu

import (
	"net/http"
	"time"

	"github.com/banquetdesk/banquet-backend/internal/pkg/apperror"
)

var (
	ErrPackageNotFound  = apperror.New(http.StatusNotFound, "menu package not found")
	ErrItemNotFound     = apperror.New(http.StatusNotFound, "menu item not found")
	ErrCategoryMismatch = apperror.New(http.StatusConflict, "non-veg item cannot be assigned to a veg package")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidType      = apperror.New(http.StatusBadRequest, "type must be veg or non_veg")
	ErrNegativePrice    = apperror.New(http.StatusBadRequest, "price cannot be negative")
)

type PackageType string

const (
	TypeVeg    PackageType = "veg"
	TypeNonVeg PackageType = "non_veg"
)

// ValidType reports whether t is a known package/item type.
func ValidType(t PackageType) bool {
	return t == TypeVeg || t == TypeNonVeg
}

// Package is a named bundle of menu items sold at an aggregate price.
// Price is derived: the sum of item prices, recomputed on every item
// write and persisted alongside the package.
type Package struct {
	ID        string
	Name      string
	Type      PackageType
	Category  string
	Price     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Item belongs to one package. Price feeds the package's derived price;
// AdditionalPrice is the per-unit charge when the item is added to a
// quotation outside its package.
type Item struct {
	ID              string
	PackageID       string
	Name            string
	Type            PackageType
	Price           float64
	AdditionalPrice float64
	Quantity        int
}

// Filter defines parameters for listing packages.
type Filter struct {
	Type     string
	Category string
	Page     int
	PageSize int
}
