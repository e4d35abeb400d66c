package quotation

import (
	"context"
	"errors"

	"github.com/banquetdesk/banquet-backend/internal/booking"
	"github.com/banquetdesk/banquet-backend/internal/menu"
)

type LineInput struct {
	ItemID        string
	IsPackageItem bool
	Quantity      int
}

type CreateRequest struct {
	BookingID          string
	PackageID          string
	CustomPackagePrice *float64
	Lines              []LineInput
}

type UpdateRequest struct {
	CustomPackagePrice *float64
	ClearCustomPrice   bool
	Lines              *[]LineInput
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Quotation, error)
	GetByID(ctx context.Context, id string) (*Quotation, error)
	ListByBooking(ctx context.Context, bookingID string) ([]*Quotation, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Quotation, error)
	Delete(ctx context.Context, id string) error

	// Totals loads the quotation's package and authoritative item list
	// and computes the customized pricing summary.
	Totals(ctx context.Context, id string) (*Totals, error)
}

type service struct {
	repo           Repository
	bookingService booking.Service
	menuService    menu.Service
	applyDeduction bool
}

func NewService(repo Repository, bookingService booking.Service, menuService menu.Service, applyDeduction bool) Service {
	return &service{
		repo:           repo,
		bookingService: bookingService,
		menuService:    menuService,
		applyDeduction: applyDeduction,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Quotation, error) {
	if _, err := s.bookingService.GetByID(ctx, req.BookingID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if _, err := s.menuService.GetPackage(ctx, req.PackageID); err != nil {
		if errors.Is(err, menu.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}

	lines, err := s.buildLines(ctx, req.PackageID, req.Lines)
	if err != nil {
		return nil, err
	}

	q := &Quotation{
		BookingID:          req.BookingID,
		PackageID:          req.PackageID,
		CustomPackagePrice: req.CustomPackagePrice,
		Lines:              lines,
	}

	if err := s.repo.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// buildLines resolves every selected item against the menu, snapshots its
// name and unit additional price, and rejects package lines whose item
// does not actually belong to the quotation's package.
func (s *service) buildLines(ctx context.Context, packageID string, inputs []LineInput) ([]Line, error) {
	lines := make([]Line, 0, len(inputs))
	for _, in := range inputs {
		it, err := s.menuService.GetItem(ctx, in.ItemID)
		if err != nil {
			if errors.Is(err, menu.ErrItemNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, err
		}
		if in.IsPackageItem && it.PackageID != packageID {
			return nil, ErrInvalidSelection
		}

		qty := in.Quantity
		if qty < 1 {
			qty = 1
		}
		lines = append(lines, Line{
			ItemID:              it.ID,
			Name:                it.Name,
			IsPackageItem:       in.IsPackageItem,
			UnitAdditionalPrice: it.AdditionalPrice,
			Quantity:            qty,
		})
	}
	return lines, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Quotation, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByBooking(ctx context.Context, bookingID string) ([]*Quotation, error) {
	if _, err := s.bookingService.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return s.repo.ListByBooking(ctx, bookingID)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Quotation, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ClearCustomPrice {
		q.CustomPackagePrice = nil
	} else if req.CustomPackagePrice != nil {
		q.CustomPackagePrice = req.CustomPackagePrice
	}
	if req.Lines != nil {
		lines, err := s.buildLines(ctx, q.PackageID, *req.Lines)
		if err != nil {
			return nil, err
		}
		q.Lines = lines
	}

	if err := s.repo.Update(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Totals(ctx context.Context, id string) (*Totals, error) {
	q, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	pkg, err := s.menuService.GetPackage(ctx, q.PackageID)
	if err != nil {
		if errors.Is(err, menu.ErrPackageNotFound) {
			return nil, ErrPackageNotFound
		}
		return nil, err
	}
	items, err := s.menuService.ListItems(ctx, q.PackageID)
	if err != nil {
		return nil, err
	}

	totals := ComputeTotals(q, pkg, items, s.applyDeduction)
	return &totals, nil
}
