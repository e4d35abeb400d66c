package menu

import (
	"context"
	"strings"
	"sync"
)

type CreatePackageRequest struct {
	Name     string
	Type     PackageType
	Category string
}

type UpdatePackageRequest struct {
	Name     *string
	Type     *PackageType
	Category *string
}

type CreateItemRequest struct {
	PackageID       string
	Name            string
	Type            PackageType
	Price           float64
	AdditionalPrice float64
	Quantity        int
}

type UpdateItemRequest struct {
	Name            *string
	Type            *PackageType
	Price           *float64
	AdditionalPrice *float64
	Quantity        *int
}

type Service interface {
	CreatePackage(ctx context.Context, req CreatePackageRequest) (*Package, error)
	GetPackage(ctx context.Context, id string) (*Package, error)
	ListPackages(ctx context.Context, filter Filter) ([]*Package, int, error)
	UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*Package, error)
	DeletePackage(ctx context.Context, id string) error

	ListItems(ctx context.Context, packageID string) ([]*Item, error)
	GetItem(ctx context.Context, id string) (*Item, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error)
	DeleteItem(ctx context.Context, id string) error

	// RecalculatePackagePrice recomputes the derived package price (sum
	// of item prices, ignoring additional prices), persists it and
	// returns the new value. Runs after every item write; serialized per
	// package so concurrent item edits cannot interleave their writes.
	RecalculatePackagePrice(ctx context.Context, packageID string) (float64, error)
}

type service struct {
	repo Repository

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewService(repo Repository) Service {
	return &service{
		repo:  repo,
		locks: make(map[string]*sync.Mutex),
	}
}

// packageLock returns the mutex guarding price recomputation for one
// package id, creating it on first use. Entries are never removed; the
// package catalog is small and bounded.
func (s *service) packageLock(packageID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[packageID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[packageID] = l
	}
	return l
}

func (s *service) CreatePackage(ctx context.Context, req CreatePackageRequest) (*Package, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !ValidType(req.Type) {
		return nil, ErrInvalidType
	}

	p := &Package{
		Name:     req.Name,
		Type:     req.Type,
		Category: req.Category,
		Price:    0, // no items yet
	}

	if err := s.repo.CreatePackage(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetPackage(ctx context.Context, id string) (*Package, error) {
	return s.repo.GetPackage(ctx, id)
}

func (s *service) ListPackages(ctx context.Context, filter Filter) ([]*Package, int, error) {
	return s.repo.ListPackages(ctx, filter)
}

func (s *service) UpdatePackage(ctx context.Context, id string, req UpdatePackageRequest) (*Package, error) {
	p, err := s.repo.GetPackage(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		p.Name = *req.Name
	}
	if req.Type != nil {
		if !ValidType(*req.Type) {
			return nil, ErrInvalidType
		}
		// Flipping a package to veg is only allowed if no non-veg item
		// is currently assigned.
		if *req.Type == TypeVeg && p.Type == TypeNonVeg {
			items, err := s.repo.ListItemsByPackage(ctx, id)
			if err != nil {
				return nil, err
			}
			for _, it := range items {
				if it.Type == TypeNonVeg {
					return nil, ErrCategoryMismatch
				}
			}
		}
		p.Type = *req.Type
	}
	if req.Category != nil {
		p.Category = *req.Category
	}

	if err := s.repo.UpdatePackage(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) DeletePackage(ctx context.Context, id string) error {
	if _, err := s.repo.GetPackage(ctx, id); err != nil {
		return err
	}
	return s.repo.DeletePackage(ctx, id)
}

func (s *service) ListItems(ctx context.Context, packageID string) ([]*Item, error) {
	if _, err := s.repo.GetPackage(ctx, packageID); err != nil {
		return nil, err
	}
	return s.repo.ListItemsByPackage(ctx, packageID)
}

func (s *service) GetItem(ctx context.Context, id string) (*Item, error) {
	return s.repo.GetItem(ctx, id)
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*Item, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !ValidType(req.Type) {
		return nil, ErrInvalidType
	}
	if req.Price < 0 || req.AdditionalPrice < 0 {
		return nil, ErrNegativePrice
	}

	p, err := s.repo.GetPackage(ctx, req.PackageID)
	if err != nil {
		return nil, err
	}
	// The veg/non-veg guard applies at assignment time, not when a
	// quotation later selects the item.
	if p.Type == TypeVeg && req.Type == TypeNonVeg {
		return nil, ErrCategoryMismatch
	}

	it := &Item{
		PackageID:       req.PackageID,
		Name:            req.Name,
		Type:            req.Type,
		Price:           req.Price,
		AdditionalPrice: req.AdditionalPrice,
		Quantity:        req.Quantity,
	}
	if it.Quantity < 1 {
		it.Quantity = 1
	}

	if err := s.repo.CreateItem(ctx, it); err != nil {
		return nil, err
	}

	if _, err := s.RecalculatePackagePrice(ctx, req.PackageID); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*Item, error) {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		it.Name = *req.Name
	}
	if req.Type != nil {
		if !ValidType(*req.Type) {
			return nil, ErrInvalidType
		}
		if *req.Type == TypeNonVeg && it.Type != TypeNonVeg {
			p, err := s.repo.GetPackage(ctx, it.PackageID)
			if err != nil {
				return nil, err
			}
			if p.Type == TypeVeg {
				return nil, ErrCategoryMismatch
			}
		}
		it.Type = *req.Type
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, ErrNegativePrice
		}
		it.Price = *req.Price
	}
	if req.AdditionalPrice != nil {
		if *req.AdditionalPrice < 0 {
			return nil, ErrNegativePrice
		}
		it.AdditionalPrice = *req.AdditionalPrice
	}
	if req.Quantity != nil && *req.Quantity >= 1 {
		it.Quantity = *req.Quantity
	}

	if err := s.repo.UpdateItem(ctx, it); err != nil {
		return nil, err
	}

	if _, err := s.RecalculatePackagePrice(ctx, it.PackageID); err != nil {
		return nil, err
	}
	return it, nil
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	it, err := s.repo.GetItem(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteItem(ctx, id); err != nil {
		return err
	}

	_, err = s.RecalculatePackagePrice(ctx, it.PackageID)
	return err
}

func (s *service) RecalculatePackagePrice(ctx context.Context, packageID string) (float64, error) {
	lock := s.packageLock(packageID)
	lock.Lock()
	defer lock.Unlock()

	items, err := s.repo.ListItemsByPackage(ctx, packageID)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, it := range items {
		total += it.Price
	}

	if err := s.repo.SetPackagePrice(ctx, packageID, total); err != nil {
		return 0, err
	}
	return total, nil
}
