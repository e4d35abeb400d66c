package venue

import (
	"context"
	"strings"
)

type CreateRequest struct {
	Name        string
	Floor       string
	Capacity    int
	Description string
}

type UpdateRequest struct {
	Name        *string
	Floor       *string
	Capacity    *int
	Description *string
	Active      *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Venue, error)
	GetByID(ctx context.Context, id string) (*Venue, error)
	List(ctx context.Context, filter Filter) ([]*Venue, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Venue, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Venue, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}

	v := &Venue{
		Name:        strings.TrimSpace(req.Name),
		Floor:       req.Floor,
		Capacity:    req.Capacity,
		Description: req.Description,
		Active:      true,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Venue, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Venue, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Venue, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Floor != nil {
		v.Floor = *req.Floor
	}
	if req.Capacity != nil {
		v.Capacity = *req.Capacity
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.Active != nil {
		v.Active = *req.Active
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
