package http

import (
	"time"

	"github.com/banquetdesk/banquet-backend/internal/menu"
)

type PackageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Category  string    `json:"category,omitempty"`
	Price     float64   `json:"price"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewPackageResponse(p *menu.Package) PackageResponse {
	return PackageResponse{
		ID:        p.ID,
		Name:      p.Name,
		Type:      string(p.Type),
		Category:  p.Category,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

type ItemResponse struct {
	ID              string  `json:"id"`
	PackageID       string  `json:"package_id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	Price           float64 `json:"price"`
	AdditionalPrice float64 `json:"additional_price"`
	Quantity        int     `json:"quantity"`
}

func NewItemResponse(it *menu.Item) ItemResponse {
	return ItemResponse{
		ID:              it.ID,
		PackageID:       it.PackageID,
		Name:            it.Name,
		Type:            string(it.Type),
		Price:           it.Price,
		AdditionalPrice: it.AdditionalPrice,
		Quantity:        it.Quantity,
	}
}

type CreatePackageBody struct {
	Name     string `json:"name" binding:"required"`
	Type     string `json:"type" binding:"required,oneof=veg non_veg"`
	Category string `json:"category"`
}

type UpdatePackageBody struct {
	Name     *string `json:"name"`
	Type     *string `json:"type" binding:"omitempty,oneof=veg non_veg"`
	Category *string `json:"category"`
}

type CreateItemBody struct {
	PackageID       string  `json:"package_id" binding:"required,uuid"`
	Name            string  `json:"name" binding:"required"`
	Type            string  `json:"type" binding:"required,oneof=veg non_veg"`
	Price           float64 `json:"price" binding:"omitempty,min=0"`
	AdditionalPrice float64 `json:"additional_price" binding:"omitempty,min=0"`
	Quantity        int     `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateItemBody struct {
	Name            *string  `json:"name"`
	Type            *string  `json:"type" binding:"omitempty,oneof=veg non_veg"`
	Price           *float64 `json:"price" binding:"omitempty,min=0"`
	AdditionalPrice *float64 `json:"additional_price" binding:"omitempty,min=0"`
	Quantity        *int     `json:"quantity" binding:"omitempty,min=1"`
}

type RecalculateResponse struct {
	PackageID string  `json:"package_id"`
	Price     float64 `json:"price"`
}
