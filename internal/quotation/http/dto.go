package http

import (
	"time"

	"github.com/banquetdesk/banquet-backend/internal/quotation"
)

type LinePayload struct {
	ItemID        string `json:"item_id" binding:"required,uuid"`
	IsPackageItem bool   `json:"is_package_item"`
	Quantity      int    `json:"quantity" binding:"omitempty,min=1"`
}

type CreateQuotationBody struct {
	BookingID          string        `json:"booking_id" binding:"required,uuid"`
	PackageID          string        `json:"package_id" binding:"required,uuid"`
	CustomPackagePrice *float64      `json:"custom_package_price" binding:"omitempty,min=0"`
	Lines              []LinePayload `json:"lines" binding:"omitempty,dive"`
}

type UpdateQuotationBody struct {
	CustomPackagePrice *float64       `json:"custom_package_price" binding:"omitempty,min=0"`
	ClearCustomPrice   bool           `json:"clear_custom_price"`
	Lines              *[]LinePayload `json:"lines" binding:"omitempty,dive"`
}

type LineResponse struct {
	ID                  string  `json:"id"`
	ItemID              string  `json:"item_id"`
	Name                string  `json:"name"`
	IsPackageItem       bool    `json:"is_package_item"`
	UnitAdditionalPrice float64 `json:"unit_additional_price"`
	Quantity            int     `json:"quantity"`
}

type QuotationResponse struct {
	ID                 string         `json:"id"`
	BookingID          string         `json:"booking_id"`
	PackageID          string         `json:"package_id"`
	CustomPackagePrice *float64       `json:"custom_package_price,omitempty"`
	Lines              []LineResponse `json:"lines"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func NewQuotationResponse(q *quotation.Quotation) QuotationResponse {
	lines := make([]LineResponse, 0, len(q.Lines))
	for _, line := range q.Lines {
		lines = append(lines, LineResponse{
			ID:                  line.ID,
			ItemID:              line.ItemID,
			Name:                line.Name,
			IsPackageItem:       line.IsPackageItem,
			UnitAdditionalPrice: line.UnitAdditionalPrice,
			Quantity:            line.Quantity,
		})
	}
	return QuotationResponse{
		ID:                 q.ID,
		BookingID:          q.BookingID,
		PackageID:          q.PackageID,
		CustomPackagePrice: q.CustomPackagePrice,
		Lines:              lines,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
}

func toLineInputs(payloads []LinePayload) []quotation.LineInput {
	lines := make([]quotation.LineInput, 0, len(payloads))
	for _, p := range payloads {
		lines = append(lines, quotation.LineInput{
			ItemID:        p.ItemID,
			IsPackageItem: p.IsPackageItem,
			Quantity:      p.Quantity,
		})
	}
	return lines
}
