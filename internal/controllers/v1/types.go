package v1

import (
	ez_uuid "github.com/pockets-budget/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for collection endpoint responses.
type Pagination struct {
	Count  int   `json:"count" example:"25"`  // The amount of records returned in this response
	Offset uint  `json:"offset" example:"50"` // The offset for the first record returned
	Limit  int   `json:"limit" example:"25"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total" example:"827"` // The total number of resources matching the query
}

// money rounds an amount computed by the payoff engine for a response.
func money(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f).Round(2)
}
