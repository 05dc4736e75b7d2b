// Package dto defines data transfer objects for the stockinfo feature's HTTP transport layer.
package dto

import (
	"time"

	"stocks_api/internal/feature/stockinfo/usecase"
)

// CompanyStockInfoResponse is the JSON projection of the enriched view:
// company identity plus the day's market metrics.
type CompanyStockInfoResponse struct {
	ID                   uint      `json:"id"`
	Name                 string    `json:"name"`
	Country              string    `json:"country"`
	Symbol               string    `json:"symbol"`
	Website              string    `json:"website"`
	Email                string    `json:"email"`
	CreatedAt            time.Time `json:"createdAt"`
	MarketCapitalization float64   `json:"marketCapitalization"`
	ShareOutstanding     float64   `json:"shareOutstanding"`
}

// FromView maps the usecase view to its response projection.
func FromView(v *usecase.CompanyStockInfoView) CompanyStockInfoResponse {
	return CompanyStockInfoResponse{
		ID:                   v.ID,
		Name:                 v.Name,
		Country:              v.Country,
		Symbol:               v.Symbol,
		Website:              v.Website,
		Email:                v.Email,
		CreatedAt:            v.CreatedAt,
		MarketCapitalization: v.MarketCapitalization,
		ShareOutstanding:     v.ShareOutstanding,
	}
}
