// Package dto defines the wire format of Finnhub API responses.
package dto

// CompanyProfileResponse mirrors the fields this service consumes from
// Finnhub's /stock/profile2 endpoint. Unknown fields are ignored.
type CompanyProfileResponse struct {
	MarketCapitalization float64 `json:"marketCapitalization"`
	ShareOutstanding     float64 `json:"shareOutstanding"`
}
