package dto

import (
	"time"

	"stocks_api/internal/feature/company/domain/entity"
)

// CompanyResponse is the JSON projection of a company record.
type CompanyResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	Symbol    string    `json:"symbol"`
	Website   string    `json:"website"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromEntity maps a company entity to its response projection.
func FromEntity(c *entity.Company) CompanyResponse {
	return CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Country:   c.Country,
		Symbol:    c.Symbol,
		Website:   c.Website,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
}
