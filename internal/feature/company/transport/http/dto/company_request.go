// Package dto defines data transfer objects for the company feature's HTTP transport layer.
package dto

// CreateCompanyRequest represents the request body for POST /companies.
// Gin's binding tags enforce the input shape: non-empty name and symbol,
// exactly two country characters, optional URL-shaped website and
// email-shaped email.
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required,len=2"`
	Symbol  string `json:"symbol" binding:"required"`
	Website string `json:"website" binding:"omitempty,url"`
	Email   string `json:"email" binding:"omitempty,email"`
}

// UpdateCompanyRequest represents the request body for PUT /companies/:id.
// It carries the same shape as create; id and createdAt are never part of
// the payload.
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"required"`
	Country string `json:"country" binding:"required,len=2"`
	Symbol  string `json:"symbol" binding:"required"`
	Website string `json:"website" binding:"omitempty,url"`
	Email   string `json:"email" binding:"omitempty,email"`
}
