// Package domain defines domain-level failures for the company feature.
package domain

import (
	"fmt"

	"stocks_api/internal/shared/apierr"
)

// ErrNotFound reports that no company exists with the given id.
func ErrNotFound(id uint) *apierr.Error {
	return apierr.NotFound(
		"CompanyInfo.NotFound",
		fmt.Sprintf("Company with id = '%d' was not found", id),
	)
}

// ErrSymbolAlreadyExists reports a create or update that would duplicate
// a ticker symbol already owned by another company.
func ErrSymbolAlreadyExists(symbol string) *apierr.Error {
	return apierr.Conflict(
		"CompanyInfo.SymbolAlreadyExists",
		fmt.Sprintf("Company with symbol '%s' already exists", symbol),
	)
}
