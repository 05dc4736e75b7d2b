// Package domain defines domain-level failures for the stockinfo feature.
package domain

import (
	"fmt"

	"stocks_api/internal/shared/apierr"
)

// ErrProfileNotFound reports that the external provider could not deliver
// a profile for the symbol. All transport failures (network error,
// non-2xx, timeout, malformed body) collapse into this one failure; the
// provider does not let us tell an unknown symbol apart from an outage.
func ErrProfileNotFound(symbol string) *apierr.Error {
	return apierr.NotFound(
		"FinnhubApiError.NotFound",
		fmt.Sprintf("Company with the symbol = '%s' was not found", symbol),
	)
}
