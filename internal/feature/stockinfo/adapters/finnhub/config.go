// Package finnhub provides a client for the Finnhub company profile API.
package finnhub

import (
	"os"
	"time"
)

// Config holds configuration for the Finnhub API client.
type Config struct {
	APIKey  string        // API token passed as the "token" query parameter
	BaseURL string        // Base URL for the API (e.g., "https://finnhub.io/api/v1")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Finnhub configuration from environment variables.
func LoadConfig() Config {
	return Config{
		APIKey:  os.Getenv("FINNHUB_API_KEY"),
		BaseURL: os.Getenv("FINNHUB_BASE_URL"),
		Timeout: 10 * time.Second,
	}
}
