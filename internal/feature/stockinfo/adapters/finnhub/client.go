package finnhub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stocks_api/internal/feature/stockinfo/adapters/finnhub/dto"
	"stocks_api/internal/feature/stockinfo/domain/entity"
	"stocks_api/internal/feature/stockinfo/usecase"
)

// Client fetches company profiles from the Finnhub API. It implements
// the ProfileClient interface consumed by the stockinfo usecase; any
// transport-level failure comes back as a plain error and the caller
// decides how to surface it. The client never retries and never caches.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.ProfileClient = (*Client)(nil)

// NewClient creates a Client with the given configuration and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// FetchProfile performs one GET to /stock/profile2 for the symbol and
// maps the response into a StockSnapshot carrying the market metrics.
// Symbol and date stamping is left to the caller.
func (c *Client) FetchProfile(ctx context.Context, symbol string) (*entity.StockSnapshot, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("token", c.cfg.APIKey)

	u := fmt.Sprintf("%s/stock/profile2?%s", c.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("finnhub http %d", res.StatusCode)
	}

	var body dto.CompanyProfileResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode finnhub profile: %w", err)
	}

	return &entity.StockSnapshot{
		MarketCapitalization: body.MarketCapitalization,
		ShareOutstanding:     body.ShareOutstanding,
	}, nil
}
