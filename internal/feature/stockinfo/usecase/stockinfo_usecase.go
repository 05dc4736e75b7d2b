// Package usecase implements the stock-info enrichment flow: resolve the
// company, serve a same-day snapshot from storage when one exists, and
// otherwise fetch from the external provider, persist and serve that.
package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	companydomain "stocks_api/internal/feature/company/domain"
	companyentity "stocks_api/internal/feature/company/domain/entity"
	"stocks_api/internal/feature/stockinfo/domain"
	"stocks_api/internal/feature/stockinfo/domain/entity"
)

// ErrDuplicateSnapshot is returned by repositories when an insert violates
// the (symbol, date) unique index. It means another writer won the
// fetch-and-store race; the stored row is authoritative.
var ErrDuplicateSnapshot = errors.New("snapshot already exists for symbol and date")

// ProfileClient abstracts the outbound call to the external financial
// data provider. Which transport backs it is a wiring decision.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type ProfileClient interface {
	// FetchProfile performs one synchronous profile lookup for the symbol.
	// The returned snapshot carries market metrics only; the caller stamps
	// symbol and date before persisting.
	FetchProfile(ctx context.Context, symbol string) (*entity.StockSnapshot, error)
}

// SnapshotRepository abstracts the persistence layer for daily snapshots.
type SnapshotRepository interface {
	// FindBySymbolAndDate returns the snapshot for the pair, or nil if absent.
	FindBySymbolAndDate(ctx context.Context, symbol string, date time.Time) (*entity.StockSnapshot, error)

	// Create persists a new snapshot and assigns its ID.
	// Returns ErrDuplicateSnapshot when the (symbol, date) pair is taken.
	Create(ctx context.Context, snapshot *entity.StockSnapshot) error
}

// CompanyFinder is the slice of the company repository this flow needs.
type CompanyFinder interface {
	FindByID(ctx context.Context, id uint) (*companyentity.Company, error)
}

// CompanyStockInfoView is the composite returned to the caller: company
// identity merged with the day's market metrics. It is assembled per
// request and never persisted.
type CompanyStockInfoView struct {
	ID                   uint
	Name                 string
	Country              string
	Symbol               string
	Website              string
	Email                string
	CreatedAt            time.Time
	MarketCapitalization float64
	ShareOutstanding     float64
}

// StockInfoUsecase orchestrates the cache-or-fetch decision.
type StockInfoUsecase struct {
	companies CompanyFinder
	snapshots SnapshotRepository
	client    ProfileClient
	group     singleflight.Group
	now       func() time.Time
}

// NewStockInfoUsecase creates a StockInfoUsecase with the given collaborators.
func NewStockInfoUsecase(companies CompanyFinder, snapshots SnapshotRepository, client ProfileClient) *StockInfoUsecase {
	return &StockInfoUsecase{
		companies: companies,
		snapshots: snapshots,
		client:    client,
		now:       time.Now,
	}
}

// WithClock overrides the usecase clock. Intended for tests.
func (u *StockInfoUsecase) WithClock(now func() time.Time) *StockInfoUsecase {
	u.now = now
	return u
}

// GetCompanyStockInfo returns the enriched view for the company with the
// given id, making at most one external call per symbol per calendar day.
//
// A same-day snapshot in storage is served as-is and the external
// provider is never contacted. On a miss, the provider is called once,
// the result is stamped with the symbol and today's date and persisted,
// and that fresh snapshot feeds the view. Provider failures surface as
// FinnhubApiError.NotFound and leave nothing persisted.
func (u *StockInfoUsecase) GetCompanyStockInfo(ctx context.Context, id uint) (*CompanyStockInfoView, error) {
	company, err := u.companies.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, companydomain.ErrNotFound(id)
	}

	today := dateOf(u.now())
	snapshot, err := u.snapshots.FindBySymbolAndDate(ctx, company.Symbol, today)
	if err != nil {
		return nil, err
	}
	if snapshot == nil {
		snapshot, err = u.fetchAndStore(ctx, company.Symbol, today)
		if err != nil {
			return nil, err
		}
	}

	return &CompanyStockInfoView{
		ID:                   company.ID,
		Name:                 company.Name,
		Country:              company.Country,
		Symbol:               company.Symbol,
		Website:              company.Website,
		Email:                company.Email,
		CreatedAt:            company.CreatedAt,
		MarketCapitalization: snapshot.MarketCapitalization,
		ShareOutstanding:     snapshot.ShareOutstanding,
	}, nil
}

// fetchAndStore calls the provider and persists the stamped snapshot.
// Concurrent misses for the same symbol and day collapse into a single
// in-flight fetch via singleflight. If the insert still loses a
// cross-process race, the stored row wins and is served instead.
func (u *StockInfoUsecase) fetchAndStore(ctx context.Context, symbol string, day time.Time) (*entity.StockSnapshot, error) {
	key := symbol + ":" + day.Format("2006-01-02")
	v, err, _ := u.group.Do(key, func() (any, error) {
		snapshot, err := u.client.FetchProfile(ctx, symbol)
		if err != nil {
			return nil, domain.ErrProfileNotFound(symbol)
		}
		snapshot.Symbol = symbol
		snapshot.Date = day

		if err := u.snapshots.Create(ctx, snapshot); err != nil {
			if errors.Is(err, ErrDuplicateSnapshot) {
				stored, findErr := u.snapshots.FindBySymbolAndDate(ctx, symbol, day)
				if findErr == nil && stored != nil {
					return stored, nil
				}
			}
			return nil, err
		}
		return snapshot, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*entity.StockSnapshot), nil
}

// dateOf truncates t to a calendar date pinned to UTC, so that snapshot
// freshness does not depend on the deployment region's clock.
func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
