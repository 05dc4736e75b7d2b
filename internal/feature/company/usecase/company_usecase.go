// Package usecase implements the business logic for company directory operations.
package usecase

import (
	"context"
	"errors"

	"stocks_api/internal/feature/company/domain"
	"stocks_api/internal/feature/company/domain/entity"
)

// ErrDuplicateSymbol is returned by repositories when an insert or update
// violates the unique index on the symbol column. The usecase pre-checks
// uniqueness, but the constraint is what settles concurrent writers.
var ErrDuplicateSymbol = errors.New("symbol already exists")

// CompanyRepository abstracts the persistence layer for company records.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type CompanyRepository interface {
	// FindByID returns the company with the given id, or nil if absent.
	FindByID(ctx context.Context, id uint) (*entity.Company, error)

	// FindBySymbol returns the company owning the given symbol, or nil if absent.
	FindBySymbol(ctx context.Context, symbol string) (*entity.Company, error)

	// ListAll returns every company in insertion order.
	ListAll(ctx context.Context) ([]entity.Company, error)

	// Create persists a new company and assigns ID and CreatedAt.
	// Returns ErrDuplicateSymbol when the symbol is already taken.
	Create(ctx context.Context, company *entity.Company) error

	// Update persists the mutable fields of an existing company.
	// Returns ErrDuplicateSymbol when the new symbol is already taken.
	Update(ctx context.Context, company *entity.Company) error
}

// CompanyInput carries the caller-supplied fields for create and update.
// Shape validation (non-empty name, 2-char country, well-formed website
// and email) happens at the transport boundary before this is built.
type CompanyInput struct {
	Name    string
	Country string
	Symbol  string
	Website string
	Email   string
}

// CompanyUsecase provides CRUD orchestration over the company directory.
type CompanyUsecase struct {
	repo CompanyRepository
}

// NewCompanyUsecase creates a new CompanyUsecase with the given repository.
func NewCompanyUsecase(repo CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: repo}
}

// List returns all companies in insertion order. An empty directory
// yields an empty slice, never a failure.
func (u *CompanyUsecase) List(ctx context.Context) ([]entity.Company, error) {
	return u.repo.ListAll(ctx)
}

// Get returns the company with the given id, or a CompanyInfo.NotFound
// failure when no record matches.
func (u *CompanyUsecase) Get(ctx context.Context, id uint) (*entity.Company, error) {
	company, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound(id)
	}
	return company, nil
}

// Create inserts a new company after checking that the symbol is free.
// The pre-check produces the 409 on the common path; the unique index in
// the storage layer settles the check-then-insert race, and a losing
// insert surfaces as the same SymbolAlreadyExists failure.
func (u *CompanyUsecase) Create(ctx context.Context, in CompanyInput) (*entity.Company, error) {
	existing, err := u.repo.FindBySymbol(ctx, in.Symbol)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrSymbolAlreadyExists(in.Symbol)
	}

	company := &entity.Company{
		Name:    in.Name,
		Country: in.Country,
		Symbol:  in.Symbol,
		Website: in.Website,
		Email:   in.Email,
	}
	if err := u.repo.Create(ctx, company); err != nil {
		if errors.Is(err, ErrDuplicateSymbol) {
			return nil, domain.ErrSymbolAlreadyExists(in.Symbol)
		}
		return nil, err
	}
	return company, nil
}

// Update overwrites the mutable fields of an existing company located by
// id. ID and CreatedAt are never touched. When the symbol changes, the
// new symbol must not be owned by another record.
func (u *CompanyUsecase) Update(ctx context.Context, id uint, in CompanyInput) (*entity.Company, error) {
	company, err := u.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound(id)
	}

	if in.Symbol != company.Symbol {
		owner, err := u.repo.FindBySymbol(ctx, in.Symbol)
		if err != nil {
			return nil, err
		}
		if owner != nil {
			return nil, domain.ErrSymbolAlreadyExists(in.Symbol)
		}
	}

	company.Name = in.Name
	company.Country = in.Country
	company.Symbol = in.Symbol
	company.Website = in.Website
	company.Email = in.Email

	if err := u.repo.Update(ctx, company); err != nil {
		if errors.Is(err, ErrDuplicateSymbol) {
			return nil, domain.ErrSymbolAlreadyExists(in.Symbol)
		}
		return nil, err
	}
	return company, nil
}
