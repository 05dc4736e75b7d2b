// Package adapters provides the repository implementations for the company feature.
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"stocks_api/internal/feature/company/domain/entity"
	"stocks_api/internal/feature/company/usecase"
)

// companyMySQL is the MySQL implementation of the CompanyRepository interface.
type companyMySQL struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyMySQL)(nil)

// NewCompanyRepository creates a companyMySQL repository with the given DB connection.
func NewCompanyRepository(db *gorm.DB) *companyMySQL {
	return &companyMySQL{db: db}
}

// FindByID returns the company with the given id, or nil when no row matches.
func (r *companyMySQL) FindByID(ctx context.Context, id uint) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// FindBySymbol returns the company owning the given symbol, or nil when no row matches.
func (r *companyMySQL) FindBySymbol(ctx context.Context, symbol string) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where("symbol = ?", symbol).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// ListAll returns every company ordered by id, which matches insertion order.
func (r *companyMySQL) ListAll(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// Create inserts the company and lets the database assign ID and CreatedAt.
// A unique-index violation on symbol is reported as usecase.ErrDuplicateSymbol.
func (r *companyMySQL) Create(ctx context.Context, company *entity.Company) error {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrDuplicateSymbol
		}
		return err
	}
	return nil
}

// Update persists all fields of an existing company row. Presence of the
// row is the caller's responsibility.
func (r *companyMySQL) Update(ctx context.Context, company *entity.Company) error {
	if err := r.db.WithContext(ctx).Save(company).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrDuplicateSymbol
		}
		return err
	}
	return nil
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// MySQL error 1062 is checked directly because gorm's translated
// ErrDuplicatedKey depends on the driver in use.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}
