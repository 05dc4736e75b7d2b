// Package adapters provides the repository implementations for the stockinfo feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"stocks_api/internal/feature/stockinfo/domain/entity"
	"stocks_api/internal/feature/stockinfo/usecase"
)

// snapshotMySQL is the MySQL implementation of the SnapshotRepository interface.
type snapshotMySQL struct {
	db *gorm.DB
}

var _ usecase.SnapshotRepository = (*snapshotMySQL)(nil)

// NewSnapshotRepository creates a snapshotMySQL repository with the given DB connection.
func NewSnapshotRepository(db *gorm.DB) *snapshotMySQL {
	return &snapshotMySQL{db: db}
}

// FindBySymbolAndDate returns the snapshot for the symbol and calendar
// date, or nil when none is stored.
func (r *snapshotMySQL) FindBySymbolAndDate(ctx context.Context, symbol string, date time.Time) (*entity.StockSnapshot, error) {
	var s entity.StockSnapshot
	if err := r.db.WithContext(ctx).
		Where("symbol = ? AND date = ?", symbol, date).
		First(&s).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

// Create inserts the snapshot and lets the database assign its ID.
// A violation of the (symbol, date) unique index is reported as
// usecase.ErrDuplicateSnapshot.
func (r *snapshotMySQL) Create(ctx context.Context, snapshot *entity.StockSnapshot) error {
	if err := r.db.WithContext(ctx).Create(snapshot).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrDuplicateSnapshot
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
