// Package entity defines the domain models for the stockinfo feature.
package entity

import "time"

// StockSnapshot is one day's captured market metrics for a ticker symbol.
// Rows are created on a cache miss and never updated or deleted; the
// composite unique index on (symbol, date) guarantees at most one row per
// symbol per calendar day even under concurrent misses.
type StockSnapshot struct {
	ID                   uint      `gorm:"primaryKey"`
	Symbol               string    `gorm:"size:20;not null;uniqueIndex:idx_symbol_date"`
	MarketCapitalization float64   `gorm:"not null"`
	ShareOutstanding     float64   `gorm:"not null"`
	Date                 time.Time `gorm:"type:date;not null;uniqueIndex:idx_symbol_date"`
}
