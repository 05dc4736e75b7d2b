// Package entity defines the domain models for the company feature.
package entity

import "time"

// Company represents a tracked company in the directory.
// Symbol is the ticker and must be unique across all records; the
// database enforces this with a unique index. ID and CreatedAt are
// assigned on insert and never change afterwards.
type Company struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"size:255;not null"`
	Country   string    `gorm:"size:2;not null"`
	Symbol    string    `gorm:"size:20;not null;uniqueIndex"`
	Website   string    `gorm:"size:255"`
	Email     string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
