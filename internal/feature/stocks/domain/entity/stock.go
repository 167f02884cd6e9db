// Package entity defines the domain models for the stocks feature.
package entity

import "time"

// Stock represents a tradable security tracked by the dashboard, with the
// descriptive metadata shown in listings and detail pages. Inactive stocks
// are kept for history but excluded from collection and listings.
type Stock struct {
	ID          uint      `gorm:"primaryKey"`
	Ticker      string    `gorm:"size:10;not null;uniqueIndex"`
	CompanyName string    `gorm:"size:255;not null"`
	Sector      string    `gorm:"size:100"`
	Industry    string    `gorm:"size:100"`
	Country     string    `gorm:"size:50"`
	MarketCap   float64   `gorm:"not null;default:0"`
	IsActive    bool      `gorm:"not null;default:true"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}
