package model

import (
	"time"
)

// Site is the root of a content tree. The name is a slug and unique
// across the whole draft namespace.
type Site struct {
	ID            uint   `gorm:"primaryKey"`
	Name          string `gorm:"uniqueIndex;not null"`
	Title         string `gorm:"not null"`
	URL           string `gorm:"not null"`
	Logo          string `gorm:"not null"`
	Favicon       string
	Color         string
	LandingPageID *uint
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Site) TableName() string {
	return "sites"
}

// Section belongs to exactly one site. Names are unique within a site.
type Section struct {
	ID        uint   `gorm:"primaryKey"`
	SiteID    uint   `gorm:"not null;index;uniqueIndex:idx_sections_site_name"`
	Name      string `gorm:"not null;uniqueIndex:idx_sections_site_name"`
	Title     string `gorm:"not null"`
	Label     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Section) TableName() string {
	return "sections"
}
