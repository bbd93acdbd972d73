package model

import (
	"time"
)

// Page belongs to exactly one section. The page name is globally unique
// so published pages can be addressed by (site, page) alone.
type Page struct {
	ID           uint   `gorm:"primaryKey"`
	SectionID    uint   `gorm:"not null;index"`
	Name         string `gorm:"uniqueIndex;not null"`
	Title        string `gorm:"not null"`
	PrimaryImage string
	Abstract     string `gorm:"type:text"`
	Content      string `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Page) TableName() string {
	return "pages"
}

// Ref is an external reference attached to a page.
type Ref struct {
	ID          uint   `gorm:"primaryKey"`
	PageID      uint   `gorm:"not null;index"`
	URL         string `gorm:"index"`
	Description string `gorm:"not null"`
	Type        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Ref) TableName() string {
	return "refs"
}

// Note is free-form text attached to a page.
type Note struct {
	ID        uint   `gorm:"primaryKey"`
	PageID    uint   `gorm:"not null;index"`
	Note      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Note) TableName() string {
	return "notes"
}
