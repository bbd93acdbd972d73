package model

// The published namespace holds the last-promoted snapshot of a site's
// content tree. Rows share ids with their draft counterparts and are
// written only by the publish workflow; the operational draft-only
// columns (url, logo, favicon, primary image, ...) are not carried over.

// PublishedSite is the published snapshot of a site.
type PublishedSite struct {
	ID    uint   `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;not null"`
	Title string `gorm:"not null"`
}

func (PublishedSite) TableName() string {
	return "published_sites"
}

// PublishedSection is the published snapshot of a section.
type PublishedSection struct {
	ID     uint   `gorm:"primaryKey"`
	SiteID uint   `gorm:"not null;index"`
	Name   string `gorm:"not null"`
	Title  string `gorm:"not null"`
}

func (PublishedSection) TableName() string {
	return "published_sections"
}

// PublishedPage is the published snapshot of a page, carrying its owning
// section for eager reads.
type PublishedPage struct {
	ID        uint   `gorm:"primaryKey"`
	SectionID uint   `gorm:"not null;index"`
	Name      string `gorm:"uniqueIndex;not null"`
	Title     string `gorm:"not null"`
	Abstract  string `gorm:"type:text"`
	Content   string `gorm:"type:text"`

	Section *PublishedSection `gorm:"foreignKey:SectionID;references:ID"`
}

func (PublishedPage) TableName() string {
	return "published_pages"
}
