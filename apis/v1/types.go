// Package v1 defines the request and response payloads of the REST API.
package v1

// Site payloads.

type Site struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Title         string `json:"title"`
	URL           string `json:"url"`
	Logo          string `json:"logo"`
	Favicon       string `json:"favicon,omitempty"`
	Color         string `json:"color,omitempty"`
	LandingPageID *uint  `json:"landing_page_id,omitempty"`
}

type CreateSiteRequest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Logo    string `json:"logo"`
	Favicon string `json:"favicon,omitempty"`
	Color   string `json:"color,omitempty"`
}

type UpdateSiteRequest struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Logo          string `json:"logo"`
	Favicon       string `json:"favicon,omitempty"`
	Color         string `json:"color,omitempty"`
	LandingPageID *uint  `json:"landing_page_id,omitempty"`
}

// Section payloads.

type Section struct {
	ID     uint   `json:"id"`
	SiteID uint   `json:"site_id"`
	Name   string `json:"name"`
	Title  string `json:"title"`
	Label  string `json:"label,omitempty"`
}

type CreateSectionRequest struct {
	SiteName string `json:"site_name"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Label    string `json:"label,omitempty"`
}

type UpdateSectionRequest struct {
	Name  string `json:"name"`
	Title string `json:"title"`
	Label string `json:"label,omitempty"`
}

// Page payloads.

type Page struct {
	ID           uint   `json:"id"`
	SectionID    uint   `json:"section_id"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	PrimaryImage string `json:"primary_image,omitempty"`
	Abstract     string `json:"abstract,omitempty"`
	Content      string `json:"content,omitempty"`
}

type CreatePageRequest struct {
	SiteName     string `json:"site_name"`
	SectionName  string `json:"section_name"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	PrimaryImage string `json:"primary_image,omitempty"`
	Abstract     string `json:"abstract,omitempty"`
	Content      string `json:"content,omitempty"`
}

// CreatePageResponse is the only create response that denormalizes the
// parent names instead of carrying the raw section id.
type CreatePageResponse struct {
	ID           uint   `json:"id"`
	SiteName     string `json:"site_name"`
	SectionName  string `json:"section_name"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	PrimaryImage string `json:"primary_image,omitempty"`
	Abstract     string `json:"abstract,omitempty"`
	Content      string `json:"content,omitempty"`
}

// UpdatePageRequest carries the parent names so the section foreign key
// is re-resolved in case the page moved sections.
type UpdatePageRequest struct {
	SiteName     string `json:"site_name"`
	SectionName  string `json:"section_name"`
	Name         string `json:"name"`
	Title        string `json:"title"`
	PrimaryImage string `json:"primary_image,omitempty"`
	Abstract     string `json:"abstract,omitempty"`
	Content      string `json:"content,omitempty"`
}

// Ref payloads.

type Ref struct {
	ID          uint   `json:"id"`
	PageID      uint   `json:"page_id"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
}

type CreateRefRequest struct {
	SiteName    string `json:"site_name"`
	SectionName string `json:"section_name"`
	PageName    string `json:"page_name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
}

type UpdateRefRequest struct {
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Note payloads.

type Note struct {
	ID     uint   `json:"id"`
	PageID uint   `json:"page_id"`
	Note   string `json:"note"`
}

type CreateNoteRequest struct {
	SiteName    string `json:"site_name"`
	SectionName string `json:"section_name"`
	PageName    string `json:"page_name"`
	Note        string `json:"note"`
}

// Publish payloads.

type PublishResponse struct {
	Message string `json:"message"`
}
