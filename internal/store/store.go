package store

import (
	"context"

	"github.com/gutenlab/datalake/internal/model"
)

type Store interface {
	SiteStore
	SectionStore
	PageStore
	RefStore
	NoteStore
	PublishedStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type SiteStore interface {
	// CreateSite creates a new site.
	CreateSite(ctx context.Context, site *model.Site) error
	// GetSiteByName retrieves a site by its unique name.
	GetSiteByName(ctx context.Context, name string) (*model.Site, error)
	// ListSites retrieves all sites.
	ListSites(ctx context.Context) ([]*model.Site, error)
	// SaveSite persists all fields of an existing site.
	SaveSite(ctx context.Context, site *model.Site) error
	// DeleteSiteTree deletes a site and its full subtree.
	DeleteSiteTree(ctx context.Context, siteID uint) error
}

type SectionStore interface {
	// CreateSection creates a new section.
	CreateSection(ctx context.Context, section *model.Section) error
	// GetSection retrieves a section by site name and section name.
	GetSection(ctx context.Context, siteName, name string) (*model.Section, error)
	// GetSectionByID retrieves a section by id.
	GetSectionByID(ctx context.Context, id uint) (*model.Section, error)
	// GetSectionInSite retrieves a section by name scoped to a site id.
	GetSectionInSite(ctx context.Context, siteID uint, name string) (*model.Section, error)
	// ListSections retrieves the sections of a site by site name.
	ListSections(ctx context.Context, siteName string) ([]*model.Section, error)
	// ListSectionsBySiteID retrieves the sections of a site by site id.
	ListSectionsBySiteID(ctx context.Context, siteID uint) ([]*model.Section, error)
	// SaveSection persists all fields of an existing section.
	SaveSection(ctx context.Context, section *model.Section) error
	// DeleteSectionTree deletes a section, its pages and their refs and notes.
	DeleteSectionTree(ctx context.Context, sectionID uint) error
}

type PageStore interface {
	// CreatePage creates a new page.
	CreatePage(ctx context.Context, page *model.Page) error
	// GetPage retrieves a page by the (site, section, page) name triple.
	GetPage(ctx context.Context, siteName, sectionName, name string) (*model.Page, error)
	// GetPageByID retrieves a page by id.
	GetPageByID(ctx context.Context, id uint) (*model.Page, error)
	// GetPageInSection retrieves a page by name scoped to a section id.
	GetPageInSection(ctx context.Context, sectionID uint, name string) (*model.Page, error)
	// ListPagesBySection retrieves the pages of a section.
	ListPagesBySection(ctx context.Context, siteName, sectionName string) ([]*model.Page, error)
	// ListPagesBySite retrieves all pages of a site across sections.
	ListPagesBySite(ctx context.Context, siteName string) ([]*model.Page, error)
	// SavePage persists all fields of an existing page.
	SavePage(ctx context.Context, page *model.Page) error
	// DeletePageTree deletes a page and its refs and notes.
	DeletePageTree(ctx context.Context, pageID uint) error
}

type RefStore interface {
	// CreateRef creates a new ref.
	CreateRef(ctx context.Context, ref *model.Ref) error
	// GetRefByID retrieves a ref by id.
	GetRefByID(ctx context.Context, id uint) (*model.Ref, error)
	// ListRefsByPage retrieves the refs of a page by the name triple.
	ListRefsByPage(ctx context.Context, siteName, sectionName, pageName string) ([]*model.Ref, error)
	// SaveRef persists all fields of an existing ref.
	SaveRef(ctx context.Context, ref *model.Ref) error
	// DeleteRef deletes a ref by id.
	DeleteRef(ctx context.Context, id uint) error
}

type NoteStore interface {
	// CreateNote creates a new note.
	CreateNote(ctx context.Context, note *model.Note) error
	// GetNoteByID retrieves a note by id.
	GetNoteByID(ctx context.Context, id uint) (*model.Note, error)
	// ListNotesByPage retrieves the notes of a page by the name triple.
	ListNotesByPage(ctx context.Context, siteName, sectionName, pageName string) ([]*model.Note, error)
	// DeleteNote deletes a note by id.
	DeleteNote(ctx context.Context, id uint) error
}

type PublishedStore interface {
	// UpsertPublishedSite inserts or overwrites a published site row by id.
	UpsertPublishedSite(ctx context.Context, site *model.PublishedSite) error
	// UpsertPublishedSection inserts or overwrites a published section row by id.
	UpsertPublishedSection(ctx context.Context, section *model.PublishedSection) error
	// UpsertPublishedPage inserts or overwrites a published page row by id.
	UpsertPublishedPage(ctx context.Context, page *model.PublishedPage) error
	// GetPublishedPage retrieves a published page by site name and page name,
	// eagerly loading its owning section.
	GetPublishedPage(ctx context.Context, siteName, pageName string) (*model.PublishedPage, error)
	// ListPublishedPagesBySite retrieves all published pages of a site.
	ListPublishedPagesBySite(ctx context.Context, siteName string) ([]*model.PublishedPage, error)
}
