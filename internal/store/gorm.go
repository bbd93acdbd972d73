package store

import (
	"context"

	"github.com/gutenlab/datalake/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) CreateSite(ctx context.Context, site *model.Site) error {
	return g.db.WithContext(ctx).Create(site).Error
}

func (g *GormStore) GetSiteByName(ctx context.Context, name string) (*model.Site, error) {
	var site model.Site
	err := g.db.WithContext(ctx).Where("name = ?", name).First(&site).Error
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (g *GormStore) ListSites(ctx context.Context) ([]*model.Site, error) {
	var sites []*model.Site
	err := g.db.WithContext(ctx).Order("name").Find(&sites).Error
	return sites, err
}

func (g *GormStore) SaveSite(ctx context.Context, site *model.Site) error {
	return g.db.WithContext(ctx).Save(site).Error
}

// DeleteSiteTree removes the site and everything under it. Children are
// removed leaf first so no orphan ever exists, even mid-delete.
func (g *GormStore) DeleteSiteTree(ctx context.Context, siteID uint) error {
	db := g.db.WithContext(ctx)

	sectionIDs := db.Model(&model.Section{}).Select("id").Where("site_id = ?", siteID)
	pageIDs := db.Model(&model.Page{}).Select("id").Where("section_id IN (?)", sectionIDs)

	if err := db.Where("page_id IN (?)", pageIDs).Delete(&model.Ref{}).Error; err != nil {
		return err
	}
	if err := db.Where("page_id IN (?)", pageIDs).Delete(&model.Note{}).Error; err != nil {
		return err
	}
	if err := db.Where("section_id IN (?)", sectionIDs).Delete(&model.Page{}).Error; err != nil {
		return err
	}
	if err := db.Where("site_id = ?", siteID).Delete(&model.Section{}).Error; err != nil {
		return err
	}

	return db.Delete(&model.Site{}, siteID).Error
}

func (g *GormStore) CreateSection(ctx context.Context, section *model.Section) error {
	return g.db.WithContext(ctx).Create(section).Error
}

func (g *GormStore) GetSection(ctx context.Context, siteName, name string) (*model.Section, error) {
	var section model.Section
	err := g.db.WithContext(ctx).
		Joins("JOIN sites ON sites.id = sections.site_id").
		Where("sites.name = ? AND sections.name = ?", siteName, name).
		First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (g *GormStore) GetSectionByID(ctx context.Context, id uint) (*model.Section, error) {
	var section model.Section
	err := g.db.WithContext(ctx).First(&section, id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (g *GormStore) GetSectionInSite(ctx context.Context, siteID uint, name string) (*model.Section, error) {
	var section model.Section
	err := g.db.WithContext(ctx).Where("site_id = ? AND name = ?", siteID, name).First(&section).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (g *GormStore) ListSections(ctx context.Context, siteName string) ([]*model.Section, error) {
	var sections []*model.Section
	err := g.db.WithContext(ctx).
		Joins("JOIN sites ON sites.id = sections.site_id").
		Where("sites.name = ?", siteName).
		Find(&sections).Error
	return sections, err
}

func (g *GormStore) ListSectionsBySiteID(ctx context.Context, siteID uint) ([]*model.Section, error) {
	var sections []*model.Section
	err := g.db.WithContext(ctx).Where("site_id = ?", siteID).Find(&sections).Error
	return sections, err
}

func (g *GormStore) SaveSection(ctx context.Context, section *model.Section) error {
	return g.db.WithContext(ctx).Save(section).Error
}

func (g *GormStore) DeleteSectionTree(ctx context.Context, sectionID uint) error {
	db := g.db.WithContext(ctx)

	pageIDs := db.Model(&model.Page{}).Select("id").Where("section_id = ?", sectionID)

	if err := db.Where("page_id IN (?)", pageIDs).Delete(&model.Ref{}).Error; err != nil {
		return err
	}
	if err := db.Where("page_id IN (?)", pageIDs).Delete(&model.Note{}).Error; err != nil {
		return err
	}
	if err := db.Where("section_id = ?", sectionID).Delete(&model.Page{}).Error; err != nil {
		return err
	}

	return db.Delete(&model.Section{}, sectionID).Error
}

func (g *GormStore) CreatePage(ctx context.Context, page *model.Page) error {
	return g.db.WithContext(ctx).Create(page).Error
}

func (g *GormStore) GetPage(ctx context.Context, siteName, sectionName, name string) (*model.Page, error) {
	var page model.Page
	err := g.db.WithContext(ctx).
		Joins("JOIN sections ON sections.id = pages.section_id").
		Joins("JOIN sites ON sites.id = sections.site_id").
		Where("sites.name = ? AND sections.name = ? AND pages.name = ?", siteName, sectionName, name).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (g *GormStore) GetPageByID(ctx context.Context, id uint) (*model.Page, error) {
	var page model.Page
	err := g.db.WithContext(ctx).First(&page, id).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (g *GormStore) GetPageInSection(ctx context.Context, sectionID uint, name string) (*model.Page, error) {
	var page model.Page
	err := g.db.WithContext(ctx).Where("section_id = ? AND name = ?", sectionID, name).First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (g *GormStore) ListPagesBySection(ctx context.Context, siteName, sectionName string) ([]*model.Page, error) {
	var pages []*model.Page
	err := g.db.WithContext(ctx).
		Joins("JOIN sections ON sections.id = pages.section_id").
		Joins("JOIN sites ON sites.id = sections.site_id").
		Where("sites.name = ? AND sections.name = ?", siteName, sectionName).
		Find(&pages).Error
	return pages, err
}

func (g *GormStore) ListPagesBySite(ctx context.Context, siteName string) ([]*model.Page, error) {
	var pages []*model.Page
	err := g.db.WithContext(ctx).
		Joins("JOIN sections ON sections.id = pages.section_id").
		Joins("JOIN sites ON sites.id = sections.site_id").
		Where("sites.name = ?", siteName).
		Find(&pages).Error
	return pages, err
}

func (g *GormStore) SavePage(ctx context.Context, page *model.Page) error {
	return g.db.WithContext(ctx).Save(page).Error
}

func (g *GormStore) DeletePageTree(ctx context.Context, pageID uint) error {
	db := g.db.WithContext(ctx)

	if err := db.Where("page_id = ?", pageID).Delete(&model.Ref{}).Error; err != nil {
		return err
	}
	if err := db.Where("page_id = ?", pageID).Delete(&model.Note{}).Error; err != nil {
		return err
	}

	return db.Delete(&model.Page{}, pageID).Error
}

func (g *GormStore) CreateRef(ctx context.Context, ref *model.Ref) error {
	return g.db.WithContext(ctx).Create(ref).Error
}

func (g *GormStore) GetRefByID(ctx context.Context, id uint) (*model.Ref, error) {
	var ref model.Ref
	err := g.db.WithContext(ctx).First(&ref, id).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

func (g *GormStore) ListRefsByPage(ctx context.Context, siteName, sectionName, pageName string) ([]*model.Ref, error) {
	var refs []*model.Ref
	err := g.db.WithContext(ctx).
		Joins("JOIN pages ON pages.id = refs.page_id").
		Joins("JOIN sections ON sections.id = pages.section_id").
		Joins("JOIN sites ON sites.id = sections.site_id").
		Where("sites.name = ? AND sections.name = ? AND pages.name = ?", siteName, sectionName, pageName).
		Find(&refs).Error
	return refs, err
}

func (g *GormStore) SaveRef(ctx context.Context, ref *model.Ref) error {
	return g.db.WithContext(ctx).Save(ref).Error
}

func (g *GormStore) DeleteRef(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.Ref{}, id).Error
}

func (g *GormStore) CreateNote(ctx context.Context, note *model.Note) error {
	return g.db.WithContext(ctx).Create(note).Error
}

func (g *GormStore) GetNoteByID(ctx context.Context, id uint) (*model.Note, error) {
	var note model.Note
	err := g.db.WithContext(ctx).First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (g *GormStore) ListNotesByPage(ctx context.Context, siteName, sectionName, pageName string) ([]*model.Note, error) {
	var notes []*model.Note
	err := g.db.WithContext(ctx).
		Joins("JOIN pages ON pages.id = notes.page_id").
		Joins("JOIN sections ON sections.id = pages.section_id").
		Joins("JOIN sites ON sites.id = sections.site_id").
		Where("sites.name = ? AND sections.name = ? AND pages.name = ?", siteName, sectionName, pageName).
		Find(&notes).Error
	return notes, err
}

func (g *GormStore) DeleteNote(ctx context.Context, id uint) error {
	return g.db.WithContext(ctx).Delete(&model.Note{}, id).Error
}

// upsert by primary id: on conflict every non-key column is overwritten
// with the incoming draft value.
func (g *GormStore) UpsertPublishedSite(ctx context.Context, site *model.PublishedSite) error {
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(site).Error
}

func (g *GormStore) UpsertPublishedSection(ctx context.Context, section *model.PublishedSection) error {
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(section).Error
}

func (g *GormStore) UpsertPublishedPage(ctx context.Context, page *model.PublishedPage) error {
	return g.db.WithContext(ctx).
		Omit("Section").
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "id"}}, UpdateAll: true}).
		Create(page).Error
}

func (g *GormStore) GetPublishedPage(ctx context.Context, siteName, pageName string) (*model.PublishedPage, error) {
	var page model.PublishedPage
	err := g.db.WithContext(ctx).
		Preload("Section").
		Joins("JOIN published_sections ON published_sections.id = published_pages.section_id").
		Joins("JOIN published_sites ON published_sites.id = published_sections.site_id").
		Where("published_sites.name = ? AND published_pages.name = ?", siteName, pageName).
		First(&page).Error
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (g *GormStore) ListPublishedPagesBySite(ctx context.Context, siteName string) ([]*model.PublishedPage, error) {
	var pages []*model.PublishedPage
	err := g.db.WithContext(ctx).
		Preload("Section").
		Joins("JOIN published_sections ON published_sections.id = published_pages.section_id").
		Joins("JOIN published_sites ON published_sites.id = published_sections.site_id").
		Where("published_sites.name = ?", siteName).
		Find(&pages).Error
	return pages, err
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
