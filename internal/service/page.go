package service

import (
	"context"

	"github.com/sirupsen/logrus"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/store"
)

// NewPageService creates a new PageService.
func NewPageService(store store.Store) *PageService {
	return &PageService{
		store: store,
	}
}

// PageService manages the pages of a section.
type PageService struct {
	store store.Store
}

// List returns the pages of a section addressed by (site name, section name).
func (p *PageService) List(ctx context.Context, siteName, sectionName string) ([]*v1.Page, error) {
	pages, err := p.store.ListPagesBySection(ctx, siteName, sectionName)
	if err != nil {
		return nil, err
	}

	return pageResponses(pages), nil
}

// ListBySite returns all pages of a site across its sections.
func (p *PageService) ListBySite(ctx context.Context, siteName string) ([]*v1.Page, error) {
	pages, err := p.store.ListPagesBySite(ctx, siteName)
	if err != nil {
		return nil, err
	}

	return pageResponses(pages), nil
}

// Get returns a page by the (site, section, page) name triple.
func (p *PageService) Get(ctx context.Context, siteName, sectionName, name string) (*v1.Page, error) {
	page, err := p.store.GetPage(ctx, siteName, sectionName, name)
	if err != nil {
		return nil, asNotFound(err, ErrPageNotFound)
	}

	return pageResponse(page), nil
}

// GetByID returns a page by its numeric id.
func (p *PageService) GetByID(ctx context.Context, id uint) (*v1.Page, error) {
	page, err := p.store.GetPageByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrPageNotFound)
	}

	return pageResponse(page), nil
}

// Create creates a page under the named section of the named site. Both
// ancestors must resolve; the response denormalizes their names.
func (p *PageService) Create(ctx context.Context, request *v1.CreatePageRequest) (*v1.CreatePageResponse, error) {
	site, err := p.store.GetSiteByName(ctx, request.SiteName)
	if err != nil {
		return nil, asNotFound(err, ErrSiteNotFound)
	}

	section, err := p.store.GetSectionInSite(ctx, site.ID, request.SectionName)
	if err != nil {
		return nil, asNotFound(err, ErrSectionNotFound)
	}

	page := &model.Page{
		SectionID:    section.ID,
		Name:         request.Name,
		Title:        request.Title,
		PrimaryImage: request.PrimaryImage,
		Abstract:     request.Abstract,
		Content:      request.Content,
	}

	if err := p.store.CreatePage(ctx, page); err != nil {
		logrus.Errorf("error creating page %s: %v", request.Name, err)
		return nil, asConflict(err, ErrPageExists)
	}

	return &v1.CreatePageResponse{
		ID:           page.ID,
		SiteName:     site.Name,
		SectionName:  section.Name,
		Name:         page.Name,
		Title:        page.Title,
		PrimaryImage: page.PrimaryImage,
		Abstract:     page.Abstract,
		Content:      page.Content,
	}, nil
}

// Update replaces every mutable field of the page addressed by name; the
// payload's site/section names locate the page and re-resolve its section.
func (p *PageService) Update(ctx context.Context, name string, request *v1.UpdatePageRequest) (*v1.Page, error) {
	page, err := p.store.GetPage(ctx, request.SiteName, request.SectionName, name)
	if err != nil {
		return nil, asNotFound(err, ErrPageNotFound)
	}

	return p.applyUpdate(ctx, page, request)
}

// UpdateByID is the id-addressed variant of Update; both share one apply
// path so neither can drift.
func (p *PageService) UpdateByID(ctx context.Context, id uint, request *v1.UpdatePageRequest) (*v1.Page, error) {
	page, err := p.store.GetPageByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrPageNotFound)
	}

	return p.applyUpdate(ctx, page, request)
}

// applyUpdate re-resolves the section foreign key from the payload names
// (the page may have moved sections) and replaces the full field set.
func (p *PageService) applyUpdate(ctx context.Context, page *model.Page, request *v1.UpdatePageRequest) (*v1.Page, error) {
	site, err := p.store.GetSiteByName(ctx, request.SiteName)
	if err != nil {
		return nil, asNotFound(err, ErrSiteNotFound)
	}

	section, err := p.store.GetSectionInSite(ctx, site.ID, request.SectionName)
	if err != nil {
		return nil, asNotFound(err, ErrSectionNotFound)
	}

	page.SectionID = section.ID
	page.Name = request.Name
	page.Title = request.Title
	page.PrimaryImage = request.PrimaryImage
	page.Abstract = request.Abstract
	page.Content = request.Content

	if err := p.store.SavePage(ctx, page); err != nil {
		return nil, asConflict(err, ErrPageExists)
	}

	return pageResponse(page), nil
}

// Delete removes the page and its refs and notes in one transaction.
func (p *PageService) Delete(ctx context.Context, id uint) error {
	page, err := p.store.GetPageByID(ctx, id)
	if err != nil {
		return asNotFound(err, ErrPageNotFound)
	}

	return p.store.Transaction(ctx, func(tx store.Store) error {
		return tx.DeletePageTree(ctx, page.ID)
	})
}

func pageResponse(page *model.Page) *v1.Page {
	return &v1.Page{
		ID:           page.ID,
		SectionID:    page.SectionID,
		Name:         page.Name,
		Title:        page.Title,
		PrimaryImage: page.PrimaryImage,
		Abstract:     page.Abstract,
		Content:      page.Content,
	}
}

func pageResponses(pages []*model.Page) []*v1.Page {
	res := make([]*v1.Page, 0, len(pages))
	for _, page := range pages {
		res = append(res, pageResponse(page))
	}
	return res
}
