package service

import (
	"context"

	"github.com/sirupsen/logrus"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/store"
)

// NewSectionService creates a new SectionService.
func NewSectionService(store store.Store) *SectionService {
	return &SectionService{
		store: store,
	}
}

// SectionService manages the sections of a site.
type SectionService struct {
	store store.Store
}

// List returns the sections of the named site.
func (s *SectionService) List(ctx context.Context, siteName string) ([]*v1.Section, error) {
	sections, err := s.store.ListSections(ctx, siteName)
	if err != nil {
		return nil, err
	}

	res := make([]*v1.Section, 0, len(sections))
	for _, section := range sections {
		res = append(res, sectionResponse(section))
	}

	return res, nil
}

// Get returns a section by (site name, section name).
func (s *SectionService) Get(ctx context.Context, siteName, name string) (*v1.Section, error) {
	section, err := s.store.GetSection(ctx, siteName, name)
	if err != nil {
		return nil, asNotFound(err, ErrSectionNotFound)
	}

	return sectionResponse(section), nil
}

// GetByID returns a section by its numeric id.
func (s *SectionService) GetByID(ctx context.Context, id uint) (*v1.Section, error) {
	section, err := s.store.GetSectionByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrSectionNotFound)
	}

	return sectionResponse(section), nil
}

// Create creates a section under the named site. The site must exist.
func (s *SectionService) Create(ctx context.Context, request *v1.CreateSectionRequest) (*v1.Section, error) {
	site, err := s.store.GetSiteByName(ctx, request.SiteName)
	if err != nil {
		return nil, asNotFound(err, ErrSiteNotFound)
	}

	section := &model.Section{
		SiteID: site.ID,
		Name:   request.Name,
		Title:  request.Title,
		Label:  request.Label,
	}

	if err := s.store.CreateSection(ctx, section); err != nil {
		logrus.Errorf("error creating section %s in site %s: %v", request.Name, request.SiteName, err)
		return nil, asConflict(err, ErrSectionExists)
	}

	return sectionResponse(section), nil
}

// Update replaces name, title and label of the section with the given id.
func (s *SectionService) Update(ctx context.Context, id uint, request *v1.UpdateSectionRequest) (*v1.Section, error) {
	section, err := s.store.GetSectionByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrSectionNotFound)
	}

	section.Name = request.Name
	section.Title = request.Title
	section.Label = request.Label

	if err := s.store.SaveSection(ctx, section); err != nil {
		return nil, asConflict(err, ErrSectionExists)
	}

	return sectionResponse(section), nil
}

// Delete removes the section and its pages, refs and notes in one transaction.
func (s *SectionService) Delete(ctx context.Context, id uint) error {
	section, err := s.store.GetSectionByID(ctx, id)
	if err != nil {
		return asNotFound(err, ErrSectionNotFound)
	}

	return s.store.Transaction(ctx, func(tx store.Store) error {
		return tx.DeleteSectionTree(ctx, section.ID)
	})
}

func sectionResponse(section *model.Section) *v1.Section {
	return &v1.Section{
		ID:     section.ID,
		SiteID: section.SiteID,
		Name:   section.Name,
		Title:  section.Title,
		Label:  section.Label,
	}
}
