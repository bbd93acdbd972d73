package service

import (
	"context"

	"github.com/sirupsen/logrus"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/store"
)

// NewSiteService creates a new SiteService.
func NewSiteService(store store.Store) *SiteService {
	return &SiteService{
		store: store,
	}
}

// SiteService manages the roots of the content trees.
type SiteService struct {
	store store.Store
}

// List returns all sites.
func (s *SiteService) List(ctx context.Context) ([]*v1.Site, error) {
	sites, err := s.store.ListSites(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]*v1.Site, 0, len(sites))
	for _, site := range sites {
		res = append(res, siteResponse(site))
	}

	return res, nil
}

// Get returns a site by its unique name.
func (s *SiteService) Get(ctx context.Context, name string) (*v1.Site, error) {
	site, err := s.store.GetSiteByName(ctx, name)
	if err != nil {
		return nil, asNotFound(err, ErrSiteNotFound)
	}

	return siteResponse(site), nil
}

// Create creates a new site. The name must be unused.
func (s *SiteService) Create(ctx context.Context, request *v1.CreateSiteRequest) (*v1.Site, error) {
	site := &model.Site{
		Name:    request.Name,
		Title:   request.Title,
		URL:     request.URL,
		Logo:    request.Logo,
		Favicon: request.Favicon,
		Color:   request.Color,
	}

	if err := s.store.CreateSite(ctx, site); err != nil {
		logrus.Errorf("error creating site %s: %v", request.Name, err)
		return nil, asConflict(err, ErrSiteExists)
	}

	return siteResponse(site), nil
}

// Update replaces every mutable field of the named site.
func (s *SiteService) Update(ctx context.Context, name string, request *v1.UpdateSiteRequest) (*v1.Site, error) {
	site, err := s.store.GetSiteByName(ctx, name)
	if err != nil {
		return nil, asNotFound(err, ErrSiteNotFound)
	}

	site.Title = request.Title
	site.URL = request.URL
	site.Logo = request.Logo
	site.Favicon = request.Favicon
	site.Color = request.Color
	site.LandingPageID = request.LandingPageID

	if err := s.store.SaveSite(ctx, site); err != nil {
		return nil, err
	}

	return siteResponse(site), nil
}

// Delete removes the named site and its whole subtree in one transaction.
func (s *SiteService) Delete(ctx context.Context, name string) error {
	site, err := s.store.GetSiteByName(ctx, name)
	if err != nil {
		return asNotFound(err, ErrSiteNotFound)
	}

	return s.store.Transaction(ctx, func(tx store.Store) error {
		return tx.DeleteSiteTree(ctx, site.ID)
	})
}

func siteResponse(site *model.Site) *v1.Site {
	return &v1.Site{
		ID:            site.ID,
		Name:          site.Name,
		Title:         site.Title,
		URL:           site.URL,
		Logo:          site.Logo,
		Favicon:       site.Favicon,
		Color:         site.Color,
		LandingPageID: site.LandingPageID,
	}
}
