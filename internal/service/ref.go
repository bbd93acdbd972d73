package service

import (
	"context"

	"github.com/sirupsen/logrus"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/store"
)

// NewRefService creates a new RefService.
func NewRefService(store store.Store) *RefService {
	return &RefService{
		store: store,
	}
}

// RefService manages the external references attached to pages.
type RefService struct {
	store store.Store
}

// List returns the refs of the page addressed by the name triple.
func (r *RefService) List(ctx context.Context, siteName, sectionName, pageName string) ([]*v1.Ref, error) {
	refs, err := r.store.ListRefsByPage(ctx, siteName, sectionName, pageName)
	if err != nil {
		return nil, err
	}

	res := make([]*v1.Ref, 0, len(refs))
	for _, ref := range refs {
		res = append(res, refResponse(ref))
	}

	return res, nil
}

// Create attaches a ref to a page after walking the site, section, page
// resolution chain; the first unresolved link fails the whole create.
func (r *RefService) Create(ctx context.Context, request *v1.CreateRefRequest) (*v1.Ref, error) {
	page, err := resolvePage(ctx, r.store, request.SiteName, request.SectionName, request.PageName)
	if err != nil {
		return nil, err
	}

	ref := &model.Ref{
		PageID:      page.ID,
		URL:         request.URL,
		Description: request.Description,
		Type:        request.Type,
	}

	if err := r.store.CreateRef(ctx, ref); err != nil {
		logrus.Errorf("error creating ref for page %s: %v", request.PageName, err)
		return nil, err
	}

	return refResponse(ref), nil
}

// Update replaces url and description of the ref with the given id.
func (r *RefService) Update(ctx context.Context, id uint, request *v1.UpdateRefRequest) (*v1.Ref, error) {
	ref, err := r.store.GetRefByID(ctx, id)
	if err != nil {
		return nil, asNotFound(err, ErrRefNotFound)
	}

	ref.URL = request.URL
	ref.Description = request.Description

	if err := r.store.SaveRef(ctx, ref); err != nil {
		return nil, err
	}

	return refResponse(ref), nil
}

// Delete removes the ref with the given id.
func (r *RefService) Delete(ctx context.Context, id uint) error {
	if _, err := r.store.GetRefByID(ctx, id); err != nil {
		return asNotFound(err, ErrRefNotFound)
	}

	return r.store.DeleteRef(ctx, id)
}

// resolvePage walks site -> section -> page, each lookup scoped to its
// resolved parent, and fails with the entity-specific not-found error at
// the first broken link.
func resolvePage(ctx context.Context, s store.Store, siteName, sectionName, pageName string) (*model.Page, error) {
	site, err := s.GetSiteByName(ctx, siteName)
	if err != nil {
		return nil, asNotFound(err, ErrSiteNotFound)
	}

	section, err := s.GetSectionInSite(ctx, site.ID, sectionName)
	if err != nil {
		return nil, asNotFound(err, ErrSectionNotFound)
	}

	page, err := s.GetPageInSection(ctx, section.ID, pageName)
	if err != nil {
		return nil, asNotFound(err, ErrPageNotFound)
	}

	return page, nil
}

func refResponse(ref *model.Ref) *v1.Ref {
	return &v1.Ref{
		ID:          ref.ID,
		PageID:      ref.PageID,
		URL:         ref.URL,
		Description: ref.Description,
		Type:        ref.Type,
	}
}
