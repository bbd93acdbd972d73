package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/cache"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/queue"
	"github.com/gutenlab/datalake/internal/store"
)

// NewPublishService creates a new PublishService. The cache may be nil
// when no redis instance is configured.
func NewPublishService(store store.Store, cache *cache.Redis, queue queue.Queue) *PublishService {
	return &PublishService{
		store: store,
		cache: cache,
		queue: queue,
	}
}

// PublishService promotes a site's draft subtree into the published
// namespace and serves published reads.
type PublishService struct {
	store store.Store
	cache *cache.Redis
	queue queue.Queue
}

// Publish copies the named site, its sections and their pages into the
// published tables in a single transaction. Each copy is an upsert keyed
// by the draft row's id, so re-publishing overwrites and never duplicates.
// Rows deleted from draft since the last publish are left in place.
func (p *PublishService) Publish(ctx context.Context, siteName string) error {
	var site *model.Site

	err := p.store.Transaction(ctx, func(tx store.Store) error {
		found, err := tx.GetSiteByName(ctx, siteName)
		if err != nil {
			return asNotFound(err, ErrSiteNotFound)
		}
		site = found

		if err := tx.UpsertPublishedSite(ctx, &model.PublishedSite{
			ID:    site.ID,
			Name:  site.Name,
			Title: site.Title,
		}); err != nil {
			return err
		}

		sections, err := tx.ListSectionsBySiteID(ctx, site.ID)
		if err != nil {
			return err
		}

		for _, section := range sections {
			if err := tx.UpsertPublishedSection(ctx, &model.PublishedSection{
				ID:     section.ID,
				SiteID: section.SiteID,
				Name:   section.Name,
				Title:  section.Title,
			}); err != nil {
				return err
			}
		}

		pages, err := tx.ListPagesBySite(ctx, siteName)
		if err != nil {
			return err
		}

		for _, page := range pages {
			if err := tx.UpsertPublishedPage(ctx, &model.PublishedPage{
				ID:        page.ID,
				SectionID: page.SectionID,
				Name:      page.Name,
				Title:     page.Title,
				Abstract:  page.Abstract,
				Content:   page.Content,
			}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	logrus.Infof("published site %s", siteName)

	if p.cache != nil {
		if err := p.cache.InvalidateSite(ctx, siteName); err != nil {
			logrus.Errorf("error invalidating published cache for %s: %v", siteName, err)
		}
	}

	if err := p.queue.EmitSitePublished(ctx, &queue.SitePublished{
		EventID:     uuid.New().String(),
		SiteID:      site.ID,
		SiteName:    site.Name,
		PublishedAt: time.Now().UTC(),
	}); err != nil {
		logrus.Errorf("error emitting publish event for %s: %v", siteName, err)
	}

	return nil
}

// GetPublishedPage returns a page from the published namespace by
// (site name, page name), consulting the cache first.
func (p *PublishService) GetPublishedPage(ctx context.Context, siteName, pageName string) (*v1.Page, error) {
	if p.cache != nil {
		if page, err := p.cache.GetPublishedPage(ctx, siteName, pageName); err == nil {
			return publishedPageResponse(page), nil
		}
	}

	page, err := p.store.GetPublishedPage(ctx, siteName, pageName)
	if err != nil {
		return nil, asNotFound(err, ErrPageNotFound)
	}

	if p.cache != nil {
		if err := p.cache.SetPublishedPage(ctx, siteName, page); err != nil {
			logrus.Errorf("error caching published page %s: %v", pageName, err)
		}
	}

	return publishedPageResponse(page), nil
}

func publishedPageResponse(page *model.PublishedPage) *v1.Page {
	return &v1.Page{
		ID:        page.ID,
		SectionID: page.SectionID,
		Name:      page.Name,
		Title:     page.Title,
		Abstract:  page.Abstract,
		Content:   page.Content,
	}
}
