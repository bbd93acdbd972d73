package jobs

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gutenlab/datalake/internal/cache"
	"github.com/gutenlab/datalake/internal/store"
)

// PublishedCacheWarmTask re-primes the published-page cache from the
// database so reads after a cache flush or restart stay warm.
type PublishedCacheWarmTask struct {
	store store.Store
	cache *cache.Redis
	cron  string
}

func NewPublishedCacheWarmTask(schedule string, store store.Store, cache *cache.Redis) *PublishedCacheWarmTask {
	return &PublishedCacheWarmTask{
		store: store,
		cache: cache,
		cron:  schedule,
	}
}

func (t *PublishedCacheWarmTask) Schedule() string {
	return t.cron
}

func (t *PublishedCacheWarmTask) Run() {
	ctx := context.Background()

	sites, err := t.store.ListSites(ctx)
	if err != nil {
		logrus.Errorf("cache warm: error listing sites: %v", err)
		return
	}

	warmed := 0
	for _, site := range sites {
		pages, err := t.store.ListPublishedPagesBySite(ctx, site.Name)
		if err != nil {
			logrus.Errorf("cache warm: error listing published pages for %s: %v", site.Name, err)
			continue
		}

		for _, page := range pages {
			if err := t.cache.SetPublishedPage(ctx, site.Name, page); err != nil {
				logrus.Errorf("cache warm: error caching page %s: %v", page.Name, err)
				continue
			}
			warmed++
		}
	}

	logrus.Infof("cache warm: primed %d published pages", warmed)
}
