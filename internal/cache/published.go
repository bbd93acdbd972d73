package cache

import (
	"context"
	"encoding/json"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gutenlab/datalake/internal/model"
)

const publishedPageTTL = 5 * time.Minute

// ErrCacheMiss is returned when the requested page is not cached.
var ErrCacheMiss = redis.Nil

func publishedPageKey(site, page string) string {
	return "published:page:" + site + ":" + page
}

func publishedSitePattern(site string) string {
	return "published:page:" + site + ":*"
}

// GetPublishedPage returns the cached published page or ErrCacheMiss.
func (r *Redis) GetPublishedPage(ctx context.Context, site, name string) (*model.PublishedPage, error) {
	data, err := r.client.Get(ctx, publishedPageKey(site, name)).Bytes()
	if err != nil {
		return nil, err
	}

	decoded, err := r.encoder.Decode(data)
	if err != nil {
		return nil, err
	}

	page := &model.PublishedPage{}
	if err := json.Unmarshal(decoded, page); err != nil {
		return nil, err
	}

	return page, nil
}

// SetPublishedPage caches a published page under its (site, page) key.
func (r *Redis) SetPublishedPage(ctx context.Context, site string, page *model.PublishedPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}

	encoded, err := r.encoder.Encode(data)
	if err != nil {
		return err
	}

	return r.client.Set(ctx, publishedPageKey(site, page.Name), encoded, publishedPageTTL).Err()
}

// InvalidateSite drops every cached published page of a site. Called after
// a publish so readers never see the previous snapshot past the commit.
func (r *Redis) InvalidateSite(ctx context.Context, site string) error {
	iter := r.client.Scan(ctx, 0, publishedSitePattern(site), 0).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			logrus.Errorf("error invalidating cached page %s: %v", iter.Val(), err)
		}
	}

	return iter.Err()
}
