package queue

import (
	"context"
	"time"
)

// SitePublished is emitted after a site's draft subtree has been promoted
// to the published namespace.
type SitePublished struct {
	EventID     string    `json:"event_id"`
	SiteID      uint      `json:"site_id"`
	SiteName    string    `json:"site_name"`
	PublishedAt time.Time `json:"published_at"`
}

// Queue delivers publish events to downstream consumers. Emission happens
// after the publish transaction commits and never affects its outcome.
type Queue interface {
	EmitSitePublished(ctx context.Context, event *SitePublished) error
	Close()
}

type Nop struct {
}

func NewNop() Nop {
	return Nop{}
}

func (n Nop) EmitSitePublished(ctx context.Context, event *SitePublished) error {
	return nil
}

func (n Nop) Close() {
}
