package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/queue"
	"github.com/gutenlab/datalake/internal/tester"
)

func TestPublishService_Publish(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPublishService(st, nil, queue.NewNop())
	ctx := context.TODO()

	created := seedPage(t, "lit", "poetry", "ode")

	err := client.Publish(ctx, "lit")
	assert.NoError(t, err)

	assert.Equal(t, int64(1), rowCount(t, &model.PublishedSite{}))
	assert.Equal(t, int64(1), rowCount(t, &model.PublishedSection{}))
	assert.Equal(t, int64(1), rowCount(t, &model.PublishedPage{}))

	// published rows keep the draft ids and copied fields
	page, err := st.GetPublishedPage(ctx, "lit", "ode")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, page.ID)
	assert.Equal(t, "Title of ode", page.Title)
	assert.Equal(t, "abstract", page.Abstract)
	assert.Equal(t, "content", page.Content)
	assert.NotNil(t, page.Section)
	assert.Equal(t, "poetry", page.Section.Name)
}

func TestPublishService_RepublishOverwrites(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPublishService(st, nil, queue.NewNop())
	pages := NewPageService(st)
	ctx := context.TODO()

	created := seedPage(t, "lit", "poetry", "ode")

	err := client.Publish(ctx, "lit")
	assert.NoError(t, err)

	_, err = pages.UpdateByID(ctx, created.ID, &v1.UpdatePageRequest{
		SiteName:    "lit",
		SectionName: "poetry",
		Name:        "ode",
		Title:       "Ode Revised",
		Abstract:    "revised",
		Content:     "revised content",
	})
	assert.NoError(t, err)

	err = client.Publish(ctx, "lit")
	assert.NoError(t, err)

	// overwrite, never duplicate
	assert.Equal(t, int64(1), rowCount(t, &model.PublishedSite{}))
	assert.Equal(t, int64(1), rowCount(t, &model.PublishedSection{}))
	assert.Equal(t, int64(1), rowCount(t, &model.PublishedPage{}))

	got, err := client.GetPublishedPage(ctx, "lit", "ode")
	assert.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Ode Revised", got.Title)
	assert.Equal(t, "revised content", got.Content)
}

func TestPublishService_PublishMissingSite(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPublishService(st, nil, queue.NewNop())
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")

	err := client.Publish(ctx, "lit")
	assert.NoError(t, err)

	sites := rowCount(t, &model.PublishedSite{})
	sections := rowCount(t, &model.PublishedSection{})
	pages := rowCount(t, &model.PublishedPage{})

	err = client.Publish(ctx, "missing")
	assert.ErrorIs(t, err, ErrSiteNotFound)

	// zero writes to the published namespace
	assert.Equal(t, sites, rowCount(t, &model.PublishedSite{}))
	assert.Equal(t, sections, rowCount(t, &model.PublishedSection{}))
	assert.Equal(t, pages, rowCount(t, &model.PublishedPage{}))
}

func TestPublishService_DraftDeletionDoesNotPropagate(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPublishService(st, nil, queue.NewNop())
	pages := NewPageService(st)
	ctx := context.TODO()

	created := seedPage(t, "lit", "poetry", "ode")

	err := client.Publish(ctx, "lit")
	assert.NoError(t, err)

	err = pages.Delete(ctx, created.ID)
	assert.NoError(t, err)

	err = client.Publish(ctx, "lit")
	assert.NoError(t, err)

	// stale published rows persist until pruned
	assert.Equal(t, int64(1), rowCount(t, &model.PublishedPage{}))
	_, err = client.GetPublishedPage(ctx, "lit", "ode")
	assert.NoError(t, err)
}

func TestPublishService_GetPublishedPageNotFound(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewPublishService(testStore(), nil, queue.NewNop())
	ctx := context.TODO()

	_, err := client.GetPublishedPage(ctx, "lit", "ode")
	assert.ErrorIs(t, err, ErrPageNotFound)
}

// the end-to-end scenario: create site, section, page, publish, read back.
func TestPublishService_Scenario(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	ctx := context.TODO()

	_, err := NewSiteService(st).Create(ctx, &v1.CreateSiteRequest{
		Name:    "lit",
		Title:   "Literature",
		URL:     "/lit",
		Logo:    "l.png",
		Favicon: "f.ico",
	})
	assert.NoError(t, err)

	_, err = NewSectionService(st).Create(ctx, &v1.CreateSectionRequest{
		SiteName: "lit",
		Name:     "poetry",
		Title:    "Poetry",
	})
	assert.NoError(t, err)

	_, err = NewPageService(st).Create(ctx, &v1.CreatePageRequest{
		SiteName:    "lit",
		SectionName: "poetry",
		Name:        "ode",
		Title:       "Ode",
		Content:     "...",
	})
	assert.NoError(t, err)

	client := NewPublishService(st, nil, queue.NewNop())
	err = client.Publish(ctx, "lit")
	assert.NoError(t, err)

	page, err := client.GetPublishedPage(ctx, "lit", "ode")
	assert.NoError(t, err)
	assert.Equal(t, "Ode", page.Title)
}
