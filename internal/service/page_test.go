package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/tester"
)

func TestPageService_CreatePage(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPageService(st)
	ctx := context.TODO()

	_, err := NewSiteService(st).Create(ctx, &v1.CreateSiteRequest{Name: "lit", Title: "Literature", URL: "/lit", Logo: "l.png"})
	assert.NoError(t, err)
	section, err := NewSectionService(st).Create(ctx, &v1.CreateSectionRequest{SiteName: "lit", Name: "poetry", Title: "Poetry"})
	assert.NoError(t, err)

	created, err := client.Create(ctx, &v1.CreatePageRequest{
		SiteName:     "lit",
		SectionName:  "poetry",
		Name:         "ode",
		Title:        "Ode",
		PrimaryImage: "ode.jpg",
		Abstract:     "an ode",
		Content:      "O wild West Wind",
	})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	// the create response denormalizes the parent names
	assert.Equal(t, "lit", created.SiteName)
	assert.Equal(t, "poetry", created.SectionName)

	got, err := client.Get(ctx, "lit", "poetry", "ode")
	assert.NoError(t, err)
	assert.Equal(t, section.ID, got.SectionID)
	assert.Equal(t, "Ode", got.Title)
	assert.Equal(t, "ode.jpg", got.PrimaryImage)
	assert.Equal(t, "an ode", got.Abstract)
	assert.Equal(t, "O wild West Wind", got.Content)

	byID, err := client.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, got, byID)
}

func TestPageService_CreatePageResolutionChain(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPageService(st)
	ctx := context.TODO()

	before := rowCount(t, &model.Page{})

	// no site at all
	_, err := client.Create(ctx, &v1.CreatePageRequest{SiteName: "missing", SectionName: "poetry", Name: "ode", Title: "Ode"})
	assert.ErrorIs(t, err, ErrSiteNotFound)

	// site exists, section does not
	_, err = NewSiteService(st).Create(ctx, &v1.CreateSiteRequest{Name: "lit", Title: "Literature", URL: "/lit", Logo: "l.png"})
	assert.NoError(t, err)

	_, err = client.Create(ctx, &v1.CreatePageRequest{SiteName: "lit", SectionName: "missing", Name: "ode", Title: "Ode"})
	assert.ErrorIs(t, err, ErrSectionNotFound)

	assert.Equal(t, before, rowCount(t, &model.Page{}))
}

func TestPageService_ListPages(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPageService(st)
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")

	_, err := NewSectionService(st).Create(ctx, &v1.CreateSectionRequest{SiteName: "lit", Name: "prose", Title: "Prose"})
	assert.NoError(t, err)
	_, err = client.Create(ctx, &v1.CreatePageRequest{SiteName: "lit", SectionName: "prose", Name: "essay", Title: "Essay"})
	assert.NoError(t, err)

	pages, err := client.List(ctx, "lit", "poetry")
	assert.NoError(t, err)
	assert.Len(t, pages, 1)
	assert.Equal(t, "ode", pages[0].Name)

	all, err := client.ListBySite(ctx, "lit")
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPageService_UpdatePage(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPageService(st)
	ctx := context.TODO()

	created := seedPage(t, "lit", "poetry", "ode")

	sections := NewSectionService(st)
	prose, err := sections.Create(ctx, &v1.CreateSectionRequest{SiteName: "lit", Name: "prose", Title: "Prose"})
	assert.NoError(t, err)

	// the update moves the page into the prose section
	updated, err := client.Update(ctx, "ode", &v1.UpdatePageRequest{
		SiteName:     "lit",
		SectionName:  "prose",
		Name:         "ode",
		Title:        "Ode Revised",
		PrimaryImage: "new.jpg",
		Abstract:     "revised",
		Content:      "new content",
	})
	assert.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, prose.ID, updated.SectionID)
	assert.Equal(t, "Ode Revised", updated.Title)
	assert.Equal(t, "new.jpg", updated.PrimaryImage)

	_, err = client.Update(ctx, "missing", &v1.UpdatePageRequest{SiteName: "lit", SectionName: "prose", Name: "x", Title: "x"})
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageService_UpdatePageByID(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewPageService(testStore())
	ctx := context.TODO()

	created := seedPage(t, "lit", "poetry", "ode")

	// the id-addressed variant replaces the same field set as the
	// name-addressed one, primary image included
	updated, err := client.UpdateByID(ctx, created.ID, &v1.UpdatePageRequest{
		SiteName:     "lit",
		SectionName:  "poetry",
		Name:         "elegy",
		Title:        "Elegy",
		PrimaryImage: "elegy.jpg",
		Abstract:     "a",
		Content:      "b",
	})
	assert.NoError(t, err)
	assert.Equal(t, "elegy", updated.Name)
	assert.Equal(t, "elegy.jpg", updated.PrimaryImage)

	got, err := client.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, updated, got)

	_, err = client.UpdateByID(ctx, created.ID+100, &v1.UpdatePageRequest{SiteName: "lit", SectionName: "poetry", Name: "x", Title: "x"})
	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageService_DeletePage(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewPageService(st)
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")
	other, err := client.Create(ctx, &v1.CreatePageRequest{SiteName: "lit", SectionName: "poetry", Name: "sonnet", Title: "Sonnet"})
	assert.NoError(t, err)

	err = client.Delete(ctx, other.ID+100)
	assert.ErrorIs(t, err, ErrPageNotFound)
	assert.Equal(t, int64(2), rowCount(t, &model.Page{}))

	err = client.Delete(ctx, other.ID)
	assert.NoError(t, err)

	// exactly one row removed, the other page survives
	assert.Equal(t, int64(1), rowCount(t, &model.Page{}))
	_, err = client.Get(ctx, "lit", "poetry", "ode")
	assert.NoError(t, err)
}
