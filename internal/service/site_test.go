package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/tester"
)

func TestSiteService_CreateSite(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewSiteService(testStore())
	ctx := context.TODO()

	tests := []struct {
		name    string
		request *v1.CreateSiteRequest
	}{
		{
			name: "minimal site",
			request: &v1.CreateSiteRequest{
				Name:  "lit",
				Title: "Literature",
				URL:   "/lit",
				Logo:  "l.png",
			},
		},
		{
			name: "full site",
			request: &v1.CreateSiteRequest{
				Name:    "sci",
				Title:   "Science",
				URL:     "/sci",
				Logo:    "s.png",
				Favicon: "f.ico",
				Color:   "#336699",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := client.Create(ctx, tt.request)
			assert.NoError(t, err)
			assert.NotZero(t, created.ID)

			got, err := client.Get(ctx, tt.request.Name)
			assert.NoError(t, err)
			assert.Equal(t, tt.request.Name, got.Name)
			assert.Equal(t, tt.request.Title, got.Title)
			assert.Equal(t, tt.request.URL, got.URL)
			assert.Equal(t, tt.request.Logo, got.Logo)
			assert.Equal(t, tt.request.Favicon, got.Favicon)
			assert.Equal(t, tt.request.Color, got.Color)
		})
	}
}

func TestSiteService_CreateSiteConflict(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewSiteService(testStore())
	ctx := context.TODO()

	request := &v1.CreateSiteRequest{Name: "lit", Title: "Literature", URL: "/lit", Logo: "l.png"}

	_, err := client.Create(ctx, request)
	assert.NoError(t, err)

	_, err = client.Create(ctx, request)
	assert.ErrorIs(t, err, ErrSiteExists)
	assert.Equal(t, int64(1), rowCount(t, &model.Site{}))
}

func TestSiteService_ListSites(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewSiteService(testStore())
	ctx := context.TODO()

	for _, name := range []string{"beta", "alpha"} {
		_, err := client.Create(ctx, &v1.CreateSiteRequest{Name: name, Title: name, URL: "/" + name, Logo: name + ".png"})
		assert.NoError(t, err)
	}

	sites, err := client.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, sites, 2)
	assert.Equal(t, "alpha", sites[0].Name)
	assert.Equal(t, "beta", sites[1].Name)
}

func TestSiteService_UpdateSite(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewSiteService(testStore())
	ctx := context.TODO()

	_, err := client.Create(ctx, &v1.CreateSiteRequest{Name: "lit", Title: "Literature", URL: "/lit", Logo: "l.png"})
	assert.NoError(t, err)

	landing := uint(7)
	updated, err := client.Update(ctx, "lit", &v1.UpdateSiteRequest{
		Title:         "World Literature",
		URL:           "/world-lit",
		Logo:          "wl.png",
		Favicon:       "wl.ico",
		Color:         "#000000",
		LandingPageID: &landing,
	})
	assert.NoError(t, err)
	assert.Equal(t, "World Literature", updated.Title)

	got, err := client.Get(ctx, "lit")
	assert.NoError(t, err)
	assert.Equal(t, "/world-lit", got.URL)
	assert.Equal(t, "wl.png", got.Logo)
	assert.Equal(t, "wl.ico", got.Favicon)
	assert.Equal(t, "#000000", got.Color)
	assert.Equal(t, &landing, got.LandingPageID)

	_, err = client.Update(ctx, "missing", &v1.UpdateSiteRequest{Title: "x"})
	assert.ErrorIs(t, err, ErrSiteNotFound)
}

func TestSiteService_DeleteSite(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewSiteService(testStore())
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")

	err := client.Delete(ctx, "lit")
	assert.NoError(t, err)

	_, err = client.Get(ctx, "lit")
	assert.ErrorIs(t, err, ErrSiteNotFound)

	// the whole subtree goes with the site
	assert.Equal(t, int64(0), rowCount(t, &model.Section{}))
	assert.Equal(t, int64(0), rowCount(t, &model.Page{}))

	err = client.Delete(ctx, "lit")
	assert.ErrorIs(t, err, ErrSiteNotFound)
}
