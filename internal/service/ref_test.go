package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/model"
	"github.com/gutenlab/datalake/internal/tester"
)

func TestRefService_CreateRef(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewRefService(testStore())
	ctx := context.TODO()

	page := seedPage(t, "lit", "poetry", "ode")

	ref, err := client.Create(ctx, &v1.CreateRefRequest{
		SiteName:    "lit",
		SectionName: "poetry",
		PageName:    "ode",
		URL:         "https://example.org/ode",
		Description: "the source",
		Type:        "external",
	})
	assert.NoError(t, err)
	assert.NotZero(t, ref.ID)
	assert.Equal(t, page.ID, ref.PageID)
	assert.Equal(t, "https://example.org/ode", ref.URL)
	assert.Equal(t, "external", ref.Type)
}

func TestRefService_CreateRefResolutionChain(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	st := testStore()
	client := NewRefService(st)
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")
	before := rowCount(t, &model.Ref{})

	tests := []struct {
		name    string
		request *v1.CreateRefRequest
		want    error
	}{
		{
			name:    "missing site",
			request: &v1.CreateRefRequest{SiteName: "missing", SectionName: "poetry", PageName: "ode", URL: "u", Description: "d"},
			want:    ErrSiteNotFound,
		},
		{
			name:    "missing section",
			request: &v1.CreateRefRequest{SiteName: "lit", SectionName: "missing", PageName: "ode", URL: "u", Description: "d"},
			want:    ErrSectionNotFound,
		},
		{
			name:    "missing page",
			request: &v1.CreateRefRequest{SiteName: "lit", SectionName: "poetry", PageName: "missing", URL: "u", Description: "d"},
			want:    ErrPageNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Create(ctx, tt.request)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	assert.Equal(t, before, rowCount(t, &model.Ref{}))
}

func TestRefService_ListRefs(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewRefService(testStore())
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")

	for _, url := range []string{"https://a.example", "https://b.example"} {
		_, err := client.Create(ctx, &v1.CreateRefRequest{
			SiteName:    "lit",
			SectionName: "poetry",
			PageName:    "ode",
			URL:         url,
			Description: "d",
		})
		assert.NoError(t, err)
	}

	refs, err := client.List(ctx, "lit", "poetry", "ode")
	assert.NoError(t, err)
	assert.Len(t, refs, 2)
}

func TestRefService_UpdateRef(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewRefService(testStore())
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")

	ref, err := client.Create(ctx, &v1.CreateRefRequest{
		SiteName:    "lit",
		SectionName: "poetry",
		PageName:    "ode",
		URL:         "https://old.example",
		Description: "old",
	})
	assert.NoError(t, err)

	updated, err := client.Update(ctx, ref.ID, &v1.UpdateRefRequest{
		URL:         "https://new.example",
		Description: "new",
	})
	assert.NoError(t, err)
	assert.Equal(t, "https://new.example", updated.URL)
	assert.Equal(t, "new", updated.Description)

	_, err = client.Update(ctx, ref.ID+100, &v1.UpdateRefRequest{URL: "u", Description: "d"})
	assert.ErrorIs(t, err, ErrRefNotFound)
}

func TestRefService_DeleteRef(t *testing.T) {
	tester.RemoveDBFile()
	tester.Setup()

	client := NewRefService(testStore())
	ctx := context.TODO()

	seedPage(t, "lit", "poetry", "ode")

	ref, err := client.Create(ctx, &v1.CreateRefRequest{
		SiteName:    "lit",
		SectionName: "poetry",
		PageName:    "ode",
		URL:         "https://example.org",
		Description: "d",
	})
	assert.NoError(t, err)

	err = client.Delete(ctx, ref.ID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), rowCount(t, &model.Ref{}))

	err = client.Delete(ctx, ref.ID)
	assert.ErrorIs(t, err, ErrRefNotFound)
}
