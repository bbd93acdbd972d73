package service

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/store"
	"github.com/gutenlab/datalake/internal/tester"
)

func TestMain(m *testing.M) {
	tester.Setup()
	code := m.Run()

	tester.RemoveDBFile()
	os.Exit(code)
}

func testStore() store.Store {
	return store.NewGormStore(tester.TestDB())
}

func rowCount(t *testing.T, value interface{}) int64 {
	t.Helper()

	var n int64
	err := tester.TestDB().Model(value).Count(&n).Error
	assert.NoError(t, err)

	return n
}

// seedPage creates a site, a section and a page and returns the created page.
func seedPage(t *testing.T, siteName, sectionName, pageName string) *v1.CreatePageResponse {
	t.Helper()

	st := testStore()
	ctx := context.TODO()

	_, err := NewSiteService(st).Create(ctx, &v1.CreateSiteRequest{
		Name:  siteName,
		Title: "Title of " + siteName,
		URL:   "/" + siteName,
		Logo:  siteName + ".png",
	})
	assert.NoError(t, err)

	_, err = NewSectionService(st).Create(ctx, &v1.CreateSectionRequest{
		SiteName: siteName,
		Name:     sectionName,
		Title:    "Title of " + sectionName,
	})
	assert.NoError(t, err)

	page, err := NewPageService(st).Create(ctx, &v1.CreatePageRequest{
		SiteName:    siteName,
		SectionName: sectionName,
		Name:        pageName,
		Title:       "Title of " + pageName,
		Abstract:    "abstract",
		Content:     "content",
	})
	assert.NoError(t, err)

	return page
}
