package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	v1 "github.com/gutenlab/datalake/apis/v1"
	"github.com/gutenlab/datalake/internal/service"
)

type handlers struct {
	sites    *service.SiteService
	sections *service.SectionService
	pages    *service.PageService
	refs     *service.RefService
	notes    *service.NoteService
	publish  *service.PublishService
}

func (h *handlers) register(e *echo.Echo) {
	e.GET("/", h.root)

	g := e.Group("/guten")

	g.GET("/sites", h.listSites)
	g.GET("/sites/:name", h.getSite)
	g.POST("/sites", h.createSite)
	g.PUT("/sites/:name", h.updateSite)
	g.DELETE("/sites/:name", h.deleteSite)

	g.GET("/sections", h.listSections)
	g.GET("/sections/:name", h.getSection)
	g.GET("/section_by_id/:id", h.getSectionByID)
	g.POST("/sections", h.createSection)
	g.PUT("/sections/:id", h.updateSection)
	g.DELETE("/sections/:id", h.deleteSection)

	g.GET("/pages", h.listPages)
	g.GET("/pages/:name", h.getPage)
	g.GET("/pages_all/:site_name", h.listSitePages)
	g.GET("/page_by_id/:id", h.getPageByID)
	g.POST("/pages", h.createPage)
	g.PUT("/pages/:name", h.updatePage)
	g.PUT("/page_by_id/:id", h.updatePageByID)
	g.DELETE("/pages/:id", h.deletePage)

	g.GET("/refs", h.listRefs)
	g.POST("/refs", h.createRef)
	g.PUT("/refs/:id", h.updateRef)
	g.DELETE("/refs/:id", h.deleteRef)

	g.GET("/notes", h.listNotes)
	g.POST("/notes", h.createNote)
	g.DELETE("/notes/:id", h.deleteNote)

	g.POST("/publish/:site_name", h.publishSite)
	g.GET("/published/pages/:page_name", h.getPublishedPage)
}

func (h *handlers) root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "Welcome to the datalake API"})
}

// sites

func (h *handlers) listSites(c echo.Context) error {
	sites, err := h.sites.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sites)
}

func (h *handlers) getSite(c echo.Context) error {
	site, err := h.sites.Get(c.Request().Context(), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

func (h *handlers) createSite(c echo.Context) error {
	request := new(v1.CreateSiteRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	site, err := h.sites.Create(c.Request().Context(), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, site)
}

func (h *handlers) updateSite(c echo.Context) error {
	request := new(v1.UpdateSiteRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	site, err := h.sites.Update(c.Request().Context(), c.Param("name"), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, site)
}

func (h *handlers) deleteSite(c echo.Context) error {
	if err := h.sites.Delete(c.Request().Context(), c.Param("name")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// sections

func (h *handlers) listSections(c echo.Context) error {
	sections, err := h.sections.List(c.Request().Context(), c.QueryParam("site"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sections)
}

func (h *handlers) getSection(c echo.Context) error {
	section, err := h.sections.Get(c.Request().Context(), c.QueryParam("site"), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, section)
}

func (h *handlers) getSectionByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	section, err := h.sections.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, section)
}

func (h *handlers) createSection(c echo.Context) error {
	request := new(v1.CreateSectionRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	section, err := h.sections.Create(c.Request().Context(), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, section)
}

func (h *handlers) updateSection(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	request := new(v1.UpdateSectionRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	section, err := h.sections.Update(c.Request().Context(), id, request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, section)
}

func (h *handlers) deleteSection(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.sections.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// pages

func (h *handlers) listPages(c echo.Context) error {
	pages, err := h.pages.List(c.Request().Context(), c.QueryParam("site"), c.QueryParam("section"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

func (h *handlers) listSitePages(c echo.Context) error {
	pages, err := h.pages.ListBySite(c.Request().Context(), c.Param("site_name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pages)
}

func (h *handlers) getPage(c echo.Context) error {
	page, err := h.pages.Get(c.Request().Context(), c.QueryParam("site"), c.QueryParam("section"), c.Param("name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *handlers) getPageByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	page, err := h.pages.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *handlers) createPage(c echo.Context) error {
	request := new(v1.CreatePageRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	page, err := h.pages.Create(c.Request().Context(), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, page)
}

func (h *handlers) updatePage(c echo.Context) error {
	request := new(v1.UpdatePageRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	page, err := h.pages.Update(c.Request().Context(), c.Param("name"), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *handlers) updatePageByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	request := new(v1.UpdatePageRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	page, err := h.pages.UpdateByID(c.Request().Context(), id, request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func (h *handlers) deletePage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.pages.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// refs

func (h *handlers) listRefs(c echo.Context) error {
	refs, err := h.refs.List(c.Request().Context(), c.QueryParam("site"), c.QueryParam("section"), c.QueryParam("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, refs)
}

func (h *handlers) createRef(c echo.Context) error {
	request := new(v1.CreateRefRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	ref, err := h.refs.Create(c.Request().Context(), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, ref)
}

func (h *handlers) updateRef(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	request := new(v1.UpdateRefRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	ref, err := h.refs.Update(c.Request().Context(), id, request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, ref)
}

func (h *handlers) deleteRef(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.refs.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// notes

func (h *handlers) listNotes(c echo.Context) error {
	notes, err := h.notes.List(c.Request().Context(), c.QueryParam("site"), c.QueryParam("section"), c.QueryParam("page"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notes)
}

func (h *handlers) createNote(c echo.Context) error {
	request := new(v1.CreateNoteRequest)
	if err := c.Bind(request); err != nil {
		return err
	}

	note, err := h.notes.Create(c.Request().Context(), request)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, note)
}

func (h *handlers) deleteNote(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.notes.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}

// publish

func (h *handlers) publishSite(c echo.Context) error {
	siteName := c.Param("site_name")
	if err := h.publish.Publish(c.Request().Context(), siteName); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, &v1.PublishResponse{
		Message: fmt.Sprintf("Site '%s' successfully published.", siteName),
	})
}

func (h *handlers) getPublishedPage(c echo.Context) error {
	page, err := h.publish.GetPublishedPage(c.Request().Context(), c.QueryParam("site"), c.Param("page_name"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}

// httpErrorHandler maps service errors onto the API error contract:
// not-found conditions become 404, conflicts 409, everything else 500.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	detail := "internal server error"

	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		code = he.Code
		detail = fmt.Sprintf("%v", he.Message)
	case errors.Is(err, service.ErrSiteNotFound),
		errors.Is(err, service.ErrSectionNotFound),
		errors.Is(err, service.ErrPageNotFound),
		errors.Is(err, service.ErrRefNotFound),
		errors.Is(err, service.ErrNoteNotFound):
		code = http.StatusNotFound
		detail = err.Error()
	case errors.Is(err, service.ErrSiteExists),
		errors.Is(err, service.ErrSectionExists),
		errors.Is(err, service.ErrPageExists):
		code = http.StatusConflict
		detail = err.Error()
	default:
		logrus.Errorf("request failed: %v", err)
	}

	if err := c.JSON(code, map[string]string{"detail": detail}); err != nil {
		logrus.Errorf("error writing error response: %v", err)
	}
}
