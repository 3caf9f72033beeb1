package folio

import (
	"encoding/xml"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func (a *App) renderSitemap(c echo.Context, posts []content.Post) error {
	base := a.baseURL()
	urls := []sitemapURL{
		{Loc: views.BuildURL(base)},
	}
	for _, p := range posts {
		urls = append(urls, sitemapURL{
			Loc:     views.BuildURL(base, "blog", p.Slug),
			LastMod: p.Date,
		})
	}
	sitemap := sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  urls,
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(sitemap)
}
