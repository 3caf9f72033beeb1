package folio

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title          string    `xml:"title"`
	Link           string    `xml:"link"`
	Description    string    `xml:"description"`
	ManagingEditor string    `xml:"managingEditor,omitempty"`
	Items          []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate,omitempty"`
	GUID        string   `xml:"guid"`
	Categories  []string `xml:"category,omitempty"`
}

func (a *App) renderRSS(c echo.Context, posts []content.Post) error {
	base := a.baseURL()
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		pubDate := ""
		if t := p.Time(); !t.IsZero() {
			pubDate = t.Format(time.RFC1123Z)
		}
		postURL := views.BuildURL(base, "blog", p.Slug)
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        postURL,
			Description: p.Summary,
			PubDate:     pubDate,
			GUID:        postURL,
			Categories:  p.Tags,
		})
	}
	feed := rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:          a.Config.Title,
			Link:           views.BuildURL(base),
			Description:    a.Config.Description,
			ManagingEditor: a.Metadata.AuthorName(),
			Items:          items,
		},
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(feed)
}
