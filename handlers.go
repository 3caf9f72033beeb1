package folio

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/eringen/folio/chrome"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/views"
)

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Cache.ListPosts(c.QueryParam("tag"))
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "home", views.Home(a.site(), currentPath(c), posts))
}

func (a *App) handlePost(c echo.Context) error {
	post, err := a.Cache.GetPost(c.Param("slug"))
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			return a.renderPage(c, http.StatusNotFound, "not_found", views.NotFound(a.site(), currentPath(c)))
		}
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderPage(c, http.StatusOK, "post", views.Post(a.site(), currentPath(c), post, posts))
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderSitemap(c, posts)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	return a.renderRSS(c, posts)
}

func (a *App) handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, chrome.RootPath(a.Config.PathPrefix))
}

// handleRobots generates robots.txt pointing at the sitemap.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.baseURL())
	return c.String(http.StatusOK, body)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderPage(c, http.StatusNotFound, "not_found", views.NotFound(a.site(), currentPath(c)))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Logger.Error("server error",
			zap.Error(err),
			zap.String("uri", c.Request().RequestURI),
		)
		_ = a.renderPage(c, code, "error", views.ServerError(a.site(), currentPath(c)))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// currentPath is the request path the chrome compares against the root path.
func currentPath(c echo.Context) string {
	return c.Request().URL.Path
}

func (a *App) isRoot(c echo.Context) bool {
	return chrome.Chrome{PathPrefix: a.Config.PathPrefix}.IsRoot(currentPath(c))
}
