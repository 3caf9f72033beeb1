package folio

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/eringen/folio/views"
)

// Render writes a templ component as an HTTP 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus writes a templ component with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	return cmp.Render(c.Request().Context(), c.Response().Writer)
}

// renderPage renders a page node and records which chrome branch it took.
func (a *App) renderPage(c echo.Context, code int, page string, n g.Node) error {
	a.metrics.observe(a.isRoot(c), page)
	return RenderStatus(c, code, views.Component(n))
}
