package folio

import (
	_ "embed"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Stylesheet is the site stylesheet shipped with the binary. It styles the
// chrome, bio and post list classes.
//
//go:embed assets/style.css
var Stylesheet []byte

func handleStylesheet(c echo.Context) error {
	return c.Blob(http.StatusOK, "text/css; charset=utf-8", Stylesheet)
}
