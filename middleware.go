package folio

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func (a *App) setupMiddleware() {
	e := a.Echo

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			a.Logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("ip", v.RemoteIP),
			)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(a.metricsMiddleware())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, a.Config.PathPrefix+"/public/")
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; script-src 'self'",
		HSTSMaxAge:            31536000,
		HSTSExcludeSubdomains: false,
	}))

	e.Use(middleware.AddTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
		Skipper:      a.skipTrailingSlash,
	}))

	e.Use(a.cacheControlMiddleware)
}

func (a *App) skipTrailingSlash(c echo.Context) bool {
	path := strings.TrimPrefix(c.Request().URL.Path, a.Config.PathPrefix)
	return strings.HasPrefix(path, "/public") ||
		c.Request().URL.Path == "/metrics" ||
		path == "/blog" ||
		path == "/sitemap.xml" || path == "/feed.xml" || path == "/robots.txt"
}

func (a *App) cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := strings.TrimPrefix(c.Request().URL.Path, a.Config.PathPrefix)
		h := c.Response().Header()
		switch {
		case c.Request().URL.Path == "/metrics":
			h.Set("Cache-Control", "no-store")
		case strings.HasPrefix(path, "/public/"):
			h.Set("Cache-Control", "public, max-age=31536000, immutable")
		case path == "/sitemap.xml" || path == "/feed.xml" || path == "/robots.txt":
			h.Set("Cache-Control", "public, max-age=86400")
		default:
			h.Set("Cache-Control", "public, max-age=3600")
		}
		return next(c)
	}
}
