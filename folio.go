// Package folio is a personal blog and portfolio server built with Go, Echo,
// templ and gomponents. It renders markdown posts inside a path-aware page
// chrome together with an author bio.
package folio

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/metadata"
	"github.com/eringen/folio/views"
)

// App is the central folio application. It wires together the post cache,
// handlers, middleware and page views.
type App struct {
	Config   SiteConfig
	Echo     *echo.Echo
	Cache    *PostCache
	Metadata *metadata.Site
	Logger   *zap.Logger

	source       PostSource
	registry     *prometheus.Registry
	metrics      *renderMetrics
	customRoutes []func(*App)
	ready        bool
}

// New creates a new folio App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	if a.Logger == nil {
		a.Logger = newLogger(a.Config.Development)
	}
	if a.source == nil {
		a.source = content.Dir(a.Config.ContentDir)
	}
	return a
}

func newLogger(dev bool) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if dev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Setup loads metadata, warms the post cache and registers middleware and
// routes. Start calls it; tests call it directly and drive a.Echo.
func (a *App) Setup() error {
	if a.ready {
		return nil
	}

	if a.Metadata == nil && a.Config.MetadataPath != "" {
		m, err := metadata.Load(a.Config.MetadataPath)
		if err != nil {
			return fmt.Errorf("folio: load metadata: %w", err)
		}
		a.Metadata = m
	}
	a.Config.applyMetadata(a.Metadata)

	a.Cache = NewPostCache(a.source, a.Config.PostCacheTTL)
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return fmt.Errorf("folio: load posts: %w", err)
	}
	a.Logger.Info("posts loaded",
		zap.Int("count", len(posts)),
		zap.String("dir", a.Config.ContentDir),
	)

	a.registry = prometheus.NewRegistry()
	a.metrics = newRenderMetrics(a.registry)

	a.setupMiddleware()
	a.setupRoutes()

	for _, fn := range a.customRoutes {
		fn(a)
	}
	a.ready = true
	return nil
}

// Start sets the app up and blocks serving HTTP until the server stops.
func (a *App) Start() error {
	if err := a.Setup(); err != nil {
		return err
	}
	a.Logger.Info("listening",
		zap.String("addr", a.Config.Addr),
		zap.String("prefix", a.Config.PathPrefix),
	)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the server and flushes the logger.
func (a *App) Shutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	_ = a.Logger.Sync()
	return err
}

func (a *App) setupRoutes() {
	e := a.Echo
	g := e.Group(a.Config.PathPrefix)

	g.GET("/public/style.css", handleStylesheet)
	g.Static("/public", a.Config.StaticDir)
	g.GET("/robots.txt", a.handleRobots)
	g.GET("/sitemap.xml", a.handleSitemap)
	g.GET("/feed.xml", a.handleFeed)
	g.GET("/blog", a.handleBlogRedirect)
	g.GET("/", a.handleHome)
	g.GET("/blog/:slug/", a.handlePost)

	e.GET("/metrics", a.metricsHandler())
}

// site returns the view-level settings for the current config.
func (a *App) site() views.Site {
	return views.Site{
		Title:       a.Config.Title,
		URL:         a.baseURL(),
		Description: a.Config.Description,
		PathPrefix:  a.Config.PathPrefix,
		AvatarSrc:   a.Config.PathPrefix + a.Config.AvatarPath,
		Meta:        a.Metadata,
	}
}

// baseURL is the canonical URL of the root path, without a trailing slash.
func (a *App) baseURL() string {
	return a.Config.URL + a.Config.PathPrefix
}

// EnvOr returns the value of the environment variable key, or fallback if empty.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// MustEnv returns the value of the environment variable key, or an error if
// it is empty.
func MustEnv(key string) (string, error) {
	v := os.Getenv(key)
	if v == "" {
		return "", fmt.Errorf("folio: required environment variable %s is not set", key)
	}
	return v, nil
}
