package folio

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/eringen/folio/chrome"
	"github.com/eringen/folio/metadata"
)

// SiteConfig holds all configuration for a folio site.
type SiteConfig struct {
	Title       string // Site title shown in the header (default "Blog", metadata title wins)
	URL         string // Canonical URL (default "http://localhost:3000", metadata siteUrl wins)
	Description string // Site description for RSS and meta tags

	Addr       string // Listen address (default ":3000")
	PathPrefix string // Deployment path prefix, e.g. "/blog" (default "")

	ContentDir   string // Markdown posts directory (default "posts")
	MetadataPath string // Optional YAML site metadata file
	StaticDir    string // User static assets served under /public (default "public")
	AvatarPath   string // Avatar image path below the prefix (default "/public/avatar.jpg")

	PostCacheTTL time.Duration // Post cache TTL (default 5min)
	Development  bool          // Human-readable logs
}

func (c *SiteConfig) setDefaults() {
	if c.Title == "" {
		c.Title = "Blog"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	c.PathPrefix = chrome.NormalizePrefix(c.PathPrefix)
	if c.ContentDir == "" {
		c.ContentDir = "posts"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.AvatarPath == "" {
		c.AvatarPath = "/public/avatar.jpg"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
}

// applyMetadata lets the metadata file override title, URL and description.
func (c *SiteConfig) applyMetadata(m *metadata.Site) {
	if m == nil {
		return
	}
	c.Title = m.TitleOr(c.Title)
	if m.SiteURL != "" {
		c.URL = m.SiteURL
	}
	if m.Description != "" {
		c.Description = m.Description
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces the default zap logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithMetadata supplies site metadata directly instead of reading
// MetadataPath.
func WithMetadata(m *metadata.Site) Option {
	return func(a *App) {
		a.Metadata = m
	}
}

// WithPostSource replaces the content directory as the post source.
func WithPostSource(src PostSource) Option {
	return func(a *App) {
		a.source = src
	}
}
