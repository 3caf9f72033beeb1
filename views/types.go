package views

import (
	"strings"

	"github.com/eringen/folio/metadata"
)

// Site holds site-wide settings every page template reads.
type Site struct {
	Title       string
	URL         string // canonical base, no trailing slash
	Description string
	PathPrefix  string // normalized, "" or "/prefix"
	AvatarSrc   string
	Meta        *metadata.Site
}

// Path returns a site-local link under the path prefix. With no segments it
// returns the root path.
func (s Site) Path(segments ...string) string {
	p := s.PathPrefix + "/"
	for _, seg := range segments {
		seg = strings.Trim(seg, "/")
		if seg == "" {
			continue
		}
		p += PathEscape(seg) + "/"
	}
	return p
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head>.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	JSONLD      string
}
