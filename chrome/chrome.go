// Package chrome renders the navigation chrome shared by every page: the
// site header, the main content region and the footer links.
//
// The header has two shapes. On the root path the site title is a level-1
// heading; on every other path it shrinks to a plain link back home.
package chrome

import (
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// FooterSeparator is written between consecutive footer links.
const FooterSeparator = " • "

// Link is a single external footer link.
type Link struct {
	Label string
	Href  string
}

var footerLinks = []Link{
	{Label: "Remeet", Href: "https://www.remeet.com/"},
	{Label: "Twitter", Href: "https://twitter.com/antondosov"},
	{Label: "Linkedin", Href: "https://www.linkedin.com/in/antondosov/"},
	{Label: "Github", Href: "https://github.com/Dosant"},
}

// FooterLinks returns a copy of the footer links in display order.
func FooterLinks() []Link {
	out := make([]Link, len(footerLinks))
	copy(out, footerLinks)
	return out
}

// Request is everything the chrome needs for one render. Children is
// rendered inside <main> exactly as given.
type Request struct {
	CurrentPath string
	SiteTitle   string
	Children    g.Node
}

// Chrome renders page chrome for a site deployed under PathPrefix.
// The zero value serves a site mounted at "/".
type Chrome struct {
	PathPrefix string
}

// RootPath returns the home page path for a deployment path prefix.
func RootPath(prefix string) string {
	return prefix + "/"
}

// NormalizePrefix turns user input such as "blog/" into "/blog".
// An empty or "/" prefix normalizes to "".
func NormalizePrefix(prefix string) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		return ""
	}
	return "/" + prefix
}

// RootPath returns the path the chrome treats as home.
func (ch Chrome) RootPath() string {
	return RootPath(ch.PathPrefix)
}

// IsRoot reports whether path is the home page. No normalization is applied:
// "", "blog" and "/index.html" are all sub-pages.
func (ch Chrome) IsRoot(path string) bool {
	return path == ch.RootPath()
}

// Render builds the chrome around req.Children.
func (ch Chrome) Render(req Request) g.Node {
	isRoot := ch.IsRoot(req.CurrentPath)
	return html.Div(
		html.Class("global-wrapper"),
		html.Data("is-root-path", strconv.FormatBool(isRoot)),
		html.Header(
			html.Class("global-header"),
			ch.heading(isRoot, req.SiteTitle),
		),
		html.Main(req.Children),
		footer(),
	)
}

// Render is shorthand for Chrome{PathPrefix: prefix}.Render(req).
func Render(prefix string, req Request) g.Node {
	return Chrome{PathPrefix: prefix}.Render(req)
}

func (ch Chrome) heading(isRoot bool, title string) g.Node {
	home := ch.RootPath()
	if isRoot {
		return html.H1(
			html.Class("main-heading"),
			html.A(html.Href(home), g.Text(title)),
		)
	}
	return html.A(
		html.Class("header-link-home"),
		html.Href(home),
		g.Text(title),
	)
}

func footer() g.Node {
	nodes := make([]g.Node, 0, 2*len(footerLinks)-1)
	for i, l := range footerLinks {
		if i > 0 {
			nodes = append(nodes, g.Text(FooterSeparator))
		}
		nodes = append(nodes, html.A(html.Href(l.Href), g.Text(l.Label)))
	}
	return html.Footer(g.Group(nodes))
}
