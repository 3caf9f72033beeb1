package views

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/eringen/folio/bio"
	"github.com/eringen/folio/chrome"
	"github.com/eringen/folio/content"
	"github.com/eringen/folio/logos"
)

// StylesheetPath is where the embedded stylesheet is served, relative to
// the path prefix.
const StylesheetPath = "/public/style.css"

// Document wraps the chrome in a full HTML document.
func Document(site Site, meta PageMeta, currentPath string, children g.Node) g.Node {
	title := site.Title
	if meta.Title != "" && meta.Title != site.Title {
		title = meta.Title + " | " + site.Title
	}
	description := meta.Description
	if description == "" {
		description = site.Description
	}
	ogType := meta.OGType
	if ogType == "" {
		ogType = "website"
	}
	return html.Doctype(
		html.HTML(
			html.Lang("en"),
			html.Head(
				html.Meta(html.Charset("utf-8")),
				html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
				html.TitleEl(g.Text(title)),
				g.If(description != "", html.Meta(html.Name("description"), html.Content(description))),
				g.If(meta.URL != "", html.Link(html.Rel("canonical"), html.Href(meta.URL))),
				html.Meta(g.Attr("property", "og:title"), html.Content(title)),
				html.Meta(g.Attr("property", "og:type"), html.Content(ogType)),
				g.If(meta.URL != "", html.Meta(g.Attr("property", "og:url"), html.Content(meta.URL))),
				g.If(site.Meta.Twitter() != "", html.Meta(html.Name("twitter:creator"), html.Content("@"+site.Meta.Twitter()))),
				html.Link(html.Rel("stylesheet"), html.Href(site.PathPrefix+StylesheetPath)),
				html.Link(html.Rel("alternate"), html.Type("application/rss+xml"), html.Href(site.PathPrefix+"/feed.xml")),
				g.If(meta.JSONLD != "", html.Script(html.Type("application/ld+json"), g.Raw(meta.JSONLD))),
			),
			html.Body(
				chrome.Chrome{PathPrefix: site.PathPrefix}.Render(chrome.Request{
					CurrentPath: currentPath,
					SiteTitle:   site.Title,
					Children:    children,
				}),
			),
		),
	)
}

// Home renders the landing page: bio followed by the post list.
func Home(site Site, currentPath string, posts []content.Post) g.Node {
	meta := PageMeta{
		Title:  site.Title,
		URL:    BuildURL(site.URL),
		OGType: "website",
		JSONLD: WebsiteJsonLD(site),
	}
	return Document(site, meta, currentPath, g.Group([]g.Node{
		bio.Bio(site.Meta, site.AvatarSrc),
		postList(site, posts),
	}))
}

// Post renders a single post page.
func Post(site Site, currentPath string, post content.Post, posts []content.Post) g.Node {
	meta := PageMeta{
		Title:       post.Title,
		Description: post.Summary,
		URL:         BuildURL(site.URL, "blog", post.Slug),
		OGType:      "article",
		JSONLD:      BlogPostingJsonLD(site, post),
	}
	return Document(site, meta, currentPath, g.Group([]g.Node{
		html.Article(
			html.Class("blog-post"),
			g.Attr("itemscope"),
			g.Attr("itemtype", "http://schema.org/Article"),
			html.Header(
				html.H1(g.Attr("itemprop", "headline"), postLogo(post), g.Text(post.Title)),
				g.If(post.Date != "", html.P(postDate(post))),
			),
			html.Section(g.Attr("itemprop", "articleBody"), g.Raw(post.Content)),
			html.Hr(),
			html.Footer(bio.Bio(site.Meta, site.AvatarSrc)),
		),
		relatedPosts(site, FilterRelatedPosts(post, posts)),
	}))
}

// NotFound renders the 404 page.
func NotFound(site Site, currentPath string) g.Node {
	return Document(site, PageMeta{Title: "404: Not Found"}, currentPath, g.Group([]g.Node{
		html.H1(g.Text("404: Not Found")),
		html.P(g.Text("You just hit a route that doesn't exist... the sadness.")),
	}))
}

// ServerError renders the 500 page.
func ServerError(site Site, currentPath string) g.Node {
	return Document(site, PageMeta{Title: "Something went wrong"}, currentPath, g.Group([]g.Node{
		html.H1(g.Text("Something went wrong")),
		html.P(g.Text("Please try again in a moment.")),
	}))
}

func postList(site Site, posts []content.Post) g.Node {
	if len(posts) == 0 {
		return html.P(g.Text("No blog posts found."))
	}
	return html.Ol(
		g.Attr("style", "list-style: none"),
		g.Map(posts, func(p content.Post) g.Node {
			return html.Li(
				html.Article(
					html.Class("post-list-item"),
					g.Attr("itemscope"),
					g.Attr("itemtype", "http://schema.org/Article"),
					html.Header(
						html.H2(
							postLogo(p),
							html.A(
								html.Href(site.Path("blog", p.Slug)),
								g.Attr("itemprop", "url"),
								html.Span(g.Attr("itemprop", "headline"), g.Text(p.Title)),
							),
						),
						g.If(p.Date != "", html.Small(postDate(p))),
					),
					g.If(p.Summary != "", html.Section(
						html.P(g.Attr("itemprop", "description"), g.Text(p.Summary)),
					)),
				),
			)
		}),
	)
}

func relatedPosts(site Site, related []content.Post) g.Node {
	if len(related) == 0 {
		return g.Group(nil)
	}
	return html.Nav(
		html.Class("blog-post-nav"),
		html.H2(g.Text("Related posts")),
		html.Ul(g.Map(related, func(p content.Post) g.Node {
			return html.Li(html.A(html.Href(site.Path("blog", p.Slug)), g.Text(p.Title)))
		})),
	)
}

func postDate(p content.Post) g.Node {
	return g.El("time", g.Attr("datetime", p.Date), g.Text(FormatDate(p.Date)))
}

func postLogo(p content.Post) g.Node {
	if p.Logo == "" {
		return nil
	}
	logo, ok := logos.Lookup(p.Logo)
	if !ok {
		return nil
	}
	return html.Span(html.Class("post-logo"), logo(24))
}
