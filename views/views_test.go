package views

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/eringen/folio/content"
	"github.com/eringen/folio/metadata"
)

func testSite() Site {
	return Site{
		Title:       "Anton's blog",
		URL:         "https://example.com",
		Description: "Notes",
		AvatarSrc:   "/public/avatar.jpg",
		Meta: &metadata.Site{
			Author: &metadata.Author{Name: "Anton", Summary: "Builds things."},
			Social: &metadata.Social{Twitter: "antondosov"},
		},
	}
}

func testPosts() []content.Post {
	return []content.Post{
		{Slug: "second", Title: "Second", Date: "2024-02-01", Tags: []string{"go"}, Summary: "two", Logo: "kibana", Content: "<p>second body</p>", Published: true},
		{Slug: "first", Title: "First", Date: "2024-01-01", Tags: []string{"Go", "web"}, Summary: "one", Content: "<p>first body</p>", Published: true},
		{Slug: "other", Title: "Other", Date: "2023-01-01", Tags: []string{"rust"}, Published: true},
	}
}

func TestHomeUsesRootChrome(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, Home(testSite(), "/", testPosts()))

	require.Equal(t, "true", doc.Find("div.global-wrapper").AttrOr("data-is-root-path", ""))
	require.Equal(t, "Anton's blog", doc.Find("h1.main-heading a").Text())
	require.Equal(t, 1, doc.Find("main div.bio").Length())
	require.Equal(t, 3, doc.Find("main article.post-list-item").Length())

	first := doc.Find("main article.post-list-item").First()
	require.Equal(t, "/blog/second/", first.Find("h2 a").AttrOr("href", ""))
	require.Equal(t, "February 01, 2024", first.Find("small time").Text())
	require.Equal(t, 1, first.Find("span.post-logo svg").Length())

	require.Equal(t, "Anton's blog", doc.Find("title").Text())
	require.Equal(t, 1, doc.Find(`script[type="application/ld+json"]`).Length())
}

func TestHomeEmpty(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, Home(testSite(), "/", nil))
	require.Contains(t, doc.Find("main").Text(), "No blog posts found.")
}

func TestPostUsesSubPageChrome(t *testing.T) {
	t.Parallel()

	posts := testPosts()
	doc := renderDoc(t, Post(testSite(), "/blog/first/", posts[1], posts))

	require.Equal(t, "false", doc.Find("div.global-wrapper").AttrOr("data-is-root-path", ""))
	require.Equal(t, 0, doc.Find("h1.main-heading").Length())
	require.Equal(t, "Anton's blog", doc.Find("a.header-link-home").Text())

	require.Equal(t, "First", doc.Find("article.blog-post h1").Text())
	require.Equal(t, "first body", doc.Find("article.blog-post section").Text())
	require.Equal(t, 1, doc.Find("article.blog-post footer div.bio").Length())
	require.Equal(t, "First | Anton's blog", doc.Find("title").Text())
	require.Equal(t, "https://example.com/blog/first/", doc.Find(`link[rel="canonical"]`).AttrOr("href", ""))

	related := doc.Find("nav.blog-post-nav a")
	require.Equal(t, 1, related.Length())
	require.Equal(t, "/blog/second/", related.AttrOr("href", ""))
}

func TestPostWithoutRelated(t *testing.T) {
	t.Parallel()

	posts := testPosts()
	doc := renderDoc(t, Post(testSite(), "/blog/other/", posts[2], posts))
	require.Equal(t, 0, doc.Find("nav.blog-post-nav").Length())
}

func TestPathPrefixApplied(t *testing.T) {
	t.Parallel()

	site := testSite()
	site.PathPrefix = "/site"
	doc := renderDoc(t, Home(site, "/site/", testPosts()))

	require.Equal(t, "true", doc.Find("div.global-wrapper").AttrOr("data-is-root-path", ""))
	require.Equal(t, "/site/blog/second/", doc.Find("article.post-list-item h2 a").First().AttrOr("href", ""))
	require.Equal(t, "/site/public/style.css", doc.Find(`link[rel="stylesheet"]`).AttrOr("href", ""))
}

func TestNotFoundAndServerError(t *testing.T) {
	t.Parallel()

	doc := renderDoc(t, NotFound(testSite(), "/missing/"))
	require.Equal(t, "404: Not Found", doc.Find("main h1").Text())
	require.Equal(t, "false", doc.Find("div.global-wrapper").AttrOr("data-is-root-path", ""))

	doc = renderDoc(t, ServerError(testSite(), "/"))
	require.Equal(t, "Something went wrong", doc.Find("main h1").Text())
}

func TestComponentBridge(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Component(g.Text("a<b")).Render(context.Background(), &buf))
	require.Equal(t, "a&lt;b", buf.String())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, Component(g.Text("x")).Render(ctx, &buf), context.Canceled)

	var out strings.Builder
	require.NoError(t, Node(Component(g.Raw("<i>x</i>"))).Render(&out))
	require.Equal(t, "<i>x</i>", out.String())
}

func TestSitePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/", Site{}.Path())
	require.Equal(t, "/blog/a%20b/", Site{}.Path("blog", "a b"))
	require.Equal(t, "/p/blog/x/", Site{PathPrefix: "/p"}.Path("/blog/", "x"))
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://example.com/", BuildURL("https://example.com"))
	require.Equal(t, "https://example.com/blog/x/", BuildURL("https://example.com", "blog", "x"))
	require.Equal(t, "https://example.com/sub/blog/x/", BuildURL("https://example.com/sub", "blog", "x"))
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	require.Equal(t, "January 15, 2024", FormatDate("2024-01-15"))
	require.Equal(t, "soon", FormatDate("soon"))
}

func TestJsonLD(t *testing.T) {
	t.Parallel()

	var site map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(WebsiteJsonLD(testSite())), &site))
	require.Equal(t, "WebSite", site["@type"])
	require.Equal(t, "https://example.com/", site["url"])
	require.Equal(t, "Anton", site["author"].(map[string]interface{})["name"])

	var post map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(BlogPostingJsonLD(testSite(), testPosts()[1])), &post))
	require.Equal(t, "BlogPosting", post["@type"])
	require.Equal(t, "Go, web", post["keywords"])

	var bare map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(WebsiteJsonLD(Site{Title: "T", URL: "https://x.dev"})), &bare))
	require.NotContains(t, bare, "author")
}

func renderDoc(t *testing.T, n g.Node) *goquery.Document {
	t.Helper()

	var b strings.Builder
	require.NoError(t, n.Render(&b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}
