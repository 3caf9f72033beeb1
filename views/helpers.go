package views

import (
	"encoding/json"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/eringen/folio/content"
)

// BuildURL joins path segments onto a base URL, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// PathEscape wraps url.PathEscape.
func PathEscape(s string) string {
	return url.PathEscape(s)
}

// FormatDate renders a YYYY-MM-DD date as "January 15, 2024". Unparseable
// input is returned unchanged.
func FormatDate(date string) string {
	t, err := time.Parse(content.DateLayout, date)
	if err != nil {
		return date
	}
	return t.Format("January 02, 2006")
}

// FilterRelatedPosts returns posts that share at least one tag with current.
func FilterRelatedPosts(current content.Post, posts []content.Post) []content.Post {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		tag := strings.ToLower(strings.TrimSpace(t))
		if tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []content.Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			tag := strings.ToLower(strings.TrimSpace(t))
			if _, ok := tagSet[tag]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block.
func WebsiteJsonLD(site Site) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Title,
		"url":      BuildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if name := site.Meta.AuthorName(); name != "" {
		data["author"] = person(name, site.Meta.Twitter())
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// BlogPostingJsonLD produces a Schema.org BlogPosting JSON-LD block for a post.
func BlogPostingJsonLD(site Site, post content.Post) string {
	postURL := BuildURL(site.URL, "blog", post.Slug)
	data := map[string]interface{}{
		"@context":      "https://schema.org",
		"@type":         "BlogPosting",
		"headline":      post.Title,
		"description":   post.Summary,
		"datePublished": post.Date,
		"url":           postURL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   postURL,
		},
	}
	if name := site.Meta.AuthorName(); name != "" {
		data["author"] = person(name, site.Meta.Twitter())
	}
	if len(post.Tags) > 0 {
		data["keywords"] = strings.Join(post.Tags, ", ")
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func person(name, twitter string) map[string]interface{} {
	p := map[string]interface{}{
		"@type": "Person",
		"name":  name,
	}
	if twitter != "" {
		p["sameAs"] = []string{"https://twitter.com/" + twitter}
	}
	return p
}
