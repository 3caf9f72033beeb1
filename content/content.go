// Package content loads blog posts from a directory of markdown files.
//
// A post is a .md file with an optional YAML front matter block:
//
//	---
//	title: Hello
//	date: 2024-01-15
//	description: First post
//	tags: [go, web]
//	logo: kibana
//	---
//	Body in markdown.
//
// Files named index.md take their slug from the parent directory.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

// DateLayout is the front matter date format.
const DateLayout = "2006-01-02"

// ErrNotFound is returned when a requested post does not exist.
var ErrNotFound = errors.New("content: post not found")

// Post is a rendered blog post.
type Post struct {
	Title     string
	Date      string
	Tags      []string
	Summary   string
	Slug      string
	Logo      string
	Content   string // sanitized HTML
	Published bool
}

// Time parses Date. The zero time is returned for missing or bad dates.
func (p Post) Time() time.Time {
	t, err := time.Parse(DateLayout, p.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

type frontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Tags        []string `yaml:"tags"`
	Logo        string   `yaml:"logo"`
	Slug        string   `yaml:"slug"`
	Draft       bool     `yaml:"draft"`
}

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Typographer),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	policy = bluemonday.UGCPolicy()
)

// Dir is a directory of markdown posts.
type Dir string

// LoadPosts parses every markdown file under the directory and returns the
// published posts, newest first. A missing directory yields no posts.
func (d Dir) LoadPosts() ([]Post, error) {
	root := string(d)
	if _, err := os.Stat(root); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var posts []Post
	seen := make(map[string]string)
	err := filepath.WalkDir(root, func(path string, e fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if e.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		post, err := Parse(slugFromPath(path), b)
		if err != nil {
			return fmt.Errorf("content: %s: %w", path, err)
		}
		if !post.Published {
			return nil
		}
		if prev, ok := seen[post.Slug]; ok {
			return fmt.Errorf("content: duplicate slug %q in %s and %s", post.Slug, prev, path)
		}
		seen[post.Slug] = path
		posts = append(posts, post)
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortPosts(posts)
	return posts, nil
}

// Parse builds a post from a markdown source. fallbackSlug is used when the
// front matter does not set one.
func Parse(fallbackSlug string, src []byte) (Post, error) {
	fm, body, err := splitFrontMatter(src)
	if err != nil {
		return Post{}, err
	}
	var meta frontMatter
	if len(fm) > 0 {
		if err := yaml.Unmarshal(fm, &meta); err != nil {
			return Post{}, fmt.Errorf("front matter: %w", err)
		}
	}
	date := strings.TrimSpace(meta.Date)
	if date != "" {
		if _, err := time.Parse(DateLayout, date); err != nil {
			return Post{}, fmt.Errorf("invalid date %q, use YYYY-MM-DD", date)
		}
	}
	slug := Slugify(meta.Slug)
	if slug == "" {
		slug = Slugify(fallbackSlug)
	}
	if slug == "" {
		return Post{}, errors.New("post has no slug")
	}
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = slug
	}

	var buf bytes.Buffer
	if err := md.Convert(body, &buf); err != nil {
		return Post{}, fmt.Errorf("render markdown: %w", err)
	}

	return Post{
		Title:     title,
		Date:      date,
		Tags:      FilterEmpty(meta.Tags),
		Summary:   strings.TrimSpace(meta.Description),
		Slug:      slug,
		Logo:      strings.TrimSpace(meta.Logo),
		Content:   string(policy.SanitizeBytes(buf.Bytes())),
		Published: !meta.Draft,
	}, nil
}

// SortPosts orders posts newest first, then by slug.
func SortPosts(posts []Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		if posts[i].Date != posts[j].Date {
			return posts[i].Date > posts[j].Date
		}
		return posts[i].Slug < posts[j].Slug
	})
}

func splitFrontMatter(src []byte) (fm, body []byte, err error) {
	src = bytes.TrimPrefix(src, []byte("\uFEFF"))
	normalized := bytes.ReplaceAll(src, []byte("\r\n"), []byte("\n"))
	if !bytes.HasPrefix(normalized, []byte("---\n")) {
		return nil, normalized, nil
	}
	rest := normalized[len("---\n"):]
	if bytes.HasPrefix(rest, []byte("---\n")) {
		return nil, rest[len("---\n"):], nil
	}
	end := bytes.Index(rest, []byte("\n---\n"))
	if end < 0 {
		if bytes.HasSuffix(rest, []byte("\n---")) {
			return rest[:len(rest)-len("\n---")], nil, nil
		}
		return nil, nil, errors.New("unterminated front matter")
	}
	return rest[:end], rest[end+len("\n---\n"):], nil
}

func slugFromPath(path string) string {
	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base))
	if strings.EqualFold(name, "index") {
		return filepath.Base(filepath.Dir(path))
	}
	return name
}

// Slugify converts a title to a URL-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// FilterEmpty removes empty/whitespace-only strings from a slice.
func FilterEmpty(vals []string) []string {
	var out []string
	for _, v := range vals {
		if s := strings.TrimSpace(v); s != "" {
			out = append(out, s)
		}
	}
	return out
}
