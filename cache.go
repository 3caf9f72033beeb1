package folio

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/eringen/folio/content"
)

// PostSource loads every published post.
type PostSource interface {
	LoadPosts() ([]content.Post, error)
}

// PostCache is an in-memory cache of published posts and tags with TTL.
type PostCache struct {
	mu      sync.RWMutex
	posts   []content.Post
	tags    []string
	fetched time.Time
	ttl     time.Duration
	source  PostSource
}

// NewPostCache creates a PostCache backed by the given source.
func NewPostCache(src PostSource, ttl time.Duration) *PostCache {
	return &PostCache{source: src, ttl: ttl}
}

func (c *PostCache) valid() bool {
	return c.posts != nil && time.Since(c.fetched) < c.ttl
}

// Invalidate clears the cache so the next read triggers a fresh load.
func (c *PostCache) Invalidate() {
	c.mu.Lock()
	c.posts = nil
	c.tags = nil
	c.mu.Unlock()
}

func (c *PostCache) load() error {
	if c.valid() {
		return nil
	}
	posts, err := c.source.LoadPosts()
	if err != nil {
		return err
	}
	if posts == nil {
		posts = []content.Post{}
	}
	c.posts = posts
	c.tags = collectTags(posts)
	c.fetched = time.Now()
	return nil
}

// ensureLoaded returns cached posts and tags after ensuring the cache is fresh.
// It tries a read lock first; only takes a write lock if a reload is needed.
func (c *PostCache) ensureLoaded() ([]content.Post, []string, error) {
	c.mu.RLock()
	if c.valid() {
		posts, tags := c.posts, c.tags
		c.mu.RUnlock()
		return posts, tags, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.load(); err != nil {
		return nil, nil, err
	}
	return c.posts, c.tags, nil
}

// ListPosts returns published posts, optionally filtered by tag.
func (c *PostCache) ListPosts(tag string) ([]content.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return nil, err
	}
	if tag == "" {
		return posts, nil
	}
	normalized := normalizeTag(tag)
	var filtered []content.Post
	for _, p := range posts {
		for _, t := range p.Tags {
			if normalizeTag(t) == normalized {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered, nil
}

// ListTags returns all unique tags from published posts, lowercased and sorted.
func (c *PostCache) ListTags() ([]string, error) {
	_, tags, err := c.ensureLoaded()
	return tags, err
}

// GetPost returns a single published post by slug.
func (c *PostCache) GetPost(slug string) (content.Post, error) {
	posts, _, err := c.ensureLoaded()
	if err != nil {
		return content.Post{}, err
	}
	for _, p := range posts {
		if p.Slug == slug {
			return p, nil
		}
	}
	return content.Post{}, content.ErrNotFound
}

func collectTags(posts []content.Post) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range posts {
		for _, t := range p.Tags {
			n := normalizeTag(t)
			if n == "" {
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			tags = append(tags, n)
		}
	}
	sort.Strings(tags)
	return tags
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
