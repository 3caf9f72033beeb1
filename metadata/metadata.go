// Package metadata holds the site-wide author and social data that the page
// components read. Every field is optional; the accessors on *Site return
// zero values instead of panicking when a section is missing.
package metadata

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Site is the metadata block describing the site and its author.
type Site struct {
	Title       string  `yaml:"title"`
	Description string  `yaml:"description"`
	SiteURL     string  `yaml:"siteUrl"`
	Author      *Author `yaml:"author"`
	Social      *Social `yaml:"social"`
}

// Author describes the person behind the site.
type Author struct {
	Name    string `yaml:"name"`
	Summary string `yaml:"summary"`
}

// Social holds social network handles (without the leading @).
type Social struct {
	Twitter string `yaml:"twitter"`
}

// Load reads a YAML metadata file from path.
func Load(path string) (*Site, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("metadata: read %s: %w", path, err)
	}
	site, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("metadata: %s: %w", path, err)
	}
	return site, nil
}

// Parse decodes YAML metadata. Unknown keys are rejected so typos in the
// metadata file surface at startup.
func Parse(b []byte) (*Site, error) {
	var site Site
	if len(bytes.TrimSpace(b)) == 0 {
		return &site, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil {
		return nil, err
	}
	site.SiteURL = strings.TrimSuffix(strings.TrimSpace(site.SiteURL), "/")
	return &site, nil
}

// AuthorName returns author.name or "".
func (s *Site) AuthorName() string {
	if s == nil || s.Author == nil {
		return ""
	}
	return strings.TrimSpace(s.Author.Name)
}

// AuthorSummary returns author.summary or "".
func (s *Site) AuthorSummary() string {
	if s == nil || s.Author == nil {
		return ""
	}
	return strings.TrimSpace(s.Author.Summary)
}

// Twitter returns social.twitter or "".
func (s *Site) Twitter() string {
	if s == nil || s.Social == nil {
		return ""
	}
	return strings.TrimPrefix(strings.TrimSpace(s.Social.Twitter), "@")
}

// TitleOr returns the site title, or fallback when none is set.
func (s *Site) TitleOr(fallback string) string {
	if s == nil || strings.TrimSpace(s.Title) == "" {
		return fallback
	}
	return s.Title
}
