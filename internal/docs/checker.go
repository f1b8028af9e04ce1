// Package docs scans a Mintlify documentation tree: MDX pages with YAML
// frontmatter plus a docs.json navigation manifest. The checker reports
// pages missing required frontmatter and navigation entries that point at
// no page on disk.
package docs

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// navManifest is the name of the Mintlify navigation file.
const navManifest = "docs.json"

// pageMeta is the YAML frontmatter structure of an MDX page.
type pageMeta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Page is one documentation page found on disk.
type Page struct {
	// Path is slash-separated and relative to the tree root.
	Path        string
	Title       string
	Description string
}

// Problem is one finding from Check.
type Problem struct {
	Page  string
	Issue string
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Page, p.Issue)
}

// Checker validates one documentation tree.
type Checker struct {
	root string
}

// NewChecker creates a Checker rooted at dir.
func NewChecker(dir string) *Checker {
	return &Checker{root: dir}
}

// Pages walks the tree and returns every MDX page with its parsed
// frontmatter, sorted by path. Hidden directories and node_modules are
// skipped.
func (c *Checker) Pages() ([]Page, error) {
	var pages []Page
	err := filepath.WalkDir(c.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != c.root && (strings.HasPrefix(name, ".") || name == "node_modules") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(d.Name(), ".mdx") {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read page %s: %w", path, err)
		}
		rel, err := filepath.Rel(c.root, path)
		if err != nil {
			return err
		}
		meta := parseFrontmatter(data)
		pages = append(pages, Page{
			Path:        filepath.ToSlash(rel),
			Title:       meta.Title,
			Description: meta.Description,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk docs tree: %w", err)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Path < pages[j].Path })
	return pages, nil
}

// Check returns all problems in the tree: pages missing a title or
// description, and navigation entries with no page on disk.
func (c *Checker) Check() ([]Problem, error) {
	pages, err := c.Pages()
	if err != nil {
		return nil, err
	}

	var problems []Problem
	for _, p := range pages {
		if p.Title == "" {
			problems = append(problems, Problem{Page: p.Path, Issue: "missing title in frontmatter"})
		}
		if p.Description == "" {
			problems = append(problems, Problem{Page: p.Path, Issue: "missing description in frontmatter"})
		}
	}

	entries, err := c.NavPages()
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if !c.pageExists(entry) {
			problems = append(problems, Problem{Page: entry, Issue: "listed in " + navManifest + " but no page on disk"})
		}
	}
	return problems, nil
}

// NavPages returns the page paths referenced by docs.json, in manifest
// order. A missing manifest is not an error; the tree simply has no
// navigation to validate.
func (c *Checker) NavPages() ([]string, error) {
	data, err := os.ReadFile(filepath.Join(c.root, navManifest))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", navManifest, err)
	}

	var manifest map[string]any
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse %s: %w", navManifest, err)
	}

	nav, ok := manifest["navigation"]
	if !ok {
		return nil, nil
	}
	var entries []string
	collectNavStrings(nav, &entries)
	return entries, nil
}

// collectNavStrings gathers every string that appears inside an array under
// the navigation subtree. Page references are array elements; group and tab
// labels are object values and stay out.
func collectNavStrings(node any, out *[]string) {
	switch v := node.(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				*out = append(*out, s)
				continue
			}
			collectNavStrings(item, out)
		}
	case map[string]any:
		for _, item := range v {
			collectNavStrings(item, out)
		}
	}
}

// pageExists reports whether a navigation entry resolves to a page file.
// Entries carry no extension; .mdx is canonical, .md accepted.
func (c *Checker) pageExists(entry string) bool {
	for _, ext := range []string{".mdx", ".md"} {
		if _, err := os.Stat(filepath.Join(c.root, filepath.FromSlash(entry)+ext)); err == nil {
			return true
		}
	}
	return false
}

// parseFrontmatter extracts the YAML block between the leading --- fence
// and the closing one. Pages without a fence yield empty metadata.
func parseFrontmatter(content []byte) pageMeta {
	s := string(content)
	if !strings.HasPrefix(s, "---") {
		return pageMeta{}
	}
	rest := s[3:]
	end := strings.Index(rest, "\n---")
	if end < 0 {
		return pageMeta{}
	}
	var m pageMeta
	_ = yaml.Unmarshal([]byte(rest[:end]), &m)
	return m
}
