package service

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/llamacodes/postdata/internal/markdown"
	"github.com/llamacodes/postdata/internal/model"
)

const canonicalDateLayout = "2006/01/02"

// dateLayouts are tried in order when reading date_updated / date_created.
var dateLayouts = []string{
	"2006-1-2",
	"2006/1/2",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	time.RFC1123Z,
	time.RFC1123,
	"January 2, 2006",
	"January 2 2006",
	"Jan 2, 2006",
	"Jan 2 2006",
	"1/2/2006",
}

type ContentService struct {
	parser       *markdown.Parser
	contentPath  string
	contentFile  string
	reservedDirs []string
}

func NewContentService(contentPath, contentFile string, reservedDirs []string) *ContentService {
	return &ContentService{
		parser:       markdown.NewParser(),
		contentPath:  contentPath,
		contentFile:  contentFile,
		reservedDirs: reservedDirs,
	}
}

// Directories lists the content folders to scan in lexical order, skipping
// dot-directories and reserved names.
func (s *ContentService) Directories() ([]string, error) {
	items, err := os.ReadDir(s.contentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read content directory %s: %w", s.contentPath, err)
	}

	var dirs []string
	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		name := item.Name()
		if strings.HasPrefix(name, ".") || slices.Contains(s.reservedDirs, name) {
			slog.Debug("skipping content directory", "directory", name)
			continue
		}
		dirs = append(dirs, name)
	}
	return dirs, nil
}

// Metadata reads the front matter of one content folder's document.
func (s *ContentService) Metadata(dir string) (map[string]string, error) {
	path := filepath.Join(s.contentPath, dir, s.contentFile)
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	meta, err := s.parser.ExtractFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return meta, nil
}

// Entries scans every content folder and returns the published entries sorted
// by date, most recent first.
func (s *ContentService) Entries() ([]*model.Entry, error) {
	dirs, err := s.Directories()
	if err != nil {
		return nil, err
	}

	var entries []*model.Entry
	for _, dir := range dirs {
		meta, err := s.Metadata(dir)
		if err != nil {
			return nil, err
		}

		entry, err := NormalizeEntry(dir, meta)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			slog.Debug("excluding content", "directory", dir)
			continue
		}
		entries = append(entries, entry)
	}

	SortEntries(entries)
	return entries, nil
}

// NormalizeEntry turns raw front matter into an entry. It returns nil without
// error for drafts, hidden content and documents without a title.
func NormalizeEntry(dir string, meta map[string]string) (*model.Entry, error) {
	if meta["draft"] == "true" {
		return nil, nil
	}
	if meta["hide"] == "true" {
		return nil, nil
	}

	title := strings.TrimSpace(meta["title"])
	if title == "" {
		return nil, nil
	}

	entry := &model.Entry{
		Title:     title,
		Category:  strings.TrimSpace(meta["category"]),
		ShortLink: strings.TrimSpace(meta["short_link"]),
		Image:     strings.TrimSpace(meta["image"]),
		Directory: dir,
	}

	key := "date_updated"
	raw, ok := meta[key]
	if !ok || strings.TrimSpace(raw) == "" {
		key = "date_created"
		raw = meta[key]
	}
	raw = strings.TrimSpace(raw)
	if raw != "" {
		date, err := parseDate(raw)
		if err != nil {
			return nil, &InvalidDateError{Directory: dir, Key: key, Value: raw}
		}
		entry.Published = date
		entry.Date = date.Format(canonicalDateLayout)
	}

	return entry, nil
}

// parseDate returns the calendar day written in value, ignoring any time of day or zone.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// SortEntries orders entries by date, most recent first. Equal dates keep
// their relative order and undated entries go last.
func SortEntries(entries []*model.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.HasDate() {
			return false
		}
		if !b.HasDate() {
			return true
		}
		return a.Published.After(b.Published)
	})
}
