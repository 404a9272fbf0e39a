package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/llamacodes/postdata/internal/model"
	"github.com/llamacodes/postdata/internal/storage"
)

// Artifact is one file produced by a build.
type Artifact struct {
	Path        string
	ContentType string
}

type Result struct {
	Entries    []*model.Entry
	ShortLinks int
	Artifacts  []Artifact
}

// OutputPaths are the storage paths of the aggregate outputs.
type OutputPaths struct {
	Metadata string
	RSS      string
	Sitemap  string
}

type BuildService struct {
	content    *ContentService
	feed       *FeedService
	sitemap    *SitemapService
	shortLinks *ShortLinkService
	storage    storage.Storage
	paths      OutputPaths
}

func NewBuildService(
	content *ContentService,
	feed *FeedService,
	sitemap *SitemapService,
	shortLinks *ShortLinkService,
	store storage.Storage,
	paths OutputPaths,
) *BuildService {
	return &BuildService{
		content:    content,
		feed:       feed,
		sitemap:    sitemap,
		shortLinks: shortLinks,
		storage:    store,
		paths:      paths,
	}
}

// Build scans the content, then writes the short-link files, the metadata
// index, the RSS feed and the sitemap. A duplicate short link fails the
// build before any file is written.
func (s *BuildService) Build(ctx context.Context) (*Result, error) {
	entries, err := s.content.Entries()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []*model.Entry{}
	}
	slog.Info("content collected", "entries", len(entries))

	if err := s.shortLinks.Check(entries); err != nil {
		return nil, err
	}

	metadata, err := json.Marshal(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metadata: %w", err)
	}
	rss, err := s.feed.GenerateRSS(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to render rss: %w", err)
	}
	sitemap, err := s.sitemap.GenerateSitemap(entries)
	if err != nil {
		return nil, fmt.Errorf("failed to render sitemap: %w", err)
	}

	result := &Result{Entries: entries}

	links, err := s.shortLinks.Write(ctx, entries)
	for _, p := range links {
		result.Artifacts = append(result.Artifacts, Artifact{Path: p, ContentType: "application/json"})
	}
	if err != nil {
		return result, err
	}
	result.ShortLinks = len(links)
	slog.Debug("short links written", "count", len(links))

	outputs := []struct {
		artifact Artifact
		data     []byte
	}{
		{Artifact{Path: s.paths.Metadata, ContentType: "application/json"}, metadata},
		{Artifact{Path: s.paths.RSS, ContentType: "application/rss+xml"}, rss},
		{Artifact{Path: s.paths.Sitemap, ContentType: "application/xml"}, sitemap},
	}
	for _, out := range outputs {
		if err := s.storage.Save(ctx, out.artifact.Path, bytes.NewReader(out.data), out.artifact.ContentType); err != nil {
			return result, err
		}
		result.Artifacts = append(result.Artifacts, out.artifact)
		slog.Debug("artifact written", "path", s.storage.URL(out.artifact.Path), "bytes", len(out.data))
	}

	slog.Info("build complete", "entries", len(entries), "short_links", result.ShortLinks)
	return result, nil
}
