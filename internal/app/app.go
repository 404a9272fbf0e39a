package app

import (
	"context"
	"fmt"

	"github.com/llamacodes/postdata/internal/config"
	"github.com/llamacodes/postdata/internal/service"
	"github.com/llamacodes/postdata/internal/storage"
)

type App struct {
	Cfg              *config.Config
	Storage          *storage.LocalStorage
	ContentService   *service.ContentService
	FeedService      *service.FeedService
	SitemapService   *service.SitemapService
	ShortLinkService *service.ShortLinkService
	BuildService     *service.BuildService
}

func New(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	site, err := service.NewSite(cfg.SiteURL, cfg.SiteTitle, cfg.SiteDescription, cfg.SiteLanguage)
	if err != nil {
		return nil, fmt.Errorf("failed to configure site: %w", err)
	}

	// Storage
	localStorage := storage.NewLocalStorage(cfg.SiteRoot)

	// Services
	contentService := service.NewContentService(cfg.ContentPath(), cfg.ContentFile, cfg.ReservedDirs)
	feedService := service.NewFeedService(site)
	sitemapService := service.NewSitemapService(site)
	shortLinkService := service.NewShortLinkService(localStorage, cfg.ShortLinkDir)
	buildService := service.NewBuildService(
		contentService,
		feedService,
		sitemapService,
		shortLinkService,
		localStorage,
		service.OutputPaths{
			Metadata: cfg.MetadataPath,
			RSS:      cfg.RSSPath,
			Sitemap:  cfg.SitemapPath,
		},
	)

	return &App{
		Cfg:              cfg,
		Storage:          localStorage,
		ContentService:   contentService,
		FeedService:      feedService,
		SitemapService:   sitemapService,
		ShortLinkService: shortLinkService,
		BuildService:     buildService,
	}, nil
}

// Publisher connects to the configured bucket and returns a publish service
// that uploads this app's build outputs.
func (a *App) Publisher(ctx context.Context) (*service.PublishService, error) {
	if err := a.Cfg.ValidatePublish(); err != nil {
		return nil, err
	}

	remote, err := storage.NewS3(ctx, a.Cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	return service.NewPublishService(a.BuildService, a.Storage, remote), nil
}
