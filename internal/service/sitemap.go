package service

import (
	"encoding/xml"

	"github.com/llamacodes/postdata/internal/model"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type SitemapService struct {
	site Site
}

// NewSitemapService creates a new sitemap service
func NewSitemapService(site Site) *SitemapService {
	return &SitemapService{
		site: site,
	}
}

// GenerateSitemap renders one <url> per entry, in the order given.
func (s *SitemapService) GenerateSitemap(entries []*model.Entry) ([]byte, error) {
	sitemap := model.Sitemap{
		XMLNS: sitemapNamespace,
		URLs:  make([]model.SitemapURL, 0, len(entries)),
	}

	for _, entry := range entries {
		u := model.SitemapURL{
			Loc: s.site.EntryURL(entry.Directory),
		}
		// W3C date format, as required by the sitemap protocol
		if entry.HasDate() {
			u.LastMod = entry.Published.Format("2006-01-02")
		}
		sitemap.URLs = append(sitemap.URLs, u)
	}

	// Generate XML
	output, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return nil, err
	}

	// Add XML header
	result := xml.Header + string(output) + "\n"
	return []byte(result), nil
}
