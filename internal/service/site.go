package service

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/text/language"
)

// Site holds the fixed metadata rendered into the feed and sitemap.
type Site struct {
	URL         string
	Title       string
	Description string
	Language    string
}

// NewSite normalizes the base URL and canonicalizes the language tag.
func NewSite(baseURL, title, description, lang string) (Site, error) {
	base := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	u, err := url.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return Site{}, fmt.Errorf("invalid site URL %q", baseURL)
	}

	site := Site{
		URL:         base,
		Title:       title,
		Description: description,
	}

	if lang = strings.TrimSpace(lang); lang != "" {
		tag, err := language.Parse(lang)
		if err != nil {
			return Site{}, fmt.Errorf("invalid site language %q: %w", lang, err)
		}
		site.Language = tag.String()
	}
	return site, nil
}

// Home is the site root with a trailing slash.
func (s Site) Home() string {
	return s.URL + "/"
}

// EntryURL is the canonical URL of a content directory.
func (s Site) EntryURL(dir string) string {
	link, err := url.JoinPath(s.URL, dir)
	if err != nil {
		return s.URL + "/" + dir
	}
	return link
}
