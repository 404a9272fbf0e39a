package service

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/llamacodes/postdata/internal/model"
)

type FeedService struct {
	site Site
	now  func() time.Time
}

func NewFeedService(site Site) *FeedService {
	return &FeedService{
		site: site,
		now:  time.Now,
	}
}

// GenerateRSS renders an RSS 2.0 document with one item per entry, in the order given.
func (s *FeedService) GenerateRSS(entries []*model.Entry) ([]byte, error) {
	feed := model.RSS{
		Version: "2.0",
		Channel: model.RSSChannel{
			Title:         s.site.Title,
			Description:   s.site.Description,
			Link:          s.site.Home(),
			LastBuildDate: s.now().UTC().Format(time.RFC1123Z),
			Language:      s.site.Language,
			Items:         make([]model.RSSItem, 0, len(entries)),
		},
	}

	for _, entry := range entries {
		link := s.site.EntryURL(entry.Directory)
		item := model.RSSItem{
			Title:       entry.Title,
			Link:        link,
			Description: fmt.Sprintf(`<a href="%s">read more</a>`, link),
			Category:    entry.Category,
			GUID: model.RSSGUID{
				Value:       uuid.NewSHA1(uuid.NameSpaceURL, []byte(link)).String(),
				IsPermaLink: "false",
			},
		}
		if entry.HasDate() {
			item.PubDate = entry.Published.Format(time.RFC1123Z)
		}
		feed.Channel.Items = append(feed.Channel.Items, item)
	}

	output, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, err
	}

	result := xml.Header + string(output) + "\n"
	return []byte(result), nil
}
