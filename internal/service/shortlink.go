package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"strings"

	"github.com/llamacodes/postdata/internal/model"
	"github.com/llamacodes/postdata/internal/storage"
)

type ShortLinkService struct {
	storage storage.Storage
	dir     string
}

func NewShortLinkService(store storage.Storage, dir string) *ShortLinkService {
	return &ShortLinkService{
		storage: store,
		dir:     dir,
	}
}

// Check verifies every short link is a usable file name and claimed by at
// most one entry. It runs before anything is written.
func (s *ShortLinkService) Check(entries []*model.Entry) error {
	owners := make(map[string]string)
	for _, entry := range entries {
		if entry.ShortLink == "" {
			continue
		}
		if !validSlug(entry.ShortLink) {
			return &InvalidShortLinkError{Slug: entry.ShortLink, Directory: entry.Directory}
		}
		if owner, ok := owners[entry.ShortLink]; ok {
			return &DuplicateShortLinkError{
				Slug:      entry.ShortLink,
				Directory: owner,
				Conflict:  entry.Directory,
			}
		}
		owners[entry.ShortLink] = entry.Directory
	}
	return nil
}

// Write checks the entries and saves <slug>.json for each entry that has a
// short link. It returns the written paths.
func (s *ShortLinkService) Write(ctx context.Context, entries []*model.Entry) ([]string, error) {
	if err := s.Check(entries); err != nil {
		return nil, err
	}

	var written []string
	for _, entry := range entries {
		if entry.ShortLink == "" {
			continue
		}

		data, err := json.Marshal(entry)
		if err != nil {
			return written, fmt.Errorf("failed to encode short link %s: %w", entry.ShortLink, err)
		}

		p := s.Path(entry.ShortLink)
		if err := s.storage.Save(ctx, p, bytes.NewReader(data), "application/json"); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	return written, nil
}

// Path is the storage path of a slug's lookup file.
func (s *ShortLinkService) Path(slug string) string {
	return path.Join(s.dir, slug+".json")
}

func validSlug(slug string) bool {
	if strings.HasPrefix(slug, ".") {
		return false
	}
	return !strings.ContainsAny(slug, `/\`) && !strings.ContainsRune(slug, 0)
}
