package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/llamacodes/postdata/internal/storage"
)

// Source reads back artifacts written by a build.
type Source interface {
	Open(path string) (io.ReadCloser, error)
}

type PublishService struct {
	build  *BuildService
	source Source
	target storage.Storage
}

func NewPublishService(build *BuildService, source Source, target storage.Storage) *PublishService {
	return &PublishService{
		build:  build,
		source: source,
		target: target,
	}
}

// Publish runs a build and uploads every artifact it wrote to the target storage.
func (s *PublishService) Publish(ctx context.Context) (*Result, error) {
	result, err := s.build.Build(ctx)
	if err != nil {
		return result, err
	}

	for _, artifact := range result.Artifacts {
		if err := s.upload(ctx, artifact); err != nil {
			return result, err
		}
		slog.Info("artifact published", "url", s.target.URL(artifact.Path))
	}
	return result, nil
}

func (s *PublishService) upload(ctx context.Context, artifact Artifact) error {
	file, err := s.source.Open(artifact.Path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", artifact.Path, err)
	}
	defer file.Close()

	return s.target.Save(ctx, artifact.Path, file, artifact.ContentType)
}
