package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/core"
	"pinfile/internal/ports"
)

// IndexBuild snapshots the remote index entries for every project the
// manifest pins and writes them to a local index file that audit and
// outdated can run against offline.
func (s Service) IndexBuild(ctx context.Context, req IndexBuildRequest) (IndexBuildResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return IndexBuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath == "" {
		return IndexBuildResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	manifest, _, err := s.Manifests.Load(manifestPath)
	if err != nil {
		return IndexBuildResult{}, err
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return IndexBuildResult{}, err
	}

	var names []string
	pinned := map[string]string{}
	for _, pin := range manifest.AllPins() {
		names = append(names, pin.NormalizedName)
		pinned[pin.NormalizedName] = pin.Version
	}
	index, err := s.IndexBuilder.Build(ctx, ports.IndexBuildRequest{
		IndexURL:         req.IndexURL,
		User:             req.User,
		APIKey:           req.APIKey,
		Packages:         names,
		PinnedVersions:   pinned,
		Workers:          req.Workers,
		HTTPTimeoutSec:   req.HTTPTimeoutSec,
		HTTPRetries:      req.HTTPRetries,
		HTTPRetryDelayMs: req.HTTPRetryDelayMs,
	})
	if err != nil {
		return IndexBuildResult{}, err
	}
	if err := s.IndexWriter.Write(outputPath, index); err != nil {
		return IndexBuildResult{}, err
	}
	return IndexBuildResult{
		OutputPath:   outputPath,
		PackageCount: len(index.Packages),
	}, nil
}
