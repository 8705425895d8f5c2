package ports

import (
	"context"

	"pinfile/internal/types"
)

type IndexPort interface {
	// AvailableVersions returns the published versions for a project,
	// looked up by PEP 503 normalized name.
	AvailableVersions(name string) ([]string, error)
	// Requirements returns the raw requirement strings declared by one
	// release, or nil when the index carries no metadata for it.
	Requirements(name string, version string) ([]string, error)
}

type IndexBuildRequest struct {
	IndexURL string
	User     string
	APIKey   string
	// Packages limits the snapshot to the given project names.
	Packages []string
	// PinnedVersions selects the release whose requirement metadata is
	// fetched, keyed by normalized name.
	PinnedVersions   map[string]string
	Workers          int
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

type IndexBuilderPort interface {
	Build(ctx context.Context, request IndexBuildRequest) (types.IndexFile, error)
}

type IndexWriterPort interface {
	Write(path string, index types.IndexFile) error
}
