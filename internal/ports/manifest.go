package ports

import "pinfile/internal/types"

type ManifestPort interface {
	// Load parses the manifest at path. Findings describe lines that
	// violate the pinned-manifest contract; their severity is not yet
	// assigned.
	Load(path string) (types.Manifest, []types.Finding, error)
	// Save writes the manifest in canonical form.
	Save(path string, manifest types.Manifest) error
}
