package types

// IndexFile is a snapshot of a package index, keyed by PEP 503
// normalized project name.
type IndexFile struct {
	Packages map[string][]string         `yaml:"packages"`
	Releases map[string][]ReleaseVersion `yaml:"releases,omitempty"`
}

// ReleaseVersion carries per-release metadata needed for the
// resolvability audit.
type ReleaseVersion struct {
	Version string `yaml:"version"`
	// Requires lists the release's declared requirements as raw
	// `name` or `name<specifiers>` strings (e.g. "click>=7.0").
	Requires []string `yaml:"requires,omitempty"`
}
