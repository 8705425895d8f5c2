package app

import "pinfile/internal/types"

type ValidateRequest struct {
	ManifestPath string
	Strict       bool
	// OutputDir, when set, receives a lint.report file.
	OutputDir string
}

type ValidateResult struct {
	PinCount int
	Findings []types.Finding
}

type InspectRequest struct {
	ManifestPath string
}

type InspectSectionSummary struct {
	Title    string
	Count    int
	Packages []string
}

type InspectResult struct {
	PinCount int
	Sections []InspectSectionSummary
}

type DiffRequest struct {
	BeforePath string
	AfterPath  string
	OutputDir  string
}

type DiffResult struct {
	Report types.DiffReport
}

type FormatRequest struct {
	ManifestPath string
	// Write rewrites the manifest in place; otherwise the canonical
	// rendering is only returned.
	Write bool
}

type FormatResult struct {
	Changed  bool
	Rendered string
}

type AuditRequest struct {
	ManifestPath string
	IndexPath    string
	Strict       bool
	OutputDir    string
}

type AuditResult struct {
	PinCount int
	Findings []types.Finding
}

type OutdatedRequest struct {
	ManifestPath string
	IndexPath    string
	OutputDir    string
}

type OutdatedResult struct {
	Report types.OutdatedReport
}

type IndexBuildRequest struct {
	ManifestPath     string
	IndexURL         string
	OutputPath       string
	User             string
	APIKey           string
	Workers          int
	HTTPTimeoutSec   int
	HTTPRetries      int
	HTTPRetryDelayMs int
}

type IndexBuildResult struct {
	OutputPath   string
	PackageCount int
}
