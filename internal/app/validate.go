package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/adapters"
	"pinfile/internal/core"
	"pinfile/internal/policies"
	"pinfile/internal/types"
)

// Validate parses and lints a manifest. The returned error carries a
// failed-precondition code when conflicting pins are present and an
// invalid-argument code for any other contract violation, so callers
// can exit with distinct codes while still reading the findings.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return ValidateResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, parseFindings, err := s.Manifests.Load(manifestPath)
	if err != nil {
		return ValidateResult{}, err
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return ValidateResult{}, err
	}
	linter := core.NewLinter(policies.NewLintPolicy(req.Strict))
	report, err := linter.Lint(ctx, manifest, parseFindings)
	if err != nil {
		return ValidateResult{}, err
	}
	if dir := strings.TrimSpace(req.OutputDir); dir != "" {
		if err := adapters.NewReportFileAdapter(dir).WriteLintReport(report); err != nil {
			return ValidateResult{}, err
		}
	}

	result := ValidateResult{
		PinCount: len(manifest.AllPins()),
		Findings: report.Findings,
	}
	if !report.HasErrors() {
		return result, nil
	}
	if hasFindingCode(report.Findings, types.FindingConflictingPin) {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("conflicting pins present")
	}
	return result, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("manifest violates the pinned format")
}

func hasFindingCode(findings []types.Finding, code types.FindingCode) bool {
	for _, finding := range findings {
		if finding.Code == code && finding.Severity == types.SeverityError {
			return true
		}
	}
	return false
}
