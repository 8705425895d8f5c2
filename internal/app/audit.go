package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/adapters"
	"pinfile/internal/core"
	"pinfile/internal/policies"
)

// Audit checks the pinned set for mutual resolvability against an
// index snapshot. An unresolvable set fails with a failed-precondition
// error whose message starts with "unresolvable pinned set".
func (s Service) Audit(ctx context.Context, req AuditRequest) (AuditResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return AuditResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	indexPath := strings.TrimSpace(req.IndexPath)
	if indexPath == "" {
		return AuditResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index file is required")
	}
	manifest, parseFindings, err := s.Manifests.Load(manifestPath)
	if err != nil {
		return AuditResult{}, err
	}
	if len(parseFindings) > 0 {
		return AuditResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest violates the pinned format, run validate first")
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return AuditResult{}, err
	}

	auditor := core.NewAuditor(adapters.NewIndexFileAdapter(indexPath), policies.NewLintPolicy(req.Strict))
	report, err := auditor.Audit(ctx, manifest)
	if err != nil {
		return AuditResult{}, err
	}
	if dir := strings.TrimSpace(req.OutputDir); dir != "" {
		if err := adapters.NewReportFileAdapter(dir).WriteAuditReport(report); err != nil {
			return AuditResult{}, err
		}
	}

	result := AuditResult{
		PinCount: len(manifest.AllPins()),
		Findings: report.Findings,
	}
	if report.HasErrors() {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("unresolvable pinned set")
	}
	return result, nil
}
