package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/adapters"
	"pinfile/internal/core"
)

func (s Service) Outdated(ctx context.Context, req OutdatedRequest) (OutdatedResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return OutdatedResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	indexPath := strings.TrimSpace(req.IndexPath)
	if indexPath == "" {
		return OutdatedResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("index file is required")
	}
	manifest, _, err := s.Manifests.Load(manifestPath)
	if err != nil {
		return OutdatedResult{}, err
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return OutdatedResult{}, err
	}

	checker := core.NewOutdatedChecker(adapters.NewIndexFileAdapter(indexPath))
	report, err := checker.Check(ctx, manifest)
	if err != nil {
		return OutdatedResult{}, err
	}
	if dir := strings.TrimSpace(req.OutputDir); dir != "" {
		if err := adapters.NewReportFileAdapter(dir).WriteOutdatedReport(report); err != nil {
			return OutdatedResult{}, err
		}
	}
	return OutdatedResult{Report: report}, nil
}
