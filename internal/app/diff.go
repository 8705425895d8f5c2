package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/adapters"
	"pinfile/internal/core"
)

func (s Service) Diff(ctx context.Context, req DiffRequest) (DiffResult, error) {
	beforePath := strings.TrimSpace(req.BeforePath)
	afterPath := strings.TrimSpace(req.AfterPath)
	if beforePath == "" || afterPath == "" {
		return DiffResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("both manifest paths are required")
	}
	before, _, err := s.Manifests.Load(beforePath)
	if err != nil {
		return DiffResult{}, err
	}
	after, _, err := s.Manifests.Load(afterPath)
	if err != nil {
		return DiffResult{}, err
	}
	if err := core.ValidateManifest(ctx, before); err != nil {
		return DiffResult{}, err
	}
	if err := core.ValidateManifest(ctx, after); err != nil {
		return DiffResult{}, err
	}

	report := core.NewDiffer().Diff(before, after)
	if dir := strings.TrimSpace(req.OutputDir); dir != "" {
		if err := adapters.NewReportFileAdapter(dir).WriteDiffReport(report); err != nil {
			return DiffResult{}, err
		}
	}
	return DiffResult{Report: report}, nil
}
