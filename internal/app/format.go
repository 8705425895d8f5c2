package app

import (
	"context"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/core"
)

func (s Service) Format(ctx context.Context, req FormatRequest) (FormatResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return FormatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	original, err := os.ReadFile(manifestPath)
	if err != nil {
		return FormatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	manifest, parseFindings, err := core.ParseManifest(strings.NewReader(string(original)), manifestPath)
	if err != nil {
		return FormatResult{}, err
	}
	if len(parseFindings) > 0 {
		return FormatResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest violates the pinned format, run validate first")
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return FormatResult{}, err
	}

	canonical := core.NewFormatter().Canonicalize(manifest)
	rendered := core.Render(canonical)
	result := FormatResult{
		Changed:  rendered != string(original),
		Rendered: rendered,
	}
	if req.Write && result.Changed {
		if err := s.Manifests.Save(manifestPath, canonical); err != nil {
			return FormatResult{}, err
		}
	}
	return result, nil
}
