package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/core"
	"pinfile/internal/types"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	manifestPath := strings.TrimSpace(req.ManifestPath)
	if manifestPath == "" {
		return InspectResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest path is required")
	}
	manifest, _, err := s.Manifests.Load(manifestPath)
	if err != nil {
		return InspectResult{}, err
	}
	if err := core.ValidateManifest(ctx, manifest); err != nil {
		return InspectResult{}, err
	}

	result := InspectResult{PinCount: len(manifest.AllPins())}
	for _, section := range manifest.Sections {
		summary := InspectSectionSummary{
			Title: sectionTitle(section),
			Count: len(section.Pins),
		}
		for _, pin := range section.Pins {
			summary.Packages = append(summary.Packages, pin.Name)
		}
		result.Sections = append(result.Sections, summary)
	}
	return result, nil
}

// sectionTitle derives a display title from the section's first
// comment line. Untitled sections fall back to a fixed label.
func sectionTitle(section types.Section) string {
	for _, comment := range section.Comments {
		title := strings.TrimSpace(strings.TrimLeft(comment, "# "))
		if title != "" {
			return title
		}
	}
	return "(untitled)"
}
