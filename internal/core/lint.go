package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pinfile/internal/ports"
	"pinfile/internal/types"
)

type Linter struct {
	Policy ports.PolicyPort
}

func NewLinter(policy ports.PolicyPort) Linter {
	return Linter{Policy: policy}
}

// Lint checks the structural properties of a parsed manifest: each pin
// well-formed (parse findings passed in by the caller), no project
// pinned twice with conflicting versions, plus hygiene findings for
// duplicate identical pins, non-normalized spellings, and out-of-order
// entries within a section.
func (l Linter) Lint(ctx context.Context, manifest types.Manifest, parseFindings []types.Finding) (types.LintReport, error) {
	if l.Policy == nil {
		return types.LintReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("linter requires a policy port")
	}

	findings := append([]types.Finding(nil), parseFindings...)

	firstSeen := map[string]types.Pin{}
	for _, pin := range manifest.AllPins() {
		existing, seen := firstSeen[pin.NormalizedName]
		if !seen {
			firstSeen[pin.NormalizedName] = pin
			continue
		}
		if VersionsEqual(existing.Version, pin.Version) {
			findings = append(findings, types.Finding{
				Code:    types.FindingDuplicatePin,
				Package: pin.Name,
				Line:    pin.Line,
				Message: fmt.Sprintf("%s==%s already pinned at line %d", pin.Name, pin.Version, existing.Line),
			})
			continue
		}
		findings = append(findings, types.Finding{
			Code:    types.FindingConflictingPin,
			Package: pin.Name,
			Line:    pin.Line,
			Message: fmt.Sprintf("%s pinned at %s here but at %s on line %d", pin.Name, pin.Version, existing.Version, existing.Line),
		})
	}

	for _, pin := range manifest.AllPins() {
		if pin.Name != pin.NormalizedName {
			findings = append(findings, types.Finding{
				Code:    types.FindingDenormalizedName,
				Package: pin.Name,
				Line:    pin.Line,
				Message: fmt.Sprintf("%s is not in normalized form (%s)", pin.Name, pin.NormalizedName),
			})
		}
	}

	for _, section := range manifest.Sections {
		for i := 1; i < len(section.Pins); i++ {
			if section.Pins[i].NormalizedName < section.Pins[i-1].NormalizedName {
				findings = append(findings, types.Finding{
					Code:    types.FindingUnsortedEntry,
					Package: section.Pins[i].Name,
					Line:    section.Pins[i].Line,
					Message: fmt.Sprintf("%s is out of order within its section", section.Pins[i].Name),
				})
			}
		}
	}

	for i := range findings {
		findings[i].Severity = l.Policy.SeverityFor(findings[i].Code)
	}
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Code < findings[j].Code
	})

	log.Ctx(ctx).Debug().Int("findings", len(findings)).Msg("lint completed")
	return types.LintReport{Findings: findings}, nil
}
