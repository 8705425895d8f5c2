package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pinfile/internal/ports"
	"pinfile/internal/types"
)

type Auditor struct {
	Index  ports.IndexPort
	Policy ports.PolicyPort
}

func NewAuditor(index ports.IndexPort, policy ports.PolicyPort) Auditor {
	return Auditor{Index: index, Policy: policy}
}

// Audit checks that the pinned set is mutually resolvable against a
// package index: every pin names a known project, the pinned version is
// published, and every requirement declared by the pinned release is
// satisfied by another pin in the manifest. Each violation becomes a
// finding; an installer given this manifest would fail on any of them
// before the consuming application runs.
func (a Auditor) Audit(ctx context.Context, manifest types.Manifest) (types.AuditReport, error) {
	if a.Index == nil || a.Policy == nil {
		return types.AuditReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("auditor requires index and policy ports")
	}

	pinned := lastPinByName(manifest)
	var findings []types.Finding
	for _, pin := range manifest.AllPins() {
		available, err := a.Index.AvailableVersions(pin.NormalizedName)
		if err != nil {
			return types.AuditReport{}, err
		}
		if len(available) == 0 {
			findings = append(findings, types.Finding{
				Code:    types.FindingUnknownProject,
				Package: pin.Name,
				Line:    pin.Line,
				Message: fmt.Sprintf("%s is not present in the index", pin.Name),
			})
			continue
		}
		if !containsVersion(available, pin.Version) {
			findings = append(findings, types.Finding{
				Code:    types.FindingUnknownVersion,
				Package: pin.Name,
				Line:    pin.Line,
				Message: fmt.Sprintf("%s has no published release %s", pin.Name, pin.Version),
			})
			continue
		}
		requirementFindings, err := a.auditRequirements(pin, pinned)
		if err != nil {
			return types.AuditReport{}, err
		}
		findings = append(findings, requirementFindings...)
	}

	for i := range findings {
		findings[i].Severity = a.Policy.SeverityFor(findings[i].Code)
	}
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Line != findings[j].Line {
			return findings[i].Line < findings[j].Line
		}
		return findings[i].Message < findings[j].Message
	})

	log.Ctx(ctx).Debug().Int("findings", len(findings)).Msg("audit completed")
	return types.AuditReport{Findings: findings}, nil
}

func (a Auditor) auditRequirements(pin types.Pin, pinned map[string]types.Pin) ([]types.Finding, error) {
	declared, err := a.Index.Requirements(pin.NormalizedName, pin.Version)
	if err != nil {
		return nil, err
	}
	var findings []types.Finding
	for _, raw := range declared {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		requirement, err := ParseRequirement(raw)
		if err != nil {
			return nil, err
		}
		if requirement.Conditional {
			continue
		}
		target, isPinned := pinned[requirement.NormalizedName]
		if !isPinned {
			findings = append(findings, types.Finding{
				Code:    types.FindingUnsatisfiedRequirement,
				Package: pin.Name,
				Line:    pin.Line,
				Message: fmt.Sprintf("%s requires %s which is not pinned", pin.Name, strings.TrimSpace(raw)),
			})
			continue
		}
		satisfied, err := requirement.SatisfiedBy(target.Version)
		if err != nil {
			return nil, err
		}
		if !satisfied {
			findings = append(findings, types.Finding{
				Code:    types.FindingUnsatisfiedRequirement,
				Package: pin.Name,
				Line:    pin.Line,
				Message: fmt.Sprintf("%s requires %s but %s==%s is pinned", pin.Name, strings.TrimSpace(raw), target.Name, target.Version),
			})
		}
	}
	return findings, nil
}

func containsVersion(available []string, version string) bool {
	for _, candidate := range available {
		if VersionsEqual(candidate, version) {
			return true
		}
	}
	return false
}
