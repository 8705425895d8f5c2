package policies

import "pinfile/internal/types"

// baseSeverities maps each finding code to its default severity.
// Contract violations (malformed lines, invalid names or versions,
// ranges, extras, markers, conflicting pins, unresolvable pins) are
// errors; hygiene findings are warnings.
var baseSeverities = map[types.FindingCode]types.Severity{
	types.FindingMalformedLine:  types.SeverityError,
	types.FindingInvalidName:    types.SeverityError,
	types.FindingInvalidVersion: types.SeverityError,
	types.FindingRangeSpecifier: types.SeverityError,
	types.FindingExtras:         types.SeverityError,
	types.FindingMarker:         types.SeverityError,
	types.FindingConflictingPin: types.SeverityError,

	types.FindingDuplicatePin:     types.SeverityWarning,
	types.FindingDenormalizedName: types.SeverityWarning,
	types.FindingUnsortedEntry:    types.SeverityWarning,

	types.FindingUnknownProject:         types.SeverityError,
	types.FindingUnknownVersion:         types.SeverityError,
	types.FindingUnsatisfiedRequirement: types.SeverityError,
}

type LintPolicy struct {
	// Strict promotes every warning to an error.
	Strict bool
}

func NewLintPolicy(strict bool) LintPolicy {
	return LintPolicy{Strict: strict}
}

func (p LintPolicy) SeverityFor(code types.FindingCode) types.Severity {
	severity, ok := baseSeverities[code]
	if !ok {
		severity = types.SeverityError
	}
	if p.Strict && severity == types.SeverityWarning {
		return types.SeverityError
	}
	return severity
}
