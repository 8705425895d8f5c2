package types

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

type FindingCode string

const (
	FindingMalformedLine    FindingCode = "malformed-line"
	FindingInvalidName      FindingCode = "invalid-name"
	FindingInvalidVersion   FindingCode = "invalid-version"
	FindingRangeSpecifier   FindingCode = "range-specifier"
	FindingExtras           FindingCode = "extras"
	FindingMarker           FindingCode = "environment-marker"
	FindingConflictingPin   FindingCode = "conflicting-pin"
	FindingDuplicatePin     FindingCode = "duplicate-pin"
	FindingDenormalizedName FindingCode = "denormalized-name"
	FindingUnsortedEntry    FindingCode = "unsorted-entry"

	FindingUnknownProject         FindingCode = "unknown-project"
	FindingUnknownVersion         FindingCode = "unknown-version"
	FindingUnsatisfiedRequirement FindingCode = "unsatisfied-requirement"
)

type DiffAction string

const (
	DiffAdded      DiffAction = "added"
	DiffRemoved    DiffAction = "removed"
	DiffUpgraded   DiffAction = "upgraded"
	DiffDowngraded DiffAction = "downgraded"
)
