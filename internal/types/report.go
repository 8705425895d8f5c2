package types

// Finding is a single lint or audit result tied to a manifest entry.
type Finding struct {
	Code     FindingCode
	Severity Severity
	Package  string
	Line     int
	Message  string
}

type LintReport struct {
	Findings []Finding
}

// HasErrors reports whether any finding carries error severity.
func (r LintReport) HasErrors() bool {
	for _, finding := range r.Findings {
		if finding.Severity == SeverityError {
			return true
		}
	}
	return false
}

type AuditReport struct {
	Findings []Finding
}

func (r AuditReport) HasErrors() bool {
	for _, finding := range r.Findings {
		if finding.Severity == SeverityError {
			return true
		}
	}
	return false
}

type DiffEntry struct {
	Action      DiffAction
	Package     string
	FromVersion string
	ToVersion   string
}

type DiffReport struct {
	Entries []DiffEntry
}

type OutdatedEntry struct {
	Package string
	Pinned  string
	Latest  string
}

type OutdatedReport struct {
	// Entries lists only pins that lag the newest index release.
	Entries []OutdatedEntry
	// Current counts pins already at the newest release.
	Current int
	// Unknown lists pins absent from the index.
	Unknown []string
}
