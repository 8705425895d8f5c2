package ports

import "pinfile/internal/types"

type PolicyPort interface {
	// SeverityFor maps a finding code to the severity it carries under
	// the active policy.
	SeverityFor(code types.FindingCode) types.Severity
}
