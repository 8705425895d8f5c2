package ports

import "pinfile/internal/types"

type ReportPort interface {
	WriteLintReport(report types.LintReport) error
	WriteAuditReport(report types.AuditReport) error
	WriteDiffReport(report types.DiffReport) error
	WriteOutdatedReport(report types.OutdatedReport) error
}
