package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/ports"
	"pinfile/internal/types"
)

type ReportFileAdapter struct {
	Dir string
}

func NewReportFileAdapter(dir string) ReportFileAdapter {
	return ReportFileAdapter{Dir: dir}
}

func (a ReportFileAdapter) WriteLintReport(report types.LintReport) error {
	return a.writeFindings("lint.report", report.Findings)
}

func (a ReportFileAdapter) WriteAuditReport(report types.AuditReport) error {
	return a.writeFindings("audit.report", report.Findings)
}

func (a ReportFileAdapter) WriteDiffReport(report types.DiffReport) error {
	path, err := a.ensurePath("diff.report")
	if err != nil {
		return err
	}
	var lines []string
	for _, entry := range report.Entries {
		switch entry.Action {
		case types.DiffAdded:
			lines = append(lines, fmt.Sprintf("%s,%s,,%s", entry.Action, entry.Package, entry.ToVersion))
		case types.DiffRemoved:
			lines = append(lines, fmt.Sprintf("%s,%s,%s,", entry.Action, entry.Package, entry.FromVersion))
		default:
			lines = append(lines, fmt.Sprintf("%s,%s,%s,%s", entry.Action, entry.Package, entry.FromVersion, entry.ToVersion))
		}
	}
	return writeLines(path, lines)
}

func (a ReportFileAdapter) WriteOutdatedReport(report types.OutdatedReport) error {
	path, err := a.ensurePath("outdated.report")
	if err != nil {
		return err
	}
	var lines []string
	for _, entry := range report.Entries {
		lines = append(lines, fmt.Sprintf("%s,%s,%s", entry.Package, entry.Pinned, entry.Latest))
	}
	for _, name := range report.Unknown {
		lines = append(lines, fmt.Sprintf("%s,unknown,", name))
	}
	return writeLines(path, lines)
}

func (a ReportFileAdapter) writeFindings(filename string, findings []types.Finding) error {
	path, err := a.ensurePath(filename)
	if err != nil {
		return err
	}
	var lines []string
	for _, finding := range findings {
		lines = append(lines, fmt.Sprintf(
			"%s,%s,%d,%s,%s",
			finding.Severity,
			finding.Code,
			finding.Line,
			finding.Package,
			finding.Message,
		))
	}
	return writeLines(path, lines)
}

func (a ReportFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("report directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create report directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

func writeLines(path string, lines []string) error {
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write report").
			WithCause(err)
	}
	return nil
}

var _ ports.ReportPort = ReportFileAdapter{}
