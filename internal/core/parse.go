package core

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"pinfile/internal/shared"
	"pinfile/internal/types"
)

// projectNamePattern is the PEP 508 name grammar: leading and trailing
// characters must be alphanumeric, separators limited to ".", "-", "_".
var projectNamePattern = regexp.MustCompile(`^([A-Za-z0-9]|[A-Za-z0-9][A-Za-z0-9._-]*[A-Za-z0-9])$`)

// rangeOperators are specifier tokens that indicate a version range
// rather than an exact pin. Longer tokens precede shorter ones so a
// scan never mistakes ">=" for ">".
var rangeOperators = []string{">=", "<=", "~=", "!=", "===", ">", "<"}

// ParseManifest reads a requirements manifest per the pinned-manifest
// contract: one `name==version` entry per line, `#` comment lines
// partitioning entries into sections, blank lines insignificant beyond
// ending a section. Lines that violate the contract are reported as
// findings (severity left for the lint policy to assign) and excluded
// from the returned manifest.
func ParseManifest(reader io.Reader, path string) (types.Manifest, []types.Finding, error) {
	manifest := types.Manifest{Path: path}
	var findings []types.Finding
	current := types.Section{}
	flush := func() {
		if len(current.Comments) > 0 || len(current.Pins) > 0 {
			manifest.Sections = append(manifest.Sections, current)
		}
		current = types.Section{}
	}

	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(current.Pins) > 0 {
				flush()
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			if len(current.Pins) > 0 {
				flush()
			}
			current.Comments = append(current.Comments, trimmed)
			continue
		}
		pin, finding := parseEntry(trimmed, lineNo)
		if finding != nil {
			findings = append(findings, *finding)
			continue
		}
		current.Pins = append(current.Pins, pin)
	}
	if err := scanner.Err(); err != nil {
		return types.Manifest{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read manifest").
			WithCause(err)
	}
	flush()
	return manifest, findings, nil
}

// parseEntry parses one non-comment, non-blank line. The returned
// finding is nil exactly when the line is a well-formed exact pin.
func parseEntry(raw string, lineNo int) (types.Pin, *types.Finding) {
	entry := stripInlineComment(raw)
	if idx := strings.Index(entry, ";"); idx >= 0 {
		return types.Pin{}, &types.Finding{
			Code:    types.FindingMarker,
			Line:    lineNo,
			Message: fmt.Sprintf("environment marker not allowed in pinned manifest: %s", entry),
		}
	}

	name, version, found := splitExactPin(entry)
	if !found {
		for _, op := range rangeOperators {
			if strings.Contains(entry, op) {
				return types.Pin{}, &types.Finding{
					Code:    types.FindingRangeSpecifier,
					Line:    lineNo,
					Message: fmt.Sprintf("version range not allowed, expected exact pin: %s", entry),
				}
			}
		}
		return types.Pin{}, &types.Finding{
			Code:    types.FindingMalformedLine,
			Line:    lineNo,
			Message: fmt.Sprintf("line does not match <name>==<version>: %s", entry),
		}
	}
	if name == "" || version == "" {
		return types.Pin{}, &types.Finding{
			Code:    types.FindingMalformedLine,
			Line:    lineNo,
			Message: fmt.Sprintf("line does not match <name>==<version>: %s", entry),
		}
	}
	if strings.ContainsAny(version, ",<>~!") || strings.Contains(version, "==") {
		return types.Pin{}, &types.Finding{
			Code:    types.FindingRangeSpecifier,
			Line:    lineNo,
			Package: name,
			Message: fmt.Sprintf("compound specifier not allowed, expected exact pin: %s", entry),
		}
	}
	if strings.Contains(name, "[") {
		return types.Pin{}, &types.Finding{
			Code:    types.FindingExtras,
			Line:    lineNo,
			Package: name,
			Message: fmt.Sprintf("extras not allowed in pinned manifest: %s", entry),
		}
	}
	if !projectNamePattern.MatchString(name) {
		return types.Pin{}, &types.Finding{
			Code:    types.FindingInvalidName,
			Line:    lineNo,
			Package: name,
			Message: fmt.Sprintf("invalid project name: %s", name),
		}
	}
	if _, err := pep440.Parse(version); err != nil {
		return types.Pin{}, &types.Finding{
			Code:    types.FindingInvalidVersion,
			Line:    lineNo,
			Package: name,
			Message: fmt.Sprintf("invalid version for %s: %s", name, version),
		}
	}
	return types.Pin{
		Name:           name,
		NormalizedName: shared.NormalizeProjectName(name),
		Version:        version,
		Line:           lineNo,
	}, nil
}

// splitExactPin splits on the first "==" that is not part of "===".
func splitExactPin(entry string) (string, string, bool) {
	idx := strings.Index(entry, "==")
	if idx < 0 {
		return "", "", false
	}
	if strings.HasPrefix(entry[idx:], "===") {
		return "", "", false
	}
	name := strings.TrimSpace(entry[:idx])
	version := strings.TrimSpace(entry[idx+2:])
	return name, version, true
}

// stripInlineComment removes a trailing " #..." comment. A leading "#"
// never reaches this function; the parser handles full-line comments.
func stripInlineComment(entry string) string {
	if idx := strings.Index(entry, " #"); idx >= 0 {
		return strings.TrimSpace(entry[:idx])
	}
	return strings.TrimSpace(entry)
}
