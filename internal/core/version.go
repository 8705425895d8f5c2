package core

import (
	"regexp"
	"sort"

	pep440 "github.com/aquasecurity/go-pep440-version"
)

// CompareVersions returns -1, 0, or 1 for two PEP 440 version strings.
// Unparsable versions fall back to lexical comparison.
func CompareVersions(a string, b string) int {
	va, errA := pep440.Parse(a)
	vb, errB := pep440.Parse(b)
	if errA != nil || errB != nil {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	}
	return va.Compare(vb)
}

// VersionsEqual reports PEP 440 equality, so "1.0" matches "1.0.0".
func VersionsEqual(a string, b string) bool {
	va, errA := pep440.Parse(a)
	vb, errB := pep440.Parse(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return va.Equal(vb)
}

// SortVersions orders version strings ascending by PEP 440 semantics.
func SortVersions(versions []string) []string {
	sort.Slice(versions, func(i, j int) bool {
		return CompareVersions(versions[i], versions[j]) < 0
	})
	return versions
}

// preReleasePattern matches alpha/beta/rc/dev segments of a PEP 440
// version. Post releases ("1.0.post2") deliberately do not match.
var preReleasePattern = regexp.MustCompile(`(?i)(a|b|c|rc|alpha|beta|pre|preview)\.?[0-9]*$|\.?dev[0-9]*$`)

// LatestVersion picks the newest version, preferring final releases.
// Pre-releases are only considered when no final release exists.
func LatestVersion(versions []string) string {
	if len(versions) == 0 {
		return ""
	}
	ordered := SortVersions(append([]string(nil), versions...))
	for i := len(ordered) - 1; i >= 0; i-- {
		if !preReleasePattern.MatchString(ordered[i]) {
			return ordered[i]
		}
	}
	return ordered[len(ordered)-1]
}
