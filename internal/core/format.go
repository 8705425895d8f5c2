package core

import (
	"sort"
	"strings"

	"pinfile/internal/types"
)

type Formatter struct{}

func NewFormatter() Formatter {
	return Formatter{}
}

// Canonicalize rewrites a manifest into canonical form: names replaced
// by their PEP 503 normalized spelling, entries sorted within each
// section, and identical duplicate pins dropped. Sections and their
// comments survive untouched; conflicting pins also survive so that a
// format pass never hides a lint error.
func (f Formatter) Canonicalize(manifest types.Manifest) types.Manifest {
	out := types.Manifest{Path: manifest.Path}
	seen := map[string]struct{}{}
	for _, section := range manifest.Sections {
		canonical := types.Section{Comments: append([]string(nil), section.Comments...)}
		for _, pin := range section.Pins {
			key := pin.NormalizedName + "==" + pin.Version
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			pin.Name = pin.NormalizedName
			canonical.Pins = append(canonical.Pins, pin)
		}
		sort.SliceStable(canonical.Pins, func(i, j int) bool {
			return canonical.Pins[i].NormalizedName < canonical.Pins[j].NormalizedName
		})
		if len(canonical.Comments) > 0 || len(canonical.Pins) > 0 {
			out.Sections = append(out.Sections, canonical)
		}
	}
	return out
}

// Render serializes a manifest back to the requirements format:
// comment lines verbatim, one `name==version` per line, sections
// separated by a single blank line, trailing newline included.
func Render(manifest types.Manifest) string {
	var blocks []string
	for _, section := range manifest.Sections {
		var lines []string
		lines = append(lines, section.Comments...)
		for _, pin := range section.Pins {
			lines = append(lines, pin.Name+"=="+pin.Version)
		}
		if len(lines) > 0 {
			blocks = append(blocks, strings.Join(lines, "\n"))
		}
	}
	if len(blocks) == 0 {
		return ""
	}
	return strings.Join(blocks, "\n\n") + "\n"
}
