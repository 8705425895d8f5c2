package types

// Pin is one `name==version` entry of a requirements manifest.
type Pin struct {
	// Name is the project name exactly as written in the manifest.
	Name string
	// NormalizedName is the PEP 503 normalized form of Name. All
	// cross-referencing (duplicate detection, index lookups, diffing)
	// uses the normalized form.
	NormalizedName string
	Version        string
	// Line is the 1-based line number of the entry in its source file.
	Line int
}

// Section is a run of pins introduced by zero or more comment lines.
// Comments carry no machine semantics; they only partition entries into
// human-readable groups and are preserved verbatim on rewrite.
type Section struct {
	Comments []string
	Pins     []Pin
}

type Manifest struct {
	Path     string
	Sections []Section
}

// AllPins returns the manifest's pins flattened in file order.
func (m Manifest) AllPins() []Pin {
	var out []Pin
	for _, section := range m.Sections {
		out = append(out, section.Pins...)
	}
	return out
}
