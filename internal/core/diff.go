package core

import (
	"sort"

	"pinfile/internal/types"
)

type Differ struct{}

func NewDiffer() Differ {
	return Differ{}
}

// Diff compares two manifests by normalized project name and reports
// added, removed, upgraded, and downgraded pins. Unchanged pins are
// omitted. Version direction follows PEP 440 ordering. When a project
// is pinned more than once the last pin wins, matching installer
// behavior.
func (d Differ) Diff(before types.Manifest, after types.Manifest) types.DiffReport {
	beforePins := lastPinByName(before)
	afterPins := lastPinByName(after)

	var entries []types.DiffEntry
	for name, pin := range afterPins {
		previous, existed := beforePins[name]
		if !existed {
			entries = append(entries, types.DiffEntry{
				Action:    types.DiffAdded,
				Package:   name,
				ToVersion: pin.Version,
			})
			continue
		}
		if VersionsEqual(previous.Version, pin.Version) {
			continue
		}
		action := types.DiffUpgraded
		if CompareVersions(pin.Version, previous.Version) < 0 {
			action = types.DiffDowngraded
		}
		entries = append(entries, types.DiffEntry{
			Action:      action,
			Package:     name,
			FromVersion: previous.Version,
			ToVersion:   pin.Version,
		})
	}
	for name, pin := range beforePins {
		if _, still := afterPins[name]; still {
			continue
		}
		entries = append(entries, types.DiffEntry{
			Action:      types.DiffRemoved,
			Package:     name,
			FromVersion: pin.Version,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Package < entries[j].Package
	})
	return types.DiffReport{Entries: entries}
}

func lastPinByName(manifest types.Manifest) map[string]types.Pin {
	pins := map[string]types.Pin{}
	for _, pin := range manifest.AllPins() {
		pins[pin.NormalizedName] = pin
	}
	return pins
}
