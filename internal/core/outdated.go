package core

import (
	"context"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pinfile/internal/ports"
	"pinfile/internal/types"
)

type OutdatedChecker struct {
	Index ports.IndexPort
}

func NewOutdatedChecker(index ports.IndexPort) OutdatedChecker {
	return OutdatedChecker{Index: index}
}

// Check compares every pin against the newest index release. Final
// releases are preferred; a pre-release only counts as latest when the
// project has published nothing else.
func (c OutdatedChecker) Check(ctx context.Context, manifest types.Manifest) (types.OutdatedReport, error) {
	if c.Index == nil {
		return types.OutdatedReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("outdated checker requires an index port")
	}

	report := types.OutdatedReport{}
	for name, pin := range lastPinByName(manifest) {
		available, err := c.Index.AvailableVersions(name)
		if err != nil {
			return types.OutdatedReport{}, err
		}
		if len(available) == 0 {
			report.Unknown = append(report.Unknown, pin.Name)
			continue
		}
		latest := LatestVersion(available)
		if CompareVersions(latest, pin.Version) > 0 {
			report.Entries = append(report.Entries, types.OutdatedEntry{
				Package: pin.Name,
				Pinned:  pin.Version,
				Latest:  latest,
			})
			continue
		}
		report.Current++
	}

	sort.Slice(report.Entries, func(i, j int) bool {
		return report.Entries[i].Package < report.Entries[j].Package
	})
	sort.Strings(report.Unknown)
	log.Ctx(ctx).Debug().Int("outdated", len(report.Entries)).Msg("outdated check completed")
	return report, nil
}
