package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"pinfile/internal/shared"
	"pinfile/internal/types"
)

// ValidateManifest checks invariants of a parsed manifest before it is
// handed to the linter, auditor, or formatter: every pin carries a
// name, version, and positive line number, and the normalized name
// matches what PEP 503 normalization of the raw name produces.
func ValidateManifest(ctx context.Context, manifest types.Manifest) error {
	assert.NotEmpty(ctx, manifest.Path, "manifest path must be set")
	for _, pin := range manifest.AllPins() {
		if pin.Name == "" || pin.Version == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("pin on line %d is missing name or version", pin.Line))
		}
		if pin.Line <= 0 {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("pin %s has no source line", pin.Name))
		}
		if pin.NormalizedName != shared.NormalizeProjectName(pin.Name) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("pin %s carries stale normalized name %s", pin.Name, pin.NormalizedName))
		}
	}
	log.Ctx(ctx).Debug().Str("manifest", manifest.Path).Msg("manifest validated")
	return nil
}
