package adapters

import (
	"bytes"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"pinfile/internal/core"
	"pinfile/internal/ports"
	"pinfile/internal/types"
)

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) Load(path string) (types.Manifest, []types.Finding, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	return core.ParseManifest(bytes.NewReader(data), path)
}

func (a ManifestFileAdapter) Save(path string, manifest types.Manifest) error {
	if err := os.WriteFile(path, []byte(core.Render(manifest)), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write manifest").
			WithCause(err)
	}
	return nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}
