package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"pinfile/internal/core"
	"pinfile/internal/ports"
	"pinfile/internal/shared"
	"pinfile/internal/types"
)

type IndexFileAdapter struct {
	Path   string
	cached types.IndexFile
	loaded bool
}

func NewIndexFileAdapter(path string) *IndexFileAdapter {
	return &IndexFileAdapter{Path: path}
}

func (a *IndexFileAdapter) AvailableVersions(name string) ([]string, error) {
	index, err := a.load()
	if err != nil {
		return nil, err
	}
	normalized := shared.NormalizeProjectName(name)
	if versions, ok := index.Packages[normalized]; ok && len(versions) > 0 {
		return versions, nil
	}
	return index.Packages[name], nil
}

func (a *IndexFileAdapter) Requirements(name string, version string) ([]string, error) {
	index, err := a.load()
	if err != nil {
		return nil, err
	}
	normalized := shared.NormalizeProjectName(name)
	releases, ok := index.Releases[normalized]
	if !ok {
		releases = index.Releases[name]
	}
	for _, release := range releases {
		if core.VersionsEqual(release.Version, version) {
			return release.Requires, nil
		}
	}
	return nil, nil
}

func (a *IndexFileAdapter) load() (types.IndexFile, error) {
	if a.loaded {
		return a.cached, nil
	}
	data, err := os.ReadFile(a.Path)
	if err != nil {
		return types.IndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("index file not found").
			WithCause(err)
	}
	var index types.IndexFile
	if err := yaml.Unmarshal(data, &index); err != nil {
		return types.IndexFile{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid index format").
			WithCause(err)
	}
	if index.Packages == nil {
		index.Packages = map[string][]string{}
	}
	if len(index.Packages) == 0 && len(index.Releases) > 0 {
		for name, releases := range index.Releases {
			for _, release := range releases {
				if release.Version == "" {
					continue
				}
				index.Packages[name] = append(index.Packages[name], release.Version)
			}
			core.SortVersions(index.Packages[name])
		}
	}
	a.cached = index
	a.loaded = true
	return index, nil
}

type IndexWriterAdapter struct{}

func NewIndexWriterAdapter() IndexWriterAdapter {
	return IndexWriterAdapter{}
}

func (a IndexWriterAdapter) Write(path string, index types.IndexFile) error {
	if path == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output path is required")
	}
	data, err := yaml.Marshal(index)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to marshal index").
			WithCause(err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to create index directory").
				WithCause(err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write index").
			WithCause(err)
	}
	return nil
}

var _ ports.IndexPort = (*IndexFileAdapter)(nil)
var _ ports.IndexWriterPort = IndexWriterAdapter{}
