package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"pinfile/internal/types"
)

func writeIndexFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "index.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestIndexFileAvailableVersions(t *testing.T) {
	path := writeIndexFixture(t, `packages:
  fastapi:
    - "0.115.12"
    - "0.116.0"
`)
	adapter := NewIndexFileAdapter(path)

	versions, err := adapter.AvailableVersions("fastapi")
	require.NoError(t, err)
	require.Equal(t, []string{"0.115.12", "0.116.0"}, versions)

	versions, err = adapter.AvailableVersions("FastAPI")
	require.NoError(t, err)
	require.Equal(t, []string{"0.115.12", "0.116.0"}, versions)

	versions, err = adapter.AvailableVersions("requests")
	require.NoError(t, err)
	require.Empty(t, versions)
}

func TestIndexFilePackagesDerivedFromReleases(t *testing.T) {
	path := writeIndexFixture(t, `releases:
  click:
    - version: "8.2.0"
    - version: "8.1.8"
`)
	adapter := NewIndexFileAdapter(path)

	versions, err := adapter.AvailableVersions("click")
	require.NoError(t, err)
	if diff := cmp.Diff([]string{"8.1.8", "8.2.0"}, versions); diff != "" {
		t.Fatalf("unexpected versions (-want +got):\n%s", diff)
	}
}

func TestIndexFileRequirements(t *testing.T) {
	path := writeIndexFixture(t, `releases:
  pydantic:
    - version: "2.11.4"
      requires:
        - "pydantic-core==2.33.2"
        - "typing-extensions>=4.12.2"
`)
	adapter := NewIndexFileAdapter(path)

	requires, err := adapter.Requirements("Pydantic", "2.11.4")
	require.NoError(t, err)
	require.Equal(t, []string{"pydantic-core==2.33.2", "typing-extensions>=4.12.2"}, requires)

	requires, err = adapter.Requirements("pydantic", "1.0")
	require.NoError(t, err)
	require.Empty(t, requires)
}

func TestIndexFileMissing(t *testing.T) {
	adapter := NewIndexFileAdapter(filepath.Join(t.TempDir(), "absent.yaml"))
	_, err := adapter.AvailableVersions("fastapi")
	require.Error(t, err)
}

func TestIndexWriterRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshots", "index.yaml")
	index := types.IndexFile{
		Packages: map[string][]string{"h11": {"0.16.0"}},
		Releases: map[string][]types.ReleaseVersion{
			"h11": {{Version: "0.16.0"}},
		},
	}
	require.NoError(t, NewIndexWriterAdapter().Write(path, index))

	adapter := NewIndexFileAdapter(path)
	versions, err := adapter.AvailableVersions("h11")
	require.NoError(t, err)
	require.Equal(t, []string{"0.16.0"}, versions)
}

func TestIndexWriterEmptyPath(t *testing.T) {
	require.Error(t, NewIndexWriterAdapter().Write("", types.IndexFile{}))
}
