package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinfile/internal/types"
)

func TestDiffFixtureManifests(t *testing.T) {
	service := NewService()

	result, err := service.Diff(t.Context(), DiffRequest{
		BeforePath: fixturePath("requirements-old.txt"),
		AfterPath:  fixturePath("requirements-sample.txt"),
	})
	require.NoError(t, err)

	actions := map[types.DiffAction][]string{}
	for _, entry := range result.Report.Entries {
		actions[entry.Action] = append(actions[entry.Action], entry.Package)
	}
	assert.Equal(t, []string{"authx", "pyjwt"}, actions[types.DiffAdded])
	assert.Equal(t, []string{"requests"}, actions[types.DiffRemoved])
	assert.Len(t, actions[types.DiffUpgraded], 14)
	assert.Empty(t, actions[types.DiffDowngraded])
}

func TestDiffWritesReport(t *testing.T) {
	service := NewService()
	outputDir := t.TempDir()

	_, err := service.Diff(t.Context(), DiffRequest{
		BeforePath: fixturePath("requirements-old.txt"),
		AfterPath:  fixturePath("requirements-sample.txt"),
		OutputDir:  outputDir,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "diff.report"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "added,authx,,1.4.2")
	assert.Contains(t, string(data), "removed,requests,2.32.3,")
}

func TestDiffRequiresBothPaths(t *testing.T) {
	service := NewService()

	_, err := service.Diff(t.Context(), DiffRequest{BeforePath: fixturePath("requirements-old.txt")})
	require.Error(t, err)
}
