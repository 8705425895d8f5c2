package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinfile/internal/app"
	"pinfile/internal/types"
)

// TestManifestWorkflow exercises the workflow a new user follows:
//
//	write a manifest -> validate -> fmt -> audit against a local index
//
// The manifest starts out messy (denormalized names, unsorted entries)
// and the workflow ends with a canonical, resolvable pinned set.
func TestManifestWorkflow(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "requirements.txt")
	indexPath := filepath.Join(dir, "index.yaml")

	manifestContent := `# Web
Uvicorn==0.34.2
h11==0.16.0
click==8.1.8
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(manifestContent), 0644))

	indexContent := `packages:
  uvicorn: ["0.29.0", "0.34.2"]
  click: ["8.1.8"]
  h11: ["0.16.0"]
releases:
  uvicorn:
    - version: "0.34.2"
      requires:
        - "click>=7.0"
        - "h11>=0.8"
`
	require.NoError(t, os.WriteFile(indexPath, []byte(indexContent), 0644))

	service := app.NewService()
	ctx := t.Context()

	// Step 1: validate surfaces hygiene warnings but passes.
	validateResult, err := service.Validate(ctx, app.ValidateRequest{ManifestPath: manifestPath})
	require.NoError(t, err)
	assert.Equal(t, 3, validateResult.PinCount)
	codes := map[types.FindingCode]bool{}
	for _, finding := range validateResult.Findings {
		assert.Equal(t, types.SeverityWarning, finding.Severity)
		codes[finding.Code] = true
	}
	assert.True(t, codes[types.FindingDenormalizedName])
	assert.True(t, codes[types.FindingUnsortedEntry])

	// Step 2: strict validation rejects the same manifest.
	_, err = service.Validate(ctx, app.ValidateRequest{ManifestPath: manifestPath, Strict: true})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))

	// Step 3: fmt rewrites the manifest into canonical form.
	formatResult, err := service.Format(ctx, app.FormatRequest{ManifestPath: manifestPath, Write: true})
	require.NoError(t, err)
	assert.True(t, formatResult.Changed)
	assert.Equal(t, "# Web\nclick==8.1.8\nh11==0.16.0\nuvicorn==0.34.2\n", formatResult.Rendered)

	// Step 4: strict validation now passes clean.
	validateResult, err = service.Validate(ctx, app.ValidateRequest{ManifestPath: manifestPath, Strict: true})
	require.NoError(t, err)
	assert.Empty(t, validateResult.Findings)

	// Step 5: the pinned set resolves against the index.
	auditResult, err := service.Audit(ctx, app.AuditRequest{
		ManifestPath: manifestPath,
		IndexPath:    indexPath,
	})
	require.NoError(t, err)
	assert.Empty(t, auditResult.Findings)
}

// TestManifestWorkflowBrokenPin verifies that dropping a pin another
// release depends on turns the set unresolvable.
func TestManifestWorkflowBrokenPin(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, "requirements.txt")
	indexPath := filepath.Join(dir, "index.yaml")

	require.NoError(t, os.WriteFile(manifestPath, []byte("uvicorn==0.34.2\n"), 0644))
	require.NoError(t, os.WriteFile(indexPath, []byte(`packages:
  uvicorn: ["0.34.2"]
releases:
  uvicorn:
    - version: "0.34.2"
      requires:
        - "click>=7.0"
        - "h11>=0.8"
`), 0644))

	service := app.NewService()
	result, err := service.Audit(t.Context(), app.AuditRequest{
		ManifestPath: manifestPath,
		IndexPath:    indexPath,
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Len(t, result.Findings, 2)
	for _, finding := range result.Findings {
		assert.Equal(t, types.FindingUnsatisfiedRequirement, finding.Code)
	}
}
