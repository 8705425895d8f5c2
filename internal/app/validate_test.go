package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinfile/internal/types"
)

func fixturePath(name string) string {
	return filepath.Join("..", "..", "fixtures", name)
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateSampleManifest(t *testing.T) {
	service := NewService()

	result, err := service.Validate(t.Context(), ValidateRequest{
		ManifestPath: fixturePath("requirements-sample.txt"),
	})
	require.NoError(t, err)
	assert.Equal(t, 18, result.PinCount)
	assert.Empty(t, result.Findings)
}

func TestValidateConflictingPins(t *testing.T) {
	service := NewService()
	path := writeManifest(t, "click==8.1.8\nclick==8.2.0\n")

	result, err := service.Validate(t.Context(), ValidateRequest{ManifestPath: path})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	require.Len(t, result.Findings, 1)
	assert.Equal(t, types.FindingConflictingPin, result.Findings[0].Code)
}

func TestValidateMalformedManifest(t *testing.T) {
	service := NewService()
	path := writeManifest(t, "fastapi>=0.100\n")

	result, err := service.Validate(t.Context(), ValidateRequest{ManifestPath: path})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	require.Len(t, result.Findings, 1)
	assert.Equal(t, types.FindingRangeSpecifier, result.Findings[0].Code)
}

func TestValidateStrictPromotesHygiene(t *testing.T) {
	service := NewService()
	path := writeManifest(t, "Click==8.1.8\n")

	result, err := service.Validate(t.Context(), ValidateRequest{ManifestPath: path})
	require.NoError(t, err)
	require.Len(t, result.Findings, 1)
	assert.Equal(t, types.SeverityWarning, result.Findings[0].Severity)

	_, err = service.Validate(t.Context(), ValidateRequest{ManifestPath: path, Strict: true})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestValidateWritesReport(t *testing.T) {
	service := NewService()
	path := writeManifest(t, "click==8.1.8\nclick==8.2.0\n")
	outputDir := t.TempDir()

	_, err := service.Validate(t.Context(), ValidateRequest{ManifestPath: path, OutputDir: outputDir})
	require.Error(t, err)

	data, err := os.ReadFile(filepath.Join(outputDir, "lint.report"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "conflicting-pin")
}

func TestValidateMissingManifest(t *testing.T) {
	service := NewService()

	_, err := service.Validate(t.Context(), ValidateRequest{
		ManifestPath: filepath.Join(t.TempDir(), "absent.txt"),
	})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	_, err = service.Validate(t.Context(), ValidateRequest{})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
