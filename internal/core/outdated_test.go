package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"pinfile/internal/types"
)

func TestOutdatedCheck(t *testing.T) {
	manifest, _ := parseForTest(t, "click==8.1.8\nfastapi==0.115.12\nsniffio==1.3.1\nunknown-pkg==1.0.0\n")
	index := stubIndex{
		versions: map[string][]string{
			"click":   {"8.1.7", "8.1.8", "8.2.0"},
			"fastapi": {"0.115.12", "0.116.0", "0.117.0rc1"},
			"sniffio": {"1.3.1"},
		},
	}
	report, err := NewOutdatedChecker(index).Check(t.Context(), manifest)
	require.NoError(t, err)

	expected := []types.OutdatedEntry{
		{Package: "click", Pinned: "8.1.8", Latest: "8.2.0"},
		{Package: "fastapi", Pinned: "0.115.12", Latest: "0.116.0"},
	}
	if diff := cmp.Diff(expected, report.Entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, report.Current)
	require.Equal(t, []string{"unknown-pkg"}, report.Unknown)
}

func TestOutdatedRequiresIndex(t *testing.T) {
	_, err := OutdatedChecker{}.Check(t.Context(), types.Manifest{Path: "requirements.txt"})
	require.Error(t, err)
}
