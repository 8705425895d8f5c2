package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"pinfile/internal/types"
)

func TestDiffActions(t *testing.T) {
	before, _ := parseForTest(t, "fastapi==0.110.0\nrequests==2.32.3\nsqlalchemy==2.0.40\nuvicorn==0.34.2\n")
	after, _ := parseForTest(t, "authx==1.4.2\nfastapi==0.115.12\nsqlalchemy==2.0.30\nuvicorn==0.34.2\n")

	report := NewDiffer().Diff(before, after)
	expected := []types.DiffEntry{
		{Action: types.DiffAdded, Package: "authx", ToVersion: "1.4.2"},
		{Action: types.DiffUpgraded, Package: "fastapi", FromVersion: "0.110.0", ToVersion: "0.115.12"},
		{Action: types.DiffRemoved, Package: "requests", FromVersion: "2.32.3"},
		{Action: types.DiffDowngraded, Package: "sqlalchemy", FromVersion: "2.0.40", ToVersion: "2.0.30"},
	}
	if diff := cmp.Diff(expected, report.Entries); diff != "" {
		t.Fatalf("unexpected entries (-want +got):\n%s", diff)
	}
}

func TestDiffMatchesNormalizedNames(t *testing.T) {
	before, _ := parseForTest(t, "Typing_Extensions==4.11.0\n")
	after, _ := parseForTest(t, "typing-extensions==4.13.2\n")

	report := NewDiffer().Diff(before, after)
	require.Len(t, report.Entries, 1)
	require.Equal(t, types.DiffUpgraded, report.Entries[0].Action)
	require.Equal(t, "typing-extensions", report.Entries[0].Package)
}

func TestDiffTreatsEquivalentVersionsAsUnchanged(t *testing.T) {
	before, _ := parseForTest(t, "idna==3.10\n")
	after, _ := parseForTest(t, "idna==3.10.0\n")

	report := NewDiffer().Diff(before, after)
	require.Empty(t, report.Entries)
}

func TestDiffIdenticalManifests(t *testing.T) {
	before, _ := parseForTest(t, "fastapi==0.115.12\n")
	after, _ := parseForTest(t, "fastapi==0.115.12\n")
	require.Empty(t, NewDiffer().Diff(before, after).Entries)
}
