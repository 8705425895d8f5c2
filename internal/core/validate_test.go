package core

import (
	"testing"

	"github.com/stretchr/testify/require"

	"pinfile/internal/types"
)

func TestValidateManifestAcceptsParserOutput(t *testing.T) {
	manifest, _ := parseForTest(t, "fastapi==0.115.12\n")
	require.NoError(t, ValidateManifest(t.Context(), manifest))
}

func TestValidateManifestRejectsStaleNormalization(t *testing.T) {
	manifest := types.Manifest{
		Path: "requirements.txt",
		Sections: []types.Section{{
			Pins: []types.Pin{{Name: "SQLAlchemy", NormalizedName: "SQLAlchemy", Version: "2.0.40", Line: 1}},
		}},
	}
	require.Error(t, ValidateManifest(t.Context(), manifest))
}

func TestValidateManifestRejectsMissingLine(t *testing.T) {
	manifest := types.Manifest{
		Path: "requirements.txt",
		Sections: []types.Section{{
			Pins: []types.Pin{{Name: "idna", NormalizedName: "idna", Version: "3.10"}},
		}},
	}
	require.Error(t, ValidateManifest(t.Context(), manifest))
}
