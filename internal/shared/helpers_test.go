package shared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeProjectName(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"fastapi", "fastapi"},
		{"SQLAlchemy", "sqlalchemy"},
		{"Typing_Extensions", "typing-extensions"},
		{"zope.interface", "zope-interface"},
		{"ruamel.yaml.clib", "ruamel-yaml-clib"},
		{"foo__bar", "foo-bar"},
		{"Foo-.Bar", "foo-bar"},
		{"  idna  ", "idna"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, NormalizeProjectName(tt.raw), tt.raw)
	}
}
