package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var months = []string{"Jan", "Feb", "Mar"}

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadSettings_Defaults(t *testing.T) {
	s, err := LoadSettings("", months)

	require.NoError(t, err)
	assert.Equal(t, "Monthly Sales Analysis", s.Title)
	assert.Equal(t, uint64(42), s.Seed)
	assert.Equal(t, 80, s.Min)
	assert.Equal(t, 200, s.Max)
	assert.Equal(t, months, s.Labels)
	assert.NoError(t, s.Validate())
}

func TestLoadSettings_YAMLOverridesDefaults(t *testing.T) {
	// Given
	// No indentation inside the backtick block to avoid YAML parsing errors
	path := writeConfig(t, "growth.yaml", `title: "Quarterly Sales"
seed: 7
max: 500
labels: ["Q1", "Q2", "Q3", "Q4"]`)

	// When
	s, err := LoadSettings(path, months)

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Quarterly Sales", s.Title)
	assert.Equal(t, uint64(7), s.Seed)
	assert.Equal(t, 80, s.Min)
	assert.Equal(t, 500, s.Max)
	assert.Equal(t, []string{"Q1", "Q2", "Q3", "Q4"}, s.Labels)
}

func TestLoadSettings_TOML(t *testing.T) {
	path := writeConfig(t, "growth.toml", "min = 10\nmax = 20\n")

	s, err := LoadSettings(path, months)

	require.NoError(t, err)
	assert.Equal(t, 10, s.Min)
	assert.Equal(t, 20, s.Max)
	assert.Equal(t, months, s.Labels)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"), months)

	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoadSettings_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "bad.yaml", "title: a: b: c")

	_, err := LoadSettings(path, months)

	assert.Error(t, err)
}

func TestSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Settings)
		wantErr string
	}{
		{name: "valid", mutate: func(s *Settings) {}},
		{name: "inverted range", mutate: func(s *Settings) { s.Min, s.Max = 10, 5 }, wantErr: "max must be greater than or equal to min"},
		{name: "no labels", mutate: func(s *Settings) { s.Labels = nil }, wantErr: "labels is required"},
		{name: "blank label", mutate: func(s *Settings) { s.Labels = []string{"Jan", ""} }, wantErr: "labels[1] is required"},
		{name: "no title", mutate: func(s *Settings) { s.Title = "" }, wantErr: "title is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadSettings("", months)
			require.NoError(t, err)
			tt.mutate(s)

			err = s.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
