// Package health tests the prerequisite checks run before the catalog is shown.
// Related: internal/health/health.go
// Tags: health, prerequisites, doctor
package health

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckClaudeCLI(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })

	lookPath = func(string) (string, error) { return "/usr/local/bin/claude", nil }
	found := CheckClaudeCLI()
	assert.True(t, found.Passed)
	assert.False(t, found.Required)
	assert.Equal(t, "Claude CLI found", found.Message)

	lookPath = func(string) (string, error) { return "", errors.New("not found") }
	missing := CheckClaudeCLI()
	assert.False(t, missing.Passed)
	assert.False(t, missing.Required)
	assert.Contains(t, missing.Message, "not found in PATH")
}

func TestCheckSettingsLocation(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup       func(t *testing.T, dir string) string
		wantPassed  bool
		wantMessage string
	}{
		"existing file": {
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "settings.json")
				require.NoError(t, os.WriteFile(p, []byte("{}"), 0644))
				return p
			},
			wantPassed:  true,
			wantMessage: "Claude settings file found",
		},
		"missing file in missing dirs": {
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, ".config", "claude-code", "settings.json")
			},
			wantPassed:  true,
			wantMessage: "will be created under",
		},
		"path is a directory": {
			setup: func(t *testing.T, dir string) string {
				p := filepath.Join(dir, "settings.json")
				require.NoError(t, os.Mkdir(p, 0755))
				return p
			},
			wantMessage: "is a directory",
		},
		"ancestor is a file": {
			setup: func(t *testing.T, dir string) string {
				f := filepath.Join(dir, "file")
				require.NoError(t, os.WriteFile(f, []byte("x"), 0644))
				return filepath.Join(f, "claude-code", "settings.json")
			},
			wantMessage: "is not a directory",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := CheckSettingsLocation(tt.setup(t, t.TempDir()))

			assert.Equal(t, "Claude settings", result.Name)
			assert.True(t, result.Required)
			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.Contains(t, result.Message, tt.wantMessage)
		})
	}
}

func TestRunHealthChecks(t *testing.T) {
	orig := lookPath
	t.Cleanup(func() { lookPath = orig })
	lookPath = func(string) (string, error) { return "", errors.New("not found") }

	dir := t.TempDir()

	report := RunHealthChecks(filepath.Join(dir, "settings.json"))
	require.Len(t, report.Checks, 2)
	assert.True(t, report.Passed, "advisory failures do not fail the report")
	assert.Len(t, report.Failed(), 1)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "taken"), 0755))
	report = RunHealthChecks(filepath.Join(dir, "taken"))
	assert.False(t, report.Passed)
	assert.Len(t, report.Failed(), 2)
}

func TestFormatReport(t *testing.T) {
	t.Parallel()

	report := &HealthReport{
		Checks: []CheckResult{
			{Name: "Claude settings", Passed: true, Required: true, Message: "Claude settings file found"},
			{Name: "Claude CLI", Passed: false, Message: "Claude CLI not found in PATH"},
			{Name: "Claude settings", Passed: false, Required: true, Message: "/x is a directory"},
		},
	}

	assert.Equal(t,
		"✓ Claude settings: Claude settings file found\n"+
			"! Warning: Claude CLI not found in PATH\n"+
			"✗ Error: /x is a directory\n",
		FormatReport(report))
}
