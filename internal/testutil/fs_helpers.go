// Package testutil provides test helpers for settings files and an isolated
// home directory.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

// IsolateHome points HOME and XDG_CONFIG_HOME at a fresh temp dir so the
// default settings path and the user config never touch the real home, and
// unsets every CLAUDE_ALLOW_* variable for the rest of the test.
// Returns the home dir. Tests calling it must not run in parallel.
func IsolateHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CLAUDE_ALLOW_") {
			// Setenv registers the restore; Unsetenv removes it for the test.
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
	return home
}

// WriteSettings writes content to path, creating parent directories.
func WriteSettings(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create settings directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write settings file: %v", err)
	}
}

// ReadSettings parses the JSON object at path.
func ReadSettings(t *testing.T, path string) map[string]interface{} {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read settings file: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("settings file is not a JSON object: %v", err)
	}
	return m
}

// ReadAllowedTools returns the allowedTools array of the settings at path.
// The test fails if the field is missing or holds a non-string.
func ReadAllowedTools(t *testing.T, path string) []string {
	t.Helper()

	raw, ok := ReadSettings(t, path)["allowedTools"].([]interface{})
	if !ok {
		t.Fatalf("allowedTools in %s is not an array", path)
	}
	tools := make([]string, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			t.Fatalf("allowedTools in %s holds non-string %v", path, v)
		}
		tools = append(tools, s)
	}
	return tools
}

// BackupFiles lists the backups of the settings file at path, sorted.
func BackupFiles(t *testing.T, path string) []string {
	t.Helper()

	matches, err := filepath.Glob(path + ".backup.*")
	if err != nil {
		t.Fatalf("failed to list backups: %v", err)
	}
	sort.Strings(matches)
	return matches
}
