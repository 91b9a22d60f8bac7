// Package claude tests global settings file loading, backup, and atomic rewrite.
// Related: internal/claude/settings.go
// Tags: claude, settings, permissions, json, backup

package claude

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 10, 17, 9, 30, 12, 345_000_000, time.UTC)

func TestLoad(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		content     *string
		wantErr     bool
		wantParse   bool
		checkResult func(t *testing.T, s *Settings)
	}{
		"missing file returns empty settings": {
			content: nil,
			checkResult: func(t *testing.T, s *Settings) {
				assert.False(t, s.Exists())
				assert.Empty(t, s.AllowedTools())
			},
		},
		"empty file returns empty settings": {
			content: strPtr(""),
			checkResult: func(t *testing.T, s *Settings) {
				assert.True(t, s.Exists())
				assert.Empty(t, s.AllowedTools())
			},
		},
		"whitespace-only file returns empty settings": {
			content: strPtr("  \n\t"),
			checkResult: func(t *testing.T, s *Settings) {
				assert.Empty(t, s.AllowedTools())
			},
		},
		"valid JSON with allowed tools": {
			content: strPtr(`{"allowedTools": ["Bash(git:*)", "mcp__*"]}`),
			checkResult: func(t *testing.T, s *Settings) {
				assert.Equal(t, []string{"Bash(git:*)", "mcp__*"}, s.AllowedTools())
			},
		},
		"non-string items are dropped": {
			content: strPtr(`{"allowedTools": ["Bash(git:*)", 3, null, {"x": 1}]}`),
			checkResult: func(t *testing.T, s *Settings) {
				assert.Equal(t, []string{"Bash(git:*)"}, s.AllowedTools())
				assert.Equal(t, []interface{}{json.Number("3"), nil, map[string]interface{}{"x": json.Number("1")}},
					s.IgnoredAllowedTools())
			},
		},
		"allowedTools of the wrong type is empty": {
			content: strPtr(`{"allowedTools": "Bash(git:*)"}`),
			checkResult: func(t *testing.T, s *Settings) {
				assert.Nil(t, s.AllowedTools())
				assert.Equal(t, []interface{}{"Bash(git:*)"}, s.IgnoredAllowedTools())
			},
		},
		"string-only list ignores nothing": {
			content: strPtr(`{"allowedTools": ["Read"], "theme": "dark"}`),
			checkResult: func(t *testing.T, s *Settings) {
				assert.Empty(t, s.IgnoredAllowedTools())
			},
		},
		"preserves extra fields": {
			content: strPtr(`{
				"allowedTools": ["Bash(git:*)"],
				"permissions": {"deny": ["Bash(rm:*)"]},
				"theme": "dark"
			}`),
			checkResult: func(t *testing.T, s *Settings) {
				assert.Contains(t, s.data, "permissions")
				assert.Contains(t, s.data, "theme")
			},
		},
		"malformed JSON": {
			content:   strPtr(`{invalid json}`),
			wantErr:   true,
			wantParse: true,
		},
		"JSON array is not settings": {
			content:   strPtr(`["Bash(git:*)"]`),
			wantErr:   true,
			wantParse: true,
		},
		"JSON null is not settings": {
			content:   strPtr(`null`),
			wantErr:   true,
			wantParse: true,
		},
		"trailing garbage": {
			content:   strPtr(`{"allowedTools": []} {}`),
			wantErr:   true,
			wantParse: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), SettingsFileName)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0644))
			}

			s, err := Load(path)

			if tt.wantErr {
				require.Error(t, err)
				var perr *ParseError
				assert.Equal(t, tt.wantParse, errors.As(err, &perr))
				assert.Contains(t, err.Error(), "parsing settings file")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, s)
			assert.Equal(t, path, s.FilePath())
			if tt.checkResult != nil {
				tt.checkResult(t, s)
			}
		})
	}
}

func TestLoad_ReadError(t *testing.T) {
	t.Parallel()

	// A directory where the file should be cannot be read as a file.
	path := t.TempDir()

	_, err := Load(path)
	require.Error(t, err)

	var perr *ParseError
	assert.False(t, errors.As(err, &perr))
	assert.Contains(t, err.Error(), "reading settings file")
}

func TestSetAllowedTools(t *testing.T) {
	t.Parallel()

	s := New(filepath.Join(t.TempDir(), SettingsFileName))
	assert.Nil(t, s.AllowedTools())

	s.SetAllowedTools([]string{"Bash(ls:*)", "mcp__*"})
	assert.Equal(t, []string{"Bash(ls:*)", "mcp__*"}, s.AllowedTools())

	s.SetAllowedTools(nil)
	assert.Empty(t, s.AllowedTools())
	assert.Contains(t, s.data, AllowedToolsKey)
}

func TestSave(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		setup       func(t *testing.T, s *Settings)
		checkResult func(t *testing.T, data []byte)
	}{
		"writes pretty-printed JSON": {
			setup: func(t *testing.T, s *Settings) {
				s.SetAllowedTools([]string{"Bash(git:*)"})
			},
			checkResult: func(t *testing.T, data []byte) {
				assert.Contains(t, string(data), "\n  \"allowedTools\"")
				assert.True(t, json.Valid(data))
			},
		},
		"preserves existing fields": {
			setup: func(t *testing.T, s *Settings) {
				s.data["permissions"] = map[string]interface{}{"deny": []interface{}{"Bash(rm:*)"}}
				s.data["theme"] = "dark"
				s.SetAllowedTools([]string{"Bash(git:*)"})
			},
			checkResult: func(t *testing.T, data []byte) {
				assert.Contains(t, string(data), `"theme": "dark"`)
				assert.Contains(t, string(data), "Bash(rm:*)")
				assert.Contains(t, string(data), "Bash(git:*)")
			},
		},
		"empty list is written as an array": {
			setup: func(t *testing.T, s *Settings) {
				s.SetAllowedTools(nil)
			},
			checkResult: func(t *testing.T, data []byte) {
				assert.Contains(t, string(data), `"allowedTools": []`)
			},
		},
		"ends with newline": {
			setup: func(t *testing.T, s *Settings) {
				s.SetAllowedTools([]string{"Bash(git:*)"})
			},
			checkResult: func(t *testing.T, data []byte) {
				require.NotEmpty(t, data)
				assert.Equal(t, byte('\n'), data[len(data)-1])
			},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			path := filepath.Join(t.TempDir(), "nested", "claude-code", SettingsFileName)
			s := New(path)

			if tt.setup != nil {
				tt.setup(t, s)
			}

			require.NoError(t, s.Save())

			data, err := os.ReadFile(path)
			require.NoError(t, err)

			if tt.checkResult != nil {
				tt.checkResult(t, data)
			}
		})
	}
}

func TestSave_RenameFailureKeepsTarget(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)
	// A non-empty directory at the settings path cannot be replaced by rename.
	require.NoError(t, os.MkdirAll(path, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(path, "keep"), []byte("x"), 0644))

	s := New(path)
	s.SetAllowedTools([]string{"Bash(git:*)"})

	err := s.Save()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renaming temp file to "+path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	tmps, err := filepath.Glob(filepath.Join(dir, ".settings-*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, tmps, "temp file should be removed after a failed rename")
}

func TestSaveAtomicWrite(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(filepath.Join(dir, SettingsFileName))
	s.SetAllowedTools([]string{"Bash(git:*)"})

	require.NoError(t, s.Save())

	// Verify no temp files left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, entry := range entries {
		assert.False(t,
			filepath.Ext(entry.Name()) == ".tmp",
			"temp file should not remain: %s", entry.Name())
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, SettingsFileName)

	original := `{
  "allowedTools": ["Bash(git:*)"],
  "permissions": {
    "ask": ["Write(*)"],
    "deny": ["Bash(rm:*)"]
  },
  "cleanupPeriodDays": 30,
  "bigNumber": 12345678901234567890,
  "env": {"FOO": "bar"}
}`
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	s, err := Load(path)
	require.NoError(t, err)

	s.SetAllowedTools(append(s.AllowedTools(), "Bash(ls:*)"))
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, []interface{}{"Bash(git:*)", "Bash(ls:*)"}, got["allowedTools"])
	assert.Equal(t, map[string]interface{}{
		"ask":  []interface{}{"Write(*)"},
		"deny": []interface{}{"Bash(rm:*)"},
	}, got["permissions"])
	assert.Equal(t, map[string]interface{}{"FOO": "bar"}, got["env"])
	assert.Contains(t, string(data), `"cleanupPeriodDays": 30`)
	assert.Contains(t, string(data), `"bigNumber": 12345678901234567890`)
}

func TestBackupPath(t *testing.T) {
	t.Parallel()

	s := New("/home/u/.config/claude-code/settings.json")
	got := s.BackupPath(fixedNow)
	assert.Equal(t, "/home/u/.config/claude-code/settings.json.backup.2026-10-17T09-30-12-345Z", got)

	local := time.Date(2026, 10, 17, 11, 30, 12, 0, time.FixedZone("CEST", 2*3600))
	assert.True(t, strings.HasSuffix(s.BackupPath(local), ".backup.2026-10-17T09-30-12-000Z"))
}

func TestBackup(t *testing.T) {
	t.Parallel()

	t.Run("no settings file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		s := New(filepath.Join(dir, SettingsFileName))

		backup, err := s.Backup(fixedNow)
		require.NoError(t, err)
		assert.Empty(t, backup)

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("copies existing file byte for byte", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, SettingsFileName)
		content := "{not even valid json"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		s := New(path)
		backup, err := s.Backup(fixedNow)
		require.NoError(t, err)
		assert.Equal(t, s.BackupPath(fixedNow), backup)
		assert.Equal(t, dir, filepath.Dir(backup))

		data, err := os.ReadFile(backup)
		require.NoError(t, err)
		assert.Equal(t, content, string(data))

		info, err := os.Stat(backup)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("refuses to overwrite an existing backup", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, SettingsFileName)
		require.NoError(t, os.WriteFile(path, []byte(`{}`), 0644))

		s := New(path)
		require.NoError(t, os.WriteFile(s.BackupPath(fixedNow), []byte("older"), 0644))

		_, err := s.Backup(fixedNow)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "creating backup")

		data, err := os.ReadFile(s.BackupPath(fixedNow))
		require.NoError(t, err)
		assert.Equal(t, "older", string(data))
	})
}

func TestEnsureDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := New(filepath.Join(dir, "a", "b", SettingsFileName))
	require.NoError(t, s.EnsureDir())
	assert.DirExists(t, filepath.Join(dir, "a", "b"))

	// A regular file blocking the path makes directory creation fail.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))
	s = New(filepath.Join(blocker, "sub", SettingsFileName))
	err := s.EnsureDir()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating directory")
}

func TestDefaultPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "claude-code", "settings.json"), path)
}

func strPtr(s string) *string {
	return &s
}
