package claude

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// AllowedToolsKey is the top-level settings field holding the global allow list.
const AllowedToolsKey = "allowedTools"

// SettingsDir is the per-user directory, relative to $HOME, holding the settings file.
const SettingsDir = ".config/claude-code"

// SettingsFileName is the name of the global Claude Code settings file.
const SettingsFileName = "settings.json"

// BackupInfix separates the settings path from the backup timestamp.
const BackupInfix = ".backup."

// backupTimestamp matches an ISO-8601 UTC instant with ':' and '.' replaced by '-'.
var backupTimestamp = strings.NewReplacer(":", "-", ".", "-")

// ParseError reports a settings file that exists but is not a JSON object.
// Callers may recover by starting from empty settings.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing settings file %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Settings represents a Claude settings file with flexible JSON structure.
// Uses map[string]interface{} to preserve unknown fields during modification.
type Settings struct {
	data     map[string]interface{}
	filePath string
}

// DefaultPath returns ~/.config/claude-code/settings.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, SettingsDir, SettingsFileName), nil
}

// New creates empty Settings bound to path. Nothing is read from disk.
func New(path string) *Settings {
	return &Settings{
		data:     make(map[string]interface{}),
		filePath: path,
	}
}

// Load reads and parses the settings file at path.
// A missing or empty file yields empty settings. A file that is not a JSON
// object yields a *ParseError; other read failures are returned wrapped.
func Load(path string) (*Settings, error) {
	s := New(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading settings file %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return s, nil
	}

	// UseNumber keeps integers in unrelated fields byte-for-byte on rewrite.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&s.data); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if s.data == nil {
		// A literal `null` decodes without error.
		return nil, &ParseError{Path: path, Err: errors.New("settings must be a JSON object")}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: path, Err: errors.New("unexpected data after JSON object")}
	}

	return s, nil
}

// FilePath returns the path to the settings file.
func (s *Settings) FilePath() string {
	return s.filePath
}

// Exists returns true if the settings file exists on disk.
func (s *Settings) Exists() bool {
	_, err := os.Stat(s.filePath)
	return err == nil
}

// AllowedTools returns the allow list. Non-string items are dropped; a missing
// or non-array field yields nil.
func (s *Settings) AllowedTools() []string {
	raw, ok := s.data[AllowedToolsKey]
	if !ok {
		return nil
	}
	return interfaceSliceToStrings(raw)
}

// IgnoredAllowedTools returns the allowedTools values that AllowedTools leaves
// out: non-string items, or the whole value when it is not an array. They are
// lost when SetAllowedTools rewrites the list.
func (s *Settings) IgnoredAllowedTools() []interface{} {
	raw, ok := s.data[AllowedToolsKey]
	if !ok {
		return nil
	}
	slice, ok := raw.([]interface{})
	if !ok {
		return []interface{}{raw}
	}

	var ignored []interface{}
	for _, item := range slice {
		if _, ok := item.(string); !ok {
			ignored = append(ignored, item)
		}
	}
	return ignored
}

// SetAllowedTools replaces the allow list. Other fields are untouched.
func (s *Settings) SetAllowedTools(tools []string) {
	// Convert to []interface{} for JSON compatibility
	list := make([]interface{}, len(tools))
	for i, t := range tools {
		list[i] = t
	}
	s.data[AllowedToolsKey] = list
}

// interfaceSliceToStrings converts an interface{} that should be []interface{}
// containing strings to a []string. Returns nil if conversion fails.
func interfaceSliceToStrings(v interface{}) []string {
	slice, ok := v.([]interface{})
	if !ok {
		return nil
	}

	result := make([]string, 0, len(slice))
	for _, item := range slice {
		if str, ok := item.(string); ok {
			result = append(result, str)
		}
	}
	return result
}

// EnsureDir creates the directory holding the settings file.
func (s *Settings) EnsureDir() error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// BackupPath returns the backup path used for a backup taken at now.
func (s *Settings) BackupPath(now time.Time) string {
	stamp := backupTimestamp.Replace(now.UTC().Format("2006-01-02T15:04:05.000Z"))
	return s.filePath + BackupInfix + stamp
}

// Backup copies the current settings file to BackupPath(now) and returns the
// backup path. The copy is synced to disk before Backup returns. If there is
// no settings file, Backup does nothing and returns "".
func (s *Settings) Backup(now time.Time) (string, error) {
	src, err := os.Open(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("opening settings file for backup: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return "", fmt.Errorf("reading settings file info: %w", err)
	}

	backupPath := s.BackupPath(now)
	if err := copyToNewFile(src, backupPath, info.Mode().Perm()); err != nil {
		return "", fmt.Errorf("creating backup %s: %w", backupPath, err)
	}
	return backupPath, nil
}

// copyToNewFile writes r to a file that must not already exist.
// A partially written file is removed on failure.
func copyToNewFile(r io.Reader, path string, perm os.FileMode) (err error) {
	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			dst.Close()
			os.Remove(path)
		}
	}()

	if _, err = io.Copy(dst, r); err != nil {
		return err
	}
	if err = dst.Sync(); err != nil {
		return err
	}
	return dst.Close()
}

// Save writes the settings to disk using atomic write (temp file + rename).
// Creates the parent directory if it doesn't exist.
// Written JSON is pretty-printed with indentation for human readability.
func (s *Settings) Save() error {
	if err := s.EnsureDir(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializing settings: %w", err)
	}

	// Add trailing newline for POSIX compliance
	data = append(data, '\n')

	return atomicWrite(s.filePath, data)
}

// atomicWrite writes data to a file atomically using temp file + rename.
func atomicWrite(filePath string, data []byte) error {
	dir := filepath.Dir(filePath)
	tmpFile, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	// Clean up temp file on any error
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("syncing temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, filePath); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", filePath, err)
	}

	// Clear tmpPath so defer doesn't try to remove the final file
	tmpPath = ""
	return nil
}
