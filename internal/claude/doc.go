// Package claude manages the global Claude Code settings file
// (~/.config/claude-code/settings.json) for claude-allow.
//
// The package supports:
//   - Loading settings while preserving every field it does not manage
//   - Reading and replacing the top-level allowedTools list
//   - Timestamped backups taken before every overwrite
//   - Atomic file writes to prevent corruption
package claude
