package errors

import "fmt"

// SettingsNotReadable is returned when the settings file exists but cannot be read.
func SettingsNotReadable(path string, err error) *CLIError {
	cliErr := NewConfigError(
		fmt.Sprintf("cannot read settings file %s", path),
		"Check the file permissions: ls -l "+path,
		"Point at another file with --settings <path>",
	)
	cliErr.Err = err
	return cliErr
}

// DirectoryNotCreatable is returned when the settings directory cannot be created.
func DirectoryNotCreatable(dir string, err error) *CLIError {
	return WrapWithMessage(err, Runtime, "cannot create settings directory "+dir,
		"Check that the parent directory is writable",
		"Create it manually: mkdir -p "+dir,
	)
}

// BackupFailed is returned when the existing settings file could not be backed
// up. The settings file has not been modified.
func BackupFailed(path string, err error) *CLIError {
	return &CLIError{
		Category: Runtime,
		Message:  fmt.Sprintf("failed to back up %s: %v (settings left unchanged)", path, err),
		Remediation: []string{
			"Check free disk space and write permission on the settings directory",
			"Copy the file aside manually and run claude-allow again",
		},
		Err: err,
	}
}

// SettingsNotWritable is returned when the new settings could not be written.
// backupPath is empty when there was no previous file.
func SettingsNotWritable(path, backupPath string, err error) *CLIError {
	remediation := []string{"Check write permission on " + path}
	if backupPath != "" {
		remediation = append(remediation, "Your previous settings are saved in "+backupPath)
	}
	return WrapWithMessage(err, Runtime, "failed to update configuration "+path, remediation...)
}

// ConfigParseError is returned when the claude-allow config cannot be loaded.
func ConfigParseError(path string, err error) *CLIError {
	msg := "failed to load configuration"
	if path != "" {
		msg += " from " + path
	}
	return WrapWithMessage(err, Configuration, msg,
		"Check the JSON syntax of the config file",
		"Check CLAUDE_ALLOW_* environment variables",
	)
}

// CatalogInvalid is returned when the command catalog fails to load.
func CatalogInvalid(err error) *CLIError {
	return WrapWithMessage(err, Prerequisite, "command catalog is invalid", "Reinstall claude-allow")
}

// PrerequisitesFailed is returned when a required prerequisite check fails.
// Each problem is listed as a remediation step.
func PrerequisitesFailed(problems []string) *CLIError {
	return NewPrerequisiteError("prerequisite checks failed",
		append(append([]string(nil), problems...), "Point at another file with --settings <path>")...)
}
