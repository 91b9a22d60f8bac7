// Package health runs the prerequisite checks shown before the command catalog.
package health

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
	// Required checks block the run when they fail; others only warn.
	Required bool
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	// Passed is false if any required check failed.
	Passed bool
}

// Failed returns the failed checks, required or not.
func (r *HealthReport) Failed() []CheckResult {
	var out []CheckResult
	for _, c := range r.Checks {
		if !c.Passed {
			out = append(out, c)
		}
	}
	return out
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// RunHealthChecks runs all health checks for a run writing settingsPath
func RunHealthChecks(settingsPath string) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0, 2),
		Passed: true,
	}

	for _, check := range []CheckResult{
		CheckSettingsLocation(settingsPath),
		CheckClaudeCLI(),
	} {
		report.Checks = append(report.Checks, check)
		if check.Required && !check.Passed {
			report.Passed = false
		}
	}

	return report
}

// CheckClaudeCLI checks if the Claude CLI is available. The settings file can
// be written without it, so the check is advisory.
func CheckClaudeCLI() CheckResult {
	if _, err := lookPath("claude"); err != nil {
		return CheckResult{
			Name:    "Claude CLI",
			Passed:  false,
			Message: "Claude CLI not found in PATH (permissions are still written)",
		}
	}

	return CheckResult{
		Name:    "Claude CLI",
		Passed:  true,
		Message: "Claude CLI found",
	}
}

// CheckSettingsLocation checks that path is, or can become, a regular file:
// it must not be a directory, and its nearest existing ancestor must be one.
func CheckSettingsLocation(path string) CheckResult {
	result := CheckResult{Name: "Claude settings", Required: true}

	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			result.Message = fmt.Sprintf("%s is a directory, not a settings file", path)
			return result
		}
		result.Passed = true
		result.Message = "Claude settings file found"
		return result
	}

	dir, err := nearestExistingDir(filepath.Dir(path))
	if err != nil {
		result.Message = err.Error()
		return result
	}

	result.Passed = true
	result.Message = fmt.Sprintf("Claude settings will be created under %s", dir)
	return result
}

// nearestExistingDir walks up from dir to the first path that exists and
// returns it if it is a directory.
func nearestExistingDir(dir string) (string, error) {
	for {
		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			return dir, nil
		case err == nil:
			return "", fmt.Errorf("%s is not a directory", dir)
		case !errors.Is(err, os.ErrNotExist):
			return "", fmt.Errorf("cannot access %s: %v", dir, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no existing parent directory for %s", dir)
		}
		dir = parent
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var output string

	for _, check := range report.Checks {
		if check.Passed {
			output += fmt.Sprintf("✓ %s: %s\n", check.Name, check.Message)
		} else if check.Required {
			output += fmt.Sprintf("✗ Error: %s\n", check.Message)
		} else {
			output += fmt.Sprintf("! Warning: %s\n", check.Message)
		}
	}

	return output
}
