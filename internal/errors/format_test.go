package errors

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatError(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		err          *CLIError
		wantContains []string
	}{
		"basic": {
			err:          &CLIError{Category: Argument, Message: "test message"},
			wantContains: []string{"Argument Error", "test message"},
		},
		"with usage": {
			err:          &CLIError{Category: Argument, Message: "missing arg", Usage: "cmd <arg>"},
			wantContains: []string{"Usage:", "cmd <arg>"},
		},
		"with remediation": {
			err: &CLIError{
				Category:    Runtime,
				Message:     "error",
				Remediation: []string{"step 1", "step 2"},
			},
			wantContains: []string{"To fix this:", "1. step 1", "2. step 2"},
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			result := FormatError(tt.err)
			for _, want := range tt.wantContains {
				assert.Contains(t, result, want)
			}
		})
	}

	assert.Empty(t, FormatError(nil))
}

func TestFormatErrorPlain(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatErrorPlain(nil))

	err := &CLIError{
		Category:    Configuration,
		Message:     "config error",
		Remediation: []string{"fix it"},
	}

	assert.Equal(t, "Configuration Error: config error\n\nTo fix this:\n  1. fix it\n", FormatErrorPlain(err))
}

func TestFprintError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	FprintError(&buf, nil)
	assert.Zero(t, buf.Len())

	FprintError(&buf, &CLIError{Category: Prerequisite, Message: "missing file", Remediation: []string{"create it"}})
	assert.Equal(t, "Prerequisite Error: missing file\n\nTo fix this:\n  1. create it\n", buf.String())
}

func TestFormatSimpleError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, FormatSimpleError(nil, Runtime))

	result := FormatSimpleError(fmt.Errorf("test error"), Runtime)
	assert.Contains(t, result, "Runtime Error")
	assert.Contains(t, result, "test error")

	cliErr := NewConfigError("bad config", "edit it")
	result = FormatSimpleError(fmt.Errorf("loading: %w", cliErr), Runtime)
	assert.Contains(t, result, "Configuration Error")
	assert.Contains(t, result, "edit it")
}
