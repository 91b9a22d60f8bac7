package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrompter_SharesBufferedInput(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	p := newPrompter(strings.NewReader(" 2 \n1-3\r\nlast"), &out)

	for _, want := range []string{"2", "1-3", "last"} {
		got, err := p.prompt("? ")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := p.prompt("? ")
	assert.ErrorIs(t, err, errInputClosed)
	assert.Equal(t, "? ? ? ? \n", out.String())
}

func TestIsYes(t *testing.T) {
	t.Parallel()

	tests := map[string]bool{
		"y":    true,
		"Y":    true,
		"yes":  true,
		"Yep":  true,
		"n":    false,
		"":     false,
		"sure": false,
		" y":   false,
	}
	for answer, want := range tests {
		assert.Equal(t, want, isYes(answer), "answer %q", answer)
	}
}
