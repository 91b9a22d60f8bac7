package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// errInputClosed is returned by prompt when input ends before a line is read.
var errInputClosed = errors.New("input closed")

// prompter reads one answer per question from a shared reader, so answers
// piped in together are not lost between prompts.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// prompt prints question and returns the answer with surrounding whitespace
// removed. A final unterminated line is still returned.
func (p *prompter) prompt(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		// Keep the transcript tidy when input ends at a prompt.
		fmt.Fprintln(p.out)
		if errors.Is(err, io.EOF) {
			return "", errInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// isYes reports whether answer starts with y or Y.
func isYes(answer string) bool {
	return strings.HasPrefix(strings.ToLower(answer), "y")
}
