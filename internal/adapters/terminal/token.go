package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"filemgmt/internal/domain"
)

// Adapter prompts the operator and reads whitespace-delimited tokens.
type Adapter struct {
	stdin   io.Reader
	stdout  io.Writer
	scanner *bufio.Scanner
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader, stdout io.Writer) *Adapter {
	scanner := bufio.NewScanner(stdin)
	scanner.Split(bufio.ScanWords)

	return &Adapter{
		stdin:   stdin,
		stdout:  stdout,
		scanner: scanner,
	}
}

// ReadToken prints prompt and returns the next whitespace-delimited token.
// Text after the first token on the same line is left unread.
func (a *Adapter) ReadToken(ctx context.Context, prompt string) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	fmt.Fprint(a.stdout, prompt)

	if !a.scanner.Scan() {
		if err := a.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", domain.ErrNoInput
	}

	return a.scanner.Text(), nil
}

// IsInteractive returns true if stdin is a terminal.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
