package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/agbru/arraysum/internal/config"
	apperrors "github.com/agbru/arraysum/internal/errors"
	"github.com/agbru/arraysum/internal/format"
)

// PromptMessage asks for the element count.
const PromptMessage = "Please type the number of elements for each array: "

// InvalidCountMessage is printed after every rejected answer.
func InvalidCountMessage(chunks int) string {
	return fmt.Sprintf("Please enter a number between 1 and %s that is a multiple of %d!",
		format.Integer(config.MaxElements), chunks)
}

// Prompter reads the element count interactively. It keeps asking until the
// answer is valid, the input is exhausted or the context is cancelled.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	chunks  int
}

// NewPrompter creates a Prompter reading answers from in and writing
// questions to out. Answers must be a multiple of chunks.
func NewPrompter(in io.Reader, out io.Writer, chunks int) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		chunks:  chunks,
	}
}

// ReadElementCount prompts until a valid element count is entered.
// It returns apperrors.ErrInputClosed when the input ends first.
func (p *Prompter) ReadElementCount(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		fmt.Fprintf(p.out, "%s\n", PromptMessage)
		if !p.scanner.Scan() {
			if err := p.scanner.Err(); err != nil {
				return 0, apperrors.WrapError(err, "reading element count")
			}
			return 0, apperrors.ErrInputClosed
		}
		n, err := parseElementCount(p.scanner.Text(), p.chunks)
		if err != nil {
			fmt.Fprintf(p.out, "%s\n\n", InvalidCountMessage(p.chunks))
			continue
		}
		return n, nil
	}
}

// parseElementCount accepts a line holding a single integer that satisfies
// config.ValidateElementCount.
func parseElementCount(line string, chunks int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, apperrors.ValidationError{Field: "elements", Message: fmt.Sprintf("%q is not an integer", strings.TrimSpace(line))}
	}
	if err := config.ValidateElementCount(n, chunks); err != nil {
		return 0, err
	}
	return n, nil
}
