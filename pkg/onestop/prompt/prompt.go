// Package prompt reads line-oriented answers from a console and re-asks until they validate.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Console reads answers from in and writes prompts and messages to out.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	log *zap.Logger
}

// NewConsole returns a Console. A nil logger discards log output.
func NewConsole(in io.Reader, out io.Writer, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		log: log,
	}
}

// Println writes a line of text to the console.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text to the console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Ask writes the prompt and returns the answer without its line terminator.
// io.EOF is returned only when the input ends before any answer was typed.
func (c *Console) Ask(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Field describes one validated answer.
type Field[T any] struct {
	// Name identifies the field in logs.
	Name string
	// Prompt is shown for the first attempt.
	Prompt string
	// Retry is shown after a rejection. Empty means Prompt.
	Retry string
	// Parse converts an answer or rejects it.
	Parse func(string) (T, error)
	// Invalid returns the message printed for a rejection.
	Invalid func(error) string
}

// Ask prompts for f until Parse accepts an answer. The only errors returned
// are read failures, wrapped with the field name.
func Ask[T any](c *Console, f Field[T]) (T, error) {
	prompt := f.Prompt
	for {
		answer, err := c.Ask(prompt)
		if err != nil {
			var zero T
			return zero, fmt.Errorf("reading %s: %w", f.Name, err)
		}

		value, err := f.Parse(answer)
		if err == nil {
			return value, nil
		}

		c.log.Debug("Rejected input", zap.String("field", f.Name), zap.String("input", answer), zap.Error(err))
		if f.Invalid != nil {
			c.Println(f.Invalid(err))
		}
		if f.Retry != "" {
			prompt = f.Retry
		}
	}
}
