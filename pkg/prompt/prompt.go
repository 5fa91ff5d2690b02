// Package prompt asks the user for input, either through pterm's
// interactive widgets or through plain line based reads.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/termout/pkg/errors"
	"github.com/pterm/pterm"
)

// Options adjust a Prompt call
type Options struct {
	// Default is returned when the user enters nothing
	Default string
	// HideInput masks what the user types
	HideInput bool
}

// Prompter asks questions
type Prompter interface {
	Prompt(text string, opts Options) (string, error)
	Confirm(text string, def bool) (bool, error)
}

// New returns an interactive prompter for terminals and a line based one
// otherwise. Nil streams default to the process stdin and stdout.
func New(interactive bool, in io.Reader, out io.Writer) Prompter {
	if interactive {
		return &Interactive{}
	}
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return NewConsole(in, out)
}

// Console reads answers line by line
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole creates a line based prompter
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// Prompt asks until a non-empty answer or a default is available
func (c *Console) Prompt(text string, opts Options) (string, error) {
	label := text
	if opts.Default != "" && !opts.HideInput {
		label = fmt.Sprintf("%s [%s]", text, opts.Default)
	}

	for {
		answer, err := c.ask(label + ": ")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		if opts.Default != "" {
			return opts.Default, nil
		}
	}
}

// Confirm asks a yes/no question; an empty answer picks def
func (c *Console) Confirm(text string, def bool) (bool, error) {
	marker := "[y/N]"
	if def {
		marker = "[Y/n]"
	}

	for {
		answer, err := c.ask(fmt.Sprintf("%s %s: ", text, marker))
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "":
			return def, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if _, err := io.WriteString(c.out, "Error: invalid input\n"); err != nil {
			return false, errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
		}
	}
}

func (c *Console) ask(label string) (string, error) {
	if _, err := io.WriteString(c.out, label); err != nil {
		return "", errors.Wrap(err, errors.ErrPrompt, "failed to write prompt")
	}

	line, err := c.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, errors.ErrPrompt, "failed to read user input")
	}
	return strings.TrimSpace(line), nil
}

// Interactive uses pterm's keyboard driven widgets, which draw on the
// process terminal
type Interactive struct{}

// Prompt implements Prompter
func (i *Interactive) Prompt(text string, opts Options) (string, error) {
	input := pterm.DefaultInteractiveTextInput.WithDefaultValue(opts.Default)
	if opts.HideInput {
		input = input.WithMask("*")
	}

	answer, err := input.Show(text)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrPrompt, "failed to read user input")
	}
	if answer == "" {
		answer = opts.Default
	}
	return answer, nil
}

// Confirm implements Prompter
func (i *Interactive) Confirm(text string, def bool) (bool, error) {
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(def).Show(text)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrPrompt, "failed to read user input")
	}
	return ok, nil
}
