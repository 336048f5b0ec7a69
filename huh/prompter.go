// Package huh collects the consumer config through interactive terminal forms.
package huh

import (
	"bufio"
	"bytes"
	"cmp"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fwojciec/fragmen"
)

// Ensure Prompter implements fragmen.ConfigPrompter at compile time.
var _ fragmen.ConfigPrompter = (*Prompter)(nil)

// Prompter asks for the config with a three-field huh form.
type Prompter struct {
	// Accessible switches the form to plain line-based prompts.
	Accessible bool

	// Input and Output default to the terminal when nil.
	Input  io.Reader
	Output io.Writer

	// RunForm runs the form; nil runs it in the terminal.
	RunForm func(ctx context.Context, form *huh.Form) error
}

// NewPrompter creates a new Prompter.
func NewPrompter(accessible bool) *Prompter {
	return &Prompter{Accessible: accessible}
}

// Prompt asks for base directory, language and module system, pre-filled with
// defaults. An abort, including input ending before the last answer, returns
// ECANCELED.
func (p *Prompter) Prompt(ctx context.Context, defaults *fragmen.Config) (*fragmen.Config, error) {
	cfg := *defaults
	form := NewConfigForm(&cfg).WithAccessible(p.Accessible)

	var in *lineReader
	if p.Accessible {
		in = newLineReader(cmp.Or[io.Reader](p.Input, os.Stdin))
		form = form.WithInput(in)
	} else if p.Input != nil {
		form = form.WithInput(p.Input)
	}
	if p.Output != nil {
		form = form.WithOutput(p.Output)
	}

	run := p.RunForm
	if run == nil {
		run = func(ctx context.Context, form *huh.Form) error {
			return form.RunWithContext(ctx)
		}
	}

	if err := run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return nil, fragmen.Errorf(fragmen.ECANCELED, "init canceled")
		}
		return nil, err
	}

	// Accessible prompts fall back to their default on EOF instead of failing.
	if in != nil && in.aborted {
		return nil, fragmen.Errorf(fragmen.ECANCELED, "init canceled")
	}

	cfg.Schema = fragmen.SchemaURL
	cfg.BaseDir = cmp.Or(strings.TrimSpace(cfg.BaseDir), defaults.BaseDir)
	return &cfg, nil
}

// NewConfigForm creates the init form bound to cfg. A blank base directory
// answer keeps the pre-filled value.
func NewConfigForm(cfg *fragmen.Config) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where should fragments be installed?").
				Description("Directory relative to the project root").
				Placeholder(fragmen.DefaultBaseDir).
				Value(&cfg.BaseDir),
			huh.NewSelect[string]().
				Title("Which language does your project use?").
				Options(huh.NewOptions(fragmen.Languages...)...).
				Value(&cfg.Language),
			huh.NewSelect[string]().
				Title("Which module system does your project use?").
				Options(
					huh.NewOption("ES modules", "esm"),
					huh.NewOption("CommonJS", "cjs"),
				).
				Value(&cfg.ModuleSystem),
		),
	)
}

// lineReader hands out its input one line per Read. Every accessible prompt
// scans with a fresh buffer, so a larger read would swallow the answers to
// later prompts. aborted is set when the input ends at a line boundary.
type lineReader struct {
	r       *bufio.Reader
	pending []byte
	partial bool
	aborted bool
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

func (l *lineReader) Read(p []byte) (int, error) {
	if len(l.pending) == 0 {
		line, err := l.r.ReadBytes('\n')
		if len(line) == 0 {
			if errors.Is(err, io.EOF) && !l.partial {
				l.aborted = true
			}
			return 0, err
		}
		l.pending = line
		l.partial = !bytes.HasSuffix(line, []byte("\n"))
	}

	n := copy(p, l.pending)
	l.pending = l.pending[n:]
	return n, nil
}
