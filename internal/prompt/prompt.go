// Package prompt reads answers to interactive questions from a console.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompt asks questions on w and reads answers from r. Secrets are read
// without echo when r is a terminal.
type Prompt struct {
	r    *bufio.Reader
	w    io.Writer
	fd   int
	term bool
}

// New creates a Prompt reading from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompt {
	p := &Prompt{
		r: bufio.NewReader(in),
		w: out,
	}

	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.term = true
	}

	return p
}

// Line asks label and returns the trimmed answer. io.EOF is returned once the
// input is exhausted.
func (p *Prompt) Line(label string) (string, error) {
	fmt.Fprint(p.w, label)

	s, err := p.r.ReadString('\n')
	if err == io.EOF && s != "" {
		err = nil
	}

	return strings.TrimSpace(s), err
}

// Secret is like Line but does not echo the answer on a terminal.
func (p *Prompt) Secret(label string) (string, error) {
	if !p.term {
		return p.Line(label)
	}

	fmt.Fprint(p.w, label)
	b, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.w)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(string(b)), nil
}

// Confirm asks a yes/no question that defaults to no.
func (p *Prompt) Confirm(label string) (bool, error) {
	s, err := p.Line(label + " [y/N]: ")
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(s) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
