package ui

import (
	"strings"
	"time"

	"github.com/noborus/ov/oviewer"
	"github.com/pkg/errors"
)

// Suspender hands the terminal to another program and takes it back.
// Both *tea.Program and *terminal.Session implement it.
type Suspender interface {
	ReleaseTerminal() error
	RestoreTerminal() error
}

// Pager shows long content in ov
type Pager struct {
	suspender Suspender
	run       func(title, content string) error
}

// NewPager creates a pager that suspends s while ov runs
func NewPager(s Suspender) *Pager {
	return &Pager{
		suspender: s,
		run:       runOviewer,
	}
}

// Show releases the terminal, pages the lines and restores the terminal.
// The terminal is restored even if ov fails.
func (p *Pager) Show(title string, lines []string) (err error) {
	if p.suspender == nil {
		return errors.New("pager: no terminal to suspend")
	}

	// Release terminal control to run ov
	if err := p.suspender.ReleaseTerminal(); err != nil {
		return errors.Wrap(err, "release terminal")
	}

	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		if rerr := p.suspender.RestoreTerminal(); rerr != nil && err == nil {
			err = errors.Wrap(rerr, "restore terminal")
		}
	}()

	return p.run(title, strings.Join(lines, "\n"))
}

func runOviewer(title, content string) error {
	root, err := oviewer.NewRoot(strings.NewReader(content))
	if err != nil {
		return errors.Wrap(err, "create pager")
	}
	root.Doc.Caption = title

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
