package ui

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"lintscan/internal/config"
	"lintscan/internal/driver"
)

// Mode selects whether the progress view is shown.
type Mode string

const (
	ModeAuto Mode = "auto"
	ModeOn   Mode = "on"
	ModeOff  Mode = "off"
)

// ParseMode reads a --ui style value.
func ParseMode(value string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return ModeAuto, nil
	case "on":
		return ModeOn, nil
	case "off":
		return ModeOff, nil
	default:
		return "", fmt.Errorf("invalid ui mode %q (expected auto|on|off)", value)
	}
}

// Enabled resolves ModeAuto by checking whether out is a terminal.
func (m Mode) Enabled(out *os.File) bool {
	switch m {
	case ModeOn:
		return true
	case ModeOff:
		return false
	default:
		return out != nil && term.IsTerminal(int(out.Fd())) // #nosec G115 -- fd fits in int
	}
}

type runOutcome struct {
	results []*driver.Result
	err     error
}

// RunWithProgress runs driver.Run while a Bubble Tea program renders its
// progress. A Progress callback already set in opts still sees every event.
// The program writes to stdout unless progOpts say otherwise.
func RunWithProgress(ctx context.Context, title string, cfg *config.Config, units []driver.Unit, rules []driver.Rule, opts driver.Options, progOpts ...tea.ProgramOption) ([]*driver.Result, error) {
	files := make([]string, 0, len(units))
	for _, unit := range units {
		files = append(files, unit.Path)
	}

	events := make(chan driver.ProgressEvent, 256)
	outcomeCh := make(chan runOutcome, 1)
	forward := Forward(events)
	observer := opts.Progress
	opts.Progress = func(ev driver.ProgressEvent) {
		if observer != nil {
			observer(ev)
		}
		forward(ev)
	}

	go func() {
		res, err := driver.Run(ctx, cfg, units, rules, opts)
		outcomeCh <- runOutcome{results: res, err: err}
		close(events)
	}()

	model := NewProgressModel(title, files, events)
	program := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithOutput(os.Stdout)}, progOpts...)...)
	_, uiErr := program.Run()
	// the program may stop before the scan does
	for range events {
	}
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
