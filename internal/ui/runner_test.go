package ui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"lintscan/internal/driver"
	"lintscan/internal/scan"
)

func headless() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithInput(nil), tea.WithOutput(io.Discard), tea.WithoutSignalHandler()}
}

func TestRunWithProgress(t *testing.T) {
	units := []driver.Unit{
		{Path: "a.cfc", Root: &driver.Region{Kind: scan.KindComponent}},
		{Path: "b.cfm", Root: &driver.Region{Kind: scan.KindOther}},
	}
	flag := driver.NewRule("flag", func(ctx scan.Ref, _ *driver.Region) error {
		ctx.RecordOnce("FLAG", ctx.File())
		return nil
	})

	var mu sync.Mutex
	var finals []string
	opts := driver.Options{Jobs: 2, Progress: func(ev driver.ProgressEvent) {
		if ev.Status.Finished() {
			mu.Lock()
			finals = append(finals, ev.Path)
			mu.Unlock()
		}
	}}

	results, err := RunWithProgress(context.Background(), "scanning", nil, units, []driver.Rule{flag}, opts, headless()...)
	if err != nil {
		t.Fatalf("RunWithProgress: %v", err)
	}
	if len(results) != 2 || results[0].Path != "a.cfc" || results[1].Path != "b.cfm" {
		t.Fatalf("results = %+v", results)
	}
	for _, res := range results {
		if res.Bag.Len() != 1 {
			t.Errorf("%s: %d diagnostics, want 1", res.Path, res.Bag.Len())
		}
	}
	if len(finals) != 2 {
		t.Fatalf("observer saw %v", finals)
	}
}

func TestRunWithProgressReportsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	units := []driver.Unit{{Path: "a.cfc", Root: &driver.Region{}}}
	_, err := RunWithProgress(ctx, "scanning", nil, units, nil, driver.Options{}, headless()...)
	if err == nil {
		t.Fatal("expected the cancellation to surface")
	}
}

func TestParseMode(t *testing.T) {
	for in, want := range map[string]Mode{"": ModeAuto, "AUTO": ModeAuto, " on ": ModeOn, "off": ModeOff} {
		got, err := ParseMode(in)
		if err != nil || got != want {
			t.Errorf("ParseMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseMode("sometimes"); err == nil {
		t.Error("expected an error for an unknown mode")
	}
}

func TestModeEnabled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if ModeAuto.Enabled(f) {
		t.Error("a regular file is not a terminal")
	}
	if !ModeOn.Enabled(f) || ModeOff.Enabled(f) {
		t.Error("explicit modes must not look at the output")
	}
	if ModeAuto.Enabled(nil) {
		t.Error("nil output is not a terminal")
	}
}
