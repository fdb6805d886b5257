package ui

import (
	"strings"
	"testing"

	"lintscan/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	files := []string{"a.cfc", "b.cfm"}
	events := make(chan driver.ProgressEvent, 8)
	m := NewProgressModel("scanning", files, events).(*progressModel)

	for _, ev := range []driver.ProgressEvent{
		{Path: "a.cfc", Status: driver.StatusScanning},
		{Path: "a.cfc", Status: driver.StatusDone, Diagnostics: 3},
		{Path: "b.cfm", Status: driver.StatusCached},
		{Path: "unknown.cfm", Status: driver.StatusFailed},
	} {
		m.Update(eventMsg(ev))
	}

	if m.items[0].status != driver.StatusDone || m.items[0].diagnostics != 3 {
		t.Fatalf("a.cfc = %+v", m.items[0])
	}
	if m.items[1].status != driver.StatusCached {
		t.Fatalf("b.cfm = %+v", m.items[1])
	}
	if m.findings != 3 {
		t.Fatalf("findings = %d, want 3", m.findings)
	}

	m.Update(doneMsg{})
	view := m.View()
	for _, want := range []string{"done: scanning (3 findings)", "a.cfc (3)", "b.cfm", "cached"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestListenReportsClose(t *testing.T) {
	events := make(chan driver.ProgressEvent, 1)
	m := NewProgressModel("x", []string{"a"}, events).(*progressModel)
	Forward(events)(driver.ProgressEvent{Path: "a", Status: driver.StatusScanning})
	if msg := m.listenForEvent()(); msg != eventMsg(driver.ProgressEvent{Path: "a", Status: driver.StatusScanning}) {
		t.Fatalf("got %#v", msg)
	}
	close(events)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel must end the model")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("got %q", got)
	}
	if got := truncate("a/very/long/path.cfc", 10); got != "a/very/..." {
		t.Fatalf("got %q", got)
	}
	if got := truncate("abcdef", 2); got != "ab" {
		t.Fatalf("got %q", got)
	}
}
