package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltersScopes(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeRun, false},
		{LevelError, ScopeRun, false},
		{LevelPhase, ScopeRun, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "ERROR", "phase", " Detail ", "debug", ""} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestStreamTracerNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelDetail, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	run := Begin(tr, ScopeRun, "run", 0)
	file := Begin(tr, ScopeFile, "scan:Foo.cfc", run.ID()).WithExtra("diagnostics", "2")
	Point(tr, ScopeNode, "derive", "filtered out", file.ID())
	file.End("")
	run.End("done")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 events, got %d:\n%s", len(lines), buf.String())
	}
	var ev map[string]any
	if err := json.Unmarshal([]byte(lines[2]), &ev); err != nil {
		t.Fatalf("bad json %q: %v", lines[2], err)
	}
	if ev["kind"] != "end" || ev["name"] != "scan:Foo.cfc" {
		t.Errorf("unexpected event %v", ev)
	}
	if extra, _ := ev["extra"].(map[string]any); extra["diagnostics"] != "2" {
		t.Errorf("missing extra in %v", ev)
	}
}

func TestTextFormatSortsExtra(t *testing.T) {
	out := string(FormatEvent(&Event{Seq: 3, Kind: KindPoint, Name: "n", Detail: "d", Extra: map[string]string{"b": "2", "a": "1"}}, FormatText))
	if out != "#3 \u2022 n (d) {a=1, b=2}\n" {
		t.Errorf("formatText = %q", out)
	}
}

func TestOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr != Nop {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	span := Begin(tr, ScopeRun, "x", 0)
	if span.ID() != 0 || span.End("") != 0 {
		t.Error("spans on Nop must be inert")
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Error("empty context must yield Nop")
	}
	tr := NewStreamTracer(&bytes.Buffer{}, LevelDebug, FormatText)
	ctx := WithTracer(context.Background(), tr)
	if FromContext(ctx) != Tracer(tr) {
		t.Error("tracer not propagated")
	}
	span := Begin(tr, ScopeRun, "run", 0)
	if CurrentSpan(WithSpan(ctx, span)) != span.ID() {
		t.Error("span id not propagated")
	}
}
