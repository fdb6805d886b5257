package suppress

import (
	"slices"
	"testing"

	"lintscan/internal/diag"
	"lintscan/internal/token"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		codes []diag.Code
		ok    bool
	}{
		{name: "line", text: "// @lintscan-ignore UNUSED_VAR", codes: []diag.Code{"UNUSED_VAR"}, ok: true},
		{name: "block list", text: "/* @lintscan-ignore a, b */", codes: []diag.Code{"A", "B"}, ok: true},
		{name: "markup", text: "<!--- @lintscan-ignore QUERY_PARAM --->", codes: []diag.Code{"QUERY_PARAM"}, ok: true},
		{name: "reason", text: "// @lintscan-ignore X - legacy", codes: []diag.Code{"X"}, ok: true},
		{name: "only reason", text: "// @lintscan-ignore - legacy", ok: true},
		{name: "bare", text: "// @lintscan-ignore", ok: true},
		{name: "prose before marker", text: "/* note: @lintscan-ignore Y */", codes: []diag.Code{"Y"}, ok: true},
		{name: "not ours", text: "// @lintscan-ignored X"},
		{name: "plain comment", text: "// nothing to see"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codes, ok := Parse(tt.text)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if !slices.Equal(codes, tt.codes) {
				t.Fatalf("codes = %v, want %v", codes, tt.codes)
			}
		})
	}
}

func TestFromTokens(t *testing.T) {
	stream := token.NewStream(0, []token.Token{
		{Kind: token.LineComment, Text: "// @lintscan-ignore A,B"},
		{Kind: token.Ident, Text: "x"},
		{Kind: token.StringLit, Text: `"@lintscan-ignore C"`},
		{Kind: token.BlockComment, Text: "/* @lintscan-ignore b, D */"},
	})
	got := FromTokens(stream)
	want := []diag.Code{"A", "B", "D"}
	if !slices.Equal(got, want) {
		t.Fatalf("FromTokens = %v, want %v", got, want)
	}
	if FromTokens(nil) != nil {
		t.Fatal("nil stream must yield no codes")
	}
}
