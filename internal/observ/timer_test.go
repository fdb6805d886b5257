package observ

import (
	"strings"
	"testing"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	a := tm.Begin("derive")
	tm.End(a, "3 contexts")
	b := tm.Begin("rules")
	tm.End(b, "")
	tm.End(99, "ignored")

	r := tm.Report()
	if len(r.Phases) != 2 || r.Phases[0].Name != "derive" || r.Phases[0].Note != "3 contexts" {
		t.Fatalf("unexpected report %+v", r)
	}
	if r.TotalMS < r.Phases[0].DurationMS {
		t.Errorf("total %.3f < phase %.3f", r.TotalMS, r.Phases[0].DurationMS)
	}
	s := tm.Summary()
	if !strings.Contains(s, "derive") || !strings.Contains(s, "// 3 contexts") || !strings.Contains(s, "total") {
		t.Errorf("summary missing parts:\n%s", s)
	}
}

func TestEmptyTimer(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Errorf("empty report = %+v", r)
	}
}
