package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("Foo.cfc", []byte("component {}"), 0)
	id2 := fs.Add("Foo.cfc", []byte("component { x = 1; }"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}

	latest, ok := fs.GetLatest("Foo.cfc")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d, %v; want %d, true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "component {}" {
		t.Errorf("old version content changed: %q", got)
	}
	if fs.Get(id1).Hash == fs.Get(id2).Hash {
		t.Errorf("expected different hashes for different content")
	}
	if fs.Len() != 2 {
		t.Errorf("Len = %d, want 2", fs.Len())
	}
}

func TestAddVirtualLineIdx(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.cfm", []byte("a\nb\n")))

	want := []uint32{1, 3}
	if len(file.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", file.LineIdx, want)
	}
	for i := range want {
		if file.LineIdx[i] != want[i] {
			t.Errorf("LineIdx[%d] = %d, want %d", i, file.LineIdx[i], want[i])
		}
	}
	if file.Flags&FileVirtual == 0 {
		t.Error("expected FileVirtual flag")
	}
}

func TestLineCol(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.cfm", []byte("ab\ncd\n\nx")))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{1, LineCol{1, 2}},
		{2, LineCol{1, 3}}, // the newline itself
		{3, LineCol{2, 1}},
		{5, LineCol{2, 3}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
	}
	for _, tt := range tests {
		if got := file.LineCol(tt.off); got != tt.want {
			t.Errorf("LineCol(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestLineColSingleLine(t *testing.T) {
	fs := NewFileSet()
	file := fs.Get(fs.AddVirtual("a.cfm", []byte("hello")))
	if got := file.LineCol(4); got != (LineCol{Line: 1, Col: 5}) {
		t.Errorf("LineCol(4) = %+v", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("a.cfm", []byte("one\ntwo"))
	start, end := fs.Resolve(Span{File: id, Start: 4, End: 7})
	if start != (LineCol{2, 1}) || end != (LineCol{2, 4}) {
		t.Errorf("Resolve = %+v %+v", start, end)
	}
	if got := fs.Get(id).Slice(Span{File: id, Start: 4, End: 100}); got != "two" {
		t.Errorf("Slice = %q, want two", got)
	}
}

func TestLoadNormalizesContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Foo.cfc")
	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("a\r\nb\rc")...)
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSetWithBase(dir)
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	file := fs.Get(id)
	if got := string(file.Content); got != "a\nb\rc" {
		t.Errorf("content = %q", got)
	}
	if file.Flags&FileHadBOM == 0 || file.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF set", file.Flags)
	}
	if _, ok := fs.GetByPath(path); !ok {
		t.Errorf("GetByPath(%q) not found", path)
	}
	if fs.BaseDir() != dir {
		t.Errorf("BaseDir = %q, want %q", fs.BaseDir(), dir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "missing.cfc")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 6}
	if got := a.Cover(Span{File: 1, Start: 2, End: 5}); got != (Span{File: 1, Start: 2, End: 6}) {
		t.Errorf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 9}); got != a {
		t.Errorf("cross-file Cover changed span: %v", got)
	}
	if !a.Contains(5) || a.Contains(6) {
		t.Errorf("Contains boundary wrong")
	}
	if a.Len() != 2 || a.Empty() {
		t.Errorf("Len/Empty wrong for %v", a)
	}
}
