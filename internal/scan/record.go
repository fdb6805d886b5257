package scan

import (
	"slices"

	"lintscan/internal/diag"
)

// Append adds d to this frame's list. An empty File is stamped with the
// frame's file.
func (r Ref) Append(d diag.Diagnostic) {
	f := r.f()
	if d.File == "" {
		d.File = f.file
	}
	f.diags = append(f.diags, d)
}

// AppendOnce appends d unless this frame already holds a diagnostic with the
// same code and subject. Only the frame's own list is checked, so siblings
// never deduplicate against each other. Reports whether d was added.
func (r Ref) AppendOnce(d diag.Diagnostic) bool {
	if d.Code.Valid() && r.hasFinding(d) {
		return false
	}
	r.Append(d)
	return true
}

func (r Ref) hasFinding(d diag.Diagnostic) bool {
	return slices.ContainsFunc(r.f().diags, d.SameFinding)
}

// Record appends a position-less diagnostic.
func (r Ref) Record(code diag.Code, subject string) {
	r.Append(diag.New(code, subject))
}

// RecordOnce is Record with AppendOnce semantics.
func (r Ref) RecordOnce(code diag.Code, subject string) bool {
	return r.AppendOnce(diag.New(code, subject))
}

// Diagnostics returns a copy of this frame's own diagnostics.
func (r Ref) Diagnostics() []diag.Diagnostic {
	return slices.Clone(r.f().diags)
}

// AddSuppressions adds codes to this frame's suppression set. Codes are
// normalized; blanks are skipped. Suppressions are never removed.
func (r Ref) AddSuppressions(codes ...diag.Code) {
	f := r.f()
	for _, c := range codes {
		c = diag.Normalize(string(c))
		if c.Valid() && !slices.Contains(f.suppressed, c) {
			f.suppressed = append(f.suppressed, c)
		}
	}
}

// Suppressions returns the codes added to this frame itself.
func (r Ref) Suppressions() []diag.Code {
	return slices.Clone(r.f().suppressed)
}

// IsSuppressed reports whether d's code is suppressed here or on any ancestor.
func (r Ref) IsSuppressed(d diag.Diagnostic) bool {
	return r.IsCodeSuppressed(d.Code)
}

// IsCodeSuppressed is IsSuppressed for a bare code.
func (r Ref) IsCodeSuppressed(code diag.Code) bool {
	code = diag.Normalize(string(code))
	for id := r.id; id.IsValid(); {
		f := r.tree.frames.get(uint32(id))
		if slices.Contains(f.suppressed, code) {
			return true
		}
		id = f.parent
	}
	return false
}
