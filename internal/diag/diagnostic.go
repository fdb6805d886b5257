package diag

import (
	"fmt"

	"lintscan/internal/script"
)

// Pos is where a finding points. Line and Column are 1-based; the zero Pos
// means the position is unknown.
type Pos struct {
	Line   uint32
	Column uint32
	Offset uint32
}

// Known reports whether a position was stamped.
func (p Pos) Known() bool { return p.Line != 0 }

func (p Pos) String() string {
	if !p.Known() {
		return "?"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Diagnostic struct {
	Code     Code
	Subject  string
	File     string
	Pos      Pos
	Rule     string
	Expr     script.Expr
	Severity Severity
}

// New builds a position-less diagnostic.
func New(code Code, subject string) Diagnostic {
	return Diagnostic{Code: code, Subject: subject, Severity: SevWarning}
}

// SameFinding reports whether two diagnostics have equal code and subject.
// Codes compare after Normalize, as in suppressions and config; position is
// not compared.
func (d Diagnostic) SameFinding(other Diagnostic) bool {
	return d.Subject == other.Subject && d.Code.Same(other.Code)
}

// ExprText renders the triggering expression or "" when there is none.
func (d Diagnostic) ExprText() string {
	if d.Expr == nil {
		return ""
	}
	return d.Expr.Decompile()
}
