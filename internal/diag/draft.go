package diag

import (
	"lintscan/internal/markup"
	"lintscan/internal/script"
	"lintscan/internal/source"
	"lintscan/internal/token"
)

// Draft is a diagnostic under construction: the rule that owns it, an
// optional stamped position and an optional triggering expression.
type Draft struct {
	Rule string
	Pos  Pos
	Expr script.Expr
}

// NewDraft starts an unpositioned draft for rule.
func NewDraft(rule string) Draft {
	return Draft{Rule: rule}
}

func (d Draft) missing(what string) (Draft, error) {
	return d, &PositionError{Rule: d.Rule, Source: what}
}

// AtToken stamps line, column and offset from tok.
func (d Draft) AtToken(tok *token.Token) (Draft, error) {
	if tok == nil {
		return d.missing("token")
	}
	d.Pos = Pos{Line: tok.Pos.Line, Column: tok.Pos.Col, Offset: tok.Span.Start}
	return d, nil
}

// AtNode stamps the position of the node's token. A nil node is treated as a
// nil token and fails the same way.
func (d Draft) AtNode(n script.Node) (Draft, error) {
	if n == nil {
		return d.AtToken(nil)
	}
	return d.AtToken(n.Token())
}

// AtElement stamps the start of a markup element.
func (d Draft) AtElement(e *markup.Element) (Draft, error) {
	if e == nil {
		return d.missing("element")
	}
	return d.atOffset(e.File, e.Begin, "element")
}

// AtAttribute stamps the start of a markup attribute.
func (d Draft) AtAttribute(a *markup.Attribute) (Draft, error) {
	if a == nil {
		return d.missing("attribute")
	}
	return d.atOffset(a.File, a.Begin, "attribute")
}

// AtSegment stamps the start of a text segment.
func (d Draft) AtSegment(s *markup.Segment) (Draft, error) {
	if s == nil {
		return d.missing("segment")
	}
	return d.atOffset(s.File, s.Begin, "segment")
}

func (d Draft) atOffset(f *source.File, off uint32, what string) (Draft, error) {
	if f == nil {
		return d.missing(what + " source")
	}
	lc := f.LineCol(off)
	d.Pos = Pos{Line: lc.Line, Column: lc.Col, Offset: off}
	return d, nil
}

// WithExpr attaches the triggering expression.
func (d Draft) WithExpr(e script.Expr) Draft {
	d.Expr = e
	return d
}

// Finalize produces the record. The draft itself is unchanged, so a rule can
// finalize several findings at one stamped position.
func (d Draft) Finalize(code Code, subject string) Diagnostic {
	return Diagnostic{
		Code:     code,
		Subject:  subject,
		Pos:      d.Pos,
		Rule:     d.Rule,
		Expr:     d.Expr,
		Severity: SevWarning,
	}
}

// Carry returns a fresh draft for the same rule that keeps only the stamped
// position.
func (d Draft) Carry() Draft {
	return Draft{Rule: d.Rule, Pos: d.Pos}
}
