package scan

import (
	"lintscan/internal/diag"
	"lintscan/internal/markup"
	"lintscan/internal/script"
	"lintscan/internal/token"
)

// Builder binds a diag.Draft to a frame. Every step returns a new Builder;
// Build appends to the frame and hands back a builder that keeps the
// stamped position so a rule can emit several findings at one place.
type Builder struct {
	ref   Ref
	draft diag.Draft
}

// Builder starts an unpositioned builder for rule on this frame.
func (r Ref) Builder(rule string) Builder {
	return Builder{ref: r, draft: diag.NewDraft(rule)}
}

func (b Builder) with(d diag.Draft, err error) (Builder, error) {
	if err != nil {
		return b, err
	}
	b.draft = d
	return b, nil
}

func (b Builder) AtToken(tok *token.Token) (Builder, error) { return b.with(b.draft.AtToken(tok)) }

// AtNode accepts a nil node and then fails like AtToken(nil).
func (b Builder) AtNode(n script.Node) (Builder, error) { return b.with(b.draft.AtNode(n)) }

func (b Builder) AtElement(e *markup.Element) (Builder, error) { return b.with(b.draft.AtElement(e)) }

func (b Builder) AtAttribute(a *markup.Attribute) (Builder, error) {
	return b.with(b.draft.AtAttribute(a))
}

func (b Builder) AtSegment(s *markup.Segment) (Builder, error) { return b.with(b.draft.AtSegment(s)) }

// WithExpr attaches the triggering expression to the next Build only.
func (b Builder) WithExpr(e script.Expr) Builder {
	b.draft = b.draft.WithExpr(e)
	return b
}

// Draft exposes the staged draft.
func (b Builder) Draft() diag.Draft { return b.draft }

// Build finalizes the staged draft into the bound frame.
func (b Builder) Build(code diag.Code, subject string) (diag.Diagnostic, Builder) {
	d := b.draft.Finalize(code, subject)
	b.ref.Append(d)
	if d.File == "" {
		d.File = b.ref.File()
	}
	return d, Builder{ref: b.ref, draft: b.draft.Carry()}
}

// BuildOnce is Build with AppendOnce semantics; added reports the outcome.
func (b Builder) BuildOnce(code diag.Code, subject string) (added bool, next Builder) {
	added = b.ref.AppendOnce(b.draft.Finalize(code, subject))
	return added, Builder{ref: b.ref, draft: b.draft.Carry()}
}
