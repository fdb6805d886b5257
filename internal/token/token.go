package token

import (
	"lintscan/internal/source"
)

// Token is a single script token with its stream index and location.
type Token struct {
	Kind  Kind
	Index int
	Span  source.Span
	Pos   source.LineCol
	Text  string
}

// IsComment reports whether the token is any kind of comment.
func (t Token) IsComment() bool {
	switch t.Kind {
	case LineComment, BlockComment, MarkupComment:
		return true
	default:
		return false
	}
}

// IsHidden reports whether the token is trivia (comment or whitespace).
func (t Token) IsHidden() bool { return t.Kind == Whitespace || t.IsComment() }

// IsAssignOp reports whether the token is '=' or a compound assignment.
func (t Token) IsAssignOp() bool { return t.Kind == Assign || t.Kind == CompoundOp }

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
