package scan

import (
	"iter"

	"lintscan/internal/token"
)

// Cursor walks a token stream away from a reference token by a signed step.
// It is read-only and single-use; build a fresh one per request.
type Cursor struct {
	stream *token.Stream
	next   int
	step   int
}

// NewCursor starts at from.Index+step. A nil stream or zero step yields nothing.
func NewCursor(stream *token.Stream, from token.Token, step int) *Cursor {
	return &Cursor{stream: stream, next: from.Index + step, step: step}
}

// Next returns the following token. Once it reports false it stays exhausted.
func (c *Cursor) Next() (token.Token, bool) {
	if c.step == 0 {
		return token.Token{}, false
	}
	tok, ok := c.stream.At(c.next)
	if !ok {
		c.step = 0
		return token.Token{}, false
	}
	c.next += c.step
	return tok, true
}

// Neighbors is a restartable lazy sequence of tokens flanking from.
func Neighbors(stream *token.Stream, from token.Token, step int) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		c := NewCursor(stream, from, step)
		for tok, ok := c.Next(); ok; tok, ok = c.Next() {
			if !yield(tok) {
				return
			}
		}
	}
}

// Significant drops whitespace and comments from seq.
func Significant(seq iter.Seq[token.Token]) iter.Seq[token.Token] {
	return func(yield func(token.Token) bool) {
		for tok := range seq {
			if tok.IsHidden() {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Before yields the tokens preceding tok, nearest first. A frame without a
// token stream yields nothing.
func (r Ref) Before(tok token.Token) iter.Seq[token.Token] {
	return Neighbors(r.f().tokens, tok, -1)
}

// After yields the tokens following tok, nearest first.
func (r Ref) After(tok token.Token) iter.Seq[token.Token] {
	return Neighbors(r.f().tokens, tok, 1)
}
