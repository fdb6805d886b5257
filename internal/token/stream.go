package token

import (
	"lintscan/internal/source"
)

// Stream is the token sequence of one script region. It is read-only once built.
type Stream struct {
	File   source.FileID
	tokens []Token
}

// NewStream takes ownership of toks and renumbers Index to match positions.
func NewStream(file source.FileID, toks []Token) *Stream {
	for i := range toks {
		toks[i].Index = i
	}
	return &Stream{File: file, tokens: toks}
}

// Len returns the number of tokens; a nil stream has none.
func (s *Stream) Len() int {
	if s == nil {
		return 0
	}
	return len(s.tokens)
}

// At returns the token at index i.
func (s *Stream) At(i int) (Token, bool) {
	if s == nil || i < 0 || i >= len(s.tokens) {
		return Token{}, false
	}
	return s.tokens[i], true
}

// Tokens returns the backing slice. Callers must not modify it.
func (s *Stream) Tokens() []Token {
	if s == nil {
		return nil
	}
	return s.tokens
}

// Comments returns every comment token in stream order.
func (s *Stream) Comments() []Token {
	var out []Token
	for _, t := range s.Tokens() {
		if t.IsComment() {
			out = append(out, t)
		}
	}
	return out
}
