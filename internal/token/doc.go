// Package token defines the script token model consumed by the scan layer.
// Invariants:
//   - Token.Index is the token's position in its Stream (0-based).
//   - Token.Span covers Text exactly; Token.Pos is the 1-based position of Span.Start.
//   - Comments and whitespace stay in the stream (hidden kinds) so rules can
//     look at them through a cursor; IsHidden reports them.
package token
