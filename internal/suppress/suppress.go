// Package suppress reads @lintscan-ignore annotations from comments.
//
// Supported forms, in any comment style the tokenizer produces:
//
//	// @lintscan-ignore UNUSED_VAR
//	/* @lintscan-ignore UNUSED_VAR, MISSING_VAR - legacy code */
//	<!--- @lintscan-ignore QUERY_PARAM --->
//
// An annotation applies to the scan frame whose region holds the comment and
// to every frame below it.
package suppress

import (
	"strings"

	"lintscan/internal/diag"
	"lintscan/internal/token"
)

// Marker introduces an annotation.
const Marker = "@lintscan-ignore"

// Parse extracts the codes of an annotation comment. ok is false when text
// is not an annotation. An annotation that names no codes returns nil, true.
func Parse(text string) (codes []diag.Code, ok bool) {
	text = stripDelims(text)
	idx := strings.Index(text, Marker)
	if idx < 0 {
		return nil, false
	}
	rest := text[idx+len(Marker):]
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		// "@lintscan-ignored" and friends are not ours
		return nil, false
	}
	rest = strings.TrimSpace(rest)

	// trailing reason: "CODE - why"
	if i := strings.Index(rest, " - "); i >= 0 {
		rest = rest[:i]
	}
	if rest == "-" || strings.HasPrefix(rest, "- ") {
		return nil, true
	}

	for part := range strings.FieldsFuncSeq(rest, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' }) {
		if c := diag.Normalize(part); c.Valid() {
			codes = append(codes, c)
		}
	}
	return codes, true
}

func stripDelims(text string) string {
	text = strings.TrimSpace(text)
	switch {
	case strings.HasPrefix(text, "<!---"):
		text = strings.TrimSuffix(strings.TrimPrefix(text, "<!---"), "--->")
	case strings.HasPrefix(text, "/*"):
		text = strings.TrimSuffix(strings.TrimPrefix(text, "/*"), "*/")
	case strings.HasPrefix(text, "//"):
		text = strings.TrimPrefix(text, "//")
	}
	return strings.TrimSpace(text)
}

// FromTokens collects the codes of every annotation among the stream's
// comments, in stream order and without duplicates.
func FromTokens(stream *token.Stream) []diag.Code {
	var out []diag.Code
	seen := make(map[diag.Code]struct{})
	for _, c := range stream.Comments() {
		codes, ok := Parse(c.Text)
		if !ok {
			continue
		}
		for _, code := range codes {
			if _, dup := seen[code]; dup {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	return out
}
