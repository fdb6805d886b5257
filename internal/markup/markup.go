// Package markup exposes positioned views of tag-based source: elements,
// their start tags and attributes, and arbitrary text segments.
// Views do not own text; they are offsets into a source.File.
package markup

import (
	"strings"

	"lintscan/internal/source"
)

// Tag names with special script-offset rules.
const (
	TagScript = "cfscript"
	TagSet    = "cfset"
)

// Segment is a byte range [Begin, End) of a source file.
type Segment struct {
	File  *source.File
	Begin uint32
	End   uint32
}

// Pos returns the 1-based line/column of Begin.
func (s Segment) Pos() source.LineCol {
	return s.File.LineCol(s.Begin)
}

// Row returns the 1-based line of Begin.
func (s Segment) Row() uint32 { return s.Pos().Line }

// Text returns the covered source text.
func (s Segment) Text() string {
	if s.File == nil {
		return ""
	}
	return s.File.Slice(source.Span{File: s.File.ID, Start: s.Begin, End: s.End})
}

// Span converts the segment to a source span.
func (s Segment) Span() source.Span {
	var id source.FileID
	if s.File != nil {
		id = s.File.ID
	}
	return source.Span{File: id, Start: s.Begin, End: s.End}
}

// Attribute is a name="value" pair inside a start tag.
type Attribute struct {
	Segment
	Name  string
	Value string
}

// Element is a tag together with its body.
type Element struct {
	Segment
	Name       string
	StartTag   Segment
	TagContent Segment // text between the tag name and the closing '>'
	Attributes []Attribute
}

// Is reports whether the element has the given tag name, ignoring case.
func (e *Element) Is(name string) bool {
	return e != nil && strings.EqualFold(e.Name, name)
}

// Attribute looks an attribute up by name, ignoring case.
func (e *Element) Attribute(name string) (*Attribute, bool) {
	if e == nil {
		return nil, false
	}
	for i := range e.Attributes {
		if strings.EqualFold(e.Attributes[i].Name, name) {
			return &e.Attributes[i], true
		}
	}
	return nil, false
}

// ScriptOffset is the offset where script text of the element starts:
// after the start tag for a script block, just past the tag content start
// for a set tag, and the element start otherwise.
func (e *Element) ScriptOffset() uint32 {
	switch {
	case e.Is(TagScript):
		return e.StartTag.End
	case e.Is(TagSet):
		return e.TagContent.Begin + 1
	default:
		return e.Begin
	}
}
