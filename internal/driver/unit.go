// Package driver runs rules over pre-parsed files. For each file it builds a
// scan.Tree that mirrors the region tree, feeds suppression annotations into
// it, calls the enabled rules region by region and finally filters the
// recorded diagnostics into a sorted diag.Bag.
package driver

import (
	"lintscan/internal/markup"
	"lintscan/internal/scan"
	"lintscan/internal/script"
	"lintscan/internal/source"
	"lintscan/internal/token"
)

// Region is one nested syntactic scope produced by the parser: a component,
// a function body, a query loop, a script block or an assignment.
type Region struct {
	Kind scan.Kind
	// Element replaces the enclosing element when non-nil.
	Element *markup.Element
	// Tokens replaces the token stream when non-nil; its comments are
	// scanned for suppression annotations.
	Tokens *token.Stream
	Func   *script.FuncDecl
	// Component is an explicit component name, e.g. from displayname.
	Component string
	// Assignment overrides the inherited assignment flag when non-nil.
	Assignment *bool
	Nodes      []script.Node
	Children   []*Region
}

// Unit is one parsed file.
type Unit struct {
	Path string
	File *source.File
	Root *Region
}

// Rule inspects one region at a time through its scan frame.
type Rule interface {
	Name() string
	Check(ctx scan.Ref, region *Region) error
}

type ruleFunc struct {
	name string
	fn   func(scan.Ref, *Region) error
}

func (r ruleFunc) Name() string                            { return r.name }
func (r ruleFunc) Check(ctx scan.Ref, region *Region) error { return r.fn(ctx, region) }

// NewRule adapts a function to Rule.
func NewRule(name string, fn func(ctx scan.Ref, region *Region) error) Rule {
	return ruleFunc{name: name, fn: fn}
}

// Bool returns a pointer to v, for Region.Assignment.
func Bool(v bool) *bool { return &v }
