package scan

import (
	"fmt"

	"lintscan/internal/markup"
	"lintscan/internal/token"
	"lintscan/internal/trace"
)

// Derive creates a child frame for a nested node. The child inherits file,
// function name, assignment and component flags, component name and token
// stream; el replaces the element when non-nil. Kind, function info,
// diagnostics and suppressions start empty.
func (r Ref) Derive(el *markup.Element) Ref {
	child := r.inherit()
	if el != nil {
		child.element = el
	}
	return r.attach(child, "derive")
}

// DeriveWithTokens is Derive for a script region with its own token stream.
// A nil stream leaves the child without tokens.
func (r Ref) DeriveWithTokens(el *markup.Element, tokens *token.Stream) Ref {
	child := r.inherit()
	if el != nil {
		child.element = el
	}
	child.tokens = tokens
	return r.attach(child, "derive-script")
}

// DeriveInAssignment creates a child frame with the assignment flag set to v.
func (r Ref) DeriveInAssignment(v bool) Ref {
	child := r.inherit()
	child.inAssignment = v
	return r.attach(child, "derive-assignment")
}

// inherit copies the fields children share with r. It returns a value so
// that no pointer into the arena survives the following allocation.
func (r Ref) inherit() frame {
	p := r.f()
	return frame{
		parent:        r.id,
		file:          p.file,
		componentName: p.componentName,
		componentSet:  p.componentSet,
		functionName:  p.functionName,
		inAssignment:  p.inAssignment,
		inComponent:   p.inComponent,
		element:       p.element,
		tokens:        p.tokens,
	}
}

func (r Ref) attach(child frame, how string) Ref {
	id := ID(r.tree.frames.allocate(child))
	if r.tree.tracer.Enabled() {
		trace.Point(r.tree.tracer, trace.ScopeNode, how, fmt.Sprintf("%d <- %d", id, r.id), r.tree.span)
	}
	return Ref{tree: r.tree, id: id}
}
