package scan

import (
	"iter"

	"lintscan/internal/config"
	"lintscan/internal/diag"
	"lintscan/internal/markup"
	"lintscan/internal/script"
	"lintscan/internal/token"
	"lintscan/internal/trace"
)

type frame struct {
	parent        ID
	file          string
	componentName string
	componentSet  bool
	functionName  string
	funcInfo      *script.FuncDecl
	kind          Kind
	inAssignment  bool
	inComponent   bool
	element       *markup.Element
	tokens        *token.Stream
	diags         []diag.Diagnostic
	suppressed    []diag.Code
}

// Tree is the context tree of one file scan.
type Tree struct {
	frames *arena[frame]
	stack  *Stack
	cfg    *config.Config
	tracer trace.Tracer
	span   uint64
}

// Options seed the root frame and the tree-wide collaborators.
type Options struct {
	Element      *markup.Element
	Tokens       *token.Stream
	FunctionName string
	InAssignment bool
	Stack        *Stack       // nil creates a fresh one
	Tracer       trace.Tracer // nil means trace.Nop
	TraceParent  uint64       // span that derive events hang under
}

// NewTree creates the tree for file with its root frame. A nil cfg uses
// config.Default.
func NewTree(file string, cfg *config.Config, opts Options) *Tree {
	if cfg == nil {
		cfg = config.Default()
	}
	stack := opts.Stack
	if stack == nil {
		stack = NewStack()
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	t := &Tree{
		frames: newArena[frame](16),
		stack:  stack,
		cfg:    cfg,
		tracer: tracer,
		span:   opts.TraceParent,
	}
	t.frames.allocate(frame{
		file:         file,
		functionName: opts.FunctionName,
		inAssignment: opts.InAssignment,
		element:      opts.Element,
		tokens:       opts.Tokens,
	})
	return t
}

// Root returns the file's root frame.
func (t *Tree) Root() Ref { return Ref{tree: t, id: 1} }

// Len returns the number of frames created so far.
func (t *Tree) Len() int { return t.frames.len() }

// Lookup returns the frame with id.
func (t *Tree) Lookup(id ID) (Ref, bool) {
	if t.frames.get(uint32(id)) == nil {
		return Ref{}, false
	}
	return Ref{tree: t, id: id}, true
}

// All yields every frame in creation order; parents precede children.
func (t *Tree) All() iter.Seq[Ref] {
	return func(yield func(Ref) bool) {
		for i := 1; i <= t.frames.len(); i++ {
			if !yield(Ref{tree: t, id: ID(i)}) {
				return
			}
		}
	}
}

// Config returns the run configuration.
func (t *Tree) Config() *config.Config { return t.cfg }

// Stack returns the call-stack tracker shared by all frames.
func (t *Tree) Stack() *Stack { return t.stack }

// Ref is a handle to one frame. It is a small value; pass it by value.
type Ref struct {
	tree *Tree
	id   ID
}

func (r Ref) f() *frame { return r.tree.frames.get(uint32(r.id)) }

// Valid reports whether r points at a frame.
func (r Ref) Valid() bool { return r.tree != nil && r.f() != nil }

// ID returns the frame's arena id.
func (r Ref) ID() ID { return r.id }

// Tree returns the tree that owns the frame.
func (r Ref) Tree() *Tree { return r.tree }

// Parent returns the enclosing frame; false for the root.
func (r Ref) Parent() (Ref, bool) {
	p := r.f().parent
	if !p.IsValid() {
		return Ref{}, false
	}
	return Ref{tree: r.tree, id: p}, true
}

func (r Ref) IsRoot() bool { return !r.f().parent.IsValid() }

func (r Ref) File() string { return r.f().file }
func (r Ref) SetFile(path string) { r.f().file = path }
func (r Ref) FunctionName() string { return r.f().functionName }
func (r Ref) SetFunctionName(n string) { r.f().functionName = n }

// InFunction reports whether the frame has a non-empty function name.
func (r Ref) InFunction() bool { return r.f().functionName != "" }

func (r Ref) Kind() Kind { return r.f().kind }
func (r Ref) InAssignment() bool { return r.f().inAssignment }
func (r Ref) SetInAssignment(v bool) { r.f().inAssignment = v }
func (r Ref) InComponent() bool { return r.f().inComponent }
func (r Ref) SetInComponent(v bool) { r.f().inComponent = v }
func (r Ref) Element() *markup.Element { return r.f().element }
func (r Ref) Tokens() *token.Stream { return r.f().tokens }
func (r Ref) FunctionInfo() *script.FuncDecl { return r.f().funcInfo }
func (r Ref) Config() *config.Config { return r.tree.cfg }
func (r Ref) Stack() *Stack { return r.tree.stack }

// SetKind classifies the frame. Classifying a frame as a component with no
// component name yet caches the name derived from the file path.
func (r Ref) SetKind(k Kind) {
	f := r.f()
	f.kind = k
	if k == KindComponent && !f.componentSet {
		if name := componentFromPath(f.file); name != "" {
			f.componentName = name
			f.componentSet = true
		}
	}
}

// SetFunctionInfo stores the declaration node; a non-nil declaration also
// replaces the function name ("" for an anonymous declaration).
func (r Ref) SetFunctionInfo(decl *script.FuncDecl) {
	f := r.f()
	f.funcInfo = decl
	if decl != nil {
		f.functionName = decl.FuncName()
	}
}

// AncestorOfType walks up from r (inclusive) to the nearest frame of kind k.
// When none matches it returns the root; callers compare Kind() to tell.
func (r Ref) AncestorOfType(k Kind) Ref {
	cur := r
	for {
		f := cur.f()
		if f.kind == k || !f.parent.IsValid() {
			return cur
		}
		cur = Ref{tree: r.tree, id: f.parent}
	}
}

// FileFunctionKey is "<file>:<function>", used as a per-function cache key.
// ok is false when both file and function are empty.
func (r Ref) FileFunctionKey() (key string, ok bool) {
	f := r.f()
	if f.file == "" && f.functionName == "" {
		return "", false
	}
	return trimSpace(f.file) + ":" + f.functionName, true
}

// StartLine is the line of the enclosing element, or 1 without one.
func (r Ref) StartLine() uint32 {
	el := r.f().element
	if el == nil || el.File == nil {
		return 1
	}
	return el.Row()
}

// Offset is where script text of the enclosing element starts, or 0.
func (r Ref) Offset() uint32 {
	el := r.f().element
	if el == nil {
		return 0
	}
	return el.ScriptOffset()
}
