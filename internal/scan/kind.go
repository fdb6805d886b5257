package scan

// Kind classifies the syntactic region a frame represents.
type Kind uint8

const (
	// KindNone is an unclassified frame; it matches no AncestorOfType query.
	KindNone Kind = iota
	KindComponent
	KindFunction
	KindOther
	KindQueryLoop
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindComponent:
		return "component"
	case KindFunction:
		return "function"
	case KindOther:
		return "other"
	case KindQueryLoop:
		return "query_loop"
	default:
		return "unknown"
	}
}

// ID addresses a frame inside its Tree. NoID is the root's parent.
type ID uint32

const NoID ID = 0

func (id ID) IsValid() bool { return id != NoID }
