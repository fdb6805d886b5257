package scan

import (
	"strings"
)

// Stack tracks variable scopes during a traversal. It is shared by all
// frames of a tree; the driver pushes on entering a function or component
// and pops on leaving it. Names are case-insensitive.
type Stack struct {
	scopes []stackScope
}

type stackScope struct {
	kind Kind
	name string
	vars map[string]struct{}
}

// NewStack returns a stack holding only the file-level scope.
func NewStack() *Stack {
	return &Stack{scopes: []stackScope{{kind: KindOther, vars: map[string]struct{}{}}}}
}

// Push opens a scope.
func (s *Stack) Push(kind Kind, name string) {
	s.scopes = append(s.scopes, stackScope{kind: kind, name: name, vars: map[string]struct{}{}})
}

// Pop closes the innermost scope. The file-level scope is never popped.
func (s *Stack) Pop() bool {
	if len(s.scopes) <= 1 {
		return false
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
	return true
}

// Depth counts the open scopes, the file-level one included.
func (s *Stack) Depth() int { return len(s.scopes) }

// Current returns the innermost scope's kind and name.
func (s *Stack) Current() (Kind, string) {
	top := s.scopes[len(s.scopes)-1]
	return top.kind, top.name
}

// Declare records name in the innermost scope.
func (s *Stack) Declare(name string) {
	s.scopes[len(s.scopes)-1].vars[strings.ToLower(name)] = struct{}{}
}

// Declared reports whether name is visible from the innermost scope.
func (s *Stack) Declared(name string) bool {
	key := strings.ToLower(name)
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if _, ok := s.scopes[i].vars[key]; ok {
			return true
		}
	}
	return false
}

// DeclaredLocally reports whether name is declared in the innermost scope.
func (s *Stack) DeclaredLocally(name string) bool {
	_, ok := s.scopes[len(s.scopes)-1].vars[strings.ToLower(name)]
	return ok
}
