// Package script holds the minimal script AST surface the scan layer needs:
// nodes that expose their leading token, expressions that can render
// themselves, and function declarations.
package script

import (
	"strings"

	"lintscan/internal/token"
)

// Node is any syntax node that can point at a token. Token may return nil
// for synthesized nodes.
type Node interface {
	Token() *token.Token
}

// Expr is an expression node.
type Expr interface {
	Node
	Decompile() string
}

// Ident is a (possibly dotted) name reference.
type Ident struct {
	Tok  *token.Token
	Name string
}

func (i *Ident) Token() *token.Token {
	if i == nil {
		return nil
	}
	return i.Tok
}

func (i *Ident) Decompile() string {
	if i == nil {
		return ""
	}
	return i.Name
}

// Literal is a number or string constant as written.
type Literal struct {
	Tok  *token.Token
	Text string
}

func (l *Literal) Token() *token.Token {
	if l == nil {
		return nil
	}
	return l.Tok
}

func (l *Literal) Decompile() string {
	if l == nil {
		return ""
	}
	return l.Text
}

// Assign is `Left Op Right`.
type Assign struct {
	Tok   *token.Token // operator token
	Left  Expr
	Op    string
	Right Expr
}

func (a *Assign) Token() *token.Token {
	if a == nil {
		return nil
	}
	return a.Tok
}

func (a *Assign) Decompile() string {
	if a == nil {
		return ""
	}
	var sb strings.Builder
	if a.Left != nil {
		sb.WriteString(a.Left.Decompile())
	}
	sb.WriteString(" ")
	sb.WriteString(a.Op)
	sb.WriteString(" ")
	if a.Right != nil {
		sb.WriteString(a.Right.Decompile())
	}
	return sb.String()
}

// Call is `Callee(Args...)`.
type Call struct {
	Tok    *token.Token
	Callee Expr
	Args   []Expr
}

func (c *Call) Token() *token.Token {
	if c == nil {
		return nil
	}
	return c.Tok
}

func (c *Call) Decompile() string {
	if c == nil {
		return ""
	}
	args := make([]string, 0, len(c.Args))
	for _, a := range c.Args {
		if a != nil {
			args = append(args, a.Decompile())
		}
	}
	callee := ""
	if c.Callee != nil {
		callee = c.Callee.Decompile()
	}
	return callee + "(" + strings.Join(args, ", ") + ")"
}

// FuncDecl is a function declaration header.
type FuncDecl struct {
	Tok        *token.Token // the `function` keyword
	Name       *Ident
	Access     string
	ReturnType string
	Params     []*Ident
}

func (f *FuncDecl) Token() *token.Token {
	if f == nil {
		return nil
	}
	return f.Tok
}

// FuncName returns the declared name or "" when the declaration is anonymous.
func (f *FuncDecl) FuncName() string {
	if f == nil || f.Name == nil {
		return ""
	}
	return f.Name.Decompile()
}
