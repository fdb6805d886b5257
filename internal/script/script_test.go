package script_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lintscan/internal/script"
	"lintscan/internal/token"
)

func TestDecompile(t *testing.T) {
	eq := &token.Token{Kind: token.Assign, Text: "="}
	expr := &script.Assign{
		Tok:  eq,
		Left: &script.Ident{Name: "local.x"},
		Op:   "=",
		Right: &script.Call{
			Callee: &script.Ident{Name: "foo"},
			Args:   []script.Expr{&script.Literal{Text: "1"}, &script.Ident{Name: "y"}},
		},
	}
	assert.Equal(t, "local.x = foo(1, y)", expr.Decompile())
	assert.Same(t, eq, expr.Token())
}

func TestFuncDeclName(t *testing.T) {
	var nilDecl *script.FuncDecl
	assert.Equal(t, "", nilDecl.FuncName())
	assert.Nil(t, nilDecl.Token())
	assert.Equal(t, "", (&script.FuncDecl{}).FuncName())
	assert.Equal(t, "bar", (&script.FuncDecl{Name: &script.Ident{Name: "bar"}}).FuncName())

	var nilIdent *script.Ident
	assert.Nil(t, nilIdent.Token())
}

func TestNilNodesHaveNoToken(t *testing.T) {
	nodes := []script.Expr{
		(*script.Ident)(nil),
		(*script.Literal)(nil),
		(*script.Assign)(nil),
		(*script.Call)(nil),
	}
	for _, n := range nodes {
		assert.Nil(t, n.Token(), "%T", n)
		assert.Empty(t, n.Decompile(), "%T", n)
	}
	assert.Nil(t, (*script.FuncDecl)(nil).Token())
}
