package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lintscan/internal/scan"
)

func TestStackScopes(t *testing.T) {
	s := scan.NewStack()
	assert.Equal(t, 1, s.Depth())
	assert.False(t, s.Pop())

	s.Declare("Global")
	s.Push(scan.KindFunction, "run")
	kind, name := s.Current()
	assert.Equal(t, scan.KindFunction, kind)
	assert.Equal(t, "run", name)

	s.Declare("local")
	assert.True(t, s.Declared("GLOBAL"))
	assert.False(t, s.DeclaredLocally("global"))
	assert.True(t, s.DeclaredLocally("LOCAL"))

	assert.True(t, s.Pop())
	assert.False(t, s.Declared("local"))
	assert.Equal(t, 1, s.Depth())
}
