// Package testkit holds invariant checks shared by tests of the scan layer.
package testkit

import (
	"fmt"

	"lintscan/internal/diag"
	"lintscan/internal/scan"
	"lintscan/internal/source"
)

// CheckTreeInvariants verifies the structural invariants of a scan tree:
// 1) the root has no parent and every other frame has one
// 2) every parent was created before its child, so the tree is acyclic
// 3) every recorded diagnostic carries a file when its frame has one
func CheckTreeInvariants(tree *scan.Tree) error {
	if tree == nil || tree.Len() == 0 {
		return fmt.Errorf("empty tree")
	}
	for ref := range tree.All() {
		parent, ok := ref.Parent()
		if ref.ID() == tree.Root().ID() {
			if ok {
				return fmt.Errorf("root frame has parent %d", parent.ID())
			}
			continue
		}
		if !ok {
			return fmt.Errorf("frame %d has no parent", ref.ID())
		}
		if parent.ID() >= ref.ID() {
			return fmt.Errorf("frame %d has parent %d created after it", ref.ID(), parent.ID())
		}
		if ref.File() == "" {
			continue
		}
		for i, d := range ref.Diagnostics() {
			if d.File == "" {
				return fmt.Errorf("frame %d diagnostic %d (%s) has no file", ref.ID(), i, d.Code)
			}
		}
	}
	return nil
}

// CheckPositions verifies that every known position lies inside file and
// that its line and column agree with its offset.
func CheckPositions(diags []diag.Diagnostic, file *source.File) error {
	if file == nil {
		return fmt.Errorf("nil file")
	}
	for i, d := range diags {
		if !d.Pos.Known() {
			continue
		}
		if d.Pos.Offset > file.Size() {
			return fmt.Errorf("diagnostic %d (%s): offset %d beyond content size %d", i, d.Code, d.Pos.Offset, file.Size())
		}
		lc := file.LineCol(d.Pos.Offset)
		if lc.Line != d.Pos.Line || lc.Col != d.Pos.Column {
			return fmt.Errorf("diagnostic %d (%s): position %s does not match offset %d (%d:%d)",
				i, d.Code, d.Pos, d.Pos.Offset, lc.Line, lc.Col)
		}
	}
	return nil
}
