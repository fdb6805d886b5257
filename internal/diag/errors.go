package diag

import (
	"errors"
	"fmt"
)

// ErrNoPosition is returned when a rule asks to stamp a position from a
// missing token, node or markup view.
var ErrNoPosition = errors.New("no position source")

// PositionError names the rule and the kind of source that was missing.
type PositionError struct {
	Rule   string
	Source string // token|node|element|attribute|segment
}

func (e *PositionError) Error() string {
	if e.Rule == "" {
		return fmt.Sprintf("cannot stamp position from nil %s", e.Source)
	}
	return fmt.Sprintf("rule %s: cannot stamp position from nil %s", e.Rule, e.Source)
}

func (e *PositionError) Unwrap() error { return ErrNoPosition }
