package driver

import (
	"errors"
	"fmt"
)

// ErrRulePanic wraps the value a rule panicked with.
var ErrRulePanic = errors.New("rule panicked")

// RuleError attributes a failed Check to its rule and file.
type RuleError struct {
	Rule string
	File string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("%s: rule %s: %v", e.File, e.Rule, e.Err)
}

func (e *RuleError) Unwrap() error { return e.Err }
