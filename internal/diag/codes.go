package diag

import "strings"

// Code identifies the kind of finding. Codes are defined by rules.
type Code string

func (c Code) String() string { return string(c) }

// Valid reports whether the code is non-blank.
func (c Code) Valid() bool { return strings.TrimSpace(string(c)) != "" }

// Normalize trims surrounding space and upper-cases the code so that
// annotations and config entries match regardless of how they were typed.
func Normalize(s string) Code {
	return Code(strings.ToUpper(strings.TrimSpace(s)))
}

// Same reports whether two codes are equal after Normalize.
func (c Code) Same(other Code) bool {
	return Normalize(string(c)) == Normalize(string(other))
}
