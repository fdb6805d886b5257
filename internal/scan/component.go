package scan

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var lastExt = regexp.MustCompile(`\.\w+$`)

// componentFromPath derives a component name from a file path: the base
// name without its final extension, NFC-normalized. "" for an empty path.
func componentFromPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	base := path.Base(strings.ReplaceAll(p, `\`, "/"))
	return norm.NFC.String(lastExt.ReplaceAllString(base, ""))
}

func trimSpace(s string) string { return strings.TrimSpace(s) }

// ComponentName returns the cached name and whether one was set.
func (r Ref) ComponentName() (string, bool) {
	f := r.f()
	return f.componentName, f.componentSet
}

// SetComponentName sets the name explicitly, e.g. from a component's
// displayname attribute. Children derived afterwards inherit it.
func (r Ref) SetComponentName(name string) {
	f := r.f()
	f.componentName = name
	f.componentSet = true
}

// ResolveComponentName returns the trimmed explicit name, falling back to
// the name derived from the file path. It does not modify the frame.
func (r Ref) ResolveComponentName() string {
	f := r.f()
	if name := strings.TrimSpace(f.componentName); f.componentSet && name != "" {
		return name
	}
	return componentFromPath(f.file)
}
