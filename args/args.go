package args

import (
	"fmt"
	"strings"
)

// Args holds both positional arguments and flag values.
type Args struct {
	Positionals []string
	Flags       map[string]string
}

// Get returns the string value of a flag or empty string if not present.
func (a *Args) Get(name string) string {
	return a.Flags[name]
}

// Has returns true if a flag was provided.
func (a *Args) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// First returns the first positional argument, or "".
func (a *Args) First() string {
	if len(a.Positionals) == 0 {
		return ""
	}
	return a.Positionals[0]
}

// Unknown lists the flags not named in allowed.
func (a *Args) Unknown(allowed ...string) []string {
	var out []string
	for name := range a.Flags {
		known := false
		for _, k := range allowed {
			if strings.EqualFold(k, name) {
				known = true
				break
			}
		}
		if !known {
			out = append(out, name)
		}
	}
	return out
}

// String provides a debug-friendly representation.
func (a Args) String() string {
	return fmt.Sprintf("Args{Positionals=%v, Flags=%v}", a.Positionals, a.Flags)
}
