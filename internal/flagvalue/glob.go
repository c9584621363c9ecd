package flagvalue

import (
	"flag"

	"braces.dev/errtrace"
	"github.com/gobwas/glob"
)

// Glob is a flag that accepts a glob pattern for slash-separated paths.
//
// '*' matches within a single path component,
// and '**' matches across components.
// See [glob.Compile] for the full syntax.
type Glob struct {
	pattern string
	glob    glob.Glob
}

var _ flag.Getter = (*Glob)(nil)

// Get returns the Glob itself.
func (g *Glob) Get() any { return g }

// String returns the pattern this Glob was built from.
func (g *Glob) String() string { return g.pattern }

// Set compiles the given pattern.
func (g *Glob) Set(pattern string) error {
	compiled, err := glob.Compile(pattern, '/')
	if err != nil {
		return errtrace.Errorf("bad glob %q: %w", pattern, err)
	}
	g.pattern = pattern
	g.glob = compiled
	return nil
}

// Match reports whether the slash-separated path matches this Glob.
// A zero Glob matches nothing.
func (g *Glob) Match(path string) bool {
	if g.glob == nil {
		return false
	}
	return g.glob.Match(path)
}
