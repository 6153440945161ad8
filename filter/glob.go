package filter

import (
	"fmt"

	"github.com/gobwas/glob"
)

// globMatcher wraps a compiled gobwas/glob.Glob. Case-insensitive matching
// is handled by lower-casing both the pattern source and the candidate
// text before compiling/matching, since gobwas/glob has no native
// case-insensitive mode (see DESIGN.md Open Question resolutions).
type globMatcher struct {
	g             glob.Glob
	caseSensitive bool
}

// GlobError reports a glob pattern that failed to compile.
type GlobError struct {
	Pattern string
	Err     error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("filter: invalid glob pattern %q: %v", e.Pattern, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }

// compileGlob compiles pattern with literalSeparator controlling whether a
// lone '*' may cross '/': true compiles with '/' registered as a
// separator rune (only "**" crosses it); false compiles with no separator
// runes at all.
func compileGlob(pattern string, caseSensitive, literalSeparator bool) (globMatcher, error) {
	source := pattern
	if !caseSensitive {
		source = toLowerASCIIAware(pattern)
	}
	var g glob.Glob
	var err error
	if literalSeparator {
		g, err = glob.Compile(source, '/')
	} else {
		g, err = glob.Compile(source)
	}
	if err != nil {
		return globMatcher{}, &GlobError{Pattern: pattern, Err: err}
	}
	return globMatcher{g: g, caseSensitive: caseSensitive}, nil
}

// match reports whether s matches the glob, lower-casing s first when the
// matcher is case-insensitive.
func (m globMatcher) match(s string) bool {
	if !m.caseSensitive {
		s = toLowerASCIIAware(s)
	}
	return m.g.Match(s)
}

// toLowerASCIIAware lower-cases the ASCII letters in s, leaving non-ASCII
// bytes untouched. gobwas/glob operates on raw bytes with no case-folding
// hook, so case-insensitive glob matching here is ASCII-only; this is a
// narrower guarantee than the Unicode-aware folding search.Upper gives the
// Plain-mode matcher.
func toLowerASCIIAware(s string) string {
	buf := []byte(s)
	changed := false
	for i, b := range buf {
		if b >= 'A' && b <= 'Z' {
			buf[i] = b - 'A' + 'a'
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(buf)
}
