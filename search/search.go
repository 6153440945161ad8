// Package search provides byte-offset string search primitives used by the
// filter evaluator to scan candidate pathnames.
//
// All operations take and return byte offsets into a UTF-8 string, never
// character indices. Callers must only pass offsets that fall on UTF-8
// scalar-value boundaries; behavior at a non-boundary offset is undefined.
// The filter evaluator is the only caller and guarantees this invariant by
// construction (every offset it produces comes from one of these functions
// or from the start of the string).
package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Upper performs the same per-rune uppercase mapping used internally by the
// case-insensitive search functions, so that callers can precompute a needle
// once at filter-compile time and pass it to FindCaseInsensitive /
// TagCaseInsensitive repeatedly.
func Upper(s string) string {
	return strings.ToUpper(s)
}

// isASCII reports whether s contains only single-byte UTF-8 scalar values.
// Pathnames are overwhelmingly ASCII, so callers take a byte-compare fast
// path here before paying for rune decoding and Unicode case folding.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func asciiUpper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}

// FindCaseSensitive returns the first occurrence of needle in s at or after
// start. An empty needle matches immediately at start.
func FindCaseSensitive(s string, start int, needle string) (from, to int, ok bool) {
	if needle == "" {
		return start, start, true
	}
	if start > len(s) {
		return 0, 0, false
	}
	idx := strings.Index(s[start:], needle)
	if idx < 0 {
		return 0, 0, false
	}
	return start + idx, start + idx + len(needle), true
}

// TagCaseSensitive is an anchored variant of FindCaseSensitive: the match
// must begin exactly at start.
func TagCaseSensitive(s string, start int, needle string) (from, to int, ok bool) {
	if needle == "" {
		return start, start, true
	}
	end := start + len(needle)
	if start < 0 || end > len(s) {
		return 0, 0, false
	}
	if s[start:end] == needle {
		return start, end, true
	}
	return 0, 0, false
}

// TagCaseInsensitive is an anchored, case-insensitive match at start.
// upperNeedle must already be upper-cased (see Upper); each haystack
// character is mapped through the same uppercase folding before comparison.
func TagCaseInsensitive(s string, start int, upperNeedle string) (from, to int, ok bool) {
	if upperNeedle == "" {
		return start, start, true
	}
	if start > len(s) {
		return 0, 0, false
	}
	if isASCII(upperNeedle) {
		// ASCII fast path: byte compare instead of rune decode.
		pos := start
		for i := 0; i < len(upperNeedle); i++ {
			if pos >= len(s) {
				return 0, 0, false
			}
			b := s[pos]
			if b >= utf8.RuneSelf {
				// Haystack goes non-ASCII mid-needle; fall back to the
				// general rune path for the remainder.
				return tagCaseInsensitiveRunes(s, start, upperNeedle)
			}
			if asciiUpper(b) != upperNeedle[i] {
				return 0, 0, false
			}
			pos++
		}
		return start, pos, true
	}
	return tagCaseInsensitiveRunes(s, start, upperNeedle)
}

func tagCaseInsensitiveRunes(s string, start int, upperNeedle string) (from, to int, ok bool) {
	pos := start
	for _, nr := range upperNeedle {
		if pos >= len(s) {
			return 0, 0, false
		}
		r, size := utf8.DecodeRuneInString(s[pos:])
		if unicode.ToUpper(r) != nr {
			return 0, 0, false
		}
		pos += size
	}
	return start, pos, true
}

// FindCaseInsensitive returns the first case-insensitive occurrence of
// upperNeedle (already upper-cased) in s at or after start.
func FindCaseInsensitive(s string, start int, upperNeedle string) (from, to int, ok bool) {
	if upperNeedle == "" {
		return start, start, true
	}
	for pos := start; pos <= len(s); {
		if f, t, ok := TagCaseInsensitive(s, pos, upperNeedle); ok {
			return f, t, true
		}
		if pos >= len(s) {
			break
		}
		pos = SkipCharacter(s, pos)
	}
	return 0, 0, false
}

// SkipCharacter advances start by exactly one UTF-8 scalar value. If start
// is at or past the end of s, it is returned unchanged.
func SkipCharacter(s string, start int) int {
	if start >= len(s) {
		return start
	}
	_, size := utf8.DecodeRuneInString(s[start:])
	return start + size
}

// SkipSmartSpace advances start over one character iff it is ' ', '-', or
// '_'; otherwise start is returned unchanged. Only the ASCII space
// character counts as whitespace here, not tab/newline/other Unicode
// whitespace.
func SkipSmartSpace(s string, start int) int {
	if start >= len(s) {
		return start
	}
	r, size := utf8.DecodeRuneInString(s[start:])
	if r == ' ' || r == '-' || r == '_' {
		return start + size
	}
	return start
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// startBoundary reports whether the transition from the (possibly absent)
// prev character into cur forms a word-start boundary, per spec.md §4.1:
// any transition non-alphanumeric→alphanumeric, numeric→alphabetic,
// alphabetic→numeric, or lowercase→uppercase. A missing prev (start of
// string) is treated as non-alphanumeric, which folds the "first character
// is a boundary iff alphanumeric" special case into the same rule.
func startBoundary(prev rune, prevOK bool, cur rune) bool {
	prevAlnum := prevOK && isAlnum(prev)
	if !prevAlnum && isAlnum(cur) {
		return true
	}
	if !prevOK {
		return false
	}
	if unicode.IsNumber(prev) && unicode.IsLetter(cur) {
		return true
	}
	if unicode.IsLetter(prev) && unicode.IsNumber(cur) {
		return true
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	return false
}

// endBoundary is the symmetric counterpart of startBoundary: the
// alphanumeric→non-alphanumeric direction (including end-of-string
// following an alphanumeric) replaces the non-alphanumeric→alphanumeric
// rule; the numeric/alphabetic and lowercase/uppercase transitions apply
// identically in either direction.
func endBoundary(prev rune, cur rune, curOK bool) bool {
	curAlnum := curOK && isAlnum(cur)
	if isAlnum(prev) && !curAlnum {
		return true
	}
	if !curOK {
		return false
	}
	if unicode.IsNumber(prev) && unicode.IsLetter(cur) {
		return true
	}
	if unicode.IsLetter(prev) && unicode.IsNumber(cur) {
		return true
	}
	if unicode.IsLower(prev) && unicode.IsUpper(cur) {
		return true
	}
	return false
}

// FindWordStartBoundary returns the first position at or after start that
// begins a word, or ok=false if none exists before the end of s.
func FindWordStartBoundary(s string, start int) (pos int, ok bool) {
	for p := start; p < len(s); p = SkipCharacter(s, p) {
		cur, _ := utf8.DecodeRuneInString(s[p:])
		var prev rune
		prevOK := p > 0
		if prevOK {
			prev, _ = utf8.DecodeLastRuneInString(s[:p])
		}
		if startBoundary(prev, prevOK, cur) {
			return p, true
		}
	}
	return 0, false
}

// TagWordEndBoundary reports whether start is the end of a word: either
// end-of-string immediately following an alphanumeric character, or a
// boundary transition between the character before start and the character
// at start.
func TagWordEndBoundary(s string, start int) bool {
	if start <= 0 || start > len(s) {
		return false
	}
	prev, _ := utf8.DecodeLastRuneInString(s[:start])
	curOK := start < len(s)
	var cur rune
	if curOK {
		cur, _ = utf8.DecodeRuneInString(s[start:])
	}
	return endBoundary(prev, cur, curOK)
}
