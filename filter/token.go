// Package filter compiles a token list into a Program and evaluates it
// against candidate pathnames (SPEC_FULL.md §4.4-4.5).
package filter

// TokenKind identifies which field of a Token is meaningful.
type TokenKind int

const (
	// TokenText carries a literal or glob pattern fragment.
	TokenText TokenKind = iota
	// TokenMode switches the effective matching mode (Auto/Plain/Glob).
	TokenMode
	// TokenCase toggles case sensitivity for subsequent TokenText tokens.
	TokenCase
	// TokenOrder toggles same-order vs any-order continuation.
	TokenOrder
	// TokenScope toggles whole-path vs last-element scope.
	TokenScope
	// TokenSmartSpaces toggles smart-space fragment splitting.
	TokenSmartSpaces
	// TokenLiteralSeparator toggles whether glob '*' crosses '/'.
	TokenLiteralSeparator
	// TokenWordBoundary toggles word-boundary anchoring.
	TokenWordBoundary
)

// Mode selects how a TokenText is interpreted.
type Mode int

const (
	// Auto treats text containing any of *?[]{} as Glob, otherwise Plain.
	Auto Mode = iota
	// Plain matches the text literally (optionally smart-space-split).
	Plain
	// Glob compiles the text as a shell-style glob pattern.
	Glob
)

// Token is a single element of a query: either a literal/glob text, or a
// flag that updates the compiler's running state without emitting an
// instruction by itself.
type Token struct {
	Kind TokenKind

	Text string // TokenText

	Mode Mode // TokenMode

	// Bool carries the new flag value for TokenCase, TokenOrder,
	// TokenScope, TokenSmartSpaces, TokenLiteralSeparator, TokenWordBoundary.
	//
	// Meaning per kind:
	//   TokenCase:             true = CaseSensitive
	//   TokenOrder:            true = SameOrder
	//   TokenScope:             true = LastElement
	//   TokenSmartSpaces:      true = smart spaces on
	//   TokenLiteralSeparator: true = literal_separator on
	//   TokenWordBoundary:     true = word boundaries on
	Bool bool
}

// Convenience constructors mirroring the token kinds named in
// SPEC_FULL.md §3.

func Text(s string) Token           { return Token{Kind: TokenText, Text: s} }
func WithMode(m Mode) Token         { return Token{Kind: TokenMode, Mode: m} }
func CaseSensitive(b bool) Token    { return Token{Kind: TokenCase, Bool: b} }
func SameOrder(b bool) Token        { return Token{Kind: TokenOrder, Bool: b} }
func LastElement(b bool) Token      { return Token{Kind: TokenScope, Bool: b} }
func SmartSpaces(b bool) Token      { return Token{Kind: TokenSmartSpaces, Bool: b} }
func LiteralSeparator(b bool) Token { return Token{Kind: TokenLiteralSeparator, Bool: b} }
func WordBoundary(b bool) Token     { return Token{Kind: TokenWordBoundary, Bool: b} }

// AnyOrder and WholePath are the common "reset to default" tokens used in
// the testable-property scenarios of spec.md §8.
func AnyOrder() Token  { return SameOrder(false) }
func WholePath() Token { return LastElement(false) }

// Config is the default toggle state a compile starts from (mirrors
// "Locate configuration" in spec.md §3).
type Config struct {
	CaseSensitive    bool
	SameOrder        bool
	LastElement      bool
	SmartSpaces      bool
	LiteralSeparator bool
	WordBoundaries   bool
	Mode             Mode
}

// DefaultConfig matches the defaults implied by spec.md's testable
// properties: case-insensitive, any-order, whole-path, smart spaces on,
// literal separator on, word boundaries off, Auto mode.
func DefaultConfig() Config {
	return Config{
		CaseSensitive:    false,
		SameOrder:        false,
		LastElement:      false,
		SmartSpaces:      true,
		LiteralSeparator: true,
		WordBoundaries:   false,
		Mode:             Auto,
	}
}
