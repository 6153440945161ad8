package filter

import (
	"errors"
	"strings"

	"github.com/coregx/fsidx/filter/prefilter"
	"github.com/coregx/fsidx/search"
)

// ErrTrivialQuery is returned when a compiled program would match every
// input (no literal text token ever contributed a Find*/Glob instruction).
// The locate driver treats this as a benign no-op, not a failure.
var ErrTrivialQuery = errors.New("filter: query is trivial (matches everything)")

const globSpecialChars = "*?[]{}"

// compileState tracks the running compiler flags, updated in place by
// state-carrying tokens without emitting instructions (spec.md §4.4).
type compileState struct {
	caseSensitive    bool
	sameOrder        bool
	lastElement      bool
	smartSpaces      bool
	literalSeparator bool
	wordBoundaries   bool
	mode             Mode
}

// Compile walks tokens left-to-right against the starting state cfg and
// produces a Program, ErrTrivialQuery, or a *GlobError.
func Compile(tokens []Token, cfg Config) (*Program, error) {
	st := compileState{
		caseSensitive:    cfg.CaseSensitive,
		sameOrder:        cfg.SameOrder,
		lastElement:      cfg.LastElement,
		smartSpaces:      cfg.SmartSpaces,
		literalSeparator: cfg.LiteralSeparator,
		wordBoundaries:   cfg.WordBoundaries,
		mode:             cfg.Mode,
	}

	var instrs []instruction
	var literalsCS, literalsCI []string
	emitted := false

	for _, tok := range tokens {
		switch tok.Kind {
		case TokenCase:
			st.caseSensitive = tok.Bool
		case TokenOrder:
			st.sameOrder = tok.Bool
		case TokenScope:
			st.lastElement = tok.Bool
		case TokenSmartSpaces:
			st.smartSpaces = tok.Bool
		case TokenLiteralSeparator:
			st.literalSeparator = tok.Bool
		case TokenWordBoundary:
			st.wordBoundaries = tok.Bool
		case TokenMode:
			st.mode = tok.Mode
		case TokenText:
			effMode := st.mode
			if effMode == Auto {
				if strings.ContainsAny(tok.Text, globSpecialChars) {
					effMode = Glob
				} else {
					effMode = Plain
				}
			}
			switch effMode {
			case Glob:
				// opGlob carries appliedToLastElement and computes its own
				// match target directly from the path's last-element
				// offset (filter/eval.go); it never reads or advances pos,
				// so no scope-setup instruction is needed here. Emitting
				// one would leave pos mutated for whatever instruction
				// follows, corrupting unrelated same-order scans.
				m, err := compileGlob(tok.Text, st.caseSensitive, st.literalSeparator)
				if err != nil {
					return nil, err
				}
				instrs = append(instrs, instruction{
					op:                   opGlob,
					matcher:              m,
					appliedToLastElement: st.lastElement,
				})
				emitted = true
			default: // Plain
				frags := splitFragments(tok.Text, st.smartSpaces)
				if len(frags) == 0 {
					continue
				}
				instrs = append(instrs, scopeSetupInstruction(st.sameOrder, st.lastElement)...)
				instrs = append(instrs, plainFragmentInstructions(frags, st.caseSensitive, st.wordBoundaries)...)
				if st.caseSensitive {
					literalsCS = append(literalsCS, frags...)
				} else {
					for _, f := range frags {
						literalsCI = append(literalsCI, search.Upper(f))
					}
				}
				emitted = true
			}
		}
	}

	if !emitted {
		return nil, ErrTrivialQuery
	}

	preCS, err := prefilter.Build(literalsCS)
	if err != nil {
		// Prefiltering is a pure optimization; a build failure must never
		// fail the whole compile.
		preCS = nil
	}
	preCI, err := prefilter.Build(literalsCI)
	if err != nil {
		preCI = nil
	}
	return &Program{instrs: instrs, preCaseSensitive: preCS, preCaseInsensitive: preCI}, nil
}

// scopeSetupInstruction implements the (same_order, last_element) table in
// spec.md §4.4.
func scopeSetupInstruction(sameOrder, lastElement bool) []instruction {
	switch {
	case !sameOrder && !lastElement:
		return []instruction{{op: opGoToStart}}
	case !sameOrder && lastElement:
		return []instruction{{op: opGoToLastElement}}
	case sameOrder && !lastElement:
		return nil
	default: // sameOrder && lastElement
		return []instruction{{op: opEnsureLastElement}}
	}
}

// splitFragments splits text on runs of smart-space characters when
// smartSpaces is set, discarding empty fragments; otherwise it returns text
// as a single fragment (or none, if text is empty).
func splitFragments(text string, smartSpaces bool) []string {
	if text == "" {
		return nil
	}
	if !smartSpaces {
		return []string{text}
	}
	fields := strings.FieldsFunc(text, isSmartSpaceRune)
	return fields
}

// isSmartSpaceRune matches only the ASCII space, '-', and '_' — not tab,
// newline, or other Unicode whitespace.
func isSmartSpaceRune(r rune) bool {
	return r == ' ' || r == '-' || r == '_'
}

// plainFragmentInstructions implements the fragment-emission half of
// spec.md §4.4's Plain branch, given the scope-setup instructions have
// already been appended by the caller.
func plainFragmentInstructions(frags []string, caseSensitive, wordBoundaries bool) []instruction {
	var out []instruction
	if wordBoundaries {
		out = append(out, instruction{op: opFindWordStartBoundary})
		out = append(out, expectInstruction(frags[0], caseSensitive))
	} else {
		out = append(out, findInstruction(frags[0], caseSensitive))
	}
	for _, f := range frags[1:] {
		out = append(out, instruction{op: opSkipSmartSpace})
		out = append(out, expectInstruction(f, caseSensitive))
	}
	if wordBoundaries {
		out = append(out, instruction{op: opExpectWordEndBoundary})
	}
	return out
}

func findInstruction(text string, caseSensitive bool) instruction {
	if caseSensitive {
		return instruction{op: opFindCaseSensitive, text: text}
	}
	return instruction{op: opFindCaseInsensitive, text: search.Upper(text)}
}

func expectInstruction(text string, caseSensitive bool) instruction {
	if caseSensitive {
		return instruction{op: opExpectCaseSensitive, text: text}
	}
	return instruction{op: opExpectCaseInsensitive, text: search.Upper(text)}
}
