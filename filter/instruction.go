package filter

import "github.com/coregx/fsidx/filter/prefilter"

// opKind identifies the operation an instruction performs, determining
// which of its fields are meaningful (mirrors the teacher's StateKind /
// State tagged-struct representation in nfa/nfa.go).
type opKind uint8

const (
	opGoToStart opKind = iota
	opGoToLastElement
	opEnsureLastElement
	opGlob
	opFindCaseSensitive
	opFindCaseInsensitive
	opFindWordStartBoundary
	opSkipSmartSpace
	opExpectCaseSensitive
	opExpectCaseInsensitive
	opExpectWordEndBoundary
)

// instruction is one step of a compiled Program.
type instruction struct {
	op opKind

	// text holds the literal fragment for Find*/Expect* instructions.
	// Case-insensitive variants store it already upper-cased.
	text string

	// matcher and appliedToLastElement are set for opGlob.
	matcher            globMatcher
	appliedToLastElement bool
}

// Program is a compiled, immutable instruction list.
//
// preCaseSensitive and preCaseInsensitive are checked separately because
// they fold the candidate path differently: the former against the raw
// path, the latter against its uppercase mapping (see Apply).
type Program struct {
	instrs             []instruction
	preCaseSensitive   *prefilter.Set
	preCaseInsensitive *prefilter.Set
}
