package filter

import "github.com/coregx/fsidx/search"

// Apply executes the program against path and reports whether it matches
// (spec.md §4.5). It is a pure function of (path, Program): the same
// inputs always return the same result.
func (p *Program) Apply(path string) bool {
	if p.preCaseSensitive != nil && !p.preCaseSensitive.Allows([]byte(path)) {
		return false
	}
	if p.preCaseInsensitive != nil && !p.preCaseInsensitive.Allows([]byte(search.Upper(path))) {
		return false
	}

	i, pos := 0, 0
	anchorI, anchorPos := 0, 0

	lastElem := lastElementOffset(path)

	for i < len(p.instrs) {
		instr := p.instrs[i]
		switch instr.op {
		case opGoToStart:
			pos = 0
		case opGoToLastElement:
			pos = lastElem
		case opEnsureLastElement:
			if pos < lastElem {
				pos = lastElem
			}
		case opGlob:
			target := path
			if instr.appliedToLastElement {
				target = path[lastElem:]
			}
			if !instr.matcher.match(target) {
				return false
			}
		case opFindCaseSensitive:
			from, to, ok := search.FindCaseSensitive(path, pos, instr.text)
			if !ok {
				return false
			}
			anchorI, anchorPos = i, from
			pos = to
		case opFindCaseInsensitive:
			from, to, ok := search.FindCaseInsensitive(path, pos, instr.text)
			if !ok {
				return false
			}
			anchorI, anchorPos = i, from
			pos = to
		case opFindWordStartBoundary:
			from, ok := search.FindWordStartBoundary(path, pos)
			if !ok {
				return false
			}
			anchorI, anchorPos = i, from
			pos = from
		case opSkipSmartSpace:
			pos = search.SkipSmartSpace(path, pos)
		case opExpectCaseSensitive:
			_, to, ok := search.TagCaseSensitive(path, pos, instr.text)
			if !ok {
				i, pos = anchorI, search.SkipCharacter(path, anchorPos)
				continue
			}
			pos = to
		case opExpectCaseInsensitive:
			_, to, ok := search.TagCaseInsensitive(path, pos, instr.text)
			if !ok {
				i, pos = anchorI, search.SkipCharacter(path, anchorPos)
				continue
			}
			pos = to
		case opExpectWordEndBoundary:
			if !search.TagWordEndBoundary(path, pos) {
				i, pos = anchorI, search.SkipCharacter(path, anchorPos)
				continue
			}
		}
		i++
	}
	return true
}

// lastElementOffset returns the byte offset just after the last '/' in
// path, or 0 if path contains none.
func lastElementOffset(path string) int {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return i + 1
		}
	}
	return 0
}
