package scan

import "strings"

// naturalLess implements the digit-run-aware comparator named as an Open
// Question in spec.md §9: digit runs compare numerically, everything else
// lexicographically, operating on the lossy UTF-8 rendering of each
// filename. No natural-sort library exists anywhere in the retrieved
// corpus, so this is a hand-written, stdlib-only comparator (justified in
// DESIGN.md).
func naturalLess(a, b string) bool {
	a = strings.ToValidUTF8(a, "�")
	b = strings.ToValidUTF8(b, "�")

	ra, rb := []rune(a), []rune(b)
	i, j := 0, 0
	for i < len(ra) && j < len(rb) {
		ca, cb := ra[i], rb[j]
		if isDigit(ca) && isDigit(cb) {
			ia, di := digitRun(ra, i)
			jb, dj := digitRun(rb, j)
			na := trimLeadingZeros(ia)
			nb := trimLeadingZeros(jb)
			if len(na) != len(nb) {
				return len(na) < len(nb)
			}
			for k := range na {
				if na[k] != nb[k] {
					return na[k] < nb[k]
				}
			}
			i, j = di, dj
			continue
		}
		if ca != cb {
			return ca < cb
		}
		i++
		j++
	}
	return len(ra)-i < len(rb)-j
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// digitRun returns the run of consecutive digits starting at i, and the
// index just past it.
func digitRun(rs []rune, i int) ([]rune, int) {
	j := i
	for j < len(rs) && isDigit(rs[j]) {
		j++
	}
	return rs[i:j], j
}

func trimLeadingZeros(rs []rune) []rune {
	i := 0
	for i < len(rs)-1 && rs[i] == '0' {
		i++
	}
	return rs[i:]
}
