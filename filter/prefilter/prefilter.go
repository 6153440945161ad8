// Package prefilter provides a fast "could this candidate possibly match"
// reject step ahead of the filter VM, built on an Aho-Corasick automaton
// per required literal fragment.
//
// This fills in the strategy the teacher's own prefilter package names but
// leaves unbuilt: coregex's prefilter.go documents "many literals →
// AhoCorasickPrefilter (automaton, future)" as a strategy selected once a
// pattern has too many literals for Teddy. This package is that strategy,
// repurposed from regex-candidate scanning to "are all of these literal
// fragments present somewhere in the path" — a necessary (not sufficient)
// pre-check, since it ignores order and adjacency, both of which the VM
// still verifies.
package prefilter

import "github.com/coregx/ahocorasick"

// Set holds one automaton per required literal fragment. A path missing
// any fragment cannot possibly satisfy the full program, so the VM can be
// skipped for it.
type Set struct {
	automata []*ahocorasick.Automaton
}

// Build constructs a Set requiring every fragment in literals to be
// present (case-sensitively; callers wanting case-insensitive prefiltering
// should pass already-case-folded fragments and fold the candidate the
// same way before calling Allows).
func Build(literals []string) (*Set, error) {
	s := &Set{automata: make([]*ahocorasick.Automaton, 0, len(literals))}
	for _, lit := range literals {
		if lit == "" {
			continue
		}
		b := ahocorasick.NewBuilder()
		b.AddPattern([]byte(lit))
		a, err := b.Build()
		if err != nil {
			return nil, err
		}
		s.automata = append(s.automata, a)
	}
	return s, nil
}

// Allows reports whether every required fragment occurs somewhere in path.
// A nil Set (no fragments registered) always allows.
func (s *Set) Allows(path []byte) bool {
	if s == nil {
		return true
	}
	for _, a := range s.automata {
		if !a.IsMatch(path) {
			return false
		}
	}
	return true
}
