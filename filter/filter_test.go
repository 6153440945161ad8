package filter

import "testing"

func compileOrFatal(t *testing.T, tokens []Token, cfg Config) *Program {
	t.Helper()
	p, err := Compile(tokens, cfg)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	return p
}

func TestTrivialQuery(t *testing.T) {
	_, err := Compile(nil, DefaultConfig())
	if err != ErrTrivialQuery {
		t.Fatalf("got %v, want ErrTrivialQuery", err)
	}
	_, err = Compile([]Token{CaseSensitive(true), SameOrder(true)}, DefaultConfig())
	if err != ErrTrivialQuery {
		t.Fatalf("flags-only query should be trivial, got %v", err)
	}
}

func TestDeterminism(t *testing.T) {
	p := compileOrFatal(t, []Token{Text("bar")}, DefaultConfig())
	for i := 0; i < 10; i++ {
		if !p.Apply("foobarbaz") {
			t.Fatalf("expected match on iteration %d", i)
		}
	}
}

func TestCompilerIdempotentToggles(t *testing.T) {
	once, err1 := Compile([]Token{CaseSensitive(false), Text("bar")}, DefaultConfig())
	twice, err2 := Compile([]Token{CaseSensitive(false), CaseSensitive(false), Text("bar")}, DefaultConfig())
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v %v", err1, err2)
	}
	if len(once.instrs) != len(twice.instrs) {
		t.Fatalf("got %d vs %d instructions, want equal", len(once.instrs), len(twice.instrs))
	}
}

func TestScopeSwitching(t *testing.T) {
	path := "/abc/defghijklmn/opqrstuvwxyz/zwei"
	matchZ := compileOrFatal(t, []Token{
		SameOrder(true), LastElement(true), Text("z"),
		WholePath(), Text("wei"),
	}, DefaultConfig())
	if !matchZ.Apply(path) {
		t.Fatal("expected match selecting last element 'z' then whole-path 'wei'")
	}

	matchX := compileOrFatal(t, []Token{
		SameOrder(true), LastElement(true), Text("x"),
		WholePath(), Text("wei"),
	}, DefaultConfig())
	if matchX.Apply(path) {
		t.Fatal("expected no match for 'x' in last element")
	}
}

func TestSmartSpaceEquivalence(t *testing.T) {
	p := compileOrFatal(t, []Token{Text("bar abc")}, DefaultConfig())
	for _, path := range []string{"foo bar abc baz", "foo-bar-abc-baz", "foo_bar_abc_baz"} {
		if !p.Apply(path) {
			t.Errorf("expected match for %q", path)
		}
	}
	if p.Apply("foo baz") {
		t.Error("expected no match for 'foo baz'")
	}
}

func TestBacktrackingMultiByteSafety(t *testing.T) {
	p := compileOrFatal(t, []Token{Text("a-b")}, DefaultConfig())
	if p.Apply("äaäa") {
		t.Fatal("expected no match")
	}
	// Both fragments are present (so the prefilter lets it through to the
	// VM) but never adjacent modulo a smart separator, forcing the
	// evaluator to actually backtrack across multi-byte 'ä' runes without
	// producing an out-of-bounds byte index.
	if p.Apply("äaäb") {
		t.Fatal("expected no match")
	}
}

func TestWordBoundaryQueries(t *testing.T) {
	p := compileOrFatal(t, []Token{WordBoundary(true), Text("foo")}, DefaultConfig())
	if p.Apply("foobar") {
		t.Error("'foobar' should not match [WordBoundary(true), \"foo\"]")
	}
	if !p.Apply("foo bar") {
		t.Error("'foo bar' should match [WordBoundary(true), \"foo\"]")
	}

	pBar := compileOrFatal(t, []Token{WordBoundary(true), Text("Bar")}, DefaultConfig())
	if !pBar.Apply("FooBarBaz") {
		t.Error("'FooBarBaz' should match [WordBoundary(true), \"Bar\"]")
	}

	p12 := compileOrFatal(t, []Token{WordBoundary(true), Text("12")}, DefaultConfig())
	if p12.Apply("abc123def") {
		t.Error("'abc123def' should not match [WordBoundary(true), \"12\"]")
	}
}

func TestGlobLiteralSeparator(t *testing.T) {
	path := "/abc/defghijklmn/opqrstuvwxyz/zwei"
	single := compileOrFatal(t, []Token{LiteralSeparator(true), Text("/*i")}, DefaultConfig())
	if single.Apply(path) {
		t.Error("'/*i' with literal separator should not cross '/' boundaries")
	}

	double := compileOrFatal(t, []Token{LiteralSeparator(true), Text("/**/*i")}, DefaultConfig())
	if !double.Apply(path) {
		t.Error("'/**/*i' should match via the globstar crossing separators")
	}
}

func TestCaseSensitiveAnyOrderWholePath(t *testing.T) {
	p := compileOrFatal(t, []Token{
		CaseSensitive(true), AnyOrder(), WholePath(),
		Text("Y"), Text("A"), Text("G"),
	}, DefaultConfig())
	if !p.Apply("/ABC/YAG/eins") {
		t.Error("expected uppercase Y,A,G to be found in /ABC/YAG/eins")
	}
	if p.Apply("/abc/yag/zwei") {
		t.Error("lowercase variant must not match a case-sensitive uppercase query")
	}
}

func TestGlobOnLastElementOnly(t *testing.T) {
	// Supplemented behavior: LastElement + Glob applies only to the last
	// path element, never the whole path (see DESIGN.md / SPEC_FULL.md §9).
	p := compileOrFatal(t, []Token{LastElement(true), Text("*.txt")}, DefaultConfig())
	if !p.Apply("/a/b/c/notes.txt") {
		t.Error("expected last-element glob match")
	}
	if p.Apply("/a/notes.txt/b/c") {
		t.Error("glob must not match a non-last path element")
	}
}

func TestGlobDoesNotCorruptFollowingWholePathScan(t *testing.T) {
	// A LastElement Glob token must not leak its scope into a later
	// WholePath Plain token: "abc" is present in the whole path, even
	// though the glob only looked at the last element.
	p := compileOrFatal(t, []Token{
		SameOrder(true), LastElement(true), Text("*.txt"),
		WholePath(), Text("abc"),
	}, DefaultConfig())
	if !p.Apply("/abc/def.txt") {
		t.Error("expected match: last-element glob plus whole-path literal both present")
	}
}
