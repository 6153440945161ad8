package search

import "testing"

func TestFindCaseSensitive(t *testing.T) {
	from, to, ok := FindCaseSensitive("foobarbaz", 0, "bar")
	if !ok || from != 3 || to != 6 {
		t.Fatalf("got (%d,%d,%v)", from, to, ok)
	}
	if _, _, ok := FindCaseSensitive("foobarbaz", 4, "bar"); ok {
		t.Fatalf("expected no match searching past the occurrence")
	}
	from, to, ok = FindCaseSensitive("abc", 1, "")
	if !ok || from != 1 || to != 1 {
		t.Fatalf("empty needle should match at start: got (%d,%d,%v)", from, to, ok)
	}
}

func TestTagCaseSensitive(t *testing.T) {
	if _, _, ok := TagCaseSensitive("foobar", 3, "bar"); !ok {
		t.Fatal("expected anchored match")
	}
	if _, _, ok := TagCaseSensitive("foobar", 2, "bar"); ok {
		t.Fatal("expected no anchored match at wrong offset")
	}
}

func TestCaseInsensitive(t *testing.T) {
	upper := Upper("bar")
	from, to, ok := FindCaseInsensitive("fooBARbaz", 0, upper)
	if !ok || from != 3 || to != 6 {
		t.Fatalf("got (%d,%d,%v)", from, to, ok)
	}
	if _, _, ok := TagCaseInsensitive("fooBARbaz", 0, upper); ok {
		t.Fatal("tag must not match mid-string")
	}
}

func TestCaseInsensitiveUnicode(t *testing.T) {
	// "café" uppercased is "CAFÉ"; make sure the non-ASCII rune folds.
	upper := Upper("café")
	if _, _, ok := FindCaseInsensitive("my CAFÉ bill", 0, upper); !ok {
		t.Fatal("expected unicode-aware case-insensitive match")
	}
}

func TestSkipCharacterMultiByte(t *testing.T) {
	s := "äa"
	next := SkipCharacter(s, 0)
	if next != 2 { // 'ä' is 2 bytes in UTF-8
		t.Fatalf("expected to skip 2 bytes, got %d", next)
	}
}

func TestSkipSmartSpace(t *testing.T) {
	cases := []struct {
		s     string
		start int
		want  int
	}{
		{"-abc", 0, 1},
		{"_abc", 0, 1},
		{" abc", 0, 1},
		{"abc", 0, 0},
	}
	for _, c := range cases {
		if got := SkipSmartSpace(c.s, c.start); got != c.want {
			t.Errorf("SkipSmartSpace(%q,%d) = %d, want %d", c.s, c.start, got, c.want)
		}
	}
}

func TestWordBoundaries(t *testing.T) {
	// "foobar" has no internal word boundary after "foo".
	pos, ok := FindWordStartBoundary("foobar", 0)
	if !ok || pos != 0 {
		t.Fatalf("expected boundary at 0, got (%d,%v)", pos, ok)
	}
	if TagWordEndBoundary("foobar", 3) {
		t.Fatal("foo| bar boundary should not exist mid-word in foobar")
	}

	pos, ok = FindWordStartBoundary("FooBarBaz", 1)
	if !ok || pos != 3 {
		t.Fatalf("expected lower->upper boundary at 3, got (%d,%v)", pos, ok)
	}
	if !TagWordEndBoundary("FooBarBaz", 6) {
		t.Fatal("expected word end boundary at 6 (r->B)")
	}

	pos, ok = FindWordStartBoundary("abc123def", 1)
	if !ok || pos != 3 {
		t.Fatalf("expected alpha->numeric boundary at 3, got (%d,%v)", pos, ok)
	}
	if TagWordEndBoundary("abc123def", 5) {
		t.Fatal("12|3 boundary should not exist between digits")
	}
}
