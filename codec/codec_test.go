package codec

import (
	"bufio"
	"bytes"
	"math"
	"testing"
)

func TestUvarintRoundTrip(t *testing.T) {
	values := []uint64{
		0, 1, 2, 126, 127, 128, 129, 16383, 16384, 16385,
		1 << 20, 1<<56 - 1, 1 << 56, 1<<56 + 1,
		math.MaxUint32, math.MaxUint64, math.MaxUint64 - 1,
	}
	var buf [MaxVarintLen]byte
	for _, v := range values {
		n := PutUvarint(buf[:], v)
		got, m := Uvarint(buf[:n])
		if m != n {
			t.Fatalf("Uvarint(%d) consumed %d bytes, PutUvarint wrote %d", v, m, n)
		}
		if got != v {
			t.Fatalf("round trip mismatch: put %d got %d (n=%d)", v, got, n)
		}
	}
}

func TestUvarintMinimalLength(t *testing.T) {
	cases := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{127, 1},
		{128, 2},
		{16383, 2},
		{16384, 3},
		{1<<56 - 1, 8},
		{1 << 56, 9},
		{math.MaxUint64, 9},
	}
	var buf [MaxVarintLen]byte
	for _, c := range cases {
		n := PutUvarint(buf[:], c.v)
		if n != c.want {
			t.Errorf("PutUvarint(%d) wrote %d bytes, want %d", c.v, n, c.want)
		}
	}
}

func TestUvarintTruncated(t *testing.T) {
	var buf [MaxVarintLen]byte
	n := PutUvarint(buf[:], 1<<56)
	for i := 0; i < n; i++ {
		if _, m := Uvarint(buf[:i]); m != 0 {
			t.Errorf("Uvarint on %d-byte prefix of a %d-byte encoding should report 0, got %d", i, n, m)
		}
	}
}

func TestReadWriteUvarint(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 1 << 40, math.MaxUint64}
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	for _, v := range values {
		if err := WriteUvarint(w, v); err != nil {
			t.Fatalf("WriteUvarint(%d): %v", v, err)
		}
	}
	w.Flush()

	r := bufio.NewReader(&buf)
	for _, want := range values {
		got, err := ReadUvarint(r)
		if err != nil {
			t.Fatalf("ReadUvarint: %v", err)
		}
		if got != want {
			t.Fatalf("ReadUvarint got %d, want %d", got, want)
		}
	}
}

func TestDeltaRoundTrip(t *testing.T) {
	cases := []struct{ prev, curr string }{
		{"", ""},
		{"", "abc"},
		{"abc", ""},
		{"/usr/bin/ls", "/usr/bin/lsof"},
		{"/usr/bin/lsof", "/usr/local/bin/go"},
		{"same", "same"},
		{"abc", "xyz"},
	}
	for _, c := range cases {
		discard, suffix := DeltaEncode([]byte(c.prev), []byte(c.curr))
		got := DeltaDecode([]byte(c.prev), discard, suffix)
		if string(got) != c.curr {
			t.Errorf("DeltaDecode(%q, delta(%q,%q)) = %q, want %q", c.prev, c.prev, c.curr, got, c.curr)
		}
	}
}

func TestDeltaMinimizesSuffix(t *testing.T) {
	discard, suffix := DeltaEncode([]byte("/usr/bin/lsof"), []byte("/usr/bin/ls"))
	if discard != 2 || string(suffix) != "" {
		t.Fatalf("got discard=%d suffix=%q, want discard=2 suffix=\"\"", discard, suffix)
	}
}
