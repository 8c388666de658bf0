package zjson

import (
	"math"
	"strconv"
	"testing"
)

func FuzzAtonum(f *testing.F) {
	seeds := []string{
		"0", "-0", "1", "-1", "42", "3.14", "-3.14", "1e10", "1e-10",
		"1.5e+300", "9223372036854775807", "-9223372036854775808",
		"99999999999999999999999999999999", "0.1", "1.", ".1", "1e",
		"-", "", "01", "1e99999999999999999999",
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		buf := []byte(s)
		res, n := atonum(buf, defaultMaxExponent)
		if n < 0 || n > len(buf) {
			t.Fatalf("atonum(%q) consumed %d bytes, out of [0, %d]", s, n, len(buf))
		}
		switch res.kind {
		case numDouble:
			if res.f != res.f { // NaN would mean corrupted arithmetic
				t.Fatalf("atonum(%q) produced NaN", s)
			}
		case numOverflow:
			if n == 0 {
				t.Fatalf("atonum(%q) reported overflow but consumed 0 bytes", s)
			}
		}
	})
}

func FuzzDtoa(f *testing.F) {
	seeds := []float64{
		0, 1, -1, 0.5, 3.14159, 1e10, 1e-10, 1e300, 1e-300,
		123456789.987654321, -0.0001, 9999999999999999,
	}
	for _, v := range seeds {
		f.Add(v)
	}
	f.Fuzz(func(t *testing.T, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Skip("dtoa only handles finite values")
		}
		buf := make([]byte, 64)
		n, err := dtoa(v, buf)
		if err != nil {
			t.Fatalf("dtoa(%v) error: %v", v, err)
		}
		s := string(buf[:n])
		got, perr := strconv.ParseFloat(s, 64)
		if perr != nil {
			t.Fatalf("dtoa(%v) produced unparseable text %q: %v", v, s, perr)
		}
		if got != v {
			t.Fatalf("dtoa(%v) = %q, round-trips to %v", v, s, got)
		}
	})
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		`{}`, `[]`, `null`, `true`, `false`, `0`, `-1`, `3.14`,
		`"hello"`, `"a\nb\tc"`, `"A"`, `"😀"`,
		`{"a":1,"b":[1,2,3],"c":{"d":null}}`,
		`[[[[[[1]]]]]]`, `{"a":}`, `[1,2,`, `"unterminated`,
		`{"a" 1}`, `{"a":1,}`, `[1,]`, `01`, `1e9999999999999999`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		buf := []byte(s)
		ctx := NewContext()
		// Parse must never panic, and on success must leave a
		// self-consistent tree (the nodes reachable from root never
		// outnumber nused).
		root, err := ctx.Parse(buf, true)
		if err != nil {
			return
		}
		if !root.valid() {
			t.Fatalf("Parse(%q) returned nil error but an invalid root", s)
		}
		walked := countReachable(root)
		if walked > ctx.nused {
			t.Fatalf("Parse(%q) tree has %d reachable nodes but only %d allocated", s, walked, ctx.nused)
		}
	})
}

func countReachable(nd Node) int {
	if !nd.valid() {
		return 0
	}
	n := 1
	for c := nd.FirstChild(); c.valid(); c = c.Next() {
		n += countReachable(c)
	}
	return n
}
