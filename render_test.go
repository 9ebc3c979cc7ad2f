package bcalc

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFormatHex(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0x0"},
		{n: 26, want: "0x1A"},
		{n: 255, want: "0xFF"},
		{n: -1, want: "0xFFFFFFFFFFFFFFFF"},
	}
	for _, test := range tests {
		if got := FormatHex(test.n); got != test.want {
			t.Errorf("want %q for %d but got %q", test.want, test.n, got)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, n := range []int64{0, 1, 5, 18, 26, 255, 4096, 1<<62 - 1} {
		s := FormatHex(n)
		got, err := ParseNumber(s)
		if err != nil {
			t.Errorf("%d: %v", n, err)
			continue
		}
		if got != n {
			t.Errorf("round trip of %d via %q gave %d", n, s, got)
		}
	}
}

func TestPaddedBinary(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{n: 0, want: "0000"},
		{n: 5, want: "0101"},
		{n: 15, want: "1111"},
		{n: 16, want: "00010000"},
		{n: 18, want: "00010010"},
	}
	for _, test := range tests {
		if got := PaddedBinary(test.n); got != test.want {
			t.Errorf("want %q for %d but got %q", test.want, test.n, got)
		}
	}
}

func TestFormatBinary(t *testing.T) {
	tests := []struct {
		n           int64
		wantGroups  string
		wantIndexes string
	}{
		{n: 5, wantGroups: "0101", wantIndexes: "   0"},
		{n: 18, wantGroups: "0001 0010", wantIndexes: "   4    0"},
		{n: 0, wantGroups: "0000", wantIndexes: "   0"},
		{n: 4096, wantGroups: "0001 0000 0000 0000", wantIndexes: "  12    8    4    0"},
	}
	for _, test := range tests {
		groups, indexes := FormatBinary(test.n)
		if diff := cmp.Diff(test.wantGroups, groups); diff != "" {
			t.Errorf("groups of %d: %s", test.n, diff)
		}
		if diff := cmp.Diff(test.wantIndexes, indexes); diff != "" {
			t.Errorf("indexes of %d: %s", test.n, diff)
		}
	}
}
