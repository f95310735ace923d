package format

import "testing"

func TestLargeNumber(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{42, "42"},
		{999, "999"},
		{1000, "1.0K"},
		{999999, "1000.0K"},
		{1000000, "1.0M"},
		{1500000, "1.5M"},
		{999999999, "1000.0M"},
		{2500000000, "2.5B"},
		{-5000, "-5.0K"},
		{-2500000, "-2.5M"},
		{123.456, "123.456"},
	}
	for _, tc := range cases {
		if got := LargeNumber(tc.in); got != tc.want {
			t.Errorf("LargeNumber(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
