package gamemath

import (
	"testing"
	"time"
)

func TestClampDelta(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, want time.Duration
	}{
		{-time.Second, 0},
		{0, 0},
		{16 * time.Millisecond, 16 * time.Millisecond},
		{10 * time.Second, MaxFrameDelta},
	}

	for _, tc := range cases {
		if got := ClampDelta(tc.in); got != tc.want {
			t.Fatalf("ClampDelta(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
