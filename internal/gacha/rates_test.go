package gacha

import (
	"math"
	"testing"
)

func TestFiveStarRateFlatSegment(t *testing.T) {
	for streak := 0; streak <= 65; streak++ {
		if got := FiveStarRate(streak); got != baseFiveRate {
			t.Fatalf("streak %d: rate = %v, want %v", streak, got, baseFiveRate)
		}
	}
}

func TestFiveStarRateRampSegments(t *testing.T) {
	cases := []struct {
		streak int
		want   float64
	}{
		{66, 0.088}, // first ramp step
		{70, 0.408},
		{75, 0.808}, // end of the +0.08 segment
		{76, 0.908}, // first +0.10 step
	}
	for _, c := range cases {
		if got := FiveStarRate(c.streak); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("streak %d: rate = %v, want %v", c.streak, got, c.want)
		}
	}
}

func TestFiveStarRateCapBoundary(t *testing.T) {
	// the second segment crosses 1.0 at streak 77 (0.008+0.8+0.2), so the
	// cap engages before the nominal hard threshold at 79
	for _, streak := range []int{77, 78, 79, 80, 500} {
		if got := FiveStarRate(streak); got != 1.0 {
			t.Fatalf("streak %d: rate = %v, want exactly 1.0", streak, got)
		}
	}
}

func TestFiveStarRateMonotonic(t *testing.T) {
	prev := 0.0
	for streak := 0; streak <= 120; streak++ {
		got := FiveStarRate(streak)
		if got < prev {
			t.Fatalf("rate decreased at streak %d: %v < %v", streak, got, prev)
		}
		prev = got
	}
}

func TestFourStarRate(t *testing.T) {
	for streak := 0; streak <= 8; streak++ {
		if got := FourStarRate(streak); got != baseFourRate {
			t.Fatalf("streak %d: rate = %v, want %v", streak, got, baseFourRate)
		}
	}
	for _, streak := range []int{9, 10, 50} {
		if got := FourStarRate(streak); got != 1.0 {
			t.Fatalf("streak %d: rate = %v, want exactly 1.0", streak, got)
		}
	}
}
