package gacha

import "math"

// Base rates and pity thresholds. The streak arguments below count pulls
// since the last qualifying result, i.e. the counter value before the pull.
const (
	baseFiveRate     = 0.008
	baseFourRate     = 0.085
	baseFeaturedRate = 0.5

	softPityStart = 66 // five-star ramp begins at this streak
	hardPityFive  = 79 // five-star forced at this streak
	hardPityFour  = 9  // four-star forced at this streak (10th pull)
)

// FiveStarRate returns the five-star probability at the given streak.
// The ramp has two segments: +0.08 per pull over streaks 66-75, then
// +0.10 per pull over 76-78. The cap makes streaks 77 and 78 already
// guaranteed (0.008+0.8+0.2 > 1), one pull ahead of the hard threshold.
func FiveStarRate(streak int) float64 {
	switch {
	case streak < softPityStart:
		return baseFiveRate
	case streak < 76:
		return math.Min(1.0, baseFiveRate+0.08*float64(streak-65))
	case streak < hardPityFive:
		// 0.8 is the increment accumulated over the first segment.
		return math.Min(1.0, baseFiveRate+0.8+0.1*float64(streak-75))
	default:
		return 1.0
	}
}

// FourStarRate returns the four-star probability at the given streak:
// flat until streak 9, then forced.
func FourStarRate(streak int) float64 {
	if streak < hardPityFour {
		return baseFourRate
	}
	return 1.0
}
