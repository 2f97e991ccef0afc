package gacha

// Outcome is the tier produced by a single pull.
type Outcome int

const (
	ThreeStar Outcome = iota
	FourStar
	FiveStar
	FeaturedFiveStar
)

// String renders the tier the way the banner labels it.
func (o Outcome) String() string {
	switch o {
	case ThreeStar:
		return "3★"
	case FourStar:
		return "4★"
	case FiveStar:
		return "5★"
	case FeaturedFiveStar:
		return "up!5★"
	default:
		return "unknown"
	}
}

// FiveStarTier reports whether the outcome counts for five-star pity,
// featured or not.
func (o Outcome) FiveStarTier() bool {
	return o == FiveStar || o == FeaturedFiveStar
}
