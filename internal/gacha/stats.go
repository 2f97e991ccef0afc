package gacha

// Summary is the per-tier breakdown of the full history.
type Summary struct {
	Counts map[Outcome]int
	Total  int
}

// Stats derives a Summary from the history. It has no side effects and
// Counts carries an entry for every tier, so renderers can range over the
// enum without nil checks.
func (e *Engine) Stats() Summary {
	s := Summary{Counts: map[Outcome]int{
		ThreeStar:        0,
		FourStar:         0,
		FiveStar:         0,
		FeaturedFiveStar: 0,
	}}
	for _, o := range e.history {
		s.Counts[o]++
		s.Total++
	}
	return s
}
