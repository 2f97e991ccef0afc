package gacha

import "errors"

// ErrInvalidCount reports a Pull call with a non-positive count.
var ErrInvalidCount = errors.New("pull count must be >= 1")

// Engine simulates pulls under two pity ladders and a featured guarantee.
// It is single-owner: callers sharing an instance across goroutines must
// serialize Pull and Reset themselves.
//
// State:
//   - pityFour: pulls since the last four-star-or-better result
//   - pityFive: pulls since the last five-star-tier result
//   - featuredRate: probability the next five-star is the featured one;
//     0.5 normally, 1.0 after losing a 50/50, nothing in between
type Engine struct {
	pityFour     int
	pityFive     int
	featuredRate float64

	history   []Outcome
	lastBatch []Outcome

	rng RandomSource
}

// NewEngine returns a fresh engine. A nil rng selects the crypto-backed
// default; pass NewSeededRNG for reproducible runs.
func NewEngine(rng RandomSource) *Engine {
	if rng == nil {
		rng = DefaultRNG()
	}
	return &Engine{featuredRate: baseFeaturedRate, rng: rng}
}

// Pull executes count single pulls, appending each result to the history
// and to the batch record. It returns the batch in emission order.
//
// A non-positive count fails with ErrInvalidCount and leaves all state
// untouched. A random-source failure mid-batch aborts the call: the history
// keeps the outcomes completed before the failure and LastBatch reflects
// the partial batch.
func (e *Engine) Pull(count int) ([]Outcome, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}
	e.lastBatch = e.lastBatch[:0]
	for i := 0; i < count; i++ {
		out, err := e.drawOne()
		if err != nil {
			return nil, err
		}
		e.lastBatch = append(e.lastBatch, out)
		e.history = append(e.history, out)
	}
	return append([]Outcome(nil), e.lastBatch...), nil
}

// drawOne runs the single-pull algorithm. One uniform draw decides the
// tier against stacked thresholds (five-star first, so a five-star always
// preempts a forced four-star); a second draw settles featured vs not.
// State is only mutated once every draw this pull needs has succeeded.
func (e *Engine) drawOne() (Outcome, error) {
	u1, err := uniform(e.rng)
	if err != nil {
		return 0, err
	}

	p5 := FiveStarRate(e.pityFive)
	if u1 < p5 {
		u2, err := uniform(e.rng)
		if err != nil {
			return 0, err
		}
		e.pityFive = 0
		e.pityFour = 0 // a five-star satisfies four-star pity too
		if u2 < e.featuredRate {
			e.featuredRate = baseFeaturedRate
			return FeaturedFiveStar, nil
		}
		// lost the 50/50: next five-star is guaranteed featured
		e.featuredRate = 1.0
		return FiveStar, nil
	}

	if u1 < p5+FourStarRate(e.pityFour) {
		e.pityFour = 0
		e.pityFive++
		return FourStar, nil
	}

	e.pityFour++
	e.pityFive++
	return ThreeStar, nil
}

// LastBatch returns the outcomes of the most recent Pull call, empty
// before the first.
func (e *Engine) LastBatch() []Outcome {
	return append([]Outcome(nil), e.lastBatch...)
}

// History returns every outcome produced since the last Reset.
func (e *Engine) History() []Outcome {
	return append([]Outcome(nil), e.history...)
}

// Reset clears the history and batch records and returns the counters and
// the featured rate to their initial values.
func (e *Engine) Reset() {
	e.history = nil
	e.lastBatch = nil
	e.pityFour = 0
	e.pityFive = 0
	e.featuredRate = baseFeaturedRate
}

// PityFour reports pulls since the last four-star-or-better result.
func (e *Engine) PityFour() int { return e.pityFour }

// PityFive reports pulls since the last five-star-tier result.
func (e *Engine) PityFive() int { return e.pityFive }

// FeaturedGuaranteed reports whether the next five-star is forced featured.
func (e *Engine) FeaturedGuaranteed() bool { return e.featuredRate >= 1.0 }
