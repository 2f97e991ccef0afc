package gacha

import (
	"math"
	"sort"
)

// TrialGoal selects what each Monte Carlo trial measures.
type TrialGoal string

const (
	// Pulls until the first five-star-tier outcome.
	GoalFirstFive TrialGoal = "first_five"
	// Pulls until the first featured five-star, respecting the 50/50
	// carry-over across lost flips.
	GoalFirstFeatured TrialGoal = "first_featured"
	// Featured five-stars obtained within a fixed pull budget.
	GoalFixedBudget TrialGoal = "fixed_budget"
)

// TrialStats summarizes the per-trial samples of a simulation run.
type TrialStats struct {
	Mean    float64
	Var     float64
	StdDev  float64
	P50     float64
	P90     float64
	P99     float64
	Samples []int
}

// calcStats computes mean, population variance and interpolated
// percentiles over integer samples.
func calcStats(xs []int) TrialStats {
	n := len(xs)
	if n == 0 {
		return TrialStats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if p <= 0 || n == 1 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return TrialStats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// simulateOne runs one trial on a fresh engine and returns its metric:
// pull count to the goal outcome, or hits within the budget for
// GoalFixedBudget.
func simulateOne(goal TrialGoal, budget int, rng RandomSource) (int, error) {
	eng := NewEngine(rng)

	pullUntil := func(want func(Outcome) bool) (int, error) {
		draws := 0
		for {
			draws++
			batch, err := eng.Pull(1)
			if err != nil {
				return 0, err
			}
			if want(batch[0]) {
				return draws, nil
			}
		}
	}

	switch goal {
	case GoalFirstFive:
		return pullUntil(Outcome.FiveStarTier)

	case GoalFirstFeatured:
		return pullUntil(func(o Outcome) bool { return o == FeaturedFiveStar })

	case GoalFixedBudget:
		if budget <= 0 {
			return 0, nil
		}
		hits := 0
		for i := 0; i < budget; i++ {
			batch, err := eng.Pull(1)
			if err != nil {
				return 0, err
			}
			if batch[0] == FeaturedFiveStar {
				hits++
			}
		}
		return hits, nil
	}

	return 0, nil
}

// RunTrials repeats trials with a shared seeded source and returns summary
// stats over the per-trial metric. budget is only consulted for
// GoalFixedBudget. Zero or negative trials yield empty stats.
func RunTrials(goal TrialGoal, trials, budget int, seed uint64) (TrialStats, error) {
	if trials <= 0 {
		return TrialStats{}, nil
	}
	rng := NewSeededRNG(seed)
	samples := make([]int, trials)
	for i := 0; i < trials; i++ {
		v, err := simulateOne(goal, budget, rng)
		if err != nil {
			return TrialStats{}, err
		}
		samples[i] = v
	}
	return calcStats(samples), nil
}
