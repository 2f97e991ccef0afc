package pricing

import (
	"math"

	"pullsim/internal/catalog"
)

// First-time doubles are enumerated exhaustively; past this many eligible
// packs the overflow is planned as regular packs instead.
const maxFirstTimeEnum = 16

// splitVariants expands the catalog and keeps the single-use set small
// enough to enumerate by bitmask.
func splitVariants(cat catalog.Catalog, first FirstTimeState) (singles, regulars []variant) {
	singles, regulars = expandVariants(cat, first)
	if len(singles) > maxFirstTimeEnum {
		regulars = append(regulars, singles[maxFirstTimeEnum:]...)
		singles = singles[:maxFirstTimeEnum]
	}
	return singles, regulars
}

// maskTotals sums price and tokens of the singles selected by mask.
func maskTotals(singles []variant, mask int) (price, tokens int) {
	for j, v := range singles {
		if mask&(1<<j) != 0 {
			price += v.price
			tokens += v.tokens
		}
	}
	return price, tokens
}

// MinCostAtLeastTokens finds the cheapest combination of packs yielding at
// least target tokens. Regular packs may repeat; each first-time double is
// used at most once. Returns a zero plan when the target is non-positive or
// the catalog cannot produce tokens.
func MinCostAtLeastTokens(cat catalog.Catalog, target int, first FirstTimeState) Plan {
	if target <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	singles, regulars := splitVariants(cat, first)

	maxTok := 0
	for _, v := range regulars {
		if v.tokens > maxTok {
			maxTok = v.tokens
		}
	}
	if maxTok == 0 {
		return Plan{Currency: cat.Currency}
	}
	// Allow overshoot by one pack: a bigger pack past the target can be
	// cheaper than stacking small ones up to it.
	limit := target + maxTok

	// dp[t] = min cost to reach exactly t tokens with regular packs.
	// Ascending t with strictly upward writes means dp[t] is final when
	// read, so the choice/prev chain reconstructs an exact multiset.
	const inf = math.MaxInt
	dp := make([]int, limit+1)
	choice := make([]int, limit+1)
	prev := make([]int, limit+1)
	for t := range dp {
		dp[t], choice[t], prev[t] = inf, -1, -1
	}
	dp[0] = 0
	for t := 0; t <= limit; t++ {
		if dp[t] == inf {
			continue
		}
		for i, v := range regulars {
			if v.tokens == 0 {
				continue
			}
			nt := t + v.tokens
			if nt > limit {
				nt = limit
			}
			if cost := dp[t] + v.price; cost < dp[nt] {
				dp[nt], choice[nt], prev[nt] = cost, i, t
			}
		}
	}

	// bestAt[t] = index t' >= t with the cheapest dp, for "at least t".
	bestAt := make([]int, limit+2)
	bestAt[limit+1] = -1
	for t := limit; t >= 0; t-- {
		bestAt[t] = bestAt[t+1]
		if dp[t] != inf && (bestAt[t] == -1 || dp[t] < dp[bestAt[t]]) {
			bestAt[t] = t
		}
	}

	bestCost, bestMask, bestIdx := inf, 0, -1
	for mask := 0; mask < 1<<len(singles); mask++ {
		price, tokens := maskTotals(singles, mask)
		need := target - tokens
		if need <= 0 {
			if price < bestCost {
				bestCost, bestMask, bestIdx = price, mask, -1
			}
			continue
		}
		idx := bestAt[need]
		if idx == -1 || dp[idx] > inf-price {
			continue
		}
		if cost := price + dp[idx]; cost < bestCost {
			bestCost, bestMask, bestIdx = cost, mask, idx
		}
	}
	if bestCost == inf {
		return Plan{Currency: cat.Currency}
	}

	vs := append(append([]variant(nil), regulars...), singles...)
	counts := make(map[int]int)
	for t := bestIdx; t > 0 && choice[t] != -1; t = prev[t] {
		counts[choice[t]]++
	}
	for j := range singles {
		if bestMask&(1<<j) != 0 {
			counts[len(regulars)+j]++
		}
	}
	return buildPlan(cat, vs, counts)
}

// MaxTokensUnderBudget finds the combination of packs maximizing tokens for
// at most budgetCents total spend. When the catalog carries a tax rate the
// budget is deflated so the taxed total stays within it.
func MaxTokensUnderBudget(cat catalog.Catalog, budgetCents int, first FirstTimeState) Plan {
	if budgetCents <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	singles, regulars := splitVariants(cat, first)

	effBudget := budgetCents
	if cat.TaxRate > 0 {
		effBudget = int(math.Floor(float64(budgetCents) / (1 + cat.TaxRate)))
	}
	if effBudget <= 0 {
		return Plan{Currency: cat.Currency}
	}

	// dp[c] = max tokens spending exactly c on regular packs. Prices are
	// positive so writes go strictly upward and dp[c] is final when read.
	dp := make([]int, effBudget+1)
	choice := make([]int, effBudget+1)
	for c := range choice {
		choice[c] = -1
	}
	for c := 0; c <= effBudget; c++ {
		for i, v := range regulars {
			if v.price <= 0 {
				continue
			}
			if nc := c + v.price; nc <= effBudget {
				if val := dp[c] + v.tokens; val > dp[nc] {
					dp[nc], choice[nc] = val, i
				}
			}
		}
	}

	// bestUpTo[c] = spend index <= c with the most tokens.
	bestUpTo := make([]int, effBudget+1)
	for c := 1; c <= effBudget; c++ {
		bestUpTo[c] = bestUpTo[c-1]
		if dp[c] > dp[bestUpTo[c]] {
			bestUpTo[c] = c
		}
	}

	bestTokens, bestMask, bestIdx := -1, 0, 0
	for mask := 0; mask < 1<<len(singles); mask++ {
		price, tokens := maskTotals(singles, mask)
		if price > effBudget {
			continue
		}
		idx := bestUpTo[effBudget-price]
		if total := tokens + dp[idx]; total > bestTokens {
			bestTokens, bestMask, bestIdx = total, mask, idx
		}
	}
	if bestTokens <= 0 {
		return Plan{Currency: cat.Currency}
	}

	vs := append(append([]variant(nil), regulars...), singles...)
	counts := make(map[int]int)
	for c := bestIdx; c > 0 && choice[c] != -1; c -= regulars[choice[c]].price {
		counts[choice[c]]++
	}
	for j := range singles {
		if bestMask&(1<<j) != 0 {
			counts[len(regulars)+j]++
		}
	}
	return buildPlan(cat, vs, counts)
}
