package pricing

import "pullsim/internal/catalog"

// TokensForPulls returns the token cost of n pulls under the rule. Ten-pull
// bundles are charged at PerTenPull when a discount is configured; the
// remainder is charged per pull.
func TokensForPulls(r catalog.CostRule, n int) int {
	if n <= 0 || r.PerPull <= 0 {
		return 0
	}
	perTen := r.PerTenPull
	if perTen <= 0 {
		perTen = 10 * r.PerPull
	}
	return (n/10)*perTen + (n%10)*r.PerPull
}
