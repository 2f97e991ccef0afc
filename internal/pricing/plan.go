package pricing

import (
	"math"
	"sort"

	"pullsim/internal/catalog"
)

// FirstTimeState tracks which packs still have their first-time double
// available, keyed by pack ID.
type FirstTimeState map[string]bool

// Purchase is one line item of a plan.
type Purchase struct {
	PackID     string
	Name       string
	Qty        int
	UnitPrice  int // cents
	UnitTokens int // tokens per unit with double/bonus applied
	Subtotal   int // cents
}

// Plan is a purchase recommendation: line items plus totals.
type Plan struct {
	Purchases   []Purchase
	SubCents    int
	TaxCents    int
	TotalCents  int
	TotalTokens int
	Currency    string
}

// variant is a pack as the planner sees it: a first-time-doubled pack and
// its regular form are distinct options with different token yields.
type variant struct {
	id     string
	name   string
	tokens int
	price  int
}

// expandVariants lists every purchasable option, split into first-time
// doubles (each buyable once) and regular packs (unbounded). The double
// applies to base tokens only, and only while the pack's first-time state
// is unspent.
func expandVariants(cat catalog.Catalog, first FirstTimeState) (singles, regulars []variant) {
	for _, p := range cat.Packs {
		if p.FirstTimeX2 && first != nil && first[p.ID] {
			singles = append(singles, variant{
				id:     p.ID + "#x2",
				name:   p.Name + " (x2)",
				tokens: p.Tokens*2 + p.BonusTokens,
				price:  p.PriceCents,
			})
		}
		regulars = append(regulars, variant{
			id:     p.ID,
			name:   p.Name,
			tokens: p.Tokens + p.BonusTokens,
			price:  p.PriceCents,
		})
	}
	return singles, regulars
}

// applyTax computes tax and total for a subtotal.
func applyTax(sub int, rate float64) (tax, total int) {
	if rate <= 0 {
		return 0, sub
	}
	t := int(math.Round(float64(sub) * rate))
	return t, sub + t
}

// buildPlan turns per-variant counts into a Plan with deterministic line
// ordering (most expensive unit first).
func buildPlan(cat catalog.Catalog, vs []variant, counts map[int]int) Plan {
	plan := Plan{Currency: cat.Currency}
	idxs := make([]int, 0, len(counts))
	for i := range counts {
		idxs = append(idxs, i)
	}
	sort.Slice(idxs, func(a, b int) bool {
		if vs[idxs[a]].price != vs[idxs[b]].price {
			return vs[idxs[a]].price > vs[idxs[b]].price
		}
		return vs[idxs[a]].id < vs[idxs[b]].id
	})
	for _, i := range idxs {
		v, qty := vs[i], counts[i]
		sub := v.price * qty
		plan.Purchases = append(plan.Purchases, Purchase{
			PackID:     v.id,
			Name:       v.name,
			Qty:        qty,
			UnitPrice:  v.price,
			UnitTokens: v.tokens,
			Subtotal:   sub,
		})
		plan.SubCents += sub
		plan.TotalTokens += v.tokens * qty
	}
	plan.TaxCents, plan.TotalCents = applyTax(plan.SubCents, cat.TaxRate)
	return plan
}
