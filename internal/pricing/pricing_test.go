package pricing

import (
	"testing"

	"pullsim/internal/catalog"
)

func twoPackCatalog(taxRate float64) catalog.Catalog {
	return catalog.Catalog{
		TokenName: "Astrite",
		Currency:  "USD",
		TaxRate:   taxRate,
		Cost:      catalog.CostRule{PerPull: 160},
		Packs: []catalog.Pack{
			{ID: "a", Name: "Small", Tokens: 100, PriceCents: 100},
			{ID: "b", Name: "Large", Tokens: 250, FirstTimeX2: true, PriceCents: 200},
		},
	}
}

func TestTokensForPulls(t *testing.T) {
	discounted := catalog.CostRule{PerPull: 160, PerTenPull: 1500}
	cases := []struct {
		rule catalog.CostRule
		n    int
		want int
	}{
		{discounted, 0, 0},
		{discounted, 1, 160},
		{discounted, 10, 1500},
		{discounted, 25, 3800}, // 2 bundles + 5 singles
		{catalog.CostRule{PerPull: 160}, 25, 4000},
		{catalog.CostRule{}, 10, 0},
	}
	for _, c := range cases {
		if got := TokensForPulls(c.rule, c.n); got != c.want {
			t.Fatalf("TokensForPulls(%+v, %d) = %d, want %d", c.rule, c.n, got, c.want)
		}
	}
}

func TestMinCostPrefersFirstTimeDouble(t *testing.T) {
	cat := twoPackCatalog(0)
	plan := MinCostAtLeastTokens(cat, 500, FirstTimeState{"b": true})
	if plan.TotalCents != 200 {
		t.Fatalf("total = %d cents, want 200 (doubled Large pack)", plan.TotalCents)
	}
	if plan.TotalTokens < 500 {
		t.Fatalf("tokens = %d, want >= 500", plan.TotalTokens)
	}
	if len(plan.Purchases) != 1 || plan.Purchases[0].PackID != "b#x2" {
		t.Fatalf("purchases = %+v, want a single doubled Large pack", plan.Purchases)
	}
}

func TestMinCostWithoutFirstTime(t *testing.T) {
	cat := twoPackCatalog(0)
	plan := MinCostAtLeastTokens(cat, 500, nil)
	if plan.TotalCents != 400 || plan.TotalTokens != 500 {
		t.Fatalf("plan = %d cents / %d tokens, want 400 / 500 (2x Large)", plan.TotalCents, plan.TotalTokens)
	}
}

func TestMinCostNonPositiveTarget(t *testing.T) {
	plan := MinCostAtLeastTokens(twoPackCatalog(0), 0, nil)
	if len(plan.Purchases) != 0 || plan.TotalCents != 0 {
		t.Fatalf("zero target must yield an empty plan, got %+v", plan)
	}
}

func TestMinCostAppliesTax(t *testing.T) {
	cat := twoPackCatalog(0.13)
	plan := MinCostAtLeastTokens(cat, 100, nil)
	if plan.SubCents != 100 || plan.TaxCents != 13 || plan.TotalCents != 113 {
		t.Fatalf("sub/tax/total = %d/%d/%d, want 100/13/113",
			plan.SubCents, plan.TaxCents, plan.TotalCents)
	}
}

func TestMaxTokensUnderBudget(t *testing.T) {
	plan := MaxTokensUnderBudget(twoPackCatalog(0), 450, nil)
	if plan.TotalTokens != 500 {
		t.Fatalf("tokens = %d, want 500 (2x Large beats Large+2x Small)", plan.TotalTokens)
	}
	if plan.TotalCents > 450 {
		t.Fatalf("total %d cents exceeds the budget", plan.TotalCents)
	}
}

func TestMaxTokensUsesFirstTimeDoubleOnce(t *testing.T) {
	plan := MaxTokensUnderBudget(twoPackCatalog(0), 450, FirstTimeState{"b": true})
	// doubled Large (500) + regular Large (250) at 400 cents total
	if plan.TotalTokens != 750 {
		t.Fatalf("tokens = %d, want 750", plan.TotalTokens)
	}
	for _, p := range plan.Purchases {
		if p.PackID == "b#x2" && p.Qty != 1 {
			t.Fatalf("first-time double bought %d times", p.Qty)
		}
	}
}

func TestMaxTokensDeflatesBudgetForTax(t *testing.T) {
	cat := twoPackCatalog(0.13)
	plan := MaxTokensUnderBudget(cat, 120, nil)
	if plan.TotalTokens != 100 {
		t.Fatalf("tokens = %d, want 100 (one Small pack fits after tax)", plan.TotalTokens)
	}
	if plan.TotalCents > 120 {
		t.Fatalf("taxed total %d exceeds the budget", plan.TotalCents)
	}
}

func TestMaxTokensZeroBudget(t *testing.T) {
	plan := MaxTokensUnderBudget(twoPackCatalog(0), 0, nil)
	if len(plan.Purchases) != 0 {
		t.Fatalf("zero budget must yield an empty plan, got %+v", plan)
	}
}

func TestPlanLineOrderingDeterministic(t *testing.T) {
	cat := twoPackCatalog(0)
	plan := MaxTokensUnderBudget(cat, 500, nil) // 2x Large + 1x Small
	if len(plan.Purchases) != 2 {
		t.Fatalf("purchases = %+v, want two line items", plan.Purchases)
	}
	if plan.Purchases[0].UnitPrice < plan.Purchases[1].UnitPrice {
		t.Fatalf("line items must be ordered most expensive first: %+v", plan.Purchases)
	}
}
