package catalog

// Pack models a purchasable SKU in the store.
type Pack struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Tokens      int    `yaml:"tokens"`
	BonusTokens int    `yaml:"bonus_tokens"`
	FirstTimeX2 bool   `yaml:"first_time_x2"` // first purchase doubles Tokens, not BonusTokens
	PriceCents  int    `yaml:"price_cents"`
}

// CostRule sets how many tokens a pull costs. PerTenPull of 0 means no
// ten-pull discount (10 * PerPull).
type CostRule struct {
	PerPull    int `yaml:"per_pull"`
	PerTenPull int `yaml:"per_ten_pull"`
}

// Catalog is a regional store catalog: token economy, tax, and packs.
// Prices are pre-tax minor units; a tax-inclusive region sets TaxRate 0.
type Catalog struct {
	TokenName string   `yaml:"token_name"`
	Currency  string   `yaml:"currency"`
	TaxRate   float64  `yaml:"tax_rate"`
	Cost      CostRule `yaml:"cost"`
	Packs     []Pack   `yaml:"packs"`
}

// Default returns the built-in catalog used when no file is supplied.
func Default() Catalog {
	return Catalog{
		TokenName: "Astrite",
		Currency:  "USD",
		TaxRate:   0,
		Cost:      CostRule{PerPull: 160},
		Packs: []Pack{
			{ID: "60", Name: "60 Pack", Tokens: 60, FirstTimeX2: true, PriceCents: 99},
			{ID: "300", Name: "300 Pack", Tokens: 300, BonusTokens: 22, FirstTimeX2: true, PriceCents: 499},
			{ID: "980", Name: "980 Pack", Tokens: 980, BonusTokens: 110, FirstTimeX2: true, PriceCents: 1499},
			{ID: "1980", Name: "1980 Pack", Tokens: 1980, BonusTokens: 260, FirstTimeX2: true, PriceCents: 2999},
			{ID: "3280", Name: "3280 Pack", Tokens: 3280, BonusTokens: 600, FirstTimeX2: true, PriceCents: 4999},
			{ID: "6480", Name: "6480 Pack", Tokens: 6480, BonusTokens: 1600, FirstTimeX2: true, PriceCents: 9999},
		},
	}
}
