package catalog

import (
	"fmt"
	"strings"
)

// Validate checks semantic constraints of a catalog and reports every
// violation in one error.
func (c Catalog) Validate() error {
	var errs []string

	if c.TaxRate < 0 || c.TaxRate >= 1 {
		errs = append(errs, "tax_rate must be in [0,1)")
	}
	if c.Cost.PerPull < 0 {
		errs = append(errs, "cost.per_pull must be >= 0")
	}
	if c.Cost.PerTenPull < 0 {
		errs = append(errs, "cost.per_ten_pull must be >= 0 (0 means 10 * per_pull)")
	}

	seen := make(map[string]bool, len(c.Packs))
	for i, p := range c.Packs {
		if p.ID == "" {
			errs = append(errs, fmt.Sprintf("packs[%d].id must not be empty", i))
		} else if seen[p.ID] {
			errs = append(errs, fmt.Sprintf("packs[%d].id %q is duplicated", i, p.ID))
		}
		seen[p.ID] = true
		if p.Tokens <= 0 {
			errs = append(errs, fmt.Sprintf("packs[%d].tokens must be >= 1", i))
		}
		if p.BonusTokens < 0 {
			errs = append(errs, fmt.Sprintf("packs[%d].bonus_tokens must be >= 0", i))
		}
		if p.PriceCents <= 0 {
			errs = append(errs, fmt.Sprintf("packs[%d].price_cents must be >= 1", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
