package main

import (
	"fmt"
	"io"
	"math"
	"strconv"

	"pullsim/internal/catalog"
	"pullsim/internal/gacha"
	"pullsim/internal/pricing"
)

const (
	colorPurple = "\x1b[1;35m"
	colorOrange = "\x1b[1;33m"
	colorReset  = "\x1b[0m"
)

// session holds the interactive state: one engine, one catalog, and the
// first-time purchase flags consumed by plan commands.
type session struct {
	eng       *gacha.Engine
	cat       catalog.Catalog
	firstTime pricing.FirstTimeState
	seed      uint64
	out       io.Writer
}

// highlight renders an outcome with tier styling: bold purple for 4-star,
// bold orange for both 5-star tiers, plain otherwise.
func highlight(o gacha.Outcome) string {
	switch {
	case o.FiveStarTier():
		return colorOrange + o.String() + colorReset
	case o == gacha.FourStar:
		return colorPurple + o.String() + colorReset
	default:
		return o.String()
	}
}

func (s *session) run(cmd string, args []string) {
	switch cmd {
	case "help":
		s.help()
	case "one":
		s.pull(1)
	case "ten":
		s.pull(10)
	case "pull":
		n, ok := s.intArg(args, "pull <count>")
		if ok {
			s.pull(n)
		}
	case "last":
		s.printOutcomes(s.eng.LastBatch())
	case "history":
		s.printOutcomes(s.eng.History())
	case "stats":
		s.stats()
	case "pity":
		s.pity()
	case "plan":
		n, ok := s.intArg(args, "plan <pulls>")
		if ok {
			s.plan(n)
		}
	case "budget":
		s.budget(args)
	case "sim":
		s.sim(args)
	case "reset":
		s.eng.Reset()
		fmt.Fprintln(s.out, "history cleared, counters reset")
	default:
		fmt.Fprintf(s.out, "unknown command %q; type 'help'\n", cmd)
	}
}

func (s *session) help() {
	fmt.Fprint(s.out, `commands:
  one | ten | pull <n>   run pulls
  last                   outcomes of the most recent batch
  history                every outcome since the last reset
  stats                  per-tier totals
  pity                   current pity counters and featured guarantee
  plan <pulls>           cheapest purchases covering that many pulls
  budget <amount>        most tokens for the given spend (e.g. 49.99)
  sim <trials> [five|featured]  expected pulls to the goal outcome
  reset                  clear history and counters
  quit
`)
}

func (s *session) intArg(args []string, usage string) (int, bool) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "usage: %s\n", usage)
		return 0, false
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "usage: %s\n", usage)
		return 0, false
	}
	return n, true
}

func (s *session) pull(n int) {
	batch, err := s.eng.Pull(n)
	if err != nil {
		fmt.Fprintln(s.out, "pull failed:", err)
		return
	}
	s.printOutcomes(batch)
}

func (s *session) printOutcomes(outs []gacha.Outcome) {
	if len(outs) == 0 {
		fmt.Fprintln(s.out, "(no pulls)")
		return
	}
	for _, o := range outs {
		fmt.Fprintln(s.out, highlight(o))
	}
}

func (s *session) stats() {
	sum := s.eng.Stats()
	fmt.Fprintf(s.out, "total pulls: %d\n", sum.Total)
	for _, o := range []gacha.Outcome{
		gacha.ThreeStar, gacha.FourStar, gacha.FiveStar, gacha.FeaturedFiveStar,
	} {
		fmt.Fprintf(s.out, "  %s: %d\n", highlight(o), sum.Counts[o])
	}
}

func (s *session) pity() {
	fmt.Fprintf(s.out, "pulls since last 4★: %d  since last 5★: %d",
		s.eng.PityFour(), s.eng.PityFive())
	if s.eng.FeaturedGuaranteed() {
		fmt.Fprint(s.out, "  (next 5★ guaranteed featured)")
	}
	fmt.Fprintln(s.out)
}

func (s *session) plan(pulls int) {
	tokens := pricing.TokensForPulls(s.cat.Cost, pulls)
	if tokens <= 0 {
		fmt.Fprintln(s.out, "catalog has no pull cost configured")
		return
	}
	fmt.Fprintf(s.out, "%d pulls cost %d %s\n", pulls, tokens, s.cat.TokenName)
	s.printPlan(pricing.MinCostAtLeastTokens(s.cat, tokens, s.firstTime))
}

func (s *session) budget(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(s.out, "usage: budget <amount>")
		return
	}
	amount, err := strconv.ParseFloat(args[0], 64)
	if err != nil || amount <= 0 {
		fmt.Fprintln(s.out, "usage: budget <amount>")
		return
	}
	cents := int(math.Round(amount * 100))
	s.printPlan(pricing.MaxTokensUnderBudget(s.cat, cents, s.firstTime))
}

func (s *session) printPlan(plan pricing.Plan) {
	if len(plan.Purchases) == 0 {
		fmt.Fprintln(s.out, "no purchase needed")
		return
	}
	for _, p := range plan.Purchases {
		fmt.Fprintf(s.out, "  %dx %-16s %8s  (%d %s each)\n",
			p.Qty, p.Name, money(p.Subtotal, plan.Currency), p.UnitTokens, s.cat.TokenName)
	}
	if plan.TaxCents > 0 {
		fmt.Fprintf(s.out, "  subtotal %s, tax %s\n",
			money(plan.SubCents, plan.Currency), money(plan.TaxCents, plan.Currency))
	}
	fmt.Fprintf(s.out, "  total: %s for %d %s\n",
		money(plan.TotalCents, plan.Currency), plan.TotalTokens, s.cat.TokenName)
}

func (s *session) sim(args []string) {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(s.out, "usage: sim <trials> [five|featured]")
		return
	}
	trials, err := strconv.Atoi(args[0])
	if err != nil || trials <= 0 {
		fmt.Fprintln(s.out, "usage: sim <trials> [five|featured]")
		return
	}
	goal := gacha.GoalFirstFeatured
	label := "first featured 5★"
	if len(args) == 2 {
		switch args[1] {
		case "five":
			goal = gacha.GoalFirstFive
			label = "first 5★"
		case "featured":
		default:
			fmt.Fprintln(s.out, "usage: sim <trials> [five|featured]")
			return
		}
	}
	seed := s.seed
	if seed == 0 {
		seed = 1
	}
	st, err := gacha.RunTrials(goal, trials, 0, seed)
	if err != nil {
		fmt.Fprintln(s.out, "simulation failed:", err)
		return
	}
	fmt.Fprintf(s.out, "pulls to %s over %d trials:\n", label, trials)
	fmt.Fprintf(s.out, "  mean %.1f  stddev %.1f  p50 %.0f  p90 %.0f  p99 %.0f\n",
		st.Mean, st.StdDev, st.P50, st.P90, st.P99)
}

func money(cents int, currency string) string {
	return fmt.Sprintf("%d.%02d %s", cents/100, cents%100, currency)
}
