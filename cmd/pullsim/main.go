package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"pullsim/internal/catalog"
	"pullsim/internal/gacha"
	"pullsim/internal/pricing"
)

func main() {
	seed := flag.Uint64("seed", 0, "seed for a reproducible session (0 = crypto randomness)")
	catPath := flag.String("catalog", "", "store catalog YAML (empty = built-in catalog)")
	flag.Parse()

	cat, err := catalog.Load(*catPath)
	if err != nil {
		log.Fatal(err)
	}

	var rng gacha.RandomSource
	if *seed != 0 {
		rng = gacha.NewSeededRNG(*seed)
	}

	s := &session{
		eng:  gacha.NewEngine(rng),
		cat:  cat,
		seed: *seed,
		out:  os.Stdout,
	}
	// every first-time double is available at session start
	s.firstTime = pricing.FirstTimeState{}
	for _, p := range cat.Packs {
		s.firstTime[p.ID] = p.FirstTimeX2
	}

	fmt.Fprintln(s.out, "pullsim — type 'help' for commands")
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(s.out, "> ")
		if !sc.Scan() {
			break
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return
		}
		s.run(fields[0], fields[1:])
	}
	if err := sc.Err(); err != nil {
		log.Fatal(err)
	}
}
