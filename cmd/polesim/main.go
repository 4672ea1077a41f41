// Command polesim sweeps every direction assignment for a particle scenario
// and reports the earliest- and latest-clearing permutations.
//
// Usage:
//
//	polesim -scenario sweep.gcfg
//	polesim -length 214 -speed 1 -positions 11,12,7,13,176,23,191
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/katalvlaran/polesim/scenario"
	"github.com/katalvlaran/polesim/world"
)

func main() {
	scenarioPath := flag.String("scenario", "", "gcfg scenario file; overrides the inline flags")
	length := flag.Int("length", 214, "pole length")
	speed := flag.Int("speed", 1, "particle speed in positions per time unit")
	positions := flag.String("positions", "11,12,7,13,176,23,191", "comma-separated starting positions")
	quiet := flag.Bool("quiet", false, "print only the extremal clearing times")
	flag.Parse()

	s, err := buildScenario(*scenarioPath, *length, *speed, *positions)
	if err != nil {
		log.Fatal(err)
	}

	res, err := s.Sweep()
	if err != nil {
		log.Fatal(err)
	}

	if *quiet {
		fmt.Println(res.Earliest, res.Latest)

		return
	}
	report(res)
}

// buildScenario resolves the input source: a scenario file when given,
// otherwise the inline flag values.
func buildScenario(path string, length, speed int, positions string) (*scenario.Scenario, error) {
	if path != "" {
		return scenario.Read(path)
	}

	s := &scenario.Scenario{Length: length, Speed: speed}
	for _, field := range strings.Split(positions, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		p, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid position %q: %w", field, err)
		}
		s.Positions = append(s.Positions, p)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// report prints the per-permutation drop-off times followed by the tie sets
// of earliest- and latest-clearing permutations.
func report(res *world.SweepResult) {
	fmt.Println("Starting positions:", res.Positions)
	fmt.Println()

	for k, dirs := range res.Permutations {
		fmt.Printf("Particles whose starting directions are %s drop off at %v\n",
			world.PermutationString(dirs), res.RemovalTimes[k])
	}
	fmt.Println()

	fmt.Printf("Permutations whose particles drop off earliest: %s at time %d\n",
		permStrings(res, res.EarliestPerms), res.Earliest)
	fmt.Printf("Permutations whose particles drop off latest: %s at time %d\n",
		permStrings(res, res.LatestPerms), res.Latest)
}

func permStrings(res *world.SweepResult, perms []int) string {
	out := make([]string, len(perms))
	for i, k := range perms {
		out[i] = world.PermutationString(res.Permutations[k])
	}

	return "[" + strings.Join(out, " ") + "]"
}
