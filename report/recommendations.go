package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	redundancyestimator "github.com/superdango/redundancy-estimator"
)

var ErrUnknownTier = errors.New("unknown workload tier")

// Tier is a workload class and the strategy advised for it. Tiers are fixed
// advice, they do not depend on any estimate.
type Tier struct {
	Name     string `json:"name"`
	Activity string `json:"activity"`
	// Preferred is the strategy to start with, Strategy the full advice
	Preferred  redundancyestimator.Strategy `json:"preferred"`
	Strategy   string                       `json:"strategy"`
	Reason     string                       `json:"reason"`
	Throughput string                       `json:"expected_throughput"`
}

func (t Tier) Label() string {
	return fmt.Sprintf("%s (%s)", t.Name, t.Activity)
}

// Recommendations returns the HOT, WARM and COLD tiers, in this order.
func Recommendations() []Tier {
	return []Tier{
		{
			Name:       "HOT",
			Activity:   ">100 ops/day",
			Preferred:  redundancyestimator.Replication,
			Strategy:   redundancyestimator.Replication.String(),
			Reason:     "Low latency critical for frequent access",
			Throughput: "50-100 per second",
		},
		{
			Name:       "WARM",
			Activity:   "10-100 ops/day",
			Preferred:  redundancyestimator.Replication,
			Strategy:   redundancyestimator.Replication.String() + " or Hybrid",
			Reason:     "Balanced performance and cost",
			Throughput: "5-10 per second",
		},
		{
			Name:       "COLD",
			Activity:   "<10 ops/day",
			Preferred:  redundancyestimator.ErasureCoding,
			Strategy:   redundancyestimator.ErasureCoding.String(),
			Reason:     "Cost efficiency more important than latency",
			Throughput: "<1 per second",
		},
	}
}

// LookupTier finds the tier closest to name, ignoring case, spacing and the
// word "tier". "cold", "Cold tier" and "Cold (<10" all resolve to the COLD tier.
func LookupTier(name string) (Tier, error) {
	tiers := Recommendations()
	labels := make([]string, len(tiers))
	for i, tier := range tiers {
		labels[i] = tier.Label()
	}

	source := normalizeTierName(name)
	ranks := fuzzy.RankFindNormalizedFold(source, labels)
	if source == "" || len(ranks) == 0 {
		return Tier{}, fmt.Errorf("%w: %q", ErrUnknownTier, name)
	}

	sort.Stable(ranks)

	slog.Debug("fuzzy found a workload tier", "source", name, "found", ranks[0].Target, "distance", ranks[0].Distance)

	return tiers[ranks[0].OriginalIndex], nil
}

func normalizeTierName(name string) string {
	words := strings.Fields(name)
	kept := make([]string, 0, len(words))
	for _, word := range words {
		if strings.EqualFold(word, "tier") {
			continue
		}
		kept = append(kept, word)
	}
	return strings.Join(kept, "")
}

func RenderRecommendations(w io.Writer, tiers []Tier) error {
	p := &printer{w: w}
	p.printf("\nWORKLOAD-SPECIFIC RECOMMENDATIONS:\n")
	p.printf("%s\n", rule)
	if p.err != nil {
		return p.err
	}
	for _, tier := range tiers {
		if err := RenderTier(w, tier); err != nil {
			return err
		}
	}
	return nil
}

func RenderTier(w io.Writer, tier Tier) error {
	p := &printer{w: w}
	p.printf("\n%s:\n", tier.Label())
	p.printf("  Strategy: %s\n", tier.Strategy)
	p.printf("  Reason: %s\n", tier.Reason)
	p.printf("  Throughput: %s\n", tier.Throughput)
	return p.err
}
