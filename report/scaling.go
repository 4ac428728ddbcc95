package report

import (
	"errors"
	"fmt"
	"io"

	redundancyestimator "github.com/superdango/redundancy-estimator"
	"gonum.org/v1/gonum/stat"
)

var ErrTooFewSizes = errors.New("scaling needs at least two distinct dataset sizes")

// Slopes are the increase of each metric for one additional gigabyte,
// fitted by least squares over the compared dataset sizes.
type Slopes struct {
	Strategy     redundancyestimator.Strategy `json:"strategy"`
	WriteLatency float64                      `json:"write_latency_ms_per_gb"`
	ReadLatency  float64                      `json:"read_latency_ms_per_gb"`
	RebuildTime  float64                      `json:"rebuild_time_seconds_per_gb"`
	MonthlyCost  float64                      `json:"monthly_cost_dollars_per_gb"`
}

type ScalingSummary struct {
	Replication   Slopes `json:"replication"`
	ErasureCoding Slopes `json:"erasure_coding"`
}

// Scaling fits every strategy metric against the dataset size.
func Scaling(comparisons []Comparison) (ScalingSummary, error) {
	distinct := make(map[int]struct{})
	for _, c := range comparisons {
		distinct[c.DatasetGB] = struct{}{}
	}
	if len(distinct) < 2 {
		return ScalingSummary{}, fmt.Errorf("%w: got %d", ErrTooFewSizes, len(distinct))
	}

	replication := make([]redundancyestimator.Record, len(comparisons))
	erasureCoding := make([]redundancyestimator.Record, len(comparisons))
	for i, c := range comparisons {
		replication[i] = c.Replication
		erasureCoding[i] = c.ErasureCoding
	}

	return ScalingSummary{
		Replication:   fitSlopes(redundancyestimator.Replication, replication),
		ErasureCoding: fitSlopes(redundancyestimator.ErasureCoding, erasureCoding),
	}, nil
}

func fitSlopes(strategy redundancyestimator.Strategy, records []redundancyestimator.Record) Slopes {
	sizes := make([]float64, len(records))
	write := make([]float64, len(records))
	read := make([]float64, len(records))
	rebuild := make([]float64, len(records))
	cost := make([]float64, len(records))
	for i, r := range records {
		sizes[i] = float64(r.DatasetGB)
		write[i] = float64(r.WriteLatency)
		read[i] = float64(r.ReadLatency)
		rebuild[i] = float64(r.RebuildTime)
		cost[i] = float64(r.MonthlyCost)
	}

	slope := func(y []float64) float64 {
		_, beta := stat.LinearRegression(sizes, y, nil, false)
		return beta
	}

	return Slopes{
		Strategy:     strategy,
		WriteLatency: slope(write),
		ReadLatency:  slope(read),
		RebuildTime:  slope(rebuild),
		MonthlyCost:  slope(cost),
	}
}

func RenderScaling(w io.Writer, summary ScalingSummary) error {
	p := &printer{w: w}
	p.printf("\nSCALING SUMMARY (per additional GB):\n")
	p.printf("%s\n", rule)
	for _, slopes := range []Slopes{summary.Replication, summary.ErasureCoding} {
		p.printf("\n%s:\n", slopes.Strategy)
		p.printf("  Write Latency: %.3fms/GB\n", slopes.WriteLatency)
		p.printf("  Read Latency: %.3fms/GB\n", slopes.ReadLatency)
		p.printf("  Rebuild Time: %.4fs/GB\n", slopes.RebuildTime)
		p.printf("  Monthly Cost: $%.4f/GB\n", slopes.MonthlyCost)
	}
	return p.err
}
