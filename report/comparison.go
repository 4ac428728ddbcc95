package report

import (
	"errors"
	"fmt"

	redundancyestimator "github.com/superdango/redundancy-estimator"
)

var (
	ErrStrategyMismatch = errors.New("comparison needs a replication and an erasure coding record")
	ErrSizeMismatch     = errors.New("records were estimated for different dataset sizes")
	ErrDegenerate       = errors.New("ratio divisor is zero")
)

// Comparison holds the ratios and deltas of erasure coding against
// replication for one dataset size.
type Comparison struct {
	DatasetGB     int                        `json:"dataset_gb"`
	Replication   redundancyestimator.Record `json:"replication"`
	ErasureCoding redundancyestimator.Record `json:"erasure_coding"`

	// StorageRatio is replication overhead over erasure coding overhead
	StorageRatio   float64                     `json:"storage_ratio"`
	MonthlySavings redundancyestimator.Dollars `json:"monthly_savings_dollars"`
	AnnualSavings  redundancyestimator.Dollars `json:"annual_savings_dollars"`

	// WriteRatio is replication latency over erasure coding latency,
	// WriteDelta is erasure coding latency minus replication latency.
	WriteRatio float64                          `json:"write_ratio"`
	WriteDelta redundancyestimator.Milliseconds `json:"write_delta_ms"`
	ReadRatio  float64                          `json:"read_ratio"`
	ReadDelta  redundancyestimator.Milliseconds `json:"read_delta_ms"`

	// CPU ratios are erasure coding over replication
	EncodeCPURatio float64 `json:"encode_cpu_ratio"`
	DecodeCPURatio float64 `json:"decode_cpu_ratio"`

	// NetworkRatio is replication over erasure coding, NetworkSavings is
	// replication minus erasure coding.
	NetworkRatio   float64                       `json:"network_ratio"`
	NetworkSavings redundancyestimator.Gigabytes `json:"network_savings_gb"`

	// RebuildRatio is replication over erasure coding, RebuildDelta is
	// replication minus erasure coding.
	RebuildRatio float64                     `json:"rebuild_ratio"`
	RebuildDelta redundancyestimator.Seconds `json:"rebuild_delta_seconds"`
}

// Compare computes every ratio and delta between the two records. It
// refuses degenerate inputs instead of producing infinite ratios.
func Compare(replication, erasureCoding redundancyestimator.Record) (Comparison, error) {
	if replication.Strategy != redundancyestimator.Replication || erasureCoding.Strategy != redundancyestimator.ErasureCoding {
		return Comparison{}, fmt.Errorf("%w: got %s and %s", ErrStrategyMismatch, replication.Strategy, erasureCoding.Strategy)
	}

	if replication.DatasetGB != erasureCoding.DatasetGB {
		return Comparison{}, fmt.Errorf("%w: %dGB and %dGB", ErrSizeMismatch, replication.DatasetGB, erasureCoding.DatasetGB)
	}

	divisors := []struct {
		name  string
		value float64
	}{
		{"erasure coding storage overhead", erasureCoding.StorageOverhead},
		{"erasure coding write latency", float64(erasureCoding.WriteLatency)},
		{"erasure coding read latency", float64(erasureCoding.ReadLatency)},
		{"replication encode cpu", float64(replication.EncodeCPU)},
		{"replication decode cpu", float64(replication.DecodeCPU)},
		{"erasure coding network io", float64(erasureCoding.NetworkIO)},
		{"erasure coding rebuild time", float64(erasureCoding.RebuildTime)},
	}
	for _, divisor := range divisors {
		if divisor.value == 0 {
			return Comparison{}, fmt.Errorf("%w: %s at %dGB", ErrDegenerate, divisor.name, replication.DatasetGB)
		}
	}

	monthlySavings := replication.MonthlyCost - erasureCoding.MonthlyCost

	return Comparison{
		DatasetGB:      replication.DatasetGB,
		Replication:    replication,
		ErasureCoding:  erasureCoding,
		StorageRatio:   replication.StorageOverhead / erasureCoding.StorageOverhead,
		MonthlySavings: monthlySavings,
		AnnualSavings:  monthlySavings.Annual(),
		WriteRatio:     float64(replication.WriteLatency / erasureCoding.WriteLatency),
		WriteDelta:     erasureCoding.WriteLatency - replication.WriteLatency,
		ReadRatio:      float64(replication.ReadLatency / erasureCoding.ReadLatency),
		ReadDelta:      erasureCoding.ReadLatency - replication.ReadLatency,
		EncodeCPURatio: float64(erasureCoding.EncodeCPU / replication.EncodeCPU),
		DecodeCPURatio: float64(erasureCoding.DecodeCPU / replication.DecodeCPU),
		NetworkRatio:   float64(replication.NetworkIO / erasureCoding.NetworkIO),
		NetworkSavings: replication.NetworkIO - erasureCoding.NetworkIO,
		RebuildRatio:   float64(replication.RebuildTime / erasureCoding.RebuildTime),
		RebuildDelta:   replication.RebuildTime - erasureCoding.RebuildTime,
	}, nil
}

// CompareSize runs both estimators for datasetGB and compares the results.
func CompareSize(replication, erasureCoding redundancyestimator.Estimator, datasetGB int) (Comparison, error) {
	return Compare(replication.Estimate(datasetGB), erasureCoding.Estimate(datasetGB))
}
