package redundancyestimator

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Strategy is the redundancy scheme a Record was estimated for.
type Strategy int

const (
	Replication Strategy = iota + 1
	ErasureCoding
)

func (s Strategy) Valid() bool {
	return s == Replication || s == ErasureCoding
}

func (s Strategy) String() string {
	switch s {
	case Replication:
		return "Replication (3x)"
	case ErasureCoding:
		return "Erasure Coding (4+2)"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// Slug is the label friendly name of the strategy.
func (s Strategy) Slug() string {
	switch s {
	case Replication:
		return "replication"
	case ErasureCoding:
		return "erasure_coding"
	}
	return "unknown"
}

func (s Strategy) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("cannot marshal invalid strategy %d", int(s))
	}
	return []byte(s.Slug()), nil
}

// Record holds every estimated metric of one strategy for one dataset size.
// Estimators return it by value and nothing mutates it afterward.
type Record struct {
	Strategy         Strategy     `json:"strategy" mapstructure:"strategy"`
	DatasetGB        int          `json:"dataset_gb" mapstructure:"dataset_gb"`
	StorageOverhead  float64      `json:"storage_overhead" mapstructure:"storage_overhead"`
	WriteLatency     Milliseconds `json:"write_latency_ms" mapstructure:"write_latency_ms"`
	ReadLatency      Milliseconds `json:"read_latency_ms" mapstructure:"read_latency_ms"`
	EncodeCPU        Percent      `json:"encode_cpu_percent" mapstructure:"encode_cpu_percent"`
	DecodeCPU        Percent      `json:"decode_cpu_percent" mapstructure:"decode_cpu_percent"`
	NetworkIO        Gigabytes    `json:"network_io_gb" mapstructure:"network_io_gb"`
	RebuildTime      Seconds      `json:"rebuild_time_seconds" mapstructure:"rebuild_time_seconds"`
	MonthlyCost      Dollars      `json:"monthly_cost_dollars" mapstructure:"monthly_cost_dollars"`
	FailureTolerance int          `json:"failure_tolerance" mapstructure:"failure_tolerance"`
}

// Fields flattens the record into a map keyed by the mapstructure tags.
// Values keep their unit types.
func (r Record) Fields() (map[string]any, error) {
	fields := make(map[string]any)
	if err := mapstructure.Decode(r, &fields); err != nil {
		return nil, fmt.Errorf("failed to flatten %s record: %w", r.Strategy, err)
	}
	return fields, nil
}

// Estimator computes a Record from a dataset size in gigabytes.
type Estimator interface {
	Strategy() Strategy
	Estimate(datasetGB int) Record
}
