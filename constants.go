package redundancyestimator

import (
	"errors"
	"fmt"
	"math"

	"github.com/kelseyhightower/envconfig"
	"github.com/mitchellh/mapstructure"
)

// EnvPrefix prefixes every environment variable read by LoadConstants.
const EnvPrefix = "REDUNDANCY"

var ErrInvalidConstants = errors.New("invalid constants")

// Constants drive every formula of the model. The zero value is not usable,
// start from DefaultConstants or LoadConstants.
type Constants struct {
	// DiskBandwidthMBps is the sequential bandwidth of one disk
	DiskBandwidthMBps float64 `envconfig:"DISK_BANDWIDTH_MBPS" default:"100" mapstructure:"disk_bandwidth_mbps" json:"disk_bandwidth_mbps"`
	// NetworkBandwidthMBps of the datacenter fabric (40Gbps)
	NetworkBandwidthMBps float64 `envconfig:"NETWORK_BANDWIDTH_MBPS" default:"5000" mapstructure:"network_bandwidth_mbps" json:"network_bandwidth_mbps"`
	// DecodeRateMBps is the Reed-Solomon throughput, used for both encode and decode
	DecodeRateMBps float64 `envconfig:"DECODE_RATE_MBPS" default:"50" mapstructure:"decode_rate_mbps" json:"decode_rate_mbps"`
	// DiskAnnualFailureRate is carried but not used by any formula yet
	DiskAnnualFailureRate float64 `envconfig:"DISK_ANNUAL_FAILURE_RATE" default:"0.01" mapstructure:"disk_annual_failure_rate" json:"disk_annual_failure_rate"`
	// StorageCostPerTBMonth in dollars
	StorageCostPerTBMonth float64 `envconfig:"STORAGE_COST_PER_TB_MONTH" default:"10" mapstructure:"storage_cost_per_tb_month" json:"storage_cost_per_tb_month"`
}

func DefaultConstants() Constants {
	return Constants{
		DiskBandwidthMBps:     100,
		NetworkBandwidthMBps:  5000,
		DecodeRateMBps:        50,
		DiskAnnualFailureRate: 0.01,
		StorageCostPerTBMonth: 10,
	}
}

// LoadConstants reads constants from REDUNDANCY_* environment variables,
// falling back on defaults for unset ones.
func LoadConstants() (Constants, error) {
	c := Constants{}
	if err := envconfig.Process(EnvPrefix, &c); err != nil {
		return Constants{}, fmt.Errorf("failed to load constants from environment: %w", err)
	}

	if err := c.Validate(); err != nil {
		return Constants{}, err
	}

	return c, nil
}

// WithOverrides returns a copy of c with the given values applied. Keys are
// the mapstructure names (disk_bandwidth_mbps, ...), values are parsed as numbers.
func (c Constants) WithOverrides(overrides map[string]string) (Constants, error) {
	overridden := c
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &overridden,
	})
	if err != nil {
		return Constants{}, fmt.Errorf("failed to create overrides decoder: %w", err)
	}

	if err := decoder.Decode(overrides); err != nil {
		return Constants{}, fmt.Errorf("%w: %s", ErrInvalidConstants, err.Error())
	}

	if err := overridden.Validate(); err != nil {
		return Constants{}, err
	}

	return overridden, nil
}

// Validate rejects any constant that would leak NaN or infinite values into
// a report.
func (c Constants) Validate() error {
	rates := []struct {
		name  string
		value float64
	}{
		{"disk_bandwidth_mbps", c.DiskBandwidthMBps},
		{"network_bandwidth_mbps", c.NetworkBandwidthMBps},
		{"decode_rate_mbps", c.DecodeRateMBps},
	}
	for _, rate := range rates {
		if !isFinite(rate.value) || rate.value <= 0 {
			return fmt.Errorf("%w: %s must be strictly positive, got %v", ErrInvalidConstants, rate.name, rate.value)
		}
	}

	if !isFinite(c.DiskAnnualFailureRate) || c.DiskAnnualFailureRate < 0 || c.DiskAnnualFailureRate > 1 {
		return fmt.Errorf("%w: disk_annual_failure_rate must be within [0,1], got %v", ErrInvalidConstants, c.DiskAnnualFailureRate)
	}

	if !isFinite(c.StorageCostPerTBMonth) || c.StorageCostPerTBMonth < 0 {
		return fmt.Errorf("%w: storage_cost_per_tb_month must not be negative, got %v", ErrInvalidConstants, c.StorageCostPerTBMonth)
	}

	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
