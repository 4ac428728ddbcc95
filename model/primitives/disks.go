package primitives

import (
	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/internal/must"
)

// TransferTime returns how long moving mb megabytes takes at the given
// bandwidth. The model reads the result as milliseconds.
func TransferTime(mb float64, bandwidthMBps float64) float64 {
	must.Assert(bandwidthMBps > 0, "bandwidth must be greater than 0")
	return mb / bandwidthMBps
}

// StorageCost returns the monthly cost of keeping storedGB gigabytes on disk.
func StorageCost(storedGB float64, costPerTBMonth float64) float64 {
	must.Assert(costPerTBMonth >= 0, "storage cost must not be negative")
	return redundancyestimator.Gigabytes(storedGB).Terabytes() * costPerTBMonth
}
