package primitives

import "github.com/superdango/redundancy-estimator/internal/must"

// CodecTime is the time spent in Galois field arithmetic to encode or
// decode mb megabytes at the Reed-Solomon rate.
func CodecTime(mb float64, rateMBps float64) float64 {
	must.Assert(rateMBps > 0, "codec rate must be greater than 0")
	return mb / rateMBps
}
