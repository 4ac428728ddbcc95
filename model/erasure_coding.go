package model

import (
	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/model/primitives"
)

const (
	// six disks written in parallel, slowed down by the parity shards
	erasureCodingWriteOverhead = 1.5
	// data shards are read in parallel
	erasureCodingReadSpeedup = 2
	// fixed cost to write the rebuilt shard, in milliseconds
	erasureCodingShardWriteMs = 50
	erasureCodingEncodeCPU    = 15.0
	erasureCodingDecodeCPU    = 12.0
)

// ErasureCoding estimates a 4+2 Reed-Solomon layout.
type ErasureCoding struct {
	constants redundancyestimator.Constants
	policy    Policy
}

func NewErasureCoding(constants redundancyestimator.Constants) *ErasureCoding {
	return &ErasureCoding{
		constants: constants,
		policy:    ErasureCodingPolicy,
	}
}

func (m *ErasureCoding) Strategy() redundancyestimator.Strategy {
	return redundancyestimator.ErasureCoding
}

func (m *ErasureCoding) Policy() Policy {
	return m.policy
}

func (m *ErasureCoding) Estimate(datasetGB int) redundancyestimator.Record {
	mb := redundancyestimator.Gigabytes(datasetGB).Megabytes()
	rate := m.constants.DecodeRateMBps
	disk := m.constants.DiskBandwidthMBps
	overhead := m.policy.StorageOverhead()

	encodeTime := primitives.CodecTime(mb, rate)
	writeLatency := primitives.TransferTime(mb, disk/erasureCodingWriteOverhead) + encodeTime

	decodeTime := primitives.CodecTime(mb, rate)
	readLatency := primitives.TransferTime(mb, disk*erasureCodingReadSpeedup) + decodeTime

	// read and decode the surviving shards, then write the missing one.
	// The shard write cost is added before the conversion to seconds.
	rebuild := redundancyestimator.Milliseconds(primitives.CodecTime(mb, rate)*2 + erasureCodingShardWriteMs)

	return redundancyestimator.Record{
		Strategy:         redundancyestimator.ErasureCoding,
		DatasetGB:        datasetGB,
		StorageOverhead:  overhead,
		WriteLatency:     redundancyestimator.Milliseconds(writeLatency),
		ReadLatency:      redundancyestimator.Milliseconds(readLatency),
		EncodeCPU:        erasureCodingEncodeCPU,
		DecodeCPU:        erasureCodingDecodeCPU,
		NetworkIO:        redundancyestimator.Gigabytes(float64(datasetGB) * overhead),
		RebuildTime:      rebuild.Seconds(),
		MonthlyCost:      redundancyestimator.Dollars(primitives.StorageCost(float64(datasetGB)*overhead, m.constants.StorageCostPerTBMonth)),
		FailureTolerance: m.policy.FailureTolerance(),
	}
}

// EstimateErasureCoding is a shortcut for NewErasureCoding(constants).Estimate(datasetGB).
func EstimateErasureCoding(constants redundancyestimator.Constants, datasetGB int) redundancyestimator.Record {
	return NewErasureCoding(constants).Estimate(datasetGB)
}
