package model

import (
	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/model/primitives"
)

const (
	replicationWriteOverhead   = 1.5 // three parallel copies acknowledged
	replicationReadOverhead    = 1.1 // a single copy is read
	replicationRebuildOverhead = 1.2 // copy from a surviving replica
	replicationCPUPercent      = 0.5 // plain memcpy
)

// Replication estimates full copies of the data on distinct disks.
type Replication struct {
	constants redundancyestimator.Constants
	policy    Policy
}

func NewReplication(constants redundancyestimator.Constants) *Replication {
	return &Replication{
		constants: constants,
		policy:    ReplicationPolicy,
	}
}

func (m *Replication) Strategy() redundancyestimator.Strategy {
	return redundancyestimator.Replication
}

func (m *Replication) Policy() Policy {
	return m.policy
}

func (m *Replication) Estimate(datasetGB int) redundancyestimator.Record {
	mb := redundancyestimator.Gigabytes(datasetGB).Megabytes()
	diskTime := primitives.TransferTime(mb, m.constants.DiskBandwidthMBps)
	overhead := m.policy.StorageOverhead()

	return redundancyestimator.Record{
		Strategy:         redundancyestimator.Replication,
		DatasetGB:        datasetGB,
		StorageOverhead:  overhead,
		WriteLatency:     redundancyestimator.Milliseconds(diskTime * replicationWriteOverhead),
		ReadLatency:      redundancyestimator.Milliseconds(diskTime * replicationReadOverhead),
		EncodeCPU:        replicationCPUPercent,
		DecodeCPU:        replicationCPUPercent,
		NetworkIO:        redundancyestimator.Gigabytes(float64(datasetGB) * overhead),
		RebuildTime:      redundancyestimator.Seconds(diskTime * replicationRebuildOverhead),
		MonthlyCost:      redundancyestimator.Dollars(primitives.StorageCost(float64(datasetGB)*overhead, m.constants.StorageCostPerTBMonth)),
		FailureTolerance: m.policy.FailureTolerance(),
	}
}

// EstimateReplication is a shortcut for NewReplication(constants).Estimate(datasetGB).
func EstimateReplication(constants redundancyestimator.Constants, datasetGB int) redundancyestimator.Record {
	return NewReplication(constants).Estimate(datasetGB)
}
