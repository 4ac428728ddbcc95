package model

import (
	"fmt"

	"github.com/superdango/redundancy-estimator/internal/must"
)

// Policy describes how a piece of data is made redundant. Copies is set for
// replication, DataShards and ParityShards for erasure coding.
type Policy struct {
	Copies       int
	DataShards   int
	ParityShards int
}

var (
	ReplicationPolicy   = Policy{Copies: 3}
	ErasureCodingPolicy = Policy{DataShards: 4, ParityShards: 2}
)

func (p Policy) IsReplication() bool {
	return p.Copies > 0
}

// FragmentCount is the number of fragments written for each piece of data.
func (p Policy) FragmentCount() int {
	if p.IsReplication() {
		return p.Copies
	}
	return p.DataShards + p.ParityShards
}

// MinFragments is the number of fragments needed to rebuild the data.
func (p Policy) MinFragments() int {
	if p.IsReplication() {
		return 1
	}
	return p.DataShards
}

func (p Policy) StorageOverhead() float64 {
	must.Assert(p.MinFragments() > 0, "policy must need at least one fragment")
	return float64(p.FragmentCount()) / float64(p.MinFragments())
}

// FailureTolerance is the number of fragments that can be lost at once
// without losing data.
func (p Policy) FailureTolerance() int {
	return p.FragmentCount() - p.MinFragments()
}

func (p Policy) String() string {
	if p.IsReplication() {
		return fmt.Sprintf("Replication (%dx)", p.Copies)
	}
	return fmt.Sprintf("Erasure Coding (%d+%d)", p.DataShards, p.ParityShards)
}
