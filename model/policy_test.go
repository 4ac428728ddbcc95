package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy(t *testing.T) {
	assert.Equal(t, 3, ReplicationPolicy.FragmentCount())
	assert.Equal(t, 1, ReplicationPolicy.MinFragments())
	assert.Equal(t, 3.0, ReplicationPolicy.StorageOverhead())
	assert.Equal(t, 2, ReplicationPolicy.FailureTolerance())
	assert.Equal(t, "Replication (3x)", ReplicationPolicy.String())

	assert.Equal(t, 6, ErasureCodingPolicy.FragmentCount())
	assert.Equal(t, 4, ErasureCodingPolicy.MinFragments())
	assert.Equal(t, 1.5, ErasureCodingPolicy.StorageOverhead())
	assert.Equal(t, 2, ErasureCodingPolicy.FailureTolerance())
	assert.Equal(t, "Erasure Coding (4+2)", ErasureCodingPolicy.String())

	assert.Equal(t, 1.25, Policy{DataShards: 4, ParityShards: 1}.StorageOverhead())
	assert.Panics(t, func() { Policy{}.StorageOverhead() })
}
