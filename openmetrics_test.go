package redundancyestimator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeLabels(t *testing.T) {
	m := Metric{
		Name: "foo",
		Labels: map[string]string{
			"dataset.gb":     "1",
			"rack:zone/name": "a",
			"tier label":     "",
		},
		Value: 1.0,
	}

	assert.Equal(t, map[string]string{
		"dataset_gb":     "1",
		"rack_zone_name": "a",
		"tier_label":     "",
	}, m.SanitizeLabels().Labels)
}


func testRecord() Record {
	return Record{
		Strategy:         ErasureCoding,
		DatasetGB:        10,
		StorageOverhead:  1.5,
		WriteLatency:     358.4,
		ReadLatency:      256,
		EncodeCPU:        15,
		DecodeCPU:        12,
		NetworkIO:        15,
		RebuildTime:      0.4596,
		MonthlyCost:      0.146484375,
		FailureTolerance: 2,
	}
}

func TestRecordFields(t *testing.T) {
	fields, err := testRecord().Fields()
	require.NoError(t, err)

	assert.Len(t, fields, 11)
	assert.Equal(t, ErasureCoding, fields["strategy"])
	assert.Equal(t, Milliseconds(358.4), fields["write_latency_ms"])
	assert.Equal(t, Seconds(0.4596), fields["rebuild_time_seconds"])
	assert.Equal(t, 2, fields["failure_tolerance"])
}

func TestRecordMetrics(t *testing.T) {
	metrics, err := RecordMetrics(testRecord())
	require.NoError(t, err)

	// every field but the strategy is numeric
	require.Len(t, metrics, 10)
	assert.Equal(t, "redundancy_dataset_gb", metrics[0].Name)
	assert.Equal(t, "redundancy_write_latency_ms", metrics[9].Name)
	assert.Equal(t, 358.4, metrics[9].Value)
	assert.Equal(t, map[string]string{"strategy": "erasure_coding", "dataset_gb": "10"}, metrics[9].Labels)

	// each metric owns its labels
	metrics[0].Labels["strategy"] = "changed"
	assert.Equal(t, "erasure_coding", metrics[1].Labels["strategy"])
}

func TestWriteMetrics(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, WriteMetrics(buf, testRecord()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 10)
	assert.Contains(t, lines, `redundancy_network_io_gb{dataset_gb="10",strategy="erasure_coding"} 15.0000000000`)
	assert.Contains(t, lines, `redundancy_failure_tolerance{dataset_gb="10",strategy="erasure_coding"} 2.0000000000`)
}
