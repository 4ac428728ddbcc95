package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/model"
	"github.com/superdango/redundancy-estimator/report"
)

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "0", report.FormatDollars(0.0293))
	assert.Equal(t, "352", report.FormatDollars(351.5625))
	assert.Equal(t, "1,234,568", report.FormatDollars(1234567.5))
	assert.Equal(t, "29,297", report.FormatDollars(29296.875))
	assert.Equal(t, "-1,000", report.FormatDollars(-1000))
}

func TestRenderRecord(t *testing.T) {
	c := redundancyestimator.DefaultConstants()

	buf := new(bytes.Buffer)
	require.NoError(t, report.RenderRecord(buf, model.EstimateReplication(c, 1)))
	assert.Equal(t, `Replication (3x):
  Storage Overhead: 3.0x
  Write Latency: 15.4ms
  Read Latency: 11.3ms
  Encode CPU: 0.5%
  Decode CPU: 0.5%
  Network I/O: 3.00GB
  Rebuild Time: 12.29s
  Monthly Cost: $0
  Failure Tolerance: 2 disk(s)
`, buf.String())

	buf.Reset()
	require.NoError(t, report.RenderRecord(buf, model.EstimateErasureCoding(c, 1000)))
	assert.Equal(t, `Erasure Coding (4+2):
  Storage Overhead: 1.5x
  Write Latency: 35840.0ms
  Read Latency: 25600.0ms
  Encode CPU: 15.0%
  Decode CPU: 12.0%
  Network I/O: 1500.00GB
  Rebuild Time: 41.01s
  Monthly Cost: $15
  Failure Tolerance: 2 disk(s)
`, buf.String())
}

func TestRenderComparison(t *testing.T) {
	buf := new(bytes.Buffer)
	require.NoError(t, report.RenderComparison(buf, compareSize(t, 100)))
	text := buf.String()

	assert.Contains(t, text, "Performance Comparison: 100GB Dataset")
	assert.Contains(t, text, "  EC uses 2.0x LESS storage\n")
	assert.Contains(t, text, "  EC uses 30.0x MORE CPU for encoding\n")
	assert.Contains(t, text, "  Savings: 150.00GB network I/O\n")

	// both dumps come first, then the six sections in order
	ordered := []string{
		"Replication (3x):",
		"Erasure Coding (4+2):",
		"COMPARISON (EC vs Replication):",
		"Storage Efficiency:",
		"Write Performance:",
		"Read Performance:",
		"CPU Overhead:",
		"Network I/O (Write):",
		"Disk Failure Recovery:",
	}
	last := -1
	for _, section := range ordered {
		index := strings.Index(text, section)
		require.NotEqual(t, -1, index, "missing %q", section)
		assert.Greater(t, index, last, "%q is out of order", section)
		last = index
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestRenderWriteError(t *testing.T) {
	assert.EqualError(t, report.RenderComparison(failingWriter{}, compareSize(t, 1)), "disk full")
	assert.EqualError(t, report.RenderRecord(failingWriter{}, compareSize(t, 1).Replication), "disk full")
}
