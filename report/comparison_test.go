package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/model"
	"github.com/superdango/redundancy-estimator/report"
)

func compareSize(t *testing.T, size int) report.Comparison {
	t.Helper()
	c := redundancyestimator.DefaultConstants()
	comparison, err := report.CompareSize(model.NewReplication(c), model.NewErasureCoding(c), size)
	require.NoError(t, err)
	return comparison
}

func TestCompare(t *testing.T) {
	c := compareSize(t, 1)

	assert.Equal(t, 1, c.DatasetGB)
	assert.Equal(t, 2.0, c.StorageRatio)
	assert.Equal(t, redundancyestimator.Dollars(3.0/1024*10-1.5/1024*10), c.MonthlySavings)
	assert.Equal(t, c.MonthlySavings*12, c.AnnualSavings)

	assert.InDelta(t, 15.36/35.84, c.WriteRatio, 1e-12)
	assert.InDelta(t, 20.48, float64(c.WriteDelta), 1e-9)
	assert.InDelta(t, 0.44, c.ReadRatio, 1e-12)
	assert.InDelta(t, 14.336, float64(c.ReadDelta), 1e-9)

	assert.Equal(t, 30.0, c.EncodeCPURatio)
	assert.Equal(t, 24.0, c.DecodeCPURatio)

	assert.Equal(t, 2.0, c.NetworkRatio)
	assert.Equal(t, redundancyestimator.Gigabytes(1.5), c.NetworkSavings)

	assert.InDelta(t, 12.288/0.09096, c.RebuildRatio, 1e-9)
	assert.InDelta(t, 12.19704, float64(c.RebuildDelta), 1e-9)
}

func TestStorageAndNetworkRatiosAreConstant(t *testing.T) {
	for _, size := range []int{1, 10, 100, 1000, 123_456} {
		c := compareSize(t, size)
		assert.Equal(t, 2.0, c.StorageRatio, "size %d", size)
		assert.Equal(t, 2.0, c.NetworkRatio, "size %d", size)
	}
}

func TestCompareErrors(t *testing.T) {
	c := redundancyestimator.DefaultConstants()
	repl := model.EstimateReplication(c, 10)
	ec := model.EstimateErasureCoding(c, 10)

	_, err := report.Compare(ec, repl)
	assert.ErrorIs(t, err, report.ErrStrategyMismatch)

	_, err = report.Compare(repl, repl)
	assert.ErrorIs(t, err, report.ErrStrategyMismatch)

	_, err = report.Compare(repl, model.EstimateErasureCoding(c, 100))
	assert.ErrorIs(t, err, report.ErrSizeMismatch)

	_, err = report.Compare(model.EstimateReplication(c, 0), model.EstimateErasureCoding(c, 0))
	assert.ErrorIs(t, err, report.ErrDegenerate)

	noCPU := repl
	noCPU.EncodeCPU = 0
	_, err = report.Compare(noCPU, ec)
	assert.ErrorIs(t, err, report.ErrDegenerate)
}
