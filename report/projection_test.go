package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/model"
	"github.com/superdango/redundancy-estimator/report"
)

func TestProjectAnnual(t *testing.T) {
	c := redundancyestimator.DefaultConstants()
	repl := model.EstimateReplication(c, 1)
	ec := model.EstimateErasureCoding(c, 1)

	projection, err := report.ProjectAnnual(repl, ec)
	require.NoError(t, err)

	assert.Equal(t, repl.MonthlyCost*1000*12, projection.Replication)
	assert.Equal(t, ec.MonthlyCost*1000*12, projection.ErasureCoding)
	assert.Equal(t, redundancyestimator.Dollars(351.5625), projection.Replication)
	assert.Equal(t, redundancyestimator.Dollars(175.78125), projection.ErasureCoding)
	assert.Equal(t, projection.Replication-projection.ErasureCoding, projection.Savings)
	assert.Equal(t, 50.0, projection.SavingsPercent)
	assert.Greater(t, projection.SavingsPercent, 0.0)
	assert.Less(t, projection.SavingsPercent, 100.0)

	buf := new(bytes.Buffer)
	require.NoError(t, report.RenderProjection(buf, projection))
	assert.Contains(t, buf.String(), "ANNUAL COST ANALYSIS (1PB = 1000 TB Dataset):")
	assert.Contains(t, buf.String(), "Replication (3x):     $            352/year\n")
	assert.Contains(t, buf.String(), "Erasure Coding (4+2): $            176/year\n")
	assert.Contains(t, buf.String(), "Savings %:                       50.0%\n")
}

func TestProjectAnnualErrors(t *testing.T) {
	c := redundancyestimator.DefaultConstants()

	_, err := report.ProjectAnnual(model.EstimateErasureCoding(c, 1), model.EstimateReplication(c, 1))
	assert.ErrorIs(t, err, report.ErrStrategyMismatch)

	_, err = report.ProjectAnnual(model.EstimateReplication(c, 10), model.EstimateErasureCoding(c, 10))
	assert.ErrorIs(t, err, report.ErrSizeMismatch)

	free, err := c.WithOverrides(map[string]string{"storage_cost_per_tb_month": "0"})
	require.NoError(t, err)
	_, err = report.ProjectAnnual(model.EstimateReplication(free, 1), model.EstimateErasureCoding(free, 1))
	assert.ErrorIs(t, err, report.ErrDegenerate)
}
