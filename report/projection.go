package report

import (
	"fmt"
	"io"

	redundancyestimator "github.com/superdango/redundancy-estimator"
)

// projectionScale turns the monthly cost of one gigabyte into the cost of
// the projected dataset. The model counts 1000 units for a petabyte.
const projectionScale = 1000

// AnnualProjection is the yearly cost of a petabyte scale dataset under
// both strategies.
type AnnualProjection struct {
	Replication    redundancyestimator.Dollars `json:"replication_annual_dollars"`
	ErasureCoding  redundancyestimator.Dollars `json:"erasure_coding_annual_dollars"`
	Savings        redundancyestimator.Dollars `json:"annual_savings_dollars"`
	SavingsPercent float64                     `json:"savings_percent"`
}

// ProjectAnnual scales the monthly costs of the 1GB records by 1000 and
// 12 months.
func ProjectAnnual(replication, erasureCoding redundancyestimator.Record) (AnnualProjection, error) {
	if replication.Strategy != redundancyestimator.Replication || erasureCoding.Strategy != redundancyestimator.ErasureCoding {
		return AnnualProjection{}, fmt.Errorf("%w: got %s and %s", ErrStrategyMismatch, replication.Strategy, erasureCoding.Strategy)
	}
	if replication.DatasetGB != 1 || erasureCoding.DatasetGB != 1 {
		return AnnualProjection{}, fmt.Errorf("%w: projection is based on 1GB records, got %dGB and %dGB", ErrSizeMismatch, replication.DatasetGB, erasureCoding.DatasetGB)
	}

	replicationAnnual := (replication.MonthlyCost * projectionScale).Annual()
	erasureCodingAnnual := (erasureCoding.MonthlyCost * projectionScale).Annual()
	if replicationAnnual == 0 {
		return AnnualProjection{}, fmt.Errorf("%w: replication annual cost", ErrDegenerate)
	}

	savings := replicationAnnual - erasureCodingAnnual

	return AnnualProjection{
		Replication:    replicationAnnual,
		ErasureCoding:  erasureCodingAnnual,
		Savings:        savings,
		SavingsPercent: float64(savings/replicationAnnual) * 100,
	}, nil
}

func RenderProjection(w io.Writer, projection AnnualProjection) error {
	p := &printer{w: w}
	p.printf("\nANNUAL COST ANALYSIS (1PB = 1000 TB Dataset):\n")
	p.printf("%s\n", rule)
	p.printf("Replication (3x):     $%15s/year\n", FormatDollars(projection.Replication))
	p.printf("Erasure Coding (4+2): $%15s/year\n", FormatDollars(projection.ErasureCoding))
	p.printf("Annual Savings:       $%15s/year\n", FormatDollars(projection.Savings))
	p.printf("Savings %%:            %15.1f%%\n", projection.SavingsPercent)
	p.printf("\n")
	return p.err
}
