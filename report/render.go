package report

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	redundancyestimator "github.com/superdango/redundancy-estimator"
)

const ruleWidth = 80

var rule = strings.Repeat("=", ruleWidth)

// printer remembers the first write error so renderers can print line
// after line and check once.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) banner(title string) {
	p.printf("%s\n%s\n%s\n", rule, title, rule)
}

// FormatDollars rounds to whole dollars and groups thousands: 1234567.8 is
// rendered as "1,234,568".
func FormatDollars(d redundancyestimator.Dollars) string {
	return humanize.Comma(int64(math.RoundToEven(float64(d))))
}

// RenderRecord writes the metric dump of a single record. It is the only
// place deciding how a record looks on screen.
func RenderRecord(w io.Writer, r redundancyestimator.Record) error {
	p := &printer{w: w}
	p.printf("%s:\n", r.Strategy)
	p.printf("  Storage Overhead: %.1fx\n", r.StorageOverhead)
	p.printf("  Write Latency: %.1fms\n", float64(r.WriteLatency))
	p.printf("  Read Latency: %.1fms\n", float64(r.ReadLatency))
	p.printf("  Encode CPU: %.1f%%\n", float64(r.EncodeCPU))
	p.printf("  Decode CPU: %.1f%%\n", float64(r.DecodeCPU))
	p.printf("  Network I/O: %.2fGB\n", float64(r.NetworkIO))
	p.printf("  Rebuild Time: %.2fs\n", float64(r.RebuildTime))
	p.printf("  Monthly Cost: $%s\n", FormatDollars(r.MonthlyCost))
	p.printf("  Failure Tolerance: %d disk(s)\n", r.FailureTolerance)
	return p.err
}

// RenderComparison writes both record dumps followed by the six comparison
// sections: storage, write, read, cpu, network and rebuild.
func RenderComparison(w io.Writer, c Comparison) error {
	p := &printer{w: w}

	p.printf("\n")
	p.banner(fmt.Sprintf("Performance Comparison: %dGB Dataset", c.DatasetGB))
	p.printf("\n")
	if p.err != nil {
		return p.err
	}

	for _, record := range []redundancyestimator.Record{c.Replication, c.ErasureCoding} {
		if err := RenderRecord(w, record); err != nil {
			return err
		}
		p.printf("\n")
	}

	p.banner("COMPARISON (EC vs Replication):")
	p.printf("\n")

	p.printf("Storage Efficiency:\n")
	p.printf("  EC uses %.1fx LESS storage\n", c.StorageRatio)
	p.printf("  Savings: $%s/month, $%s/year\n\n", FormatDollars(c.MonthlySavings), FormatDollars(c.AnnualSavings))

	p.printf("Write Performance:\n")
	p.printf("  Latency ratio (Replication / EC): %.1fx\n", c.WriteRatio)
	p.printf("  Latency difference (EC - Replication): %.1fms\n\n", float64(c.WriteDelta))

	p.printf("Read Performance:\n")
	p.printf("  Latency ratio (Replication / EC): %.1fx\n", c.ReadRatio)
	p.printf("  Latency difference (EC - Replication): %.1fms\n\n", float64(c.ReadDelta))

	p.printf("CPU Overhead:\n")
	p.printf("  EC uses %.1fx MORE CPU for encoding\n", c.EncodeCPURatio)
	p.printf("  EC uses %.1fx MORE CPU for decoding\n\n", c.DecodeCPURatio)

	p.printf("Network I/O (Write):\n")
	p.printf("  EC uses %.1fx LESS network bandwidth\n", c.NetworkRatio)
	p.printf("  Savings: %.2fGB network I/O\n\n", float64(c.NetworkSavings))

	p.printf("Disk Failure Recovery:\n")
	p.printf("  Rebuild ratio (Replication / EC): %.1fx\n", c.RebuildRatio)
	p.printf("  Time difference (Replication - EC): %.2fs\n\n", float64(c.RebuildDelta))

	p.printf("%s\n", rule)

	return p.err
}
