package report

import (
	"encoding/json"
	"fmt"
	"io"

	redundancyestimator "github.com/superdango/redundancy-estimator"
)

// Document is everything a scenario produces, ready to be rendered in any
// output format.
type Document struct {
	Constants       redundancyestimator.Constants `json:"constants"`
	Comparisons     []Comparison                  `json:"comparisons"`
	Projection      AnnualProjection              `json:"annual_projection"`
	Recommendations []Tier                        `json:"recommendations"`
	Scaling         *ScalingSummary               `json:"scaling,omitempty"`
}

// RenderText writes the human readable report: one comparison per dataset
// size, the annual projection, then the workload tiers.
func RenderText(w io.Writer, doc Document) error {
	p := &printer{w: w}
	p.printf("\n")
	p.banner("DYNAMICFS PERFORMANCE COMPARISON: Replication vs Erasure Coding")
	if p.err != nil {
		return p.err
	}

	for _, comparison := range doc.Comparisons {
		if err := RenderComparison(w, comparison); err != nil {
			return fmt.Errorf("failed to render %dGB comparison: %w", comparison.DatasetGB, err)
		}
	}

	if err := RenderProjection(w, doc.Projection); err != nil {
		return fmt.Errorf("failed to render annual projection: %w", err)
	}

	if err := RenderRecommendations(w, doc.Recommendations); err != nil {
		return fmt.Errorf("failed to render recommendations: %w", err)
	}

	if doc.Scaling != nil {
		if err := RenderScaling(w, *doc.Scaling); err != nil {
			return fmt.Errorf("failed to render scaling summary: %w", err)
		}
	}

	return nil
}

func RenderJSON(w io.Writer, doc Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode json document: %w", err)
	}
	return nil
}

// RenderOpenMetrics writes every record of the document, replication first
// for each dataset size.
func RenderOpenMetrics(w io.Writer, doc Document) error {
	for _, comparison := range doc.Comparisons {
		if err := redundancyestimator.WriteMetrics(w, comparison.Replication, comparison.ErasureCoding); err != nil {
			return err
		}
	}
	return nil
}
