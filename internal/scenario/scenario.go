package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/model"
	"github.com/superdango/redundancy-estimator/report"
	"golang.org/x/sync/errgroup"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrNoSizes       = errors.New("no dataset size to evaluate")
)

const (
	FormatText        = "text"
	FormatJSON        = "json"
	FormatOpenMetrics = "openmetrics"
)

// Formats lists the accepted output formats.
var Formats = []string{FormatText, FormatJSON, FormatOpenMetrics}

// DefaultSizes are the dataset sizes, in GB, compared when none is set.
var DefaultSizes = []int{1, 10, 100, 1000}

const defaultConcurrency = 4

type Option func(s *Scenario)

func WithConstants(c redundancyestimator.Constants) Option {
	return func(s *Scenario) {
		s.constants = c
	}
}

func WithSizes(sizes ...int) Option {
	return func(s *Scenario) {
		s.sizes = slices.Clone(sizes)
	}
}

func WithFormat(format string) Option {
	return func(s *Scenario) {
		s.format = format
	}
}

func WithScalingSummary(enabled bool) Option {
	return func(s *Scenario) {
		s.scaling = enabled
	}
}

func WithConcurrency(limit int) Option {
	return func(s *Scenario) {
		s.concurrency = limit
	}
}

// Scenario compares both strategies over a list of dataset sizes and
// renders the full report.
type Scenario struct {
	constants   redundancyestimator.Constants
	sizes       []int
	format      string
	scaling     bool
	concurrency int

	replication   redundancyestimator.Estimator
	erasureCoding redundancyestimator.Estimator
}

func New(opts ...Option) (*Scenario, error) {
	s := &Scenario{
		constants:   redundancyestimator.DefaultConstants(),
		sizes:       slices.Clone(DefaultSizes),
		format:      FormatText,
		concurrency: defaultConcurrency,
	}

	for _, option := range opts {
		option(s)
	}

	if err := s.constants.Validate(); err != nil {
		return nil, err
	}

	if len(s.sizes) == 0 {
		return nil, ErrNoSizes
	}

	for _, size := range s.sizes {
		// ratios are undefined for an empty dataset
		if size < 1 {
			return nil, fmt.Errorf("dataset size must be positive, got %dGB", size)
		}
	}

	if !slices.Contains(Formats, s.format) {
		return nil, fmt.Errorf("%w: %q (supported: %v)", ErrUnknownFormat, s.format, Formats)
	}

	if s.concurrency < 1 {
		s.concurrency = 1
	}

	s.replication = model.NewReplication(s.constants)
	s.erasureCoding = model.NewErasureCoding(s.constants)

	return s, nil
}

// Run evaluates every size and writes the report to w. Sizes are evaluated
// concurrently but always rendered in list order. Nothing is written if the
// context is cancelled before rendering.
func (s *Scenario) Run(ctx context.Context, w io.Writer) error {
	doc, err := s.Document(ctx)
	if err != nil {
		return err
	}

	switch s.format {
	case FormatJSON:
		return report.RenderJSON(w, doc)
	case FormatOpenMetrics:
		return report.RenderOpenMetrics(w, doc)
	default:
		return report.RenderText(w, doc)
	}
}

// Document evaluates the scenario without rendering it.
func (s *Scenario) Document(ctx context.Context) (report.Document, error) {
	comparisons := make([]report.Comparison, len(s.sizes))

	errg, errgctx := errgroup.WithContext(ctx)
	errg.SetLimit(s.concurrency)
	for i, size := range s.sizes {
		errg.Go(func() error {
			if err := errgctx.Err(); err != nil {
				return err
			}

			comparison, err := report.CompareSize(s.replication, s.erasureCoding, size)
			if err != nil {
				return fmt.Errorf("failed to compare strategies at %dGB: %w", size, err)
			}

			slog.Debug("dataset size evaluated", "dataset_gb", size)
			comparisons[i] = comparison
			return nil
		})
	}

	if err := errg.Wait(); err != nil {
		return report.Document{}, err
	}

	if err := ctx.Err(); err != nil {
		return report.Document{}, err
	}

	projection, err := report.ProjectAnnual(s.replication.Estimate(1), s.erasureCoding.Estimate(1))
	if err != nil {
		return report.Document{}, fmt.Errorf("failed to project annual cost: %w", err)
	}

	doc := report.Document{
		Constants:       s.constants,
		Comparisons:     comparisons,
		Projection:      projection,
		Recommendations: report.Recommendations(),
	}

	if s.scaling {
		summary, err := report.Scaling(comparisons)
		if err != nil {
			return report.Document{}, fmt.Errorf("failed to compute scaling summary: %w", err)
		}
		doc.Scaling = &summary
	}

	return doc, nil
}
