package redundancyestimator

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// MetricPrefix is prepended to every exported metric name.
const MetricPrefix = "redundancy_"

// Metric olds the name and value of an estimate in addition to its labels.
type Metric struct {
	Name   string
	Labels map[string]string
	Value  float64
}

// Clone return a deep copy of a metric.
func (m Metric) Clone() Metric {
	copiedLabel := make(map[string]string, len(m.Labels))
	maps.Copy(copiedLabel, m.Labels)
	return Metric{
		Name:   m.Name,
		Value:  m.Value,
		Labels: copiedLabel,
	}
}

// AddLabel sets a label. Empty values are dropped.
func (m *Metric) AddLabel(key, value string) *Metric {
	m.Labels = MergeLabels(
		m.Labels,
		map[string]string{
			key: value,
		},
	)
	return m
}

func (m *Metric) SanitizeLabels() *Metric {
	newLabels := make(map[string]string)
	invalidChars := []string{".", "/", "-", ":", ";", " "}
	for label, value := range m.Labels {
		for _, char := range invalidChars {
			label = strings.ReplaceAll(label, char, "_")
		}
		newLabels[label] = value
	}
	m.Labels = newLabels
	return m
}

// MergeLabels merges label sets left to right, dropping empty values.
func MergeLabels(labels ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, l := range labels {
		for k, v := range l {
			if v == "" {
				continue
			}
			result[k] = v
		}
	}
	return result
}

// RecordMetrics converts every numeric field of the record into a metric
// labelled with the strategy and the dataset size. Metrics are sorted by name.
func RecordMetrics(r Record) ([]Metric, error) {
	fields, err := r.Fields()
	if err != nil {
		return nil, err
	}

	base := new(Metric).
		AddLabel("strategy", r.Strategy.Slug()).
		AddLabel("dataset_gb", strconv.Itoa(r.DatasetGB))

	metrics := make([]Metric, 0, len(fields))
	for _, name := range slices.Sorted(maps.Keys(fields)) {
		value, ok := numericValue(fields[name])
		if !ok {
			continue
		}
		metric := base.Clone()
		metric.Name = MetricPrefix + name
		metric.Value = value
		metrics = append(metrics, metric)
	}

	return metrics, nil
}

func numericValue(v any) (float64, bool) {
	switch value := v.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case Milliseconds:
		return float64(value), true
	case Seconds:
		return float64(value), true
	case Percent:
		return float64(value), true
	case Gigabytes:
		return float64(value), true
	case Dollars:
		return float64(value), true
	}
	return 0, false
}

// WriteMetrics writes the records in the OpenMetrics text format, one line
// per metric.
func WriteMetrics(w io.Writer, records ...Record) error {
	for _, record := range records {
		metrics, err := RecordMetrics(record)
		if err != nil {
			return err
		}
		for _, metric := range metrics {
			if err := writeMetric(w, &metric); err != nil {
				return fmt.Errorf("failed to write metric on writer: %w", err)
			}
		}
		slog.Debug("record metrics written", "strategy", record.Strategy.Slug(), "dataset_gb", record.DatasetGB, "count", len(metrics))
	}
	return nil
}

func writeMetric(w io.Writer, metric *Metric) error {
	metric = metric.SanitizeLabels()

	// sort labels in lexicographical order
	labels := make([]string, 0, len(metric.Labels))
	for labelName, labelValue := range metric.Labels {
		labels = append(labels, fmt.Sprintf(`%s="%s"`, labelName, labelValue))
	}
	slices.SortFunc(labels, strings.Compare)

	_, err := fmt.Fprintf(w, "%s{%s} %0.10f\n", metric.Name, strings.Join(labels, ","), metric.Value)
	if err != nil {
		return fmt.Errorf("writing metric %s failed: %w", metric.Name, err)
	}

	return nil
}
