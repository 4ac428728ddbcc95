package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	redundancyestimator "github.com/superdango/redundancy-estimator"
	"github.com/superdango/redundancy-estimator/internal/scenario"
	"github.com/superdango/redundancy-estimator/report"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

func main() {
	ctx := context.Background()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])

		flag.PrintDefaults()

		fmt.Fprint(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  %s_DISK_BANDWIDTH_MBPS\n", redundancyestimator.EnvPrefix)
		fmt.Fprint(os.Stderr, "        sequential bandwidth of one disk (default 100)\n")
		fmt.Fprintf(os.Stderr, "  %s_NETWORK_BANDWIDTH_MBPS\n", redundancyestimator.EnvPrefix)
		fmt.Fprint(os.Stderr, "        datacenter network bandwidth (default 5000)\n")
		fmt.Fprintf(os.Stderr, "  %s_DECODE_RATE_MBPS\n", redundancyestimator.EnvPrefix)
		fmt.Fprint(os.Stderr, "        reed-solomon encode and decode throughput (default 50)\n")
		fmt.Fprintf(os.Stderr, "  %s_DISK_ANNUAL_FAILURE_RATE\n", redundancyestimator.EnvPrefix)
		fmt.Fprint(os.Stderr, "        disk annual failure rate (default 0.01)\n")
		fmt.Fprintf(os.Stderr, "  %s_STORAGE_COST_PER_TB_MONTH\n", redundancyestimator.EnvPrefix)
		fmt.Fprint(os.Stderr, "        storage cost in dollars per TB and month (default 10)\n")
	}

	flagLogLevel := ""
	flagLogFormat := ""
	flagOutputFormat := ""
	flagReportScaling := false
	flagTier := ""
	overrides := make(map[string]string)

	flag.StringVar(&flagLogLevel, "log.level", "info", "log severity (debug, info, warn, error)")
	flag.StringVar(&flagLogFormat, "log.format", "text", "log format (text, json)")
	flag.StringVar(&flagOutputFormat, "output.format", scenario.FormatText, "report format (text, json, openmetrics)")
	flag.BoolVar(&flagReportScaling, "report.scaling", false, "append per GB scaling slopes to the report")
	flag.StringVar(&flagTier, "tier", "", "only print the recommendation of this workload tier (hot, warm, cold)")
	flag.Func("set", "override a constant, key=value (repeatable, e.g. decode_rate_mbps=200)", func(s string) error {
		return parseOverride(overrides, s)
	})

	flag.Parse()

	initLogging(flagLogLevel, flagLogFormat)

	if flagTier != "" {
		tier, err := report.LookupTier(flagTier)
		if err != nil {
			slog.Error("failed to find workload tier", "tier", flagTier, "err", err)
			os.Exit(1)
		}
		if err := report.RenderTier(os.Stdout, tier); err != nil {
			slog.Error("failed to print workload tier", "err", err)
			os.Exit(1)
		}
		return
	}

	constants, err := redundancyestimator.LoadConstants()
	if err != nil {
		slog.Error("failed to load constants", "err", err)
		os.Exit(1)
	}

	if len(overrides) > 0 {
		constants, err = constants.WithOverrides(overrides)
		if err != nil {
			slog.Error("failed to apply constant overrides", "err", err)
			os.Exit(1)
		}
	}

	slog.Debug("constants loaded",
		"disk_bandwidth_mbps", constants.DiskBandwidthMBps,
		"network_bandwidth_mbps", constants.NetworkBandwidthMBps,
		"decode_rate_mbps", constants.DecodeRateMBps,
		"disk_annual_failure_rate", constants.DiskAnnualFailureRate,
		"storage_cost_per_tb_month", constants.StorageCostPerTBMonth,
	)

	s, err := scenario.New(
		scenario.WithConstants(constants),
		scenario.WithFormat(flagOutputFormat),
		scenario.WithScalingSummary(flagReportScaling),
	)
	if err != nil {
		slog.Error("failed to setup scenario", "err", err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := s.Run(ctx, os.Stdout); err != nil {
		slog.Error("failed to run scenario", "err", err)
		os.Exit(1)
	}
}

// parseOverride adds one key=value constant override to overrides.
func parseOverride(overrides map[string]string, s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	overrides[key] = strings.TrimSpace(value)
	return nil
}

// initLogging writes logs to stderr so they never mix with the report.
func initLogging(logLevel string, logFormat string) {
	switch logFormat {
	case "json":
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level: slogLevel(logLevel),
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				switch a.Key {
				case slog.LevelKey:
					a.Key = "severity"
					return a
				case slog.MessageKey:
					a.Key = "message"
					return a
				default:
					return a
				}
			},
		})))
	default:
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:   slogLevel(logLevel),
			NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
		})))
	}
}

func slogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	return slog.LevelInfo
}
