package main

import (
	"fmt"

	"github.com/loopcontext/clipdata"
	"github.com/loopcontext/clipdata/internal/httpfetch"
	"github.com/loopcontext/clipdata/internal/metrics"
	"github.com/loopcontext/clipdata/internal/osfs"
	"github.com/spf13/cobra"
)

// countriesConfig holds flags for the countries command.
type countriesConfig struct {
	root        string
	apiURL      string
	metricsFile string
}

func (a *app) countriesCmd() *cobra.Command {
	var cfg countriesConfig
	cmd := &cobra.Command{
		Use:   "countries",
		Short: "Regenerate countries.json, flag SVGs and the GResource manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCountries(cmd, cfg)
		},
	}
	cmd.Flags().StringVar(&cfg.root, "root", "", "Extension root directory (overrides config).")
	cmd.Flags().StringVar(&cfg.apiURL, "api-url", "", "Country API URL (overrides config).")
	cmd.Flags().StringVar(&cfg.metricsFile, "metrics-file", "", "Write run counters to this file in prometheus text format.")
	return cmd
}

func (a *app) runCountries(cmd *cobra.Command, flags countriesConfig) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	if flags.root != "" {
		cfg.Countries.ExtensionRoot = flags.root
	}
	if flags.apiURL != "" {
		cfg.Countries.APIURL = flags.apiURL
	}

	observer := metrics.NewObserver()
	pipeline := clipdata.NewCountryPipeline(clipdata.CountryPipelineOptions{
		Config: cfg,
		Fetcher: httpfetch.New(httpfetch.Options{
			UserAgent:  cfg.Countries.UserAgent,
			Retries:    cfg.Countries.FetchRetries,
			RetryDelay: cfg.Countries.FetchDelay,
			Timeout:    cfg.Countries.FetchTimeout,
			Logger:     a.logger,
		}),
		FS:       osfs.New(),
		Logger:   a.logger,
		Observer: observer,
	})

	report, err := pipeline.Run(cmd.Context())
	a.writeMetrics(observer, flags.metricsFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Wrote %d countries to %s (%d dropped, %d flags).\n",
		report.Records, report.JSONPath, report.Dropped, len(report.Materialized))
	if !report.ManifestSynced {
		fmt.Fprintf(a.stdout, "Manifest not updated: %v\n", report.ManifestErr)
	}
	return nil
}
