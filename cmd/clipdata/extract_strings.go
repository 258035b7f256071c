package main

import (
	"fmt"

	"github.com/loopcontext/clipdata"
	"github.com/loopcontext/clipdata/internal/metrics"
	"github.com/loopcontext/clipdata/internal/osfs"
	"github.com/spf13/cobra"
)

func (a *app) extractStringsCmd() *cobra.Command {
	var metricsFile string
	cmd := &cobra.Command{
		Use:   "extract-strings <output.pot> <input_dir>",
		Short: "Generate a POT template from the extension's JSON data files",
		Long: `extract-strings scans the top level of <input_dir> for JSON data files, collects the
values of translatable keys (name, description, keywords by default) and writes them to
<output.pot>. Files in the skip list are ignored.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExtractStrings(cmd, args[0], args[1], metricsFile)
		},
	}
	cmd.Flags().StringVar(&metricsFile, "metrics-file", "", "Write run counters to this file in prometheus text format.")
	return cmd
}

func (a *app) runExtractStrings(cmd *cobra.Command, outPath string, inputDir string, metricsFile string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	observer := metrics.NewObserver()
	pipeline := clipdata.NewTemplatePipeline(clipdata.TemplatePipelineOptions{
		Config:   cfg,
		FS:       osfs.New(),
		Logger:   a.logger,
		Observer: observer,
	})
	report, err := pipeline.Run(cmd.Context(), outPath, inputDir)
	a.writeMetrics(observer, metricsFile)
	if err != nil {
		return err
	}
	if report.NothingToDo {
		fmt.Fprintln(a.stdout, "No JSON files found to process.")
		return nil
	}
	fmt.Fprintf(a.stdout, "Generated %s with %d unique strings.\n", report.OutputPath, report.Strings)
	if len(report.Failed) > 0 {
		fmt.Fprintf(a.stdout, "%d file(s) could not be processed.\n", len(report.Failed))
	}
	return nil
}
