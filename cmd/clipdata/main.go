package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/loopcontext/clipdata"
	"github.com/loopcontext/clipdata/internal/metrics"
	"github.com/loopcontext/clipdata/internal/osfs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// app carries state shared by all subcommands.
type app struct {
	stdout     io.Writer
	stderr     io.Writer
	logLevel   string
	configPath string
	logger     *zap.Logger
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "clipdata: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "clipdata",
		Short: "Build-time data tooling for the All-in-One Clipboard extension",
		Long: `clipdata regenerates the extension's bundled data.

  countries        fetch country data and flags, write countries.json, sync the GResource manifest
  extract-strings  collect translatable strings from JSON data files into a POT template`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(a.stderr, a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logger.With(zap.String("run_id", uuid.NewString()))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level (debug, info, warn, error).")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Optional YAML config file.")
	root.AddCommand(a.countriesCmd(), a.extractStringsCmd())
	return root
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), lvl)), nil
}

// loadConfig reads --config when set. Defaults are applied either way.
func (a *app) loadConfig() (clipdata.Config, error) {
	if a.configPath == "" {
		return clipdata.Config{}.WithDefaults(), nil
	}
	return clipdata.LoadConfig(osfs.New(), a.configPath)
}

// writeMetrics exports the run's counters when --metrics-file is set. Failures are logged only.
func (a *app) writeMetrics(observer *metrics.Observer, path string) {
	if path == "" {
		return
	}
	if err := observer.WriteTextfile(path); err != nil {
		a.logger.Error("failed to write metrics", zap.String("path", path), zap.Error(err))
	}
}
