// Package cli provides the qqt command-line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/sartorproj/qqt/dataset"
	"github.com/sartorproj/qqt/internal/config"
	"github.com/sartorproj/qqt/remote"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

// app carries the state shared by all subcommands once config is loaded.
type app struct {
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
	client  *http.Client
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	a := &app{client: &http.Client{}}

	rootCmd := &cobra.Command{
		Use:   "qqt",
		Short: "Load delimited text into a dataset and describe its columns",
		Long: `qqt reads CSV-like text from files or HTTP URLs into an in-memory dataset
and reports per-column statistics.

Settings are read from qqt.yaml, QQT_* environment variables and flags,
later sources taking precedence.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			return a.configure(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "Config file (default: ./qqt.yaml)")
	pf.Int("skip-lines", 0, "Lines to discard before parsing")
	pf.String("quote", `"`, "Quote character")
	pf.String("delimiter", ",", `Field delimiter (use \t for tab)`)
	pf.String("terminator", "crlf", `Record terminator: "crlf" or a single character`)
	pf.Bool("headers", true, "First record holds column labels")
	pf.Bool("trim", false, "Trim whitespace around every cell")
	pf.StringP("format", "f", "table", "Output format: table, json or yaml")
	pf.Duration("timeout", 30*time.Second, "Timeout for loading each source")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")

	rootCmd.AddCommand(newDescribeCmd(a))
	rootCmd.AddCommand(newHeadCmd(a))

	return rootCmd
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}
	return nil
}

func (a *app) configure(cmd *cobra.Command) error {
	cfg, used, err := config.Load(a.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	if used != "" {
		a.logger.Debug("using config file", "path", used)
	}
	return nil
}

// load fetches and converts one source under the configured timeout.
func (a *app) load(ctx context.Context, source string) (*dataset.Dataset, error) {
	opts, err := a.cfg.CSVOptions()
	if err != nil {
		return nil, err
	}

	if a.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.Timeout)
		defer cancel()
	}

	l := &remote.Loader{
		Fetcher: remote.FetcherFor(source, a.client),
		Options: opts,
		Logger:  a.logger.With("source", source),
	}
	ds, err := l.Load(ctx, source)
	if err != nil {
		return nil, err
	}
	if a.cfg.Trim {
		ds = ds.Trimmed()
	}
	return ds, nil
}
