// Package cli implements the zodigo command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/astro/zodigo/internal/ephemeris"
	"github.com/astro/zodigo/internal/search"
)

// Options holds global flags and state shared by all commands.
type Options struct {
	ConfigPath string
	Format     string // "text" | "json"
	Verbose    bool

	logger *slog.Logger
	config search.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the zodigo CLI.
func NewRootCommand() *cobra.Command {
	opts := &Options{}

	cmd := &cobra.Command{
		Use:           "zodigo",
		Short:         "zodigo - planetary crossing and station finder",
		Long:          "Locates the exact moments a body's ecliptic longitude crosses a target value, and the stations where its motion reverses.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			level := slog.LevelInfo
			if opts.Verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level: level,
			}))

			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			applyEnv(&cfg, opts.logger)
			opts.config = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to YAML config file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewCrossingCommand(opts))
	cmd.AddCommand(NewCrossingsCommand(opts))
	cmd.AddCommand(NewStationsCommand(opts))
	cmd.AddCommand(NewIngressesCommand(opts))
	cmd.AddCommand(NewScanCommand(opts))

	return cmd
}

// newSearcher wires the built-in catalog and Keplerian oracle into a Searcher.
func newSearcher(opts *Options) *search.Searcher {
	return search.NewSearcher(ephemeris.NewKeplerian(), ephemeris.NewCatalog(), opts.config, opts.logger)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// parseTime accepts RFC3339 timestamps or bare dates (interpreted at 00:00 UTC).
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid time %q: want RFC3339 or YYYY-MM-DD", s)
}
