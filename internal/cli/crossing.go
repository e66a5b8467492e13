package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/astro/zodigo/internal/search"
)

// NewCrossingCommand finds the next single crossing of a target longitude.
func NewCrossingCommand(opts *Options) *cobra.Command {
	var (
		object   string
		target   float64
		startStr string
		backward bool
		maxDays  float64
	)

	cmd := &cobra.Command{
		Use:   "crossing",
		Short: "Find the next crossing of a target longitude",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().UTC()
			if startStr != "" {
				t, err := parseTime(startStr)
				if err != nil {
					return err
				}
				start = t
			}

			dir := search.Forward
			if backward {
				dir = search.Backward
			}

			c, err := newSearcher(opts).FindCrossing(search.CrossingQuery{
				Object:    object,
				Target:    target,
				Start:     start,
				Direction: dir,
				MaxDays:   maxDays,
			})
			if err != nil {
				return err
			}
			if c == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "no crossing of %.4f° by %s within %.0f days\n", target, object, maxDays)
				return nil
			}
			return printCrossings(cmd.OutOrStdout(), opts.Format, []search.Crossing{*c})
		},
	}

	cmd.Flags().StringVar(&object, "object", "", "object name (sun, moon, mercury, ...)")
	cmd.Flags().Float64Var(&target, "target", 0, "target longitude in degrees")
	cmd.Flags().StringVar(&startStr, "start", "", "search start (RFC3339 or YYYY-MM-DD, default now)")
	cmd.Flags().BoolVar(&backward, "backward", false, "search backward in time")
	cmd.Flags().Float64Var(&maxDays, "max-days", 366, "search horizon in days")
	cmd.MarkFlagRequired("object")

	return cmd
}
