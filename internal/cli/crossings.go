package cli

import (
	"github.com/spf13/cobra"

	"github.com/astro/zodigo/internal/search"
)

// NewCrossingsCommand enumerates all crossings of a target longitude in a range.
func NewCrossingsCommand(opts *Options) *cobra.Command {
	var (
		object     string
		target     float64
		fromStr    string
		toStr      string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "crossings",
		Short: "Enumerate all crossings of a target longitude in a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTime(fromStr)
			if err != nil {
				return err
			}
			to, err := parseTime(toStr)
			if err != nil {
				return err
			}

			crossings, err := newSearcher(opts).FindAllCrossings(search.RangeQuery{
				Object:     object,
				Target:     target,
				RangeStart: from,
				RangeEnd:   to,
				MaxResults: maxResults,
			})
			if err != nil {
				return err
			}
			return printCrossings(cmd.OutOrStdout(), opts.Format, crossings)
		},
	}

	cmd.Flags().StringVar(&object, "object", "", "object name (sun, moon, mercury, ...)")
	cmd.Flags().Float64Var(&target, "target", 0, "target longitude in degrees")
	cmd.Flags().StringVar(&fromStr, "from", "", "range start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "result cap (0 = config default)")
	cmd.MarkFlagRequired("object")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
