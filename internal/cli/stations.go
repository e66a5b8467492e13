package cli

import (
	"github.com/spf13/cobra"

	"github.com/astro/zodigo/internal/search"
)

// NewStationsCommand enumerates an object's stations in a time range.
func NewStationsCommand(opts *Options) *cobra.Command {
	var (
		object     string
		fromStr    string
		toStr      string
		maxResults int
	)

	cmd := &cobra.Command{
		Use:   "stations",
		Short: "Enumerate an object's stations (motion reversals) in a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTime(fromStr)
			if err != nil {
				return err
			}
			to, err := parseTime(toStr)
			if err != nil {
				return err
			}

			stations, err := newSearcher(opts).FindAllStations(search.StationRangeQuery{
				Object:     object,
				RangeStart: from,
				RangeEnd:   to,
				MaxResults: maxResults,
			})
			if err != nil {
				return err
			}
			return printStations(cmd.OutOrStdout(), opts.Format, stations)
		},
	}

	cmd.Flags().StringVar(&object, "object", "", "object name (mercury, venus, ...)")
	cmd.Flags().StringVar(&fromStr, "from", "", "range start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "result cap (0 = config default)")
	cmd.MarkFlagRequired("object")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
