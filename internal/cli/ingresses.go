package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/astro/zodigo/internal/search"
)

// signNames are the zodiac signs in cusp order; sign k begins at k*30°.
var signNames = [12]string{
	"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
	"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
}

// Ingress is a crossing annotated with the sign being entered.
type Ingress struct {
	search.Crossing
	Sign string
}

// NewIngressesCommand enumerates sign ingresses: crossings of the twelve
// 30-degree cusps.
func NewIngressesCommand(opts *Options) *cobra.Command {
	var (
		object  string
		fromStr string
		toStr   string
	)

	cmd := &cobra.Command{
		Use:   "ingresses",
		Short: "Enumerate an object's sign ingresses in a time range",
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseTime(fromStr)
			if err != nil {
				return err
			}
			to, err := parseTime(toStr)
			if err != nil {
				return err
			}

			s := newSearcher(opts)
			var ingresses []Ingress
			for sign := 0; sign < 12; sign++ {
				crossings, err := s.FindAllCrossings(search.RangeQuery{
					Object:     object,
					Target:     float64(sign) * 30,
					RangeStart: from,
					RangeEnd:   to,
				})
				if err != nil {
					return err
				}
				for _, c := range crossings {
					// Crossing a cusp while retrograde backs into the
					// previous sign, not the cusp's own.
					entered := signNames[sign]
					if c.Retrograde {
						entered = signNames[(sign+11)%12]
					}
					ingresses = append(ingresses, Ingress{Crossing: c, Sign: entered})
				}
			}
			sort.Slice(ingresses, func(i, j int) bool {
				return ingresses[i].Time.Before(ingresses[j].Time)
			})

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), ingresses)
			}
			if len(ingresses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no ingresses found")
				return nil
			}
			for _, in := range ingresses {
				motion := "enters"
				if in.Retrograde {
					motion = "re-enters (retrograde)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s %s\n",
					in.Time.Format(time.RFC3339), in.Object, motion, in.Sign)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&object, "object", "", "object name (sun, moon, mercury, ...)")
	cmd.Flags().StringVar(&fromStr, "from", "", "range start (RFC3339 or YYYY-MM-DD)")
	cmd.Flags().StringVar(&toStr, "to", "", "range end (RFC3339 or YYYY-MM-DD)")
	cmd.MarkFlagRequired("object")
	cmd.MarkFlagRequired("from")
	cmd.MarkFlagRequired("to")

	return cmd
}
