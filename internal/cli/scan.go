package cli

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/astro/zodigo/internal/ephemeris"
	"github.com/astro/zodigo/internal/search"
)

// scanResult is one object's outcome in a scan.
type scanResult struct {
	Object   string
	Crossing *search.Crossing
	Err      error
}

// NewScanCommand finds the next crossing of one target for every catalog
// object. Each object is processed in its own goroutine, bounded by a
// semaphore, with a fresh oracle per goroutine so non-reentrant back-ends
// stay safe.
func NewScanCommand(opts *Options) *cobra.Command {
	var (
		target   float64
		startStr string
		maxDays  float64
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Find the next crossing of a target longitude for every object",
		RunE: func(cmd *cobra.Command, args []string) error {
			start := time.Now().UTC()
			if startStr != "" {
				t, err := parseTime(startStr)
				if err != nil {
					return err
				}
				start = t
			}

			catalog := ephemeris.NewCatalog()
			ids := catalog.IDs()
			results := make([]scanResult, len(ids))

			sem := make(chan struct{}, runtime.NumCPU())
			var wg sync.WaitGroup
			for i, id := range ids {
				wg.Add(1)
				go func(idx int, name string) {
					defer wg.Done()
					sem <- struct{}{}
					defer func() { <-sem }()

					s := search.NewSearcher(ephemeris.NewKeplerian(), catalog, opts.config, opts.logger)
					c, err := s.FindCrossing(search.CrossingQuery{
						Object:  name,
						Target:  target,
						Start:   start,
						MaxDays: maxDays,
					})
					results[idx] = scanResult{Object: name, Crossing: c, Err: err}
				}(i, catalog.Name(id))
			}
			wg.Wait()

			sort.SliceStable(results, func(i, j int) bool {
				ci, cj := results[i].Crossing, results[j].Crossing
				if ci == nil || cj == nil {
					return cj == nil && ci != nil
				}
				return ci.Time.Before(cj.Time)
			})

			if opts.Format == "json" {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				switch {
				case r.Err != nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s error: %v\n", r.Object, r.Err)
				case r.Crossing == nil:
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s no crossing within %.0f days\n", r.Object, maxDays)
				default:
					c := r.Crossing
					fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s  lon=%9.4f°  speed=%+.4f°/d\n",
						r.Object, c.Time.Format(time.RFC3339), c.Longitude, c.Speed)
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&target, "target", 0, "target longitude in degrees")
	cmd.Flags().StringVar(&startStr, "start", "", "search start (RFC3339 or YYYY-MM-DD, default now)")
	cmd.Flags().Float64Var(&maxDays, "max-days", 366, "search horizon in days")

	return cmd
}
