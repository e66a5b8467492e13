package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/astro/zodigo/internal/search"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printCrossings(w io.Writer, format string, crossings []search.Crossing) error {
	if format == "json" {
		return writeJSON(w, crossings)
	}
	if len(crossings) == 0 {
		fmt.Fprintln(w, "no crossings found")
		return nil
	}
	for _, c := range crossings {
		motion := "direct"
		if c.Retrograde {
			motion = "retrograde"
		}
		note := ""
		if !c.Converged {
			note = fmt.Sprintf("  (degraded, error %.6f°)", c.AchievedError)
		}
		fmt.Fprintf(w, "%s  %-8s lon=%9.4f°  speed=%+.4f°/d  %s%s\n",
			c.Time.Format(time.RFC3339), c.Object, c.Longitude, c.Speed, motion, note)
	}
	return nil
}

func printStations(w io.Writer, format string, stations []search.Station) error {
	if format == "json" {
		return writeJSON(w, stations)
	}
	if len(stations) == 0 {
		fmt.Fprintln(w, "no stations found")
		return nil
	}
	for _, st := range stations {
		fmt.Fprintf(w, "%s  %-8s %s\n", st.Time.Format(time.RFC3339), st.Object, st.Type)
	}
	return nil
}
