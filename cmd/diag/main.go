package main

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/astro/zodigo/internal/ephemeris"
	"github.com/astro/zodigo/internal/search"
	"github.com/astro/zodigo/internal/timeconv"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	catalog := ephemeris.NewCatalog()
	oracle := ephemeris.NewKeplerian()

	now := time.Now().UTC()
	jd := timeconv.JulianDay(now)
	fmt.Printf("Epoch: %v (JD %.5f)\n\n", now.Format(time.RFC3339), jd)

	for _, id := range catalog.IDs() {
		smp, err := oracle.PositionAndSpeed(id, jd)
		if err != nil {
			fmt.Printf("  %-8s ERROR %v\n", catalog.Name(id), err)
			continue
		}
		motion := "direct"
		if smp.Speed < 0 {
			motion = "retrograde"
		}
		fmt.Printf("  %-8s lon=%9.4f°  speed=%+8.4f°/d  %s\n",
			catalog.Name(id), smp.Longitude, smp.Speed, motion)
	}

	// Next solar ingress: the Sun's longitude reaching the next 30° cusp.
	sun, err := oracle.PositionAndSpeed(ephemeris.Sun, jd)
	if err != nil {
		fmt.Println("ERROR sampling sun:", err)
		os.Exit(1)
	}
	cusp := math.Ceil(sun.Longitude/30) * 30

	s := search.NewSearcher(oracle, catalog, search.DefaultConfig(), logger)
	c, err := s.FindCrossing(search.CrossingQuery{
		Object:  "sun",
		Target:  cusp,
		Start:   now,
		MaxDays: 40,
	})
	if err != nil {
		fmt.Println("ERROR finding solar ingress:", err)
		os.Exit(1)
	}
	if c == nil {
		fmt.Println("\nNo solar ingress found within 40 days")
		return
	}
	fmt.Printf("\nNext solar ingress: %v (longitude %.4f°, converged=%v)\n",
		c.Time.Format(time.RFC3339), c.Longitude, c.Converged)
}
