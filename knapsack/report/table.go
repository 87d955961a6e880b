// Package report renders experiment summaries as text tables and fitness
// histories as plots.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/baldhumanity/knapsack-ga/knapsack/experiment"
)

const tableWidth = 60

func writeBanner(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
}

// WriteSummaryLine writes the mean value and time of one experiment.
func WriteSummaryLine(w io.Writer, s experiment.Summary) {
	fmt.Fprintf(w, "  Mean value: %.2f (±%.2f)\n", s.MeanValue, s.StdValue)
	fmt.Fprintf(w, "  Mean time: %.2fs\n", s.MeanElapsed.Seconds())
}

// WriteCapacityTable writes one row per capacity of a sweep.
func WriteCapacityTable(w io.Writer, summaries []experiment.Summary) {
	writeBanner(w, "SUMMARY - KNAPSACK CAPACITY")
	fmt.Fprintf(w, "%-12s %-12s %-15s %-12s\n", "Capacity", "Mean Value", "Mean Time (s)", "Std Dev")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	for _, s := range summaries {
		fmt.Fprintf(w, "%-12g %-12.2f %-15.2f %-12.2f\n", s.Capacity, s.MeanValue, s.MeanElapsed.Seconds(), s.StdValue)
	}
}

// WriteCatalogTable writes one row per item set of a comparison.
func WriteCatalogTable(w io.Writer, summaries []experiment.Summary) {
	writeBanner(w, "SUMMARY - ITEM SETS")
	fmt.Fprintf(w, "%-12s %-12s %-15s %-15s\n", "Set", "Mean Value", "Mean Time (s)", "Mean Density")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	for _, s := range summaries {
		fmt.Fprintf(w, "%-12s %-12.2f %-15.2f %-15.2f\n", s.Label, s.MeanValue, s.MeanElapsed.Seconds(), s.MeanDensity)
	}
}
