// Package report renders the final aggregate summary.
package report

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"

	"onebrc/station"
)

// Format sorts the stations by name and renders the single summary
// line: {A=min/avg/max, B=min/avg/max, ...}, every value with exactly
// one fractional digit. The input slice is sorted in place.
func Format(stats []*station.Stats) string {
	slices.SortFunc(stats, func(a, b *station.Stats) int {
		return strings.Compare(a.Name, b.Name)
	})

	var b strings.Builder
	b.WriteByte('{')
	for i, st := range stats {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%.1f/%.1f/%.1f",
			st.Name,
			float64(st.Min)/10,
			st.Avg(),
			float64(st.Max)/10,
		)
	}
	b.WriteByte('}')
	return b.String()
}
